package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/okaya/airticket/internal/domain"
	"github.com/okaya/airticket/internal/notify"
	"github.com/okaya/airticket/internal/registry"
	"github.com/okaya/airticket/internal/service/booking"
)

type stubWeather struct{}

func (stubWeather) Lookup(context.Context, string) string { return "weather unavailable" }

func runScript(t *testing.T, reg *registry.Registry, script string) string {
	t.Helper()
	var out bytes.Buffer
	svc := booking.NewBookingService(stubWeather{}, notify.NewFanout(zap.NewNop()), zap.NewNop())
	menu := NewMenu(strings.NewReader(script), &out, reg, svc)
	require.NoError(t, menu.Run(context.Background()))
	return out.String()
}

func seededRegistry() *registry.Registry {
	reg := registry.New()
	reg.AddFlight(domain.NewFlight("THY", "Boeing", "737", "Istanbul", "Ankara",
		time.Now().Add(24*time.Hour), 20, 35050))
	return reg
}

func TestMenu_registerLoginAndBook(t *testing.T) {
	script := strings.Join([]string{
		"1", // register
		"alice", "alice@example.com", "12345678901", "s3cret",
		"2", // login
		"alice", "s3cret",
		"1",      // list flights
		"2", "1", // hold flight 1
		"3", "1", // purchase the reservation
		"6", // logout
		"3", // exit
	}, "\n") + "\n"

	out := runScript(t, seededRegistry(), script)

	assert.Contains(t, out, "Registration successful!")
	assert.Contains(t, out, "Login successful!")
	assert.Contains(t, out, "THY (Boeing 737)")
	assert.Contains(t, out, "reservation placed: Istanbul -> Ankara")
	assert.Contains(t, out, "ticket purchased: Istanbul -> Ankara")
	assert.Contains(t, out, "Logged out.")
	assert.Contains(t, out, "Goodbye.")
}

func TestMenu_rejectsBadNationalID(t *testing.T) {
	script := strings.Join([]string{
		"1",
		"alice", "alice@example.com", "0123456789", "s3cret",
		"3",
	}, "\n") + "\n"

	out := runScript(t, seededRegistry(), script)

	assert.Contains(t, out, "Registration failed")
	assert.NotContains(t, out, "Registration successful!")
}

func TestMenu_reportsFailedLogin(t *testing.T) {
	script := strings.Join([]string{
		"2", "nobody", "nothing",
		"3",
	}, "\n") + "\n"

	out := runScript(t, seededRegistry(), script)

	assert.Contains(t, out, "Login failed")
}

func TestMenu_repromptsOnInvalidChoice(t *testing.T) {
	script := strings.Join([]string{
		"9", "banana", "3",
	}, "\n") + "\n"

	out := runScript(t, seededRegistry(), script)

	assert.Contains(t, out, "Invalid input. Enter a number between 1 and 3.")
	assert.Contains(t, out, "Goodbye.")
}

func TestMenu_exitsCleanlyOnClosedInput(t *testing.T) {
	reg := seededRegistry()
	var out bytes.Buffer
	svc := booking.NewBookingService(stubWeather{}, notify.NewFanout(zap.NewNop()), zap.NewNop())
	menu := NewMenu(strings.NewReader(""), &out, reg, svc)

	require.NoError(t, menu.Run(context.Background()))
}
