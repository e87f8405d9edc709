package registry

import (
	"testing"
	"time"

	"github.com/okaya/airticket/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlight(origin, destination string) *domain.Flight {
	return domain.NewFlight("THY", "Boeing", "737", origin, destination,
		time.Now().Add(24*time.Hour), 20, 35050)
}

func newUser(t *testing.T, username string) *domain.User {
	t.Helper()
	u, err := domain.NewUser(username, username+"@example.com", "s3cret", "12345678901")
	require.NoError(t, err)
	return u
}

func TestRegistry_AddFlight_assignsSequentialIDs(t *testing.T) {
	r := New()
	a := newFlight("Istanbul", "Ankara")
	b := newFlight("Istanbul", "Izmir")

	r.AddFlight(a)
	r.AddFlight(b)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestRegistry_ListFlights_stableOrder(t *testing.T) {
	r := New()
	a := newFlight("Istanbul", "Ankara")
	b := newFlight("Istanbul", "Izmir")
	r.AddFlight(a)
	r.AddFlight(b)

	first := r.ListFlights()
	second := r.ListFlights()

	assert.Equal(t, []*domain.Flight{a, b}, first)
	assert.Equal(t, first, second)
}

func TestRegistry_FlightByIndex(t *testing.T) {
	r := New()
	a := newFlight("Istanbul", "Ankara")
	r.AddFlight(a)

	got, err := r.FlightByIndex(0)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = r.FlightByIndex(1)
	assert.ErrorIs(t, err, ErrFlightNotFound)
	_, err = r.FlightByIndex(-1)
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestRegistry_FlightByID(t *testing.T) {
	r := New()
	a := newFlight("Istanbul", "Ankara")
	r.AddFlight(a)

	got, err := r.FlightByID(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = r.FlightByID(99)
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestRegistry_RegisterUser_duplicate(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterUser(newUser(t, "alice")))

	err := r.RegisterUser(newUser(t, "alice"))
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestRegistry_Login(t *testing.T) {
	r := New()
	u := newUser(t, "alice")
	require.NoError(t, r.RegisterUser(u))

	got, err := r.Login("alice", "s3cret")
	require.NoError(t, err)
	assert.Same(t, u, got)

	_, err = r.Login("alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrAuthFailure)

	_, err = r.Login("bob", "s3cret")
	assert.ErrorIs(t, err, domain.ErrAuthFailure)
}

func TestSeed_allFlightsDepartInFuture(t *testing.T) {
	r := New()
	Seed(r)

	flights := r.ListFlights()
	require.Len(t, flights, 7)
	for _, f := range flights {
		assert.True(t, f.DepartureTime.After(time.Now()), f.Describe())
		assert.Positive(t, f.Capacity)
	}
}
