package flights

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okaya/airticket/internal/domain"
	"github.com/okaya/airticket/internal/registry"
)

func TestFlightService_List(t *testing.T) {
	reg := registry.New()
	a := domain.NewFlight("THY", "Boeing", "737", "Istanbul", "Ankara", time.Now().Add(24*time.Hour), 20, 35050)
	b := domain.NewFlight("Pegasus", "Airbus", "A320", "Istanbul", "Izmir", time.Now().Add(48*time.Hour), 25, 30000)
	reg.AddFlight(a)
	reg.AddFlight(b)

	svc := NewFlightService(reg)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*domain.Flight{a, b}, got)
}

func TestFlightService_GetByID(t *testing.T) {
	reg := registry.New()
	a := domain.NewFlight("THY", "Boeing", "737", "Istanbul", "Ankara", time.Now().Add(24*time.Hour), 20, 35050)
	reg.AddFlight(a)

	svc := NewFlightService(reg)

	got, err := svc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, registry.ErrFlightNotFound)
}
