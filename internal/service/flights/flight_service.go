package flights

import (
	"context"

	"github.com/okaya/airticket/internal/domain"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]*domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type Registry interface {
	ListFlights() []*domain.Flight
	FlightByID(id int64) (*domain.Flight, error)
}

type FlightService struct {
	registry Registry
}

func NewFlightService(registry Registry) *FlightService {
	return &FlightService{registry: registry}
}

func (s *FlightService) List(_ context.Context) ([]*domain.Flight, error) {
	return s.registry.ListFlights(), nil
}

func (s *FlightService) GetByID(_ context.Context, id int64) (*domain.Flight, error) {
	return s.registry.FlightByID(id)
}

var _ FlightUseCase = (*FlightService)(nil)
