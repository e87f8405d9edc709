package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/okaya/airticket/internal/domain"
	"github.com/okaya/airticket/internal/kafka"
	"github.com/okaya/airticket/internal/notify"
	"github.com/okaya/airticket/internal/pnr"
)

// BookingUseCase is the user-facing booking surface. Every operation
// mutates the flight inventory first and only then fires best-effort
// side effects; the returned message is printable as-is. The error, when
// set, is the domain sentinel behind the failure message.
type BookingUseCase interface {
	Hold(ctx context.Context, user *domain.User, flight *domain.Flight, now time.Time) (string, error)
	CancelHold(ctx context.Context, user *domain.User, flight *domain.Flight) (string, error)
	ConvertToPurchase(ctx context.Context, user *domain.User, flight *domain.Flight) (string, error)
	DirectPurchase(ctx context.Context, user *domain.User, flight *domain.Flight, now time.Time) (string, error)
}

type WeatherProvider interface {
	Lookup(ctx context.Context, city string) string
}

type BookingService struct {
	weather  WeatherProvider
	notifier notify.Notifier
	newCode  func() string
	log      *zap.Logger
}

type BookingServiceOption func(*BookingService)

// WithCodeGenerator replaces the confirmation-code source.
func WithCodeGenerator(gen func() string) BookingServiceOption {
	return func(s *BookingService) {
		s.newCode = gen
	}
}

func NewBookingService(weather WeatherProvider, notifier notify.Notifier, log *zap.Logger, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		weather:  weather,
		notifier: notifier,
		newCode:  pnr.Generate,
		log:      log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Hold(ctx context.Context, user *domain.User, flight *domain.Flight, now time.Time) (string, error) {
	if err := flight.PlaceHold(user.Username, now); err != nil {
		return "reservation failed: " + err.Error(), err
	}
	user.HoldFlight(flight)

	weatherText := s.weather.Lookup(ctx, flight.Destination)
	code := s.newCode()
	s.emit(ctx, "Reservation placed", user, flight, code, weatherText)

	return fmt.Sprintf("reservation placed: %s -> %s, %s | weather: %s | PNR: %s",
		flight.Origin, flight.Destination, departureText(flight), weatherText, code), nil
}

func (s *BookingService) CancelHold(ctx context.Context, user *domain.User, flight *domain.Flight) (string, error) {
	if !flight.CancelHold(user.Username) {
		return "cancellation failed: " + domain.ErrNoSuchHold.Error(), domain.ErrNoSuchHold
	}
	user.ReleaseFlight(flight)
	return fmt.Sprintf("reservation cancelled: %s -> %s, %s",
		flight.Origin, flight.Destination, departureText(flight)), nil
}

func (s *BookingService) ConvertToPurchase(ctx context.Context, user *domain.User, flight *domain.Flight) (string, error) {
	if err := flight.ConvertHoldToSale(user.Username); err != nil {
		return "purchase failed: " + err.Error(), err
	}
	user.PurchaseFlight(flight)

	weatherText := s.weather.Lookup(ctx, flight.Destination)
	code := s.newCode()
	s.emit(ctx, "Ticket purchased", user, flight, code, weatherText)

	return fmt.Sprintf("ticket purchased: %s -> %s, %s | weather: %s | PNR: %s",
		flight.Origin, flight.Destination, departureText(flight), weatherText, code), nil
}

func (s *BookingService) DirectPurchase(ctx context.Context, user *domain.User, flight *domain.Flight, now time.Time) (string, error) {
	if !flight.DepartureTime.After(now) {
		return "purchase failed: " + domain.ErrPastDeparture.Error(), domain.ErrPastDeparture
	}
	if err := flight.DirectSale(); err != nil {
		return "purchase failed: " + err.Error(), err
	}
	user.PurchaseFlight(flight)

	weatherText := s.weather.Lookup(ctx, flight.Destination)
	code := s.newCode()
	s.emit(ctx, "Ticket purchased (direct)", user, flight, code, weatherText)

	return fmt.Sprintf("ticket purchased: %s -> %s, %s | weather: %s | PNR: %s",
		flight.Origin, flight.Destination, departureText(flight), weatherText, code), nil
}

// emit dispatches the notification for a completed mutation. Dispatch
// problems are logged and dropped; the booking already succeeded.
func (s *BookingService) emit(ctx context.Context, subject string, user *domain.User, flight *domain.Flight, code, weatherText string) {
	if s.notifier == nil {
		return
	}
	event := kafka.TicketEvent{
		EventID:       uuid.NewString(),
		Subject:       subject,
		Username:      user.Username,
		Email:         user.Email,
		NationalID:    user.NationalID,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		DepartureTime: flight.DepartureTime,
		PNR:           code,
		Weather:       weatherText,
		PriceCents:    flight.PriceCents,
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.log.Warn("notification dispatch failed",
			zap.String("event_id", event.EventID),
			zap.String("subject", subject),
			zap.Error(err))
	}
}

func departureText(flight *domain.Flight) string {
	return flight.DepartureTime.Format("02.01.2006 15:04")
}

var _ BookingUseCase = (*BookingService)(nil)
