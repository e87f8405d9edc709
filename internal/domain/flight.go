package domain

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Flight owns the seat inventory for one scheduled departure. Capacity is
// fixed at creation; sold seats only grow. A hold reserves a seat against
// direct sales without consuming capacity until it is converted, so
// soldSeats can never exceed Capacity.
//
// All inventory transitions go through PlaceHold, CancelHold,
// ConvertHoldToSale and DirectSale, serialized by a per-flight mutex.
type Flight struct {
	ID            int64
	Airline       string
	Manufacturer  string
	Model         string
	Origin        string
	Destination   string
	DepartureTime time.Time
	PriceCents    int64
	Capacity      int

	mu        sync.Mutex
	soldSeats int
	holds     []string // holder usernames, insertion order, unique
}

func NewFlight(airline, manufacturer, model, origin, destination string, departure time.Time, capacity int, priceCents int64) *Flight {
	return &Flight{
		Airline:       airline,
		Manufacturer:  manufacturer,
		Model:         model,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure,
		Capacity:      capacity,
		PriceCents:    priceCents,
	}
}

// AvailableSeats is capacity minus completed sales.
func (f *Flight) AvailableSeats() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.availableLocked()
}

// SellableSeats is what a walk-up buyer can still get: available seats
// minus outstanding holds, floored at zero.
func (f *Flight) SellableSeats() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sellableLocked()
}

func (f *Flight) SoldSeats() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.soldSeats
}

func (f *Flight) HoldCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.holds)
}

// HoldsFor reports whether holder currently holds a seat.
func (f *Flight) HoldsFor(holder string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Contains(f.holds, holder)
}

func (f *Flight) availableLocked() int {
	return f.Capacity - f.soldSeats
}

func (f *Flight) sellableLocked() int {
	return max(0, f.availableLocked()-len(f.holds))
}

// PlaceHold reserves a seat for holder. Holds are accepted strictly in
// call order; a hold may not outnumber the seats still available.
func (f *Flight) PlaceHold(holder string, now time.Time) error {
	if !f.DepartureTime.After(now) {
		return ErrPastDeparture
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if slices.Contains(f.holds, holder) {
		return ErrAlreadyHeld
	}
	if len(f.holds) >= f.availableLocked() {
		return ErrNoCapacity
	}
	f.holds = append(f.holds, holder)
	return nil
}

// CancelHold releases holder's hold if present. Idempotent: cancelling a
// hold that does not exist reports false and changes nothing.
func (f *Flight) CancelHold(holder string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := slices.Index(f.holds, holder)
	if i < 0 {
		return false
	}
	f.holds = slices.Delete(f.holds, i, i+1)
	return true
}

// ConvertHoldToSale turns holder's hold into a completed sale. This is
// the only path that consumes capacity for a previously held seat.
func (f *Flight) ConvertHoldToSale(holder string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := slices.Index(f.holds, holder)
	if i < 0 {
		return ErrNoSuchHold
	}
	// The hold invariant keeps holds within availableSeats, but check
	// anyway so soldSeats can never pass Capacity.
	if f.availableLocked() <= 0 {
		return ErrNoCapacity
	}
	f.holds = slices.Delete(f.holds, i, i+1)
	f.soldSeats++
	return nil
}

// DirectSale sells a seat without a prior hold. Outstanding holds keep
// their seats: the sale only succeeds while sellable seats remain.
func (f *Flight) DirectSale() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sellableLocked() <= 0 {
		return ErrNoCapacity
	}
	f.soldSeats++
	return nil
}

// Describe renders the one-line listing entry for this flight.
func (f *Flight) Describe() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return fmt.Sprintf("%s (%s %s): %s -> %s, %s, available: %d, held: %d, sellable: %d, price: %.2f",
		f.Airline, f.Manufacturer, f.Model, f.Origin, f.Destination,
		f.DepartureTime.Format("02.01.2006 15:04"),
		f.availableLocked(), len(f.holds), f.sellableLocked(),
		float64(f.PriceCents)/100)
}
