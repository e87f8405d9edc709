package registry

import (
	"errors"
	"sync"

	"github.com/okaya/airticket/internal/domain"
)

var ErrFlightNotFound = errors.New("flight not found")

// Registry owns every flight and user for the lifetime of the process.
// Flights keep insertion order; usernames are unique.
type Registry struct {
	mu      sync.RWMutex
	flights []*domain.Flight
	users   map[string]*domain.User
}

func New() *Registry {
	return &Registry{users: make(map[string]*domain.User)}
}

// AddFlight appends f to the flight sequence, assigning the next id when
// none is set.
func (r *Registry) AddFlight(f *domain.Flight) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f.ID == 0 {
		f.ID = int64(len(r.flights) + 1)
	}
	r.flights = append(r.flights, f)
}

// RegisterUser adds u, rejecting usernames that are already taken.
func (r *Registry) RegisterUser(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrDuplicateUsername
	}
	r.users[u.Username] = u
	return nil
}

// Login returns the user when the username exists and the password
// verifies; a lookup miss and a bad password are indistinguishable.
func (r *Registry) Login(username, password string) (*domain.User, error) {
	r.mu.RLock()
	u, ok := r.users[username]
	r.mu.RUnlock()
	if !ok || !u.VerifyPassword(password) {
		return nil, domain.ErrAuthFailure
	}
	return u, nil
}

// ListFlights returns the flights in registry order. The slice is a copy;
// re-listing never mutates anything.
func (r *Registry) ListFlights() []*domain.Flight {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Flight, len(r.flights))
	copy(out, r.flights)
	return out
}

// FlightByIndex addresses a flight by its zero-based listing position.
func (r *Registry) FlightByIndex(i int) (*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.flights) {
		return nil, ErrFlightNotFound
	}
	return r.flights[i], nil
}

func (r *Registry) FlightByID(id int64) (*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.flights {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, ErrFlightNotFound
}

func (r *Registry) FlightCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.flights)
}
