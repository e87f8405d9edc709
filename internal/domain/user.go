package domain

import (
	"slices"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// User is a registered account. Identity fields are fixed at creation;
// the password survives only as a bcrypt hash.
type User struct {
	Username   string
	Email      string
	NationalID string

	passwordHash []byte

	mu        sync.Mutex
	held      []*Flight
	purchased []*Flight
}

// NewUser validates the national id, hashes the password and builds the
// account. The clear password is not retained.
func NewUser(username, email, password, nationalID string) (*User, error) {
	if !ValidNationalID(nationalID) {
		return nil, ErrInvalidNationalID
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		Username:     username,
		Email:        email,
		NationalID:   nationalID,
		passwordHash: hash,
	}, nil
}

// ValidNationalID reports whether s is exactly 11 digits with a non-zero
// first digit.
func ValidNationalID(s string) bool {
	if len(s) != 11 || s[0] == '0' {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) == nil
}

// HoldFlight records f in the user's held set.
func (u *User) HoldFlight(f *Flight) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !slices.Contains(u.held, f) {
		u.held = append(u.held, f)
	}
}

// ReleaseFlight drops f from the held set, reporting whether it was there.
func (u *User) ReleaseFlight(f *Flight) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	i := slices.Index(u.held, f)
	if i < 0 {
		return false
	}
	u.held = slices.Delete(u.held, i, i+1)
	return true
}

// PurchaseFlight records f as purchased, removing it from the held set
// when the purchase came out of a hold.
func (u *User) PurchaseFlight(f *Flight) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if i := slices.Index(u.held, f); i >= 0 {
		u.held = slices.Delete(u.held, i, i+1)
	}
	if !slices.Contains(u.purchased, f) {
		u.purchased = append(u.purchased, f)
	}
}

func (u *User) HeldFlights() []*Flight {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.held)
}

func (u *User) PurchasedFlights() []*Flight {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.purchased)
}
