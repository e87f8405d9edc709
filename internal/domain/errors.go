package domain

import "errors"

var (
	ErrPastDeparture     = errors.New("departure time has passed")
	ErrAlreadyHeld       = errors.New("seat already held for this user")
	ErrNoCapacity        = errors.New("no seats available")
	ErrNoSuchHold        = errors.New("no hold found for this user")
	ErrInvalidNationalID = errors.New("national id must be 11 digits and must not start with 0")
	ErrDuplicateUsername = errors.New("username already registered")
	ErrAuthFailure       = errors.New("unknown username or wrong password")
)
