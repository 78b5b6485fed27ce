package domain

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or does not
	// belong to the caller. The two cases are indistinguishable so that
	// existence of other users' records never leaks.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned for malformed input before any
	// mutation happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when a concurrent update to the same card
	// kept winning over the caller's read-modify-write.
	ErrConflict = errors.New("concurrent modification")
)
