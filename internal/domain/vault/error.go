package vault

import "errors"

var (
	// ErrNotFound covers both true absence and an ownership mismatch.
	// Callers can never tell whether someone else's item exists.
	ErrNotFound = errors.New("item not found")

	ErrInvalidData = errors.New("invalid item data")
)
