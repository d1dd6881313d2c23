package user

import "errors"

var (
	// ErrEmailTaken means signup hit an email that is already registered.
	ErrEmailTaken = errors.New("user already exists")

	// ErrWeakPassword rejects passwords below the minimum length before any
	// store mutation happens.
	ErrWeakPassword = errors.New("password should be at least 6 characters long")

	// ErrInvalidCredentials is deliberately uninformative: unknown email and
	// wrong password both map here so accounts cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNotFound = errors.New("user not found")
)
