package user

import "context"

type Repository interface {
	// Create persists a new user and returns its assigned ID. It reports
	// ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, email, passwordHash string) (string, error)

	// FindByEmail does a case-sensitive exact-match lookup.
	FindByEmail(ctx context.Context, email string) (User, error)
}
