package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

const (
	minPasswordLen = 6
	bcryptCost     = 12
)

// TokenIssuer mints a signed identity assertion for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

type Servicer interface {
	Signup(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// Service implements signup and login. These are the only two operations
// that mint identity; everything else consumes an already-issued token.
type Service struct {
	repo   Repository
	tokens TokenIssuer
	log    *slog.Logger
}

func NewService(repo Repository, tokens TokenIssuer, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		log:    log.With("component", "user_service"),
	}
}

// Signup validates the password, hashes it and creates the user. The raw
// password is never persisted or logged.
func (s *Service) Signup(ctx context.Context, email, password string) (string, error) {
	if email == "" || len(password) < minPasswordLen {
		return "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			s.log.Debug("signup rejected, email taken", "email", email)
			return "", ErrEmailTaken
		}
		s.log.Error("failed to create user", "error", err)
		return "", fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", userID)
	return userID, nil
}

// Login verifies credentials and issues a token. Lookup failure and hash
// mismatch collapse into the same error on purpose.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		s.log.Error("failed to issue token", "user_id", u.ID, "error", err)
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("user logged in", "user_id", u.ID)
	return token, nil
}
