package user

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"passvault/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Signup(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func newTestHandler(service user.Servicer) *Handler {
	return NewHandler(service, slog.Default(), huma.Middlewares{})
}

func TestHandler_signup(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service := new(MockService)
		service.On("Signup", ctx, "user@example.com", "s3cr3t").
			Return("user-1", nil)

		handler := newTestHandler(service)
		output, err := handler.signup(ctx, &SignupInput{
			Body: SignupRequest{Email: "user@example.com", Password: "s3cr3t"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "User registered successfully", output.Body.Message)
		service.AssertExpectations(t)
	})

	t.Run("weak password", func(t *testing.T) {
		service := new(MockService)
		service.On("Signup", ctx, "user@example.com", "short").
			Return("", user.ErrWeakPassword)

		handler := newTestHandler(service)
		_, err := handler.signup(ctx, &SignupInput{
			Body: SignupRequest{Email: "user@example.com", Password: "short"},
		})

		var statusErr huma.StatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 400, statusErr.GetStatus())
	})

	t.Run("duplicate email", func(t *testing.T) {
		service := new(MockService)
		service.On("Signup", ctx, "taken@example.com", "s3cr3t").
			Return("", user.ErrEmailTaken)

		handler := newTestHandler(service)
		_, err := handler.signup(ctx, &SignupInput{
			Body: SignupRequest{Email: "taken@example.com", Password: "s3cr3t"},
		})

		var statusErr huma.StatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 422, statusErr.GetStatus())
	})

	t.Run("internal error", func(t *testing.T) {
		service := new(MockService)
		service.On("Signup", ctx, "user@example.com", "s3cr3t").
			Return("", errors.New("db down"))

		handler := newTestHandler(service)
		_, err := handler.signup(ctx, &SignupInput{
			Body: SignupRequest{Email: "user@example.com", Password: "s3cr3t"},
		})

		var statusErr huma.StatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 500, statusErr.GetStatus())
	})
}

func TestHandler_login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service := new(MockService)
		service.On("Login", ctx, "user@example.com", "s3cr3t").
			Return("token-abc", nil)

		handler := newTestHandler(service)
		output, err := handler.login(ctx, &LoginInput{
			Body: LoginRequest{Email: "user@example.com", Password: "s3cr3t"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "token-abc", output.Body.Token)
		assert.Equal(t, "Logged in successfully", output.Body.Message)
		service.AssertExpectations(t)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		service := new(MockService)
		service.On("Login", ctx, "user@example.com", "wrong").
			Return("", user.ErrInvalidCredentials)

		handler := newTestHandler(service)
		_, err := handler.login(ctx, &LoginInput{
			Body: LoginRequest{Email: "user@example.com", Password: "wrong"},
		})

		var statusErr huma.StatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 401, statusErr.GetStatus())
	})

	t.Run("internal error", func(t *testing.T) {
		service := new(MockService)
		service.On("Login", ctx, "user@example.com", "s3cr3t").
			Return("", errors.New("db down"))

		handler := newTestHandler(service)
		_, err := handler.login(ctx, &LoginInput{
			Body: LoginRequest{Email: "user@example.com", Password: "s3cr3t"},
		})

		var statusErr huma.StatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 500, statusErr.GetStatus())
	})
}
