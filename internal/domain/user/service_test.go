package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, passwordHash string) (string, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) Issue(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func TestService_Signup(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockIssuer), slog.Default())

	// The hash is salted, so only check that a non-empty bcrypt hash of the
	// right password reaches the repository.
	mockRepo.On("Create", mock.Anything, "a@x.com", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")) == nil
	})).Return("user-1", nil)

	userID, err := service.Signup(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	mockRepo.AssertExpectations(t)
}

func TestService_Signup_WeakPassword(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "five characters", email: "a@x.com", password: "12345"},
		{name: "empty password", email: "a@x.com", password: ""},
		{name: "empty email", email: "", password: "secret1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, new(MockIssuer), slog.Default())

			_, err := service.Signup(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrWeakPassword)

			// Rejected before any store mutation.
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestService_Signup_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockIssuer), slog.Default())

	mockRepo.On("Create", mock.Anything, "a@x.com", mock.AnythingOfType("string")).
		Return("", ErrEmailTaken)

	_, err := service.Signup(context.Background(), "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrEmailTaken)

	mockRepo.AssertExpectations(t)
}

func TestService_Login_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := NewService(mockRepo, mockIssuer, slog.Default())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").
		Return(User{ID: "user-1", Email: "a@x.com", PasswordHash: string(hash)}, nil)
	mockIssuer.On("Issue", "user-1", "a@x.com").Return("signed.token", nil)

	token, err := service.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "signed.token", token)

	mockRepo.AssertExpectations(t)
	mockIssuer.AssertExpectations(t)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockIssuer), slog.Default())

	mockRepo.On("FindByEmail", mock.Anything, "nobody@x.com").Return(User{}, ErrNotFound)

	_, err := service.Login(context.Background(), "nobody@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockIssuer), slog.Default())

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").
		Return(User{ID: "user-1", Email: "a@x.com", PasswordHash: string(hash)}, nil)

	_, err = service.Login(context.Background(), "a@x.com", "wrong")
	// Indistinguishable from an unknown email.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_IssuerError(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := NewService(mockRepo, mockIssuer, slog.Default())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").
		Return(User{ID: "user-1", Email: "a@x.com", PasswordHash: string(hash)}, nil)
	mockIssuer.On("Issue", "user-1", "a@x.com").Return("", errors.New("signer unavailable"))

	_, err = service.Login(context.Background(), "a@x.com", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
