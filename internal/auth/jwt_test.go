package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("super-secret")

	token, err := m.Issue("user-123", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id.UserID)
	assert.Equal(t, "a@x.com", id.Email)
}

func TestTokenManager_Expired(t *testing.T) {
	m := &TokenManager{secret: []byte("super-secret"), ttl: -time.Minute}

	token, err := m.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_NotYetExpired(t *testing.T) {
	// One minute short of the full lifetime still verifies.
	m := &TokenManager{secret: []byte("super-secret"), ttl: TokenTTL - time.Minute}

	token, err := m.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.NoError(t, err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("right-secret").Issue("user-123", "a@x.com")
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	m := NewTokenManager("super-secret")

	for _, tokenString := range []string{"", "not.a.jwt", "a.b", "…"} {
		_, err := m.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
