package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"passvault/internal/auth"
	"passvault/internal/crypto"
	"passvault/internal/domain/user"
	"passvault/internal/domain/vault"
)

// In-memory repositories so the whole signup-to-delete flow runs without a
// database.

type memUserRepo struct {
	users map[string]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]user.User)}
}

func (r *memUserRepo) Create(_ context.Context, email, passwordHash string) (string, error) {
	if _, exists := r.users[email]; exists {
		return "", user.ErrEmailTaken
	}
	u := user.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	r.users[email] = u
	return u.ID, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (user.User, error) {
	u, exists := r.users[email]
	if !exists {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

type memVaultRepo struct {
	items map[string]vault.Item
}

func newMemVaultRepo() *memVaultRepo {
	return &memVaultRepo{items: make(map[string]vault.Item)}
}

func (r *memVaultRepo) List(_ context.Context, userID string) ([]vault.Item, error) {
	items := make([]vault.Item, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *memVaultRepo) Get(_ context.Context, itemID string) (vault.Item, error) {
	item, exists := r.items[itemID]
	if !exists {
		return vault.Item{}, vault.ErrNotFound
	}
	return item, nil
}

func (r *memVaultRepo) Create(_ context.Context, item *vault.Item) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[item.ID] = *item
	return nil
}

func (r *memVaultRepo) Update(_ context.Context, item *vault.Item) error {
	if _, exists := r.items[item.ID]; !exists {
		return vault.ErrNotFound
	}
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

func (r *memVaultRepo) Delete(_ context.Context, itemID string) error {
	if _, exists := r.items[itemID]; !exists {
		return vault.ErrNotFound
	}
	delete(r.items, itemID)
	return nil
}

// TestVaultLifecycle walks two accounts through the full flow: register,
// authenticate, store an encrypted secret, read it back, fail to touch the
// other account's item, and delete.
func TestVaultLifecycle(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	tokens := auth.NewTokenManager("lifecycle-test-secret")
	userService := user.NewService(newMemUserRepo(), tokens, log)
	vaultService := vault.NewService(newMemVaultRepo(), log)
	cipher := crypto.New("lifecycle-vault-secret")

	// Two independent accounts.
	_, err := userService.Signup(ctx, "alice@example.com", "correct-horse")
	require.NoError(t, err)
	_, err = userService.Signup(ctx, "bob@example.com", "battery-staple")
	require.NoError(t, err)

	// Duplicate registration is rejected.
	_, err = userService.Signup(ctx, "alice@example.com", "other-pass")
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	// Login yields verifiable tokens bound to each identity.
	aliceToken, err := userService.Login(ctx, "alice@example.com", "correct-horse")
	require.NoError(t, err)
	bobToken, err := userService.Login(ctx, "bob@example.com", "battery-staple")
	require.NoError(t, err)

	_, err = userService.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	aliceID := mustVerify(t, tokens, aliceToken)
	bobID := mustVerify(t, tokens, bobToken)
	require.NotEqual(t, aliceID, bobID)

	// Alice stores an encrypted secret.
	env, err := cipher.Encrypt("hunter2")
	require.NoError(t, err)

	item, err := vaultService.Create(ctx, aliceID, vault.CreateInput{
		Title:      "GitHub",
		Username:   "alice",
		Ciphertext: env.Ciphertext,
		Nonce:      env.Nonce,
		URL:        "https://github.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)

	// She can list and decrypt it.
	items, err := vaultService.List(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	plaintext, err := cipher.Decrypt(crypto.Envelope{
		Nonce:      items[0].Nonce,
		Ciphertext: items[0].Ciphertext,
	})
	require.NoError(t, err)
	assert.Equal(t, "hunter2", plaintext)

	// Bob sees an empty vault and cannot touch or even observe Alice's item.
	bobItems, err := vaultService.List(ctx, bobID)
	require.NoError(t, err)
	assert.Empty(t, bobItems)

	newTitle := "Stolen"
	_, err = vaultService.Update(ctx, bobID, item.ID, vault.UpdateInput{Title: &newTitle})
	assert.ErrorIs(t, err, vault.ErrNotFound)

	err = vaultService.Delete(ctx, bobID, item.ID)
	assert.ErrorIs(t, err, vault.ErrNotFound)

	// Alice rotates the secret; ciphertext and nonce move as a pair.
	newEnv, err := cipher.Encrypt("hunter3")
	require.NoError(t, err)
	updated, err := vaultService.Update(ctx, aliceID, item.ID, vault.UpdateInput{
		Ciphertext: &newEnv.Ciphertext,
		Nonce:      &newEnv.Nonce,
	})
	require.NoError(t, err)

	plaintext, err = cipher.Decrypt(crypto.Envelope{
		Nonce:      updated.Nonce,
		Ciphertext: updated.Ciphertext,
	})
	require.NoError(t, err)
	assert.Equal(t, "hunter3", plaintext)

	// Alice deletes; her vault ends empty and a second delete 404s.
	require.NoError(t, vaultService.Delete(ctx, aliceID, item.ID))

	items, err = vaultService.List(ctx, aliceID)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = vaultService.Delete(ctx, aliceID, item.ID)
	assert.True(t, errors.Is(err, vault.ErrNotFound))
}

func mustVerify(t *testing.T, tokens *auth.TokenManager, token string) string {
	t.Helper()
	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	return identity.UserID
}
