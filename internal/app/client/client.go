package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"passvault/internal/app/client/config"
	"passvault/internal/crypto"
)

// App ties the HTTP client, the local session store and the cipher together.
// Secrets are encrypted before they leave the process and decrypted only on
// explicit request.
type App struct {
	config *config.Config
	log    *slog.Logger
	http   *httpClient
	state  *StateStore
	cipher *crypto.Cipher
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	state, err := NewStateStore(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("init state store: %w", err)
	}

	app := &App{
		config: cfg,
		log:    log,
		http:   NewHTTPClient(cfg, log),
		state:  state,
		cipher: crypto.New(cfg.VaultSecret),
	}

	if _, token, err := state.Session(); err == nil && token != "" {
		app.http.SetToken(token)
		log.Debug("session restored from state store")
	}

	return app, nil
}

func (a *App) Close() error {
	return a.state.Close()
}

// CheckConnection verifies the server is reachable.
func (a *App) CheckConnection(ctx context.Context) error {
	return a.http.Health(ctx)
}

// Signup registers a new account.
func (a *App) Signup(ctx context.Context, email, password string) error {
	return a.http.Signup(ctx, email, password)
}

// Login authenticates and persists the session for later invocations.
func (a *App) Login(ctx context.Context, email, password string) error {
	token, err := a.http.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.state.SaveSession(email, token); err != nil {
		a.log.Warn("failed to persist session", "error", err)
	}

	return nil
}

// Logout drops the persisted session.
func (a *App) Logout() error {
	a.http.SetToken("")
	return a.state.ClearSession()
}

// IsAuthenticated reports whether a saved session exists.
func (a *App) IsAuthenticated() bool {
	_, token, err := a.state.Session()
	return err == nil && token != ""
}

// List returns the account's items with secrets still enveloped.
func (a *App) List(ctx context.Context) ([]Item, error) {
	return a.http.ListItems(ctx)
}

// Add encrypts the password locally and stores the item.
func (a *App) Add(ctx context.Context, title, username, password, url, notes string) (Item, error) {
	env, err := a.cipher.Encrypt(password)
	if err != nil {
		return Item{}, fmt.Errorf("encrypt secret: %w", err)
	}

	return a.http.CreateItem(ctx, createItemRequest{
		Title:      title,
		Username:   username,
		Ciphertext: env.Ciphertext,
		Nonce:      env.Nonce,
		URL:        url,
		Notes:      notes,
	})
}

// Reveal fetches an item and decrypts its secret.
func (a *App) Reveal(ctx context.Context, id string) (Item, string, error) {
	items, err := a.http.ListItems(ctx)
	if err != nil {
		return Item{}, "", err
	}

	for _, item := range items {
		if item.ID != id {
			continue
		}
		plaintext, err := a.cipher.Decrypt(crypto.Envelope{
			Nonce:      item.Nonce,
			Ciphertext: item.Ciphertext,
		})
		if err != nil {
			return Item{}, "", fmt.Errorf("decrypt secret: %w", err)
		}
		return item, plaintext, nil
	}

	return Item{}, "", fmt.Errorf("item not found: %s", id)
}

// Update applies the edit; a new password is re-encrypted into a fresh
// envelope before upload.
func (a *App) Update(ctx context.Context, id string, upd ItemUpdate) (Item, error) {
	req := updateItemRequest{
		Title:    upd.Title,
		Username: upd.Username,
		URL:      upd.URL,
		Notes:    upd.Notes,
	}

	if upd.Password != nil {
		env, err := a.cipher.Encrypt(*upd.Password)
		if err != nil {
			return Item{}, fmt.Errorf("encrypt secret: %w", err)
		}
		req.Ciphertext = &env.Ciphertext
		req.Nonce = &env.Nonce
	}

	return a.http.UpdateItem(ctx, id, req)
}

// Delete removes an item from the server.
func (a *App) Delete(ctx context.Context, id string) error {
	return a.http.DeleteItem(ctx, id)
}
