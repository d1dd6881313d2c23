package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"passvault/internal/auth"
)

// Verifier checks a bearer token and resolves the identity it asserts.
type Verifier interface {
	Verify(tokenString string) (auth.Identity, error)
}

type Auth struct {
	tokens Verifier
	log    *slog.Logger
}

func New(tokens Verifier, log *slog.Logger) *Auth {
	return &Auth{
		tokens: tokens,
		log:    log.With("component", "auth_middleware"),
	}
}

type contextKey string

const userIDKey contextKey = "userID"

// Middleware rejects requests without a valid bearer token and puts the
// resolved user id into the request context. Missing header, malformed
// token, bad signature and expiry all produce the same 401.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			a.unauthorized(ctx)
			return
		}

		identity, err := a.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			a.log.Debug("token rejected", "error", err)
			a.unauthorized(ctx)
			return
		}

		newCtx := context.WithValue(ctx.Context(), userIDKey, identity.UserID)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"message": "Invalid or expired token",
	}); err != nil {
		a.log.Error("failed to write 401 body", "error", err)
	}
}

// WithUserID primes a context with an authenticated user id. Exported for
// handler tests.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
