//POST /api/signup       # Register (public)
//POST /api/login        # Login (public)
//GET  /api/vault        # List items (auth)
//POST /api/vault        # Create item (auth)
//PUT  /api/vault/{id}   # Update item (auth)
//DELETE /api/vault/{id} # Delete item (auth)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "passvault/internal/app/server/api/http/health"
	"passvault/internal/app/server/api/http/middleware"
	authMW "passvault/internal/app/server/api/http/middleware/auth"
	loggerMW "passvault/internal/app/server/api/http/middleware/logger"
	userAPI "passvault/internal/app/server/api/http/user"
	vaultAPI "passvault/internal/app/server/api/http/vault"
	"passvault/internal/auth"
	"passvault/internal/config"
	"passvault/internal/domain/user"
	"passvault/internal/domain/vault"
	"passvault/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Vault  *vaultAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Passvault API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Vault.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)
	authMiddleware := authMW.New(tokens, log)
	loggerMiddleware := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMiddleware.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, tokens, log)
	middlewares.Add(loggerMiddleware.Middleware())
	userHandler := userAPI.NewHandler(userService, log, middlewares.GetAllAndClear())

	vaultRepo := postgres.NewVaultRepository(storage.Pool(), log)
	vaultService := vault.NewService(vaultRepo, log)
	middlewares.Add(authMiddleware.Middleware())
	middlewares.Add(loggerMiddleware.Middleware())
	vaultHandler := vaultAPI.NewHandler(vaultService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Vault:  vaultHandler,
	}
}
