package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"passvault/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signupOp(), h.signup)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) signup(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
	_, err := h.service.Signup(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrWeakPassword):
			return nil, huma.Error400BadRequest("Password must be at least 6 characters long")
		case errors.Is(err, user.ErrEmailTaken):
			return nil, huma.Error422UnprocessableEntity("Email already registered")
		default:
			h.log.Error("signup failed", slog.String("error", err.Error()))
			return nil, huma.Error500InternalServerError("Internal server error")
		}
	}

	return &SignupOutput{
		Body: SignupResponse{Message: "User registered successfully"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	token, err := h.service.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("Invalid credentials")
		}
		h.log.Error("login failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &LoginOutput{
		Body: LoginResponse{Message: "Logged in successfully", Token: token},
	}, nil
}
