package vault

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	authmw "passvault/internal/app/server/api/http/middleware/auth"
	"passvault/internal/domain/vault"
)

type Handler struct {
	service    vault.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service vault.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	userID, ok := authmw.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid or expired token")
	}

	items, err := h.service.List(ctx, userID)
	if err != nil {
		h.log.Error("list items failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	data := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		data = append(data, toItemResponse(item))
	}

	return &ListOutput{
		Body: ListResponse{Success: true, Data: data},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *CreateInput) (*ItemOutput, error) {
	userID, ok := authmw.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid or expired token")
	}

	item, err := h.service.Create(ctx, userID, vault.CreateInput{
		Title:      input.Body.Title,
		Username:   input.Body.Username,
		Ciphertext: input.Body.Ciphertext,
		Nonce:      input.Body.Nonce,
		URL:        input.Body.URL,
		Notes:      input.Body.Notes,
	})
	if err != nil {
		if errors.Is(err, vault.ErrInvalidData) {
			return nil, huma.Error400BadRequest("Title, username and encrypted password are required")
		}
		h.log.Error("create item failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &ItemOutput{
		Body: ItemEnvelope{Success: true, Data: toItemResponse(item)},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateInput) (*ItemOutput, error) {
	userID, ok := authmw.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid or expired token")
	}

	item, err := h.service.Update(ctx, userID, input.ID, vault.UpdateInput{
		Title:      input.Body.Title,
		Username:   input.Body.Username,
		Ciphertext: input.Body.Ciphertext,
		Nonce:      input.Body.Nonce,
		URL:        input.Body.URL,
		Notes:      input.Body.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, vault.ErrNotFound):
			return nil, huma.Error404NotFound("Item not found")
		case errors.Is(err, vault.ErrInvalidData):
			return nil, huma.Error400BadRequest("Invalid item data")
		default:
			h.log.Error("update item failed", slog.String("error", err.Error()))
			return nil, huma.Error500InternalServerError("Internal server error")
		}
	}

	return &ItemOutput{
		Body: ItemEnvelope{Success: true, Data: toItemResponse(item)},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	userID, ok := authmw.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid or expired token")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			return nil, huma.Error404NotFound("Item not found")
		}
		h.log.Error("delete item failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &DeleteOutput{
		Body: DeleteResponse{Success: true, Data: struct{}{}},
	}, nil
}

func toItemResponse(item vault.Item) ItemResponse {
	return ItemResponse{
		ID:         item.ID,
		Title:      item.Title,
		Username:   item.Username,
		Ciphertext: item.Ciphertext,
		Nonce:      item.Nonce,
		URL:        item.URL,
		Notes:      item.Notes,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}
