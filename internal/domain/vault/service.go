package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID string) ([]Item, error)
	Create(ctx context.Context, userID string, in CreateInput) (Item, error)
	Update(ctx context.Context, userID, itemID string, in UpdateInput) (Item, error)
	Delete(ctx context.Context, userID, itemID string) error
}

// Service gates every operation on the verified caller identity. No method
// accepts an owner from input; userID always comes from the token.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "vault_service"),
	}
}

// List returns the caller's items, in store-native order.
func (s *Service) List(ctx context.Context, userID string) ([]Item, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list items", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Create stores a new item owned by userID. Title, username and the
// encrypted-secret envelope are required; the envelope is stored opaquely.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Item, error) {
	if in.Title == "" || in.Username == "" || in.Ciphertext == "" || in.Nonce == "" {
		return Item{}, ErrInvalidData
	}

	item := Item{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      in.Title,
		Username:   in.Username,
		Ciphertext: in.Ciphertext,
		Nonce:      in.Nonce,
		URL:        in.URL,
		Notes:      in.Notes,
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		s.log.Error("failed to create item", "user_id", userID, "error", err)
		return Item{}, fmt.Errorf("create item: %w", err)
	}

	s.log.Info("item created", "item_id", item.ID, "user_id", userID)
	return item, nil
}

// Update applies the supplied field subset to an owned item. Ciphertext and
// nonce travel as a pair; replacing one without the other would leave an
// envelope that can never decrypt.
func (s *Service) Update(ctx context.Context, userID, itemID string, in UpdateInput) (Item, error) {
	if (in.Ciphertext == nil) != (in.Nonce == nil) {
		return Item{}, ErrInvalidData
	}

	item, err := s.authorize(ctx, userID, itemID)
	if err != nil {
		return Item{}, err
	}

	if in.Title != nil {
		item.Title = *in.Title
	}
	if in.Username != nil {
		item.Username = *in.Username
	}
	if in.Ciphertext != nil {
		item.Ciphertext = *in.Ciphertext
		item.Nonce = *in.Nonce
	}
	if in.URL != nil {
		item.URL = *in.URL
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}

	if item.Title == "" || item.Username == "" || item.Ciphertext == "" || item.Nonce == "" {
		return Item{}, ErrInvalidData
	}

	if err := s.repo.Update(ctx, &item); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Item{}, ErrNotFound
		}
		s.log.Error("failed to update item", "item_id", itemID, "user_id", userID, "error", err)
		return Item{}, fmt.Errorf("update item: %w", err)
	}

	s.log.Info("item updated", "item_id", itemID, "user_id", userID)
	return item, nil
}

// Delete permanently removes an owned item. There is no soft delete.
func (s *Service) Delete(ctx context.Context, userID, itemID string) error {
	item, err := s.authorize(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, item.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete item", "item_id", itemID, "user_id", userID, "error", err)
		return fmt.Errorf("delete item: %w", err)
	}

	s.log.Info("item deleted", "item_id", itemID, "user_id", userID)
	return nil
}

// authorize loads the item and checks ownership. Absence and ownership
// mismatch are indistinguishable to the caller.
func (s *Service) authorize(ctx context.Context, userID, itemID string) (Item, error) {
	item, err := s.repo.Get(ctx, itemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Item{}, ErrNotFound
		}
		s.log.Error("failed to load item", "item_id", itemID, "error", err)
		return Item{}, fmt.Errorf("get item: %w", err)
	}
	if item.UserID != userID {
		return Item{}, ErrNotFound
	}
	return item, nil
}
