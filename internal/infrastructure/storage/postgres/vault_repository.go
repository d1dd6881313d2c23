package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"passvault/internal/domain/vault"
)

type VaultRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewVaultRepository(pool *pgxpool.Pool, log *slog.Logger) *VaultRepository {
	return &VaultRepository{
		pool: pool,
		log:  log.With("component", "vault_repository"),
	}
}

const itemColumns = `id, user_id, title, username, ciphertext, nonce, url, notes, created_at, updated_at`

func (r *VaultRepository) List(ctx context.Context, userID string) ([]vault.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemColumns+` FROM vault_items WHERE user_id = $1`, userID)
	if err != nil {
		r.log.Error("failed to list items", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]vault.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *VaultRepository) Get(ctx context.Context, itemID string) (vault.Item, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM vault_items WHERE id = $1`, itemID)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vault.Item{}, vault.ErrNotFound
		}
		r.log.Error("failed to get item", "item_id", itemID, "error", err)
		return vault.Item{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (r *VaultRepository) Create(ctx context.Context, item *vault.Item) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO vault_items (id, user_id, title, username, ciphertext, nonce, url, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		item.ID, item.UserID, item.Title, item.Username,
		item.Ciphertext, item.Nonce, item.URL, item.Notes,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create item", "user_id", item.UserID, "error", err)
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *VaultRepository) Update(ctx context.Context, item *vault.Item) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE vault_items
		 SET title = $1, username = $2, ciphertext = $3, nonce = $4,
		     url = $5, notes = $6, updated_at = NOW()
		 WHERE id = $7
		 RETURNING updated_at`,
		item.Title, item.Username, item.Ciphertext, item.Nonce,
		item.URL, item.Notes, item.ID,
	).Scan(&item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vault.ErrNotFound
		}
		r.log.Error("failed to update item", "item_id", item.ID, "error", err)
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (r *VaultRepository) Delete(ctx context.Context, itemID string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM vault_items WHERE id = $1`, itemID)
	if err != nil {
		r.log.Error("failed to delete item", "item_id", itemID, "error", err)
		return fmt.Errorf("delete item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return vault.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (vault.Item, error) {
	var item vault.Item
	err := row.Scan(
		&item.ID, &item.UserID, &item.Title, &item.Username,
		&item.Ciphertext, &item.Nonce, &item.URL, &item.Notes,
		&item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}
