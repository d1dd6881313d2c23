package vault

import "time"

// Item is one stored credential. Ciphertext and Nonce together form the
// encrypted-secret envelope produced by the cipher; the store never
// interprets them. Notes is genuine free text.
type Item struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Username   string    `json:"username"`
	Ciphertext string    `json:"ciphertext"`
	Nonce      string    `json:"nonce"`
	URL        string    `json:"url,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateInput carries the caller-supplied fields of a new item. The owner
// is never part of it; it is always taken from the verified token.
type CreateInput struct {
	Title      string
	Username   string
	Ciphertext string
	Nonce      string
	URL        string
	Notes      string
}

// UpdateInput is a partial update: nil fields keep their stored value.
type UpdateInput struct {
	Title      *string
	Username   *string
	Ciphertext *string
	Nonce      *string
	URL        *string
	Notes      *string
}
