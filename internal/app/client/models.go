package client

import "time"

// Item mirrors the server's vault item representation. The secret stays in
// its encrypted envelope until the user asks to reveal it.
type Item struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Username   string    `json:"username"`
	Ciphertext string    `json:"ciphertext"`
	Nonce      string    `json:"nonce"`
	URL        string    `json:"url,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type createItemRequest struct {
	Title      string `json:"title"`
	Username   string `json:"username"`
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
	URL        string `json:"url,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type updateItemRequest struct {
	Title      *string `json:"title,omitempty"`
	Username   *string `json:"username,omitempty"`
	Ciphertext *string `json:"ciphertext,omitempty"`
	Nonce      *string `json:"nonce,omitempty"`
	URL        *string `json:"url,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ItemUpdate carries the optional fields of an item edit. Nil means keep the
// stored value; Password set means re-encrypt and replace the envelope.
type ItemUpdate struct {
	Title    *string
	Username *string
	Password *string
	URL      *string
	Notes    *string
}
