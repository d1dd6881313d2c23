package vault

import "time"

type ItemResponse struct {
	ID         string    `json:"id" doc:"Item identifier"`
	Title      string    `json:"title" example:"GitHub" doc:"Human readable label"`
	Username   string    `json:"username" example:"octocat" doc:"Login name for the credential"`
	Ciphertext string    `json:"ciphertext" doc:"Base64 encrypted secret, opaque to the server"`
	Nonce      string    `json:"nonce" doc:"Base64 nonce paired with the ciphertext"`
	URL        string    `json:"url,omitempty" example:"https://github.com"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ListInput struct{}

type ListOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Success bool           `json:"success"`
	Data    []ItemResponse `json:"data"`
}

type CreateInput struct {
	Body CreateRequest
}

// Fields are schema-optional; the service rejects blank required fields
// with a 400 rather than a schema 422.
type CreateRequest struct {
	Title      string `json:"title,omitempty" example:"GitHub"`
	Username   string `json:"username,omitempty" example:"octocat"`
	Ciphertext string `json:"ciphertext,omitempty" doc:"Base64 encrypted secret"`
	Nonce      string `json:"nonce,omitempty" doc:"Base64 nonce paired with the ciphertext"`
	URL        string `json:"url,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type ItemOutput struct {
	Body ItemEnvelope
}

type ItemEnvelope struct {
	Success bool         `json:"success"`
	Data    ItemResponse `json:"data"`
}

type UpdateInput struct {
	ID   string `path:"id" doc:"Item identifier"`
	Body UpdateRequest
}

type UpdateRequest struct {
	Title      *string `json:"title,omitempty" doc:"New label, omit to keep"`
	Username   *string `json:"username,omitempty" doc:"New login name, omit to keep"`
	Ciphertext *string `json:"ciphertext,omitempty" doc:"New encrypted secret, requires nonce"`
	Nonce      *string `json:"nonce,omitempty" doc:"New nonce, requires ciphertext"`
	URL        *string `json:"url,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type DeleteInput struct {
	ID string `path:"id" doc:"Item identifier"`
}

type DeleteOutput struct {
	Body DeleteResponse
}

type DeleteResponse struct {
	Success bool     `json:"success"`
	Data    struct{} `json:"data"`
}
