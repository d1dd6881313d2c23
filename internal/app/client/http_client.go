package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"passvault/internal/app/client/config"
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Passvault-Client/1.0",
	}
}

// SetToken sets the bearer token attached to subsequent requests.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// Health checks that the server is reachable.
func (h *httpClient) Health(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// Signup registers a new account on the server.
func (h *httpClient) Signup(ctx context.Context, email, password string) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/signup", credentialsRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// Login exchanges credentials for a bearer token and remembers it.
func (h *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/login", credentialsRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	h.SetToken(loginResp.Token)
	return loginResp.Token, nil
}

// ListItems fetches the caller's vault items.
func (h *httpClient) ListItems(ctx context.Context) ([]Item, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/vault", nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Success bool   `json:"success"`
		Data    []Item `json:"data"`
	}
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Data, nil
}

// CreateItem stores a new item; the envelope must already be encrypted.
func (h *httpClient) CreateItem(ctx context.Context, req createItemRequest) (Item, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/vault", req)
	if err != nil {
		return Item{}, err
	}

	var createResp struct {
		Success bool `json:"success"`
		Data    Item `json:"data"`
	}
	if err := h.parseResponse(resp, &createResp); err != nil {
		return Item{}, err
	}

	return createResp.Data, nil
}

// UpdateItem applies a partial update to an owned item.
func (h *httpClient) UpdateItem(ctx context.Context, id string, req updateItemRequest) (Item, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, "/api/vault/"+id, req)
	if err != nil {
		return Item{}, err
	}

	var updateResp struct {
		Success bool `json:"success"`
		Data    Item `json:"data"`
	}
	if err := h.parseResponse(resp, &updateResp); err != nil {
		return Item{}, err
	}

	return updateResp.Data, nil
}

// DeleteItem removes an owned item from the server.
func (h *httpClient) DeleteItem(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/vault/"+id, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("response received", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Message != "" {
				return fmt.Errorf("server error: %s", errResp.Message)
			}
			if errResp.Detail != "" {
				return fmt.Errorf("server error: %s", errResp.Detail)
			}
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}
