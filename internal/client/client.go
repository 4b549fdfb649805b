package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/totokartonio/wishlist/internal/model"
)

// APIError is a non-2xx response from the wishlist API.
type APIError struct {
	Status   int
	Message  string
	Required []string
}

func (e *APIError) Error() string {
	if len(e.Required) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Required, ", "))
	}
	return e.Message
}

// Client talks to the wishlist HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// do sends a JSON request and decodes the response into out (when non-nil).
// Non-2xx responses are returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Error    string   `json:"error"`
			Required []string `json:"required"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
			apiErr.Required = envelope.Required
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// Health checks the server's health endpoint.
func (c *Client) Health(ctx context.Context) (string, error) {
	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &body); err != nil {
		return "", err
	}
	return body.Status, nil
}

// List fetches all items, newest first.
func (c *Client) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single item.
func (c *Client) Get(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	if err := c.do(ctx, http.MethodGet, "/api/items/"+id, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create adds a new item.
func (c *Client) Create(ctx context.Context, fields model.NewItem) (*model.Item, error) {
	var item model.Item
	if err := c.do(ctx, http.MethodPost, "/api/items", fields, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies a partial update to an item.
func (c *Client) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	var item model.Item
	if err := c.do(ctx, http.MethodPatch, "/api/items/"+id, patch, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an item.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/items/"+id, nil, nil)
}

// ChangeStatus updates only an item's status.
func (c *Client) ChangeStatus(ctx context.Context, id, status string) (*model.Item, error) {
	return c.Update(ctx, id, model.ItemPatch{Status: &status})
}
