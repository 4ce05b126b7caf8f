package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"robomart/internal/domain"
)

// Client talks to the remote catalog service. It performs no retries and no
// caching; every call is a fresh round trip and the backend's response is the
// authoritative state.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// List fetches the full catalog. The backend has no pagination or filter
// parameters; all filtering happens client-side.
func (c *Client) List(ctx context.Context) ([]domain.Product, error) {
	const op = "list"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/products", nil)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	env, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := json.Unmarshal(env.Data, &products); err != nil {
		return nil, &RemoteError{Op: op, Message: "catalog service sent an unreadable product list"}
	}
	return products, nil
}

// Create validates the draft locally, then persists a new product. The
// backend assigns the id.
func (c *Client) Create(ctx context.Context, d domain.Draft) (domain.Product, error) {
	return c.submit(ctx, "create", http.MethodPost, c.BaseURL+"/products", d)
}

// Update replaces the addressed product's fields with the draft's.
func (c *Client) Update(ctx context.Context, id string, d domain.Draft) (domain.Product, error) {
	return c.submit(ctx, "update", http.MethodPut, c.BaseURL+"/products/"+id, d)
}

// Remove deletes the addressed product.
func (c *Client) Remove(ctx context.Context, id string) error {
	const op = "delete"
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+"/products/"+id, nil)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	_, err = c.do(op, req)
	return err
}

func (c *Client) submit(ctx context.Context, op, method, url string, d domain.Draft) (domain.Product, error) {
	if verr := d.Validate(); verr != nil {
		return domain.Product{}, verr
	}
	// An encode failure is local; it is neither a transport error nor a
	// backend rejection.
	body, contentType, err := encodeSubmission(d)
	if err != nil {
		return domain.Product{}, fmt.Errorf("encode %s submission: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return domain.Product{}, &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	env, err := c.do(op, req)
	if err != nil {
		return domain.Product{}, err
	}
	var p domain.Product
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return domain.Product{}, &RemoteError{Op: op, Message: "catalog service sent an unreadable product"}
		}
	}
	return p, nil
}

func (c *Client) do(op string, req *http.Request) (envelope, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return envelope{}, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, &NetworkError{Op: op, Err: err}
	}
	// Failure bodies may not be valid JSON; keep the status-based error then.
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return envelope{}, &RemoteError{Op: op, Status: resp.StatusCode, Message: env.Message}
	}
	return env, nil
}
