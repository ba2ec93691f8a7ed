package deposit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transport accepts a prepared resource and returns the identifier the
// repository created for it. Implementations other than Client exist
// for dry runs and tests.
type Transport interface {
	Submit(ctx context.Context, res *Resource) (string, error)
}

// Client talks to the repository's HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL authenticating
// with apiKey.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

var _ Transport = (*Client)(nil)

// Submit posts the resource and returns the created identifier.
// Failures come back as *SubmitError; 5xx and 429 responses and
// network errors are marked retryable, other rejections are not.
func (c *Client) Submit(ctx context.Context, res *Resource) (string, error) {
	body, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("encoding resource: %w", err)
	}

	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+res.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("X-Request-Id", requestID)

	slog.Debug("submitting resource", "endpoint", res.endpoint(), "request_id", requestID, "metas", len(res.Metas))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &SubmitError{Message: err.Error(), Retryable: true}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &SubmitError{StatusCode: resp.StatusCode, Message: err.Error(), Retryable: true}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &SubmitError{
			StatusCode: resp.StatusCode,
			Message:    apiMessage(data),
			Retryable:  resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests,
		}
	}

	id := createdID(data)
	if id == "" {
		return "", &SubmitError{
			StatusCode: resp.StatusCode,
			Message:    "response carries no resource identifier",
		}
	}

	slog.Info("resource created", "id", id, "request_id", requestID)
	return id, nil
}

// createdID extracts the new resource identifier from a success body.
// The API wraps it as {"payload":{"id":...}}; a bare {"id":...} is
// accepted too.
func createdID(data []byte) string {
	var body struct {
		Payload struct {
			ID string `json:"id"`
		} `json:"payload"`
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Payload.ID != "" {
		return body.Payload.ID
	}
	return body.ID
}

// apiMessage pulls a human-readable message out of an error body,
// falling back to the raw body.
func apiMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	msg := strings.TrimSpace(string(data))
	if msg == "" {
		return "no response body"
	}
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
