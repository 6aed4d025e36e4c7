// Package predictor is the client for the remote sales prediction endpoint.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"retailcast/internal/forecast"
	"retailcast/internal/logging"

	"github.com/google/uuid"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 1 << 20

// Client posts prediction requests to a fixed endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout sets the per-request timeout. The HTTP client is copied first,
// so a client passed to WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			return
		}
		hc := *c.client
		hc.Timeout = d
		c.client = &hc
	}
}

// NewClient creates a client for endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string { return c.endpoint }

// Predict sends one request and returns the predicted sales quantity.
// Failures are *DetailError, *TransportError or wrap ErrMalformed.
func (c *Client) Predict(ctx context.Context, req forecast.Request) (float64, error) {
	requestID := uuid.NewString()
	log := logging.Get(logging.CategoryAPI).With("request_id", requestID)

	body, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	log.Debug("POST %s %s", c.endpoint, body)
	start := time.Now()

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.Warn("no response after %v: %v", time.Since(start), err)
		return 0, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Warn("reading body failed: %v", err)
		return 0, &TransportError{Err: err}
	}
	log.Debug("status %d in %v: %s", resp.StatusCode, time.Since(start), data)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, decodeFailure(resp.StatusCode, data)
	}

	var result predictResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if result.PredictedSales == nil {
		return 0, fmt.Errorf("%w: missing predicted_sales", ErrMalformed)
	}

	log.Info("%s on %s -> %.4f", req.Category, req.Date, *result.PredictedSales)
	return *result.PredictedSales, nil
}

// decodeFailure turns an error body into a DetailError. FastAPI sends
// "detail" as a string for HTTPException and as a list of
// {"loc", "msg", "type"} objects for request validation errors.
func decodeFailure(status int, data []byte) error {
	var body errorResponse
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		return fmt.Errorf("%w: status %d", ErrMalformed, status)
	}

	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err == nil {
		if detail == "" {
			return fmt.Errorf("%w: status %d with empty detail", ErrMalformed, status)
		}
		return &DetailError{StatusCode: status, Detail: detail}
	}

	var items []validationItem
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return &DetailError{StatusCode: status, Detail: strings.Join(msgs, "; ")}
		}
	}

	return fmt.Errorf("%w: status %d with unusable detail", ErrMalformed, status)
}

// =============================================================================
// WIRE TYPES
// =============================================================================

type predictResponse struct {
	PredictedSales *float64 `json:"predicted_sales"`
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Msg string `json:"msg"`
}
