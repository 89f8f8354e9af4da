package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/apperrors"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/logger"
)

// TokenSource yields the bearer token for outgoing requests, or "" when no
// session is active.
type TokenSource interface {
	Token() string
}

// Client wraps all HTTP calls to the remote backend. It attaches the bearer
// token when present, never retries, and surfaces backend error payloads
// unchanged to the caller.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient creates a backend client. tokens may be nil for unauthenticated use.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// do executes one request. body is JSON-encoded when non-nil; a 2xx response
// is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.decorate(req)

	return c.execute(req, out)
}

// decorate attaches the standard outgoing headers
func (c *Client) decorate(req *http.Request) {
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// execute sends the request and maps the response into the error taxonomy
func (c *Client) execute(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn().Err(err).Str("method", req.Method).Str("path", req.URL.Path).
			Msg("request failed before a response arrived")
		return apperrors.NewCustomError(apperrors.ErrTransport, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrTransport, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return backendError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// backendError maps a non-2xx response onto the error taxonomy. 401 is
// deliberately not auto-handled here: no forced logout, no redirect. The
// caller decides what an expired session means for its screen.
func backendError(status int, raw []byte) error {
	sentinel := apperrors.ErrBackendRejected
	switch {
	case status == http.StatusUnauthorized:
		sentinel = apperrors.ErrUnauthorized
	case status >= 500:
		sentinel = apperrors.ErrServerFailure
	}

	message := string(bytes.TrimSpace(raw))
	code := ""
	var envelope dto.ErrorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		message = envelope.Error.Message
		code = envelope.Error.Code
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return apperrors.NewCustomError(sentinel, message).WithStatus(status).WithCode(code)
}

// IsUnauthorized reports whether err is a 401 from the backend
func IsUnauthorized(err error) bool {
	return errors.Is(err, apperrors.ErrUnauthorized)
}
