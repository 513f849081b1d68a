package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/config"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

const maxResponseBytes = 8 << 20

// Observer receives one sample per backend round trip.
type Observer interface {
	ObserveBackendCall(endpoint, outcome string, duration time.Duration)
}

// Client talks to the ferry backend REST API. Every call carries the
// caller's bearer token when one is given.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *zap.Logger
	observer Observer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithObserver attaches a metrics observer.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient builds a client for cfg.BaseURL.
func NewClient(cfg config.BackendConfig, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	// endpoint is the route template, used as the metrics label.
	endpoint string
	method   string
	path     string
	token    string
	query    url.Values
	body     any
}

func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	start := time.Now()
	body, err := c.roundTrip(ctx, req)
	outcome := "ok"
	if err != nil {
		var de *apperrors.DomainError
		if errors.As(err, &de) {
			outcome = strings.ToLower(de.Code)
		} else {
			outcome = "error"
		}
	}
	if c.observer != nil {
		c.observer.ObserveBackendCall(req.endpoint, outcome, time.Since(start))
	}
	c.logger.Debug("backend call",
		zap.String("endpoint", req.endpoint),
		zap.String("path", req.path),
		zap.String("outcome", outcome),
		zap.Duration("latency", time.Since(start)))
	return body, err
}

func (c *Client) roundTrip(ctx context.Context, req request) ([]byte, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var payload io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Errorf("encode %s: %w", req.endpoint, err))
		}
		payload = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, payload)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("build %s: %w", req.endpoint, err))
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewUnreachable(err, map[string]any{"endpoint": req.endpoint})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperrors.NewUnreachable(fmt.Errorf("read body: %w", err), map[string]any{"endpoint": req.endpoint})
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, apperrors.NewUnauthorized("session expired")
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.NewNotFound(req.endpoint, map[string]any{"path": req.path})
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		if msg := errorMessage(body); msg != "" {
			return nil, apperrors.NewRejected(msg)
		}
		fallthrough
	case resp.StatusCode >= http.StatusMultipleChoices:
		return nil, apperrors.NewUnreachable(
			fmt.Errorf("unexpected status %d", resp.StatusCode),
			map[string]any{"endpoint": req.endpoint, "status": resp.StatusCode},
		)
	}
	return body, nil
}

// errorMessage pulls the failure text out of a backend body. The backend is
// inconsistent about the key's case.
func errorMessage(body []byte) string {
	var msg struct {
		Upper   string `json:"Error"`
		Lower   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &msg); err != nil {
		return ""
	}
	switch {
	case msg.Upper != "":
		return msg.Upper
	case msg.Lower != "":
		return msg.Lower
	default:
		return msg.Message
	}
}

// envelope is the {Status, Result, Error} wrapper of the admin endpoints.
// Keys are matched exactly: records carry a lowercase "status" of their own.
type envelope struct {
	status *bool
	result json.RawMessage
	err    string
}

func parseEnvelope(body []byte) (envelope, error) {
	var env envelope
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return env, err
	}
	if raw, ok := obj["Status"]; ok {
		var status bool
		if err := json.Unmarshal(raw, &status); err == nil {
			env.status = &status
		}
	}
	env.result = obj["Result"]
	if raw, ok := obj["Error"]; ok {
		_ = json.Unmarshal(raw, &env.err)
	}
	return env, nil
}

func (e envelope) failed() bool {
	return e.status != nil && !*e.status
}

// decodeResult unwraps an envelope into out. Bodies without a Status flag
// count as success.
func decodeResult(endpoint string, body []byte, out any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil
	}
	env, err := parseEnvelope(body)
	if err != nil {
		return decodeError(endpoint, err)
	}
	if env.failed() {
		return apperrors.NewRejected(env.err)
	}
	if out == nil || isNull(env.result) {
		return nil
	}
	if err := json.Unmarshal(env.result, out); err != nil {
		return decodeError(endpoint, err)
	}
	return nil
}

// firstRecord decodes a single record that may arrive bare, inside Result,
// or as a one-element array.
func firstRecord[T any](endpoint string, body []byte) (T, error) {
	var zero T
	payload := bytes.TrimSpace(body)
	if len(payload) > 0 && payload[0] == '{' {
		env, err := parseEnvelope(payload)
		if err != nil {
			return zero, decodeError(endpoint, err)
		}
		if env.failed() {
			return zero, apperrors.NewRejected(env.err)
		}
		if env.status != nil || !isNull(env.result) {
			payload = bytes.TrimSpace(env.result)
		}
	}
	if isNull(payload) {
		return zero, apperrors.NewNotFound(endpoint, nil)
	}
	if payload[0] == '[' {
		var items []T
		if err := json.Unmarshal(payload, &items); err != nil {
			return zero, decodeError(endpoint, err)
		}
		if len(items) == 0 {
			return zero, apperrors.NewNotFound(endpoint, nil)
		}
		return items[0], nil
	}
	var one T
	if err := json.Unmarshal(payload, &one); err != nil {
		return zero, decodeError(endpoint, err)
	}
	return one, nil
}

// decodeList accepts a bare JSON array or an object holding the array under
// one of keys or Result.
func decodeList[T any](endpoint string, body []byte, keys ...string) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []T{}, nil
	}
	items := []T{}
	if body[0] == '[' {
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, decodeError(endpoint, err)
		}
		return items, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, decodeError(endpoint, err)
	}
	if raw, ok := obj["Status"]; ok {
		var status bool
		if err := json.Unmarshal(raw, &status); err == nil && !status {
			return nil, apperrors.NewRejected(errorMessage(body))
		}
	}
	for _, key := range append(keys, "Result") {
		raw, ok := obj[key]
		if !ok || isNull(raw) {
			continue
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, decodeError(endpoint, err)
		}
		return items, nil
	}
	return items, nil
}

func decodeError(endpoint string, err error) error {
	return apperrors.NewUnreachable(fmt.Errorf("decode %s: %w", endpoint, err), map[string]any{"endpoint": endpoint})
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
