package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxResponseBytes = 1 << 20

// HTTPSubmitter posts payloads as JSON and decodes `{success, message}`
// responses. Each call carries a fresh Idempotency-Key header.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
	headers  map[string]string
	newKey   func() string
}

// HTTPOption configures an HTTPSubmitter.
type HTTPOption func(*HTTPSubmitter)

// WithHTTPClient overrides the default client (10s timeout).
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSubmitter) {
		if client != nil {
			s.client = client
		}
	}
}

// WithHeader adds a static request header, e.g. an Authorization token.
func WithHeader(name, value string) HTTPOption {
	return func(s *HTTPSubmitter) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		s.headers[name] = value
	}
}

// WithIdempotencyKeys replaces the key generator. Mostly useful in tests.
func WithIdempotencyKeys(fn func() string) HTTPOption {
	return func(s *HTTPSubmitter) {
		if fn != nil {
			s.newKey = fn
		}
	}
}

// NewHTTPSubmitter validates endpoint and returns a submitter posting to it.
func NewHTTPSubmitter(endpoint string, opts ...HTTPOption) (*HTTPSubmitter, error) {
	endpoint = strings.TrimSpace(endpoint)
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("submission: parse endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("submission: endpoint %q must be http or https", endpoint)
	}

	s := &HTTPSubmitter{
		endpoint: parsed.String(),
		client:   &http.Client{Timeout: 10 * time.Second},
		headers:  make(map[string]string),
		newKey:   uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

type responseBody struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// Submit implements Submitter. A 2xx response without a body counts as
// success. Non-2xx responses that still carry a message are reported as a
// semantic failure; anything else is an error.
func (s *HTTPSubmitter) Submit(ctx context.Context, payload Payload) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("submission: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("submission: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", s.newKey())
	for name, value := range s.headers {
		req.Header.Set(name, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("submission: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Result{}, fmt.Errorf("submission: read response: %w", err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	decoded, decodeErr := decodeResponse(raw)

	if ok {
		if decodeErr != nil {
			return Result{}, fmt.Errorf("submission: decode response: %w", decodeErr)
		}
		success := true
		if decoded.Success != nil {
			success = *decoded.Success
		}
		return Result{Success: success, Message: decoded.Message}, nil
	}

	if decodeErr == nil && strings.TrimSpace(decoded.Message) != "" {
		return Result{Success: false, Message: decoded.Message}, nil
	}
	return Result{}, fmt.Errorf("submission: unexpected status %d", resp.StatusCode)
}

func decodeResponse(raw []byte) (responseBody, error) {
	var out responseBody
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return responseBody{}, err
	}
	return out, nil
}

var _ Submitter = (*HTTPSubmitter)(nil)

