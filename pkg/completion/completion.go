// Package completion provides the shared HTTP plumbing for chat-completion
// endpoints: bearer auth, request building, and JSON POST with typed error
// results for rate-limit and HTTP-level failures.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"jqlgen/pkg/convo"
)

// Completer sends a conversation to a completion endpoint and returns the
// trimmed text of the first choice.
type Completer interface {
	Complete(ctx context.Context, c *convo.Conversation) (string, error)
}

// Auth holds authentication settings for a completion endpoint.
type Auth struct {
	Key    string // API key value.
	Header string // Header name (default: "Authorization").
	Scheme string // Scheme prefix (default: "Bearer" when Header is "Authorization").
}

// Adapter holds shared state for completion client implementations. Embed it
// in concrete client structs to get HTTP helpers, auth, and custom headers.
// Concrete types should define their own Complete method to shadow the
// default stub.
type Adapter struct {
	Name        string            // Model identifier sent with each request.
	Temperature float64           // Sampling temperature; zero means provider default.
	MaxTokens   int               // Maximum tokens in the response.
	Auth        Auth              // Authentication settings.
	BaseURL     string            // API base URL (no trailing slash).
	Client      *http.Client      // HTTP client; falls back to a default client.
	Headers     map[string]string // Extra headers applied to every request.

	clientOnce    sync.Once
	defaultClient *http.Client
}

// New creates an Adapter with the given settings.
// A nil client falls back to a default client at call time.
func New(baseURL string, auth Auth, client *http.Client) Adapter {
	return Adapter{
		Auth:    auth,
		BaseURL: baseURL,
		Client:  client,
	}
}

// Complete is a stub that returns an error. Concrete clients that embed
// Adapter should define their own Complete method to shadow this one.
func (a *Adapter) Complete(_ context.Context, _ *convo.Conversation) (string, error) {
	return "", errors.New("completion: Complete not implemented")
}

// httpClient returns the configured client or a cached default client with a
// 10-minute guard timeout. The original tool configured no timeout at all;
// the guard keeps a hung endpoint from blocking the process forever.
func (a *Adapter) httpClient() *http.Client {
	if a.Client != nil {
		return a.Client
	}

	a.clientOnce.Do(func() {
		a.defaultClient = &http.Client{Timeout: 10 * time.Minute}
	})

	return a.defaultClient
}

// NewRequest builds an *http.Request with the base URL, auth, and custom
// headers already applied.
func (a *Adapter) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := a.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	// Apply auth.
	if a.Auth.Key != "" {
		header := a.Auth.Header
		if header == "" {
			header = "Authorization"
		}

		value := a.Auth.Key
		if header == "Authorization" {
			scheme := a.Auth.Scheme
			if scheme == "" {
				scheme = "Bearer"
			}

			value = scheme + " " + value
		} else if a.Auth.Scheme != "" {
			value = a.Auth.Scheme + " " + value
		}

		req.Header.Set(header, value)
	}

	// Apply custom headers.
	for k, v := range a.Headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// Do sends the request using the configured HTTP client.
func (a *Adapter) Do(req *http.Request) (*http.Response, error) {
	return a.httpClient().Do(req) //nolint:gosec // URL is built from trusted BaseURL config, not user input.
}

// PostJSON marshals payload as JSON, sends a POST to the given path, checks
// for a 2xx status, and unmarshals the response body into dest. A 429 status
// is returned as *RateLimitError; any other non-2xx status as *HTTPError.
// If dest is nil the response body is discarded after the status check.
func (a *Adapter) PostJSON(ctx context.Context, path string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := a.NewRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		respBody, _ := io.ReadAll(resp.Body)
		return &RateLimitError{
			RetryAfter: ParseRetryAfter(resp.Header.Get("Retry-After")),
			Body:       string(respBody),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return &HTTPError{Status: resp.StatusCode, Body: string(respBody)}
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
