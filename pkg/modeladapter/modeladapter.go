package modeladapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/germanamz/analyst/pkg/modeladapter/usage"
)

// Completer sends one Request to a model and blocks until the full Response
// arrives or the call fails.
type Completer interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

// UsageReporter exposes the token usage a completer has recorded.
// Completers that embed ModelAdapter implement it automatically.
type UsageReporter interface {
	UsageTracker() *usage.Tracker
}

// Auth holds the API key and the header that carries it.
type Auth struct {
	Key    string // API key value.
	Header string // Header name, e.g. "x-goog-api-key". No header is sent when empty.
}

// ModelAdapter holds shared state for provider implementations. Embed it in
// concrete provider structs to get HTTP helpers, auth, and usage tracking.
type ModelAdapter struct {
	Name    string        // Default model identifier (e.g. "gemini-2.5-pro").
	BaseURL string        // API base URL (no trailing slash).
	Auth    Auth          // Authentication settings.
	Client  *http.Client  // HTTP client; falls back to http.DefaultClient.
	Usage   usage.Tracker // Token usage tracker.
}

// UsageTracker returns the adapter's token usage tracker.
func (a *ModelAdapter) UsageTracker() *usage.Tracker { return &a.Usage }

// httpClient returns the configured client or http.DefaultClient, which has
// no timeout. Callers bound the call through ctx.
func (a *ModelAdapter) httpClient() *http.Client {
	if a.Client != nil {
		return a.Client
	}

	return http.DefaultClient
}

// NewRequest builds an *http.Request with the base URL and auth already
// applied.
func (a *ModelAdapter) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+path, body)
	if err != nil {
		return nil, err
	}

	if a.Auth.Key != "" && a.Auth.Header != "" {
		req.Header.Set(a.Auth.Header, a.Auth.Key)
	}

	return req, nil
}

// Do sends the request using the configured HTTP client.
func (a *ModelAdapter) Do(req *http.Request) (*http.Response, error) {
	return a.httpClient().Do(req) //nolint:gosec // URL is built from trusted BaseURL config, not user input.
}

// PostJSON marshals payload as JSON, sends a POST to the given path,
// checks for a 2xx status, and unmarshals the response body into dest.
// A 429 yields *RateLimitError and any other non-2xx status yields *APIError.
// If dest is nil the response body is discarded after the status check.
func (a *ModelAdapter) PostJSON(ctx context.Context, path string, payload any, dest any) error {
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
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
