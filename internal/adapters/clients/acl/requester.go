package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/httpclient"
)

// Header names used by the database service gateway.
const (
	headerAPIKey = "apikey"
	headerPrefer = "Prefer"
)

// PreferReturnRepresentation asks PostgREST to echo affected rows.
const PreferReturnRepresentation = "return=representation"

// RequestOption customizes a single outbound request.
type RequestOption func(*http.Request)

// WithPrefer sets the PostgREST Prefer header.
func WithPrefer(v string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(headerPrefer, v)
	}
}

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, gateway credentials, JSON marshaling, execution via
// httpclient.Client, response body cleanup, status code validation, error
// translation, and JSON decoding.
//
// Every request carries the project api key in the apikey header. The
// Authorization header carries the caller's verified bearer token when one
// is on the context, so row-level security sees the end user; otherwise it
// falls back to the api key, which the gateway treats as the anonymous role.
type Requester struct {
	client *httpclient.Client
	apiKey string
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, apiKey string, logger *slog.Logger) *Requester {
	return &Requester{client: client, apiKey: apiKey, logger: logger}
}

// Do executes an HTTP request against the configured base URL.
//
// It marshals reqBody to JSON (if non-nil), sends the request, validates the
// status code matches wantStatus, and decodes the response body into respBody
// (if non-nil). Pass nil for respBody when the body is not needed.
//
// On non-matching status codes, the response is passed to TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any, opts ...RequestOption) error {
	switch method {
	case http.MethodGet, http.MethodDelete:
		return r.withoutBody(ctx, method, path, wantStatus, respBody, opts)
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return r.withBody(ctx, method, path, wantStatus, reqBody, respBody, opts)
	default:
		return fmt.Errorf("unsupported HTTP method: %s", method)
	}
}

// CircuitBreakerState returns the circuit breaker state from the underlying
// HTTP client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) withoutBody(ctx context.Context, method, path string, wantStatus int, respBody any, opts []RequestOption) error {
	url := r.client.BaseURL() + path

	req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}

	return r.execute(req, wantStatus, respBody, opts)
}

func (r *Requester) withBody(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any, opts []RequestOption) error {
	url := r.client.BaseURL() + path

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return r.execute(req, wantStatus, respBody, opts)
}

// authorize sets the gateway credentials on req.
func (r *Requester) authorize(req *http.Request) {
	if r.apiKey != "" {
		req.Header.Set(headerAPIKey, r.apiKey)
	}

	bearer := r.apiKey
	if token, ok := httpclient.AccessToken(req.Context()); ok {
		bearer = token
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, wantStatus int, respBody any, opts []RequestOption) error {
	req.Header.Set("Accept", "application/json")
	r.authorize(req)
	for _, opt := range opts {
		opt(req)
	}

	resp, err := r.client.Do(req.Context(), req)
	if err != nil {
		// httpclient.Do returns both resp and err when a retryable status
		// (e.g. 5xx) is final. Translate that response into a domain error.
		if resp != nil {
			defer r.closeBody(req.Context(), resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}
	defer r.closeBody(req.Context(), resp)

	if resp.StatusCode != wantStatus {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(req.Context(), "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
			slog.Any("error", translateErr),
		)
		return translateErr
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
