package milvus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// HTTPTransport is the default Transport. It posts JSON to
// {Endpoint}{BasePath}/{path}, authenticates with a bearer token, rate limits
// outgoing requests when configured and retries transient failures.
type HTTPTransport struct {
	baseURL      string
	token        string
	httpClient   *http.Client
	limiter      *rate.Limiter
	maxRetries   int
	retryBackoff time.Duration
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport builds the default transport from cfg. The underlying
// http.Client is instrumented with otelhttp so trace context is propagated
// to the server.
func NewHTTPTransport(cfg *Config) (*HTTPTransport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	basePath := cfg.BasePath
	if basePath == "" {
		basePath = DefaultBasePath
	}

	t := &HTTPTransport{
		baseURL:      strings.TrimRight(cfg.Endpoint, "/") + "/" + strings.Trim(basePath, "/"),
		token:        cfg.bearerToken(),
		maxRetries:   cfg.MaxRetries,
		retryBackoff: cfg.RetryBackoff,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return t, nil
}

// Post sends payload and returns the raw response. Non-2xx responses are
// returned as responses, not errors, unless they are retryable and every
// attempt failed the same way.
func (t *HTTPTransport) Post(ctx context.Context, path string, payload Payload) (*Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &TransportError{Path: path, Attempts: 0, Err: fmt.Errorf("encode request: %w", err)}
	}

	url := t.baseURL + "/" + strings.TrimLeft(path, "/")
	backoff := t.retryBackoff

	var lastErr error
	var lastResp *Response
	attempts := 0
	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, &TransportError{Path: path, Attempts: attempts, Err: ctx.Err()}
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		if t.limiter != nil {
			if err := t.limiter.Wait(ctx); err != nil {
				return nil, &TransportError{Path: path, Attempts: attempts, Err: limiterErr(ctx, err)}
			}
		}

		attempts++
		resp, err := t.do(ctx, url, data)
		if err != nil {
			if ctx.Err() != nil {
				return nil, &TransportError{Path: path, Attempts: attempts, Err: ctx.Err()}
			}
			if isContextErr(err) {
				return nil, &TransportError{Path: path, Attempts: attempts, Err: err}
			}
			lastErr, lastResp = err, nil
			continue
		}
		if isRetryableStatus(resp.StatusCode) {
			lastErr, lastResp = nil, resp
			continue
		}
		return resp, nil
	}

	if lastResp != nil {
		return lastResp, nil
	}
	return nil, &TransportError{Path: path, Attempts: attempts, Err: lastErr}
}

func (t *HTTPTransport) do(ctx context.Context, url string, data []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// Close releases idle connections.
func (t *HTTPTransport) Close() error {
	t.httpClient.CloseIdleConnections()
	return nil
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// limiterErr keeps limiter failures matchable against the context errors.
// rate.Limiter.Wait refuses early when the next token would arrive after the
// deadline, with an error that does not wrap context.DeadlineExceeded.
func limiterErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if _, ok := ctx.Deadline(); ok {
		return fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
	}
	return err
}

// isContextErr reports whether err stems from a cancelled or expired context.
func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
