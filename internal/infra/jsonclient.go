package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"shop-winback/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const maxErrorBodyBytes = 512

// JSONClient performs JSON requests against one upstream API. Every request first
// waits on the rate limiter when one is configured.
type JSONClient struct {
	http    *http.Client
	limiter *rate.Limiter
	headers http.Header
	logger  *slog.Logger
}

type JSONClientOption func(*JSONClient)

func WithRateLimit(perSecond float64, burst int) JSONClientOption {
	return func(c *JSONClient) {
		if perSecond <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func WithHeader(key, value string) JSONClientOption {
	return func(c *JSONClient) {
		c.headers.Set(key, value)
	}
}

func WithHTTPClient(hc *http.Client) JSONClientOption {
	return func(c *JSONClient) {
		c.http = hc
	}
}

func NewJSONClient(timeout time.Duration, logger *slog.Logger, opts ...JSONClientOption) *JSONClient {
	c := &JSONClient{
		http:    &http.Client{Timeout: timeout},
		headers: http.Header{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends body (when non-nil) as JSON and decodes a 2xx response into out (when
// non-nil). The response headers are returned on success.
func (c *JSONClient) Do(ctx context.Context, method, url string, body, out any) (http.Header, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, WrapGatewayErr(c.logger, KindInvalidRequest, 0, "failed to encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, WrapGatewayErr(c.logger, KindTransportFailure, 0, "rate limiter wait aborted", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, WrapGatewayErr(c.logger, KindInvalidRequest, 0, "failed to build request", err)
	}
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, WrapGatewayErr(c.logger, KindTransportFailure, 0, method+" request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, WrapGatewayErr(c.logger, KindUnexpectedStatus, resp.StatusCode,
			"unexpected response status",
			errs.Newf("%s %s: status %d: %s", method, req.URL.Path, resp.StatusCode, bytes.TrimSpace(snippet)),
		)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, WrapGatewayErr(c.logger, KindDecodeFailure, resp.StatusCode, "failed to decode response body", err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	return resp.Header, nil
}
