package osmapi

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/m3th0s/osmlib-base/pkg/monitoring"
	"github.com/m3th0s/osmlib-base/pkg/tracing"
)

// get issues a single GET for the relative path. Connection-level failures
// come back as KindTransport; status classification is the caller's job.
func (c *Client) get(ctx context.Context, op, path string) (*http.Response, error) {
	ctx, span := tracing.StartSpan(ctx, "osmapi."+op)
	defer span.End()
	span.SetAttributes(
		attribute.String(tracing.AttrAPIOperation, op),
		attribute.String(tracing.AttrAPIPath, path),
	)

	waitStart := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rate limiter wait aborted")
		return nil, &Error{Kind: KindTransport, Op: op, Message: "rate limiter wait", Err: err}
	}
	if wait := time.Since(waitStart); wait > 100*time.Millisecond {
		span.SetAttributes(attribute.Int64(tracing.AttrRateLimitWaitMs, wait.Milliseconds()))
		monitoring.RecordRateLimitWait(op, wait)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: op, Message: "build request", Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		monitoring.RecordAPIRequest(op, "transport_error", duration)
		return nil, &Error{Kind: KindTransport, Op: op, Message: "request failed", Err: err}
	}

	span.SetAttributes(attribute.Int(tracing.AttrHTTPStatusCode, resp.StatusCode))
	monitoring.RecordAPIRequest(op, strconv.Itoa(resp.StatusCode), duration)

	c.logger.Debug("api request",
		"op", op,
		"path", path,
		"status", resp.StatusCode,
		"duration", duration)

	return resp, nil
}

// fetch issues a GET and classifies the status, returning the body only
// on 200. Non-200 bodies are drained and closed here.
func (c *Client) fetch(ctx context.Context, op, path string) (io.ReadCloser, error) {
	resp, err := c.get(ctx, op, path)
	if err != nil {
		return nil, err
	}

	if kind, ok := classifyStatus(resp.StatusCode); !ok {
		drainAndClose(resp.Body)
		return nil, &Error{
			Kind:       kind,
			StatusCode: resp.StatusCode,
			Op:         op,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	return resp.Body, nil
}

// drainAndClose consumes the remaining body so the connection can be reused.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
