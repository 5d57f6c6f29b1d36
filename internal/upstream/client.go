// Package upstream forwards validated contract calls to the platform backend.
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/little-samo/samo-api/pkg/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// MaxResponseBytes caps backend response bodies.
const MaxResponseBytes = 16 << 20

// ForwardedHeaders are copied from the caller to the backend.
var ForwardedHeaders = []string{
	"Authorization",
	"X-API-Key",
	"Accept-Language",
	"User-Agent",
	"X-Forwarded-For",
}

// RelayedHeaders are copied from the backend response to the caller.
var RelayedHeaders = []string{
	"Content-Type",
	"Cache-Control",
	"Retry-After",
	"X-RateLimit-Limit",
	"X-RateLimit-Remaining",
	"X-RateLimit-Reset",
}

var tracer = otel.Tracer("samo-api/upstream")

// UserIDHeader carries the verified caller to the backend. Callers can
// never set it themselves since it is not in ForwardedHeaders.
const UserIDHeader = "X-Samo-User-Id"

// Call is one canonical backend request. Path is already escaped.
type Call struct {
	Operation string
	Method    string
	Path      string
	Query     url.Values
	Body      []byte
	Header    http.Header
	RequestID string

	// UserID is the caller verified by the gateway, 0 when unknown.
	UserID models.UserID
}

// Response is a backend reply read in full.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Error reports a backend that could not be reached or did not answer in
// time. Status is the gateway status to answer with.
type Error struct {
	Status    int
	Operation string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Operation, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Client talks to the backend at a fixed base URL.
type Client struct {
	base   *url.URL
	client *http.Client
}

// NewClient returns a client for baseURL. A zero timeout means no timeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("upstream url %q: scheme must be http or https", baseURL)
	}
	return &Client{
		base:   u,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string { return c.base.String() }

// Forward sends call and reads the whole response. Any status the backend
// answers with is returned as a Response; only transport failures become
// an *Error.
func (c *Client) Forward(ctx context.Context, call Call) (*Response, error) {
	ctx, span := tracer.Start(ctx, "upstream "+call.Operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", call.Method),
			attribute.String("url.path", call.Path),
			attribute.String("samo.operation", call.Operation),
		),
	)
	defer span.End()

	target := *c.base
	target.RawPath = c.base.EscapedPath() + call.Path
	path, err := url.PathUnescape(target.RawPath)
	if err != nil {
		return nil, fmt.Errorf("upstream path %q: %w", call.Path, err)
	}
	target.Path = path
	if len(call.Query) > 0 {
		target.RawQuery = call.Query.Encode()
	}

	var body io.Reader
	if call.Body != nil {
		body = bytes.NewReader(call.Body)
	}
	req, err := http.NewRequestWithContext(ctx, call.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}

	for _, h := range ForwardedHeaders {
		if v := call.Header.Get(h); v != "" {
			req.Header.Set(h, v)
		}
	}
	if call.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if call.UserID != 0 {
		req.Header.Set(UserIDHeader, call.UserID.String())
	}
	requestID := call.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-Id", requestID)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		uerr := &Error{Status: statusFor(ctx, err), Operation: call.Operation, Err: err}
		log.Warn().Err(err).
			Str("operation", call.Operation).
			Str("request_id", requestID).
			Int("status", uerr.Status).
			Msg("Backend request failed")
		return nil, uerr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		span.RecordError(err)
		return nil, &Error{Status: statusFor(ctx, err), Operation: call.Operation, Err: err}
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 500 {
		span.SetStatus(codes.Error, resp.Status)
	}
	log.Debug().
		Str("operation", call.Operation).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Backend responded")

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// statusFor maps a transport error to 504 for timeouts and 502 otherwise.
func statusFor(ctx context.Context, err error) int {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}
