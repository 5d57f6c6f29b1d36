package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/little-samo/samo-api/internal/auth"
	"github.com/little-samo/samo-api/internal/config"
	"github.com/little-samo/samo-api/internal/upstream"
)

const testSecret = "router-secret"

type backendHit struct {
	method string
	path   string
	query  string
	auth   string
	body   string
}

type backendLog struct {
	mu   sync.Mutex
	hits []backendHit
}

func (l *backendLog) all() []backendHit {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]backendHit(nil), l.hits...)
}

func newTestServer(t *testing.T, mcpEnabled bool) (*httptest.Server, *backendLog) {
	t.Helper()
	seen := &backendLog{}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen.mu.Lock()
		seen.hits = append(seen.hits, backendHit{
			method: r.Method,
			path:   r.URL.EscapedPath(),
			query:  r.URL.RawQuery,
			auth:   r.Header.Get("Authorization"),
			body:   string(b),
		})
		seen.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(backend.Close)

	cfg := &config.Config{
		Version:  "test",
		Upstream: config.UpstreamConfig{URL: backend.URL, Timeout: 5 * time.Second},
		Auth: config.AuthConfig{
			JWTSecret:      testSecret,
			RequireAuth:    true,
			AllowedOrigins: []string{"*"},
		},
		MCP: config.MCPConfig{Enabled: mcpEnabled},
	}
	up, err := upstream.NewClient(cfg.Upstream.URL, cfg.Upstream.Timeout)
	require.NoError(t, err)

	chain := auth.NewProviderChain()
	chain.RegisterProvider(auth.NewBearerProvider(cfg.Auth.JWTSecret))
	chain.RegisterProvider(auth.NewAPIKeyProvider(cfg.Auth.APIKeys))

	h, err := NewRouter(cfg, up, chain)
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv, seen
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func send(t *testing.T, method, url, authz, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestRouter_Health(t *testing.T) {
	srv, _ := newTestServer(t, false)

	resp := send(t, http.MethodGet, srv.URL+"/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "healthy")

	resp = send(t, http.MethodGet, srv.URL+"/version", "", "")
	assert.Contains(t, readBody(t, resp), `"version":"test"`)
}

func TestRouter_RequiredAuth(t *testing.T) {
	srv, hits := newTestServer(t, false)

	resp := send(t, http.MethodGet, srv.URL+"/agents", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("WWW-Authenticate"))
	assert.Empty(t, hits.all())

	resp = send(t, http.MethodGet, srv.URL+"/agents", "Bearer not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, hits.all())
}

func TestRouter_ForwardsAuthorizedCall(t *testing.T) {
	srv, hits := newTestServer(t, false)
	authz := bearer(t)

	resp := send(t, http.MethodPost, srv.URL+"/agents", authz, `{"name":"Mimo","role":"guide","avatar":"Mimo"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, readBody(t, resp))

	require.Len(t, hits.all(), 1)
	hit := hits.all()[0]
	assert.Equal(t, http.MethodPost, hit.method)
	assert.Equal(t, "/agents", hit.path)
	assert.Equal(t, authz, hit.auth)
	assert.JSONEq(t, `{"name":"Mimo","role":"guide","avatar":"Mimo"}`, hit.body)
}

func TestRouter_ValidationFailure(t *testing.T) {
	srv, hits := newTestServer(t, false)

	resp := send(t, http.MethodGet, srv.URL+"/agents?limit=101", bearer(t), "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, `"error":"validation_failed"`)
	assert.Contains(t, body, `"path":"limit"`)
	assert.Empty(t, hits.all())
}

func TestRouter_PublicRouteSkipsAuth(t *testing.T) {
	srv, hits := newTestServer(t, false)

	resp := send(t, http.MethodGet, srv.URL+"/locations/snapshots/abc", "", "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, hits.all(), 1)
	assert.Equal(t, "/locations/snapshots/abc", hits.all()[0].path)
}

func TestRouter_OptionalRouteAllowsAnonymous(t *testing.T) {
	srv, hits := newTestServer(t, false)

	resp := send(t, http.MethodGet, srv.URL+"/locations/published", "", "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, hits.all(), 1)
	assert.Empty(t, hits.all()[0].auth)
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t, false)

	resp := send(t, http.MethodGet, srv.URL+"/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_MCPDisabled(t *testing.T) {
	srv, _ := newTestServer(t, false)

	resp := send(t, http.MethodPost, srv.URL+"/mcp", "", `{}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_MCPToolCall(t *testing.T) {
	srv, hits := newTestServer(t, true)
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{Name: "router-test", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: srv.URL + "/mcp", MaxRetries: -1}, nil)
	require.NoError(t, err)
	defer cs.Close()

	tools, err := cs.ListTools(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, tools.Tools, 5)

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "delete_location_scheduled_message",
		Arguments: map[string]any{"locationId": 8, "messageId": "sm-1"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	require.Len(t, hits.all(), 1)
	assert.Equal(t, http.MethodDelete, hits.all()[0].method)
	assert.Equal(t, "/locations/8/scheduled-messages/sm-1", hits.all()[0].path)
}
