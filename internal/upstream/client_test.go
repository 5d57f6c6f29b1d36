package upstream_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/little-samo/samo-api/internal/upstream"
)

func TestForward_RelaysRequestAndResponse(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotAPIKey, gotRequestID, gotBody, gotCookie, gotUser string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotAPIKey = r.Header.Get("X-API-Key")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotCookie = r.Header.Get("Cookie")
		gotUser = r.Header.Get(upstream.UserIDHeader)
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer backend.Close()

	c, err := upstream.NewClient(backend.URL+"/api/", 5*time.Second)
	require.NoError(t, err)

	header := http.Header{}
	header.Set("Authorization", "Bearer tok")
	header.Set("X-API-Key", "key")
	header.Set("Cookie", "session=1")
	header.Set(upstream.UserIDHeader, "1")

	resp, err := c.Forward(context.Background(), upstream.Call{
		Operation: "locations.depositCredits",
		Method:    http.MethodPost,
		Path:      "/locations/5/deposit-credits",
		Query:     url.Values{"limit": {"10"}},
		Body:      []byte(`{"amount":10}`),
		Header:    header,
		RequestID: "req-1",
		UserID:    77,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	assert.Equal(t, "/api/locations/5/deposit-credits", gotPath)
	assert.Equal(t, "limit=10", gotQuery)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "key", gotAPIKey)
	assert.Equal(t, "req-1", gotRequestID)
	assert.Empty(t, gotCookie)
	assert.Equal(t, "77", gotUser)
	assert.Equal(t, `{"amount":10}`, gotBody)
}

func TestForward_EscapedPathSegment(t *testing.T) {
	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
	}))
	defer backend.Close()

	c, err := upstream.NewClient(backend.URL, time.Second)
	require.NoError(t, err)

	_, err = c.Forward(context.Background(), upstream.Call{
		Operation: "locations.snapshot",
		Method:    http.MethodGet,
		Path:      "/locations/snapshots/a%2Fb",
	})
	require.NoError(t, err)
	assert.Equal(t, "/locations/snapshots/a%2Fb", gotPath)
}

func TestForward_GeneratesRequestID(t *testing.T) {
	var gotRequestID string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
	}))
	defer backend.Close()

	c, err := upstream.NewClient(backend.URL, time.Second)
	require.NoError(t, err)

	_, err = c.Forward(context.Background(), upstream.Call{Operation: "items.list", Method: http.MethodGet, Path: "/items"})
	require.NoError(t, err)
	assert.Len(t, gotRequestID, 36)
}

func TestForward_BackendErrorStatusIsNotAnError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"nope"}`, http.StatusForbidden)
	}))
	defer backend.Close()

	c, err := upstream.NewClient(backend.URL, time.Second)
	require.NoError(t, err)

	resp, err := c.Forward(context.Background(), upstream.Call{Operation: "agents.list", Method: http.MethodGet, Path: "/agents"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestForward_Unreachable(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := backend.URL
	backend.Close()

	c, err := upstream.NewClient(addr, time.Second)
	require.NoError(t, err)

	_, err = c.Forward(context.Background(), upstream.Call{Operation: "agents.list", Method: http.MethodGet, Path: "/agents"})
	var uerr *upstream.Error
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, http.StatusBadGateway, uerr.Status)
	assert.Equal(t, "agents.list", uerr.Operation)
}

func TestForward_Timeout(t *testing.T) {
	release := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer backend.Close()
	defer close(release)

	c, err := upstream.NewClient(backend.URL, 50*time.Millisecond)
	require.NoError(t, err)

	_, err = c.Forward(context.Background(), upstream.Call{Operation: "agents.list", Method: http.MethodGet, Path: "/agents"})
	var uerr *upstream.Error
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, http.StatusGatewayTimeout, uerr.Status)
}

func TestNewClient_RejectsBadScheme(t *testing.T) {
	_, err := upstream.NewClient("ftp://backend", time.Second)
	assert.Error(t, err)
}
