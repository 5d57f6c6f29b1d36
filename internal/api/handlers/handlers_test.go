package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/little-samo/samo-api/internal/api/handlers"
	"github.com/little-samo/samo-api/internal/binding"
	"github.com/little-samo/samo-api/internal/upstream"
	"github.com/little-samo/samo-api/pkg/contracts"
	pkgmw "github.com/little-samo/samo-api/pkg/middleware"
	"github.com/little-samo/samo-api/pkg/models"
)

type stubForwarder struct {
	calls []upstream.Call
	resp  *upstream.Response
	err   error
}

func (s *stubForwarder) Forward(_ context.Context, call upstream.Call) (*upstream.Response, error) {
	s.calls = append(s.calls, call)
	if s.err != nil {
		return nil, s.err
	}
	if s.resp != nil {
		return s.resp, nil
	}
	return &upstream.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       []byte(`{"ok":true}`),
	}, nil
}

func serve(t *testing.T, fwd handlers.Forwarder, operation string) http.Handler {
	t.Helper()
	e, ok := contracts.Lookup(operation)
	require.True(t, ok, operation)
	r := chi.NewRouter()
	r.Method(e.Method, e.Path, handlers.New(fwd).Contract(e))
	return r
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestContract_ForwardsCanonicalQuery(t *testing.T) {
	fwd := &stubForwarder{}
	rec := do(serve(t, fwd, "agents.list"), http.MethodGet, "/agents?limit=20&junk=1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	require.Len(t, fwd.calls, 1)
	call := fwd.calls[0]
	assert.Equal(t, "agents.list", call.Operation)
	assert.Equal(t, "/agents", call.Path)
	assert.Equal(t, "limit=20&page=1", call.Query.Encode())
	assert.Nil(t, call.Body)
	assert.Equal(t, "Bearer tok", call.Header.Get("Authorization"))
}

func TestContract_ForwardsLeadingZeroIntegersAsDecimal(t *testing.T) {
	fwd := &stubForwarder{}
	rec := do(serve(t, fwd, "agents.list"), http.MethodGet, "/agents?page=010", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fwd.calls, 1)
	assert.Equal(t, "limit=10&page=10", fwd.calls[0].Query.Encode())
}

func TestContract_ForwardsBodyAndParams(t *testing.T) {
	fwd := &stubForwarder{}
	rec := do(serve(t, fwd, "locations.joinAgent"), http.MethodPost, "/locations/12/join-agent", `{"agentId":34}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fwd.calls, 1)
	assert.Equal(t, "/locations/12/join-agent", fwd.calls[0].Path)
	assert.JSONEq(t, `{"agentId":"34"}`, string(fwd.calls[0].Body))
}

func TestContract_PassesVerifiedUser(t *testing.T) {
	tests := []struct {
		name     string
		identity *contracts.Identity
		want     models.UserID
	}{
		{"verified", &contracts.Identity{Subject: "5", UserID: 5, Verified: true}, 5},
		{"unverified", &contracts.Identity{Subject: "5", UserID: 5}, 0},
		{"anonymous", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd := &stubForwarder{}
			h := serve(t, fwd, "agents.list")
			req := httptest.NewRequest(http.MethodGet, "/agents", nil)
			req = req.WithContext(pkgmw.SetIdentity(req.Context(), tt.identity))
			h.ServeHTTP(httptest.NewRecorder(), req)

			require.Len(t, fwd.calls, 1)
			assert.Equal(t, tt.want, fwd.calls[0].UserID)
		})
	}
}

func TestContract_EscapedPathParam(t *testing.T) {
	fwd := &stubForwarder{}
	rec := do(serve(t, fwd, "locations.snapshot"), http.MethodGet, "/locations/snapshots/a%2Fb", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fwd.calls, 1)
	assert.Equal(t, "/locations/snapshots/a%2Fb", fwd.calls[0].Path)
}

func TestContract_ValidationFailure(t *testing.T) {
	fwd := &stubForwarder{}
	rec := do(serve(t, fwd, "agents.list"), http.MethodGet, "/agents?page=0", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fwd.calls)

	var body handlers.ValidationFailure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_failed", body.Error)
	require.Len(t, body.Issues, 1)
	assert.Equal(t, "page", body.Issues[0].Path)
}

func TestContract_BindingFailure(t *testing.T) {
	fwd := &stubForwarder{}
	rec := do(serve(t, fwd, "locations.joinAgent"), http.MethodPost, "/locations/abc/join-agent", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body handlers.ValidationFailure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Issues, 2)
	assert.Equal(t, "locationId", body.Issues[0].Path)
	assert.Equal(t, "agentId", body.Issues[1].Path)
}

func TestContract_MalformedJSON(t *testing.T) {
	fwd := &stubForwarder{}
	rec := do(serve(t, fwd, "agents.create"), http.MethodPost, "/agents", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed_json")
	assert.Empty(t, fwd.calls)
}

func TestContract_RelaysBackendStatus(t *testing.T) {
	fwd := &stubForwarder{resp: &upstream.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{"Retry-After": {"30"}, "Set-Cookie": {"a=b"}},
		Body:       []byte(`{"message":"slow down"}`),
	}}
	rec := do(serve(t, fwd, "agents.list"), http.MethodGet, "/agents", "")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
	assert.JSONEq(t, `{"message":"slow down"}`, rec.Body.String())
}

func TestContract_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
	}{
		{"unavailable", http.StatusBadGateway, "upstream_unavailable"},
		{"timeout", http.StatusGatewayTimeout, "upstream_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd := &stubForwarder{err: &upstream.Error{Status: tt.status, Operation: "agents.list", Err: context.DeadlineExceeded}}
			rec := do(serve(t, fwd, "agents.list"), http.MethodGet, "/agents", "")

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}

func TestListContracts(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.New(&stubForwarder{}).ListContracts(rec, httptest.NewRequest(http.MethodGet, "/contracts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body handlers.CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Endpoints, len(contracts.Catalog()))
	assert.Len(t, body.WebSocket, len(contracts.WSMessages()))
	assert.Len(t, body.MCPTools, len(contracts.MCPTools()))
}

func validate(t *testing.T, operation, payload string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/contracts/{operation}/validate", handlers.New(&stubForwarder{}).ValidateContract)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contracts/"+operation+"/validate", strings.NewReader(payload)))
	return rec
}

func TestValidateContract_HTTPOperation(t *testing.T) {
	rec := validate(t, "locations.createScheduledMessage",
		`{"params":{"locationId":"9"},"body":{"repeatTimesOfDay":["08:30"],"message":"gm"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handlers.ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Valid)
	assert.Equal(t, "/locations/9/scheduled-messages", body.Path)
	assert.JSONEq(t, `{"repeatTimesOfDay":["08:30"],"repeatDaysOfWeek":[],"message":"gm"}`, string(body.Body))
}

func TestValidateContract_Invalid(t *testing.T) {
	rec := validate(t, "agents.list", `{"query":{"limit":["500"]}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"limit"`)
}

func TestValidateContract_BodyTooLarge(t *testing.T) {
	payload := `{"body":{"message":"` + strings.Repeat("a", binding.MaxBodyBytes) + `"}}`
	rec := validate(t, "locations.createScheduledMessage", payload)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"body_too_large"`)
}

func TestValidateContract_MalformedEnvelope(t *testing.T) {
	rec := validate(t, "agents.list", `{"query":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"malformed_json"`)
}

func TestValidateContract_UnknownOperation(t *testing.T) {
	rec := validate(t, "nope.nothing", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
