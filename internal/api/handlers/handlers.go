// Package handlers implements the HTTP handlers of the samo-api gateway.
//
// Every catalog endpoint shares one handler: bind the request, validate it,
// forward the canonical form upstream and relay the answer.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/little-samo/samo-api/internal/binding"
	"github.com/little-samo/samo-api/internal/upstream"
	"github.com/little-samo/samo-api/internal/validation"
	"github.com/little-samo/samo-api/pkg/contracts"
	pkgmw "github.com/little-samo/samo-api/pkg/middleware"
	"github.com/rs/zerolog/log"
)

// Forwarder sends canonical calls to the backend.
type Forwarder interface {
	Forward(ctx context.Context, call upstream.Call) (*upstream.Response, error)
}

// Handlers holds all handler dependencies.
type Handlers struct {
	Upstream Forwarder
}

// New creates a new Handlers instance.
func New(up Forwarder) *Handlers {
	return &Handlers{Upstream: up}
}

// ══════════════════════════════════════════════════════════════
// ── Contract Handlers ────────────────────────────────────────
// ══════════════════════════════════════════════════════════════

// Contract returns the handler for one catalog endpoint.
func (h *Handlers) Contract(e contracts.Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := make(map[string]string)
		for _, name := range e.PathParams() {
			params[name] = pathParam(r, name)
		}

		req := e.NewRequest()
		if err := binding.Bind(r, params, req); err != nil {
			respondBindError(w, err)
			return
		}
		if err := validation.Struct(req); err != nil {
			respondBindError(w, err)
			return
		}

		call, err := upstream.NewCall(e, req)
		if err != nil {
			log.Error().Err(err).Str("operation", e.Operation).Msg("Failed to encode upstream call")
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to encode request")
			return
		}
		call.Header = r.Header
		call.RequestID = chimw.GetReqID(r.Context())
		call.UserID = pkgmw.GetVerifiedUserID(r.Context())

		resp, err := h.Upstream.Forward(r.Context(), call)
		if err != nil {
			respondUpstreamError(w, r, err)
			return
		}
		relay(w, resp)
	}
}

// pathParam returns a decoded path parameter. chi matches on the raw path
// when the request has one, so its values may still be escaped.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

// ── Catalog listing ─────────────────────────────────────────

// CatalogResponse lists every operation the gateway knows.
type CatalogResponse struct {
	Endpoints []contracts.Endpoint  `json:"endpoints"`
	WebSocket []contracts.WSMessage `json:"websocket"`
	MCPTools  []MCPToolInfo         `json:"mcpTools"`
}

type MCPToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Operation   string `json:"operation"`
}

func (h *Handlers) ListContracts(w http.ResponseWriter, r *http.Request) {
	resp := CatalogResponse{
		Endpoints: contracts.Catalog(),
		WebSocket: contracts.WSMessages(),
	}
	for _, t := range contracts.MCPTools() {
		resp.MCPTools = append(resp.MCPTools, MCPToolInfo{Name: t.Name, Description: t.Description, Operation: t.Operation})
	}
	respondJSON(w, http.StatusOK, resp)
}

// ValidateRequest is a dry-run payload for one operation.
type ValidateRequest struct {
	Params map[string]string   `json:"params,omitempty"`
	Query  map[string][]string `json:"query,omitempty"`
	Body   json.RawMessage     `json:"body,omitempty"`
}

// ValidateResponse carries the canonical call a valid payload would make.
type ValidateResponse struct {
	Valid  bool            `json:"valid"`
	Method string          `json:"method,omitempty"`
	Path   string          `json:"path,omitempty"`
	Query  string          `json:"query,omitempty"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// ErrUnknownOperation is returned by CheckPayload for names that are
// neither a catalog operation nor a WebSocket event.
var ErrUnknownOperation = errors.New("unknown operation")

// ValidateContract binds and validates a payload against an operation
// without forwarding it.
func (h *Handlers) ValidateContract(w http.ResponseWriter, r *http.Request) {
	var in ValidateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, binding.MaxBodyBytes)).Decode(&in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "body_too_large", binding.ErrBodyTooLarge.Error())
			return
		}
		respondError(w, http.StatusBadRequest, "malformed_json", err.Error())
		return
	}

	resp, err := CheckPayload(chi.URLParam(r, "operation"), in)
	if errors.Is(err, ErrUnknownOperation) {
		respondError(w, http.StatusNotFound, "unknown_operation", err.Error())
		return
	}
	if err != nil {
		respondBindError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// CheckPayload binds and validates in against operation. WebSocket events
// are accepted by event name and only use the body.
func CheckPayload(operation string, in ValidateRequest) (*ValidateResponse, error) {
	if m, ok := contracts.LookupWS(operation); ok {
		req := m.NewRequest()
		if err := binding.BindJSON(in.Body, req); err != nil {
			return nil, err
		}
		if err := validation.Struct(req); err != nil {
			return nil, err
		}
		body, err := json.Marshal(req)
		if err != nil {
			return nil, err
		}
		return &ValidateResponse{Valid: true, Body: body}, nil
	}

	e, ok := contracts.Lookup(operation)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, operation)
	}
	req := e.NewRequest()
	if err := binding.BindValues(in.Params, in.Query, in.Body, req); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	call, err := upstream.NewCall(e, req)
	if err != nil {
		return nil, err
	}
	return &ValidateResponse{
		Valid:  true,
		Method: call.Method,
		Path:   call.Path,
		Query:  call.Query.Encode(),
		Body:   call.Body,
	}, nil
}

// ── Responses ───────────────────────────────────────────────

// ValidationFailure is the 400 body for rejected requests.
type ValidationFailure struct {
	Error  string             `json:"error"`
	Issues []validation.Issue `json:"issues"`
}

func respondBindError(w http.ResponseWriter, err error) {
	if ve, ok := validation.AsError(err); ok {
		respondJSON(w, http.StatusBadRequest, ValidationFailure{Error: "validation_failed", Issues: ve.Issues})
		return
	}
	switch {
	case errors.Is(err, binding.ErrMalformedBody):
		respondError(w, http.StatusBadRequest, "malformed_json", err.Error())
	case errors.Is(err, binding.ErrBodyTooLarge):
		respondError(w, http.StatusRequestEntityTooLarge, "body_too_large", err.Error())
	default:
		log.Error().Err(err).Msg("Request binding failed")
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to read request")
	}
}

func respondUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	log.Warn().Err(err).Str("operation", pkgmw.GetOperation(r.Context())).Msg("Backend unavailable")
	var uerr *upstream.Error
	if errors.As(err, &uerr) {
		code := "upstream_unavailable"
		if uerr.Status == http.StatusGatewayTimeout {
			code = "upstream_timeout"
		}
		respondError(w, uerr.Status, code, "the platform backend did not answer")
		return
	}
	log.Error().Err(err).Msg("Upstream call failed")
	respondError(w, http.StatusBadGateway, "upstream_unavailable", "the platform backend did not answer")
}

func relay(w http.ResponseWriter, resp *upstream.Response) {
	for _, k := range upstream.RelayedHeaders {
		for _, v := range resp.Header.Values(k) {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]string{"error": code, "message": message})
}
