package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/little-samo/samo-api/internal/api/handlers"
	"github.com/little-samo/samo-api/internal/api/middleware"
	"github.com/little-samo/samo-api/internal/config"
	"github.com/little-samo/samo-api/internal/mcpgw"
	"github.com/little-samo/samo-api/pkg/contracts"
)

// NewRouter creates the HTTP router with one route per catalog operation.
func NewRouter(cfg *config.Config, up handlers.Forwarder, chain contracts.AuthProviderChain) (http.Handler, error) {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.Logger)
	r.Use(middleware.Telemetry)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Auth.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-Id", "Mcp-Session-Id", "Mcp-Protocol-Version"},
		ExposedHeaders:   []string{"X-Request-Id", "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: !containsWildcard(cfg.Auth.AllowedOrigins),
		MaxAge:           300,
	}))

	h := handlers.New(up)
	am := middleware.NewAuthMiddleware(chain, cfg.Auth.RequireAuth)

	// Health & info
	r.Get("/health", healthHandler)
	r.Get("/version", versionHandler(cfg))
	r.Get("/contracts", h.ListContracts)
	r.Post("/contracts/{operation}/validate", h.ValidateContract)

	// Platform operations
	for _, e := range contracts.Catalog() {
		r.With(middleware.Operation(e.Operation), am.For(e.Auth)).
			Method(e.Method, e.Path, h.Contract(e))
	}

	// MCP tools
	if cfg.MCP.Enabled {
		gw, err := mcpgw.NewGateway(up, cfg.Version)
		if err != nil {
			return nil, err
		}
		r.With(middleware.Operation("mcp"), am.For(contracts.AuthOptional)).
			Handle("/mcp", gw.Handler())
	}

	log.Info().Int("routes", len(contracts.Catalog())).Bool("mcp", cfg.MCP.Enabled).Msg("🧭 Routes registered")
	return r, nil
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "samo-api",
	})
}

func versionHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"version": cfg.Version,
			"service": "samo-api",
		})
	}
}
