// Package server provides the public entry point for initializing the
// samo-api gateway.
//
// This package exists in pkg/ (not internal/) so that deployments can
// embed the gateway and add their own auth providers or middleware.
//
// Usage:
//
//	srv, err := server.New(ctx)
//	http.ListenAndServe(":8080", srv.Handler)
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/little-samo/samo-api/internal/api"
	"github.com/little-samo/samo-api/internal/auth"
	"github.com/little-samo/samo-api/internal/config"
	"github.com/little-samo/samo-api/internal/telemetry"
	"github.com/little-samo/samo-api/internal/upstream"
	"github.com/little-samo/samo-api/pkg/contracts"
)

// Config overrides the environment configuration. Zero values keep the
// environment setting.
type Config struct {
	Port        int
	Version     string
	UpstreamURL string

	// Providers are tried after the built-in bearer and API key providers.
	Providers []contracts.AuthProvider
}

// Server holds the initialized gateway.
type Server struct {
	// Handler is the HTTP handler with all routes and middleware.
	Handler http.Handler

	// Port is the port the server should listen on.
	Port int

	// Version is the reported build version.
	Version string

	// LogLevel and LogPretty configure the global logger in main.
	LogLevel  string
	LogPretty bool

	// ShutdownFunc should be called on graceful shutdown to flush telemetry.
	ShutdownFunc func(context.Context) error
}

// LoadLogConfig returns the logging settings from the environment so main
// can configure zerolog before anything else logs.
func LoadLogConfig() (level string, pretty bool, err error) {
	cfg, err := config.Load()
	if err != nil {
		return "", false, err
	}
	return cfg.LogLevel, cfg.LogPretty, nil
}

// New initializes the gateway from environment variables.
func New(ctx context.Context) (*Server, error) {
	return NewWithConfig(ctx, &Config{})
}

// NewWithConfig initializes the gateway with explicit overrides.
func NewWithConfig(ctx context.Context, pubCfg *Config) (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if pubCfg.Port > 0 {
		cfg.Port = pubCfg.Port
	}
	if pubCfg.Version != "" {
		cfg.Version = pubCfg.Version
	}
	if pubCfg.UpstreamURL != "" {
		cfg.Upstream.URL = pubCfg.UpstreamURL
	}

	shutdown, err := telemetry.Init(ctx, cfg.Telemetry, cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	up, err := upstream.NewClient(cfg.Upstream.URL, cfg.Upstream.Timeout)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("url", up.BaseURL()).
		Dur("timeout", cfg.Upstream.Timeout).
		Msg("✅ Upstream client initialized")

	chain := auth.NewProviderChain()
	chain.RegisterProvider(auth.NewBearerProvider(cfg.Auth.JWTSecret))
	chain.RegisterProvider(auth.NewAPIKeyProvider(cfg.Auth.APIKeys))
	for _, p := range pubCfg.Providers {
		chain.RegisterProvider(p)
	}
	log.Info().Strs("providers", chain.ListProviders()).Msg("✅ Auth chain initialized")
	if cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("SAMO_JWT_SECRET not set, bearer tokens are not verified")
	}

	router, err := api.NewRouter(cfg, up, chain)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	return &Server{
		Handler:      router,
		Port:         cfg.Port,
		Version:      cfg.Version,
		LogLevel:     cfg.LogLevel,
		LogPretty:    cfg.LogPretty,
		ShutdownFunc: shutdown,
	}, nil
}
