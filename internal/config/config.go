package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the samo-api gateway.
type Config struct {
	Port      int    `env:"SAMO_PORT" envDefault:"8080"`
	Version   string `env:"SAMO_VERSION" envDefault:"0.1.0"`
	LogLevel  string `env:"SAMO_LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"SAMO_LOG_PRETTY" envDefault:"false"`
	Upstream  UpstreamConfig
	Telemetry TelemetryConfig
	Auth      AuthConfig
	MCP       MCPConfig
}

type UpstreamConfig struct {
	URL     string        `env:"SAMO_UPSTREAM_URL" envDefault:"http://localhost:3000"`
	Timeout time.Duration `env:"SAMO_UPSTREAM_TIMEOUT" envDefault:"30s"`
}

type TelemetryConfig struct {
	Enabled      bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`
	Insecure     bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	ServiceName  string  `env:"OTEL_SERVICE_NAME" envDefault:"samo-api"`
	SampleRatio  float64 `env:"OTEL_TRACES_SAMPLER_RATIO" envDefault:"1"`
}

type AuthConfig struct {
	// JWTSecret verifies bearer tokens with HS256. When empty, tokens are
	// parsed without verification and the backend stays the authority.
	JWTSecret string `env:"SAMO_JWT_SECRET"`

	// RequireAuth rejects anonymous calls to AuthRequired operations at the
	// gateway instead of leaving it to the backend.
	RequireAuth bool `env:"SAMO_REQUIRE_AUTH" envDefault:"true"`

	// APIKeys restricts X-API-Key callers to the listed keys when set.
	APIKeys []string `env:"SAMO_API_KEYS" envSeparator:","`

	// AllowedOrigins feeds the CORS handler.
	AllowedOrigins []string `env:"SAMO_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type MCPConfig struct {
	Enabled bool `env:"SAMO_MCP_ENABLED" envDefault:"true"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("SAMO_PORT %d out of range", cfg.Port)
	}
	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		return nil, fmt.Errorf("OTEL_TRACES_SAMPLER_RATIO %v out of range", cfg.Telemetry.SampleRatio)
	}
	return cfg, nil
}
