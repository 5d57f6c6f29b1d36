package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/little-samo/samo-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Upstream.URL)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.True(t, cfg.Auth.RequireAuth)
	assert.Equal(t, []string{"*"}, cfg.Auth.AllowedOrigins)
	assert.True(t, cfg.MCP.Enabled)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "samo-api", cfg.Telemetry.ServiceName)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SAMO_PORT", "9090")
	t.Setenv("SAMO_UPSTREAM_URL", "https://api.example.com")
	t.Setenv("SAMO_UPSTREAM_TIMEOUT", "5s")
	t.Setenv("SAMO_JWT_SECRET", "s3cret")
	t.Setenv("SAMO_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SAMO_MCP_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "https://api.example.com", cfg.Upstream.URL)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Auth.AllowedOrigins)
	assert.False(t, cfg.MCP.Enabled)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SAMO_UPSTREAM_TIMEOUT", "soon")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoad_PortOutOfRange(t *testing.T) {
	t.Setenv("SAMO_PORT", "70000")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_SampleRatioOutOfRange(t *testing.T) {
	t.Setenv("OTEL_TRACES_SAMPLER_RATIO", "1.5")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OTEL_TRACES_SAMPLER_RATIO")
}
