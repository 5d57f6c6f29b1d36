package contracts

import (
	"context"
	"net/http"
	"time"

	"github.com/little-samo/samo-api/pkg/models"
)

// ── Identity ────────────────────────────────────────────────

// Identity is the caller an AuthProvider recognized.
//
// The gateway only uses it to enforce AuthRequired and to tag logs and
// spans. The backend re-checks the forwarded credential itself.
type Identity struct {
	// Subject is the user id from a bearer token, or a key fingerprint.
	Subject string `json:"subject"`

	// UserID is set when Subject parses as a platform user id.
	UserID models.UserID `json:"userId,omitempty"`

	// Provider is "bearer" or "apikey".
	Provider string `json:"provider"`

	// APIKeyType is set for identities that came from a user API key.
	APIKeyType models.UserAPIKeyType `json:"apiKeyType,omitempty"`

	// Verified is false when a bearer token was parsed without a secret.
	Verified bool `json:"verified"`

	Claims    map[string]string `json:"claims,omitempty"`
	ExpiresAt time.Time         `json:"expiresAt,omitzero"`
}

// ── AuthProvider ────────────────────────────────────────────

// AuthProvider authenticates an HTTP request and returns an Identity.
//
// The chain pattern:
//   - Return (*Identity, nil) → authenticated, stop chain
//   - Return (nil, nil) → this provider doesn't handle this request, try next
//   - Return (nil, error) → authentication was attempted but failed, reject
type AuthProvider interface {
	// Name returns the provider identifier ("bearer", "apikey").
	Name() string

	// Authenticate inspects the request and returns an Identity.
	Authenticate(ctx context.Context, r *http.Request) (*Identity, error)

	// Enabled returns whether this provider is configured and active.
	Enabled() bool
}

// ── AuthProviderChain ───────────────────────────────────────

// AuthProviderChain tries providers in priority order until one returns an Identity.
type AuthProviderChain interface {
	// Authenticate walks the chain of providers in order.
	// Returns the first successful Identity, or (nil, nil) if no provider matched.
	Authenticate(ctx context.Context, r *http.Request) (*Identity, error)

	// RegisterProvider adds a provider to the end of the chain.
	// Providers are tried in registration order.
	RegisterProvider(provider AuthProvider)
}
