package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/little-samo/samo-api/pkg/contracts"
	"github.com/little-samo/samo-api/pkg/models"
)

// ErrInvalidAPIKey is returned for a key that is not in the allow list.
var ErrInvalidAPIKey = errors.New("invalid API key")

// APIKeyProvider recognizes user MCP API keys sent in the X-API-Key header.
//
// Keys are minted and checked by the backend. With an empty allow list the
// provider accepts any key as an unverified identity; with one configured
// (SAMO_API_KEYS), only listed keys pass.
type APIKeyProvider struct {
	mu   sync.RWMutex
	keys map[string]bool
}

// NewAPIKeyProvider creates an API key provider with an optional allow list.
func NewAPIKeyProvider(allowed []string) *APIKeyProvider {
	p := &APIKeyProvider{keys: make(map[string]bool)}
	for _, key := range allowed {
		if key = strings.TrimSpace(key); key != "" {
			p.keys[key] = true
		}
	}
	return p
}

func (p *APIKeyProvider) Name() string { return "apikey" }

func (p *APIKeyProvider) Enabled() bool { return true }

// Authenticate returns (nil, nil) when no key is present so the next
// provider can try.
func (p *APIKeyProvider) Authenticate(_ context.Context, r *http.Request) (*contracts.Identity, error) {
	apiKey := extractAPIKeyFromRequest(r)
	if apiKey == "" {
		return nil, nil
	}

	verified := false
	if p.restricted() {
		if !p.validateKey(apiKey) {
			return nil, ErrInvalidAPIKey
		}
		verified = true
	}

	keyHash := fmt.Sprintf("%x", sha256.Sum256([]byte(apiKey)))
	return &contracts.Identity{
		Subject:    "apikey:" + keyHash[:16],
		Provider:   "apikey",
		APIKeyType: models.UserAPIKeyTypeMCP,
		Verified:   verified,
	}, nil
}

func (p *APIKeyProvider) restricted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.keys) > 0
}

func (p *APIKeyProvider) validateKey(candidate string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for key := range p.keys {
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(key)) == 1 {
			return true
		}
	}
	return false
}

func extractAPIKeyFromRequest(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}
	// api_key query parameter, for SSE and WebSocket clients that cannot set headers
	return r.URL.Query().Get("api_key")
}
