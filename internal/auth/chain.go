// Package auth recognizes the caller of a gateway request.
//
// Two providers ship with the gateway: BearerProvider reads platform JWTs
// and APIKeyProvider reads user MCP keys. Deployments that embed pkg/server
// append their own after these. The backend still checks every forwarded
// credential itself.
package auth

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/little-samo/samo-api/pkg/contracts"
)

// ProviderChain asks each enabled provider in registration order. The first
// identity wins and the first error ends the walk.
type ProviderChain struct {
	mu        sync.RWMutex
	providers []contracts.AuthProvider
}

// NewProviderChain creates an empty chain.
func NewProviderChain() *ProviderChain {
	return &ProviderChain{}
}

func (c *ProviderChain) RegisterProvider(provider contracts.AuthProvider) {
	c.mu.Lock()
	c.providers = append(c.providers, provider)
	c.mu.Unlock()

	log.Info().
		Str("provider", provider.Name()).
		Bool("enabled", provider.Enabled()).
		Msg("🔑 Auth provider registered")
}

// Authenticate returns (nil, nil) for an anonymous request. An identity a
// provider returns without a Provider name is tagged with that provider's.
func (c *ProviderChain) Authenticate(ctx context.Context, r *http.Request) (*contracts.Identity, error) {
	for _, p := range c.enabled() {
		identity, err := p.Authenticate(ctx, r)
		if err != nil {
			log.Debug().
				Str("provider", p.Name()).
				Err(err).
				Msg("Credential rejected")
			return nil, err
		}
		if identity == nil {
			continue
		}
		if identity.Provider == "" {
			identity.Provider = p.Name()
		}
		log.Debug().
			Str("provider", identity.Provider).
			Str("subject", identity.Subject).
			Int64("user_id", int64(identity.UserID)).
			Bool("verified", identity.Verified).
			Msg("Caller identified")
		return identity, nil
	}
	return nil, nil
}

func (c *ProviderChain) enabled() []contracts.AuthProvider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.Filter(c.providers, func(p contracts.AuthProvider, _ int) bool {
		return p.Enabled()
	})
}

// ListProviders names the registered providers in order, disabled ones
// included.
func (c *ProviderChain) ListProviders() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.Map(c.providers, func(p contracts.AuthProvider, _ int) string {
		return p.Name()
	})
}
