package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/little-samo/samo-api/pkg/contracts"
	pkgmw "github.com/little-samo/samo-api/pkg/middleware"
	"github.com/rs/zerolog/log"
)

// AuthMiddleware authenticates requests using the pluggable
// AuthProviderChain and stores the resulting Identity in context.
//
// Each contract route is wrapped with the auth mode of its endpoint:
//   - public: credentials are ignored
//   - optional: a presented credential must be valid, anonymous is fine
//   - required: anonymous callers get 401 when requireAuth is on
type AuthMiddleware struct {
	chain       contracts.AuthProviderChain
	requireAuth bool
}

// NewAuthMiddleware creates the auth middleware.
//
// If requireAuth is false, anonymous calls to required routes pass through
// and the backend answers them.
func NewAuthMiddleware(chain contracts.AuthProviderChain, requireAuth bool) *AuthMiddleware {
	return &AuthMiddleware{
		chain:       chain,
		requireAuth: requireAuth,
	}
}

// For returns middleware enforcing mode.
func (am *AuthMiddleware) For(mode contracts.AuthMode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if mode == contracts.AuthPublic {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := am.chain.Authenticate(r.Context(), r)
			if err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("Authentication failed")
				unauthorized(w, "authentication_failed", err.Error())
				return
			}

			if identity == nil && mode == contracts.AuthRequired && am.requireAuth {
				unauthorized(w, "authentication_required",
					"This endpoint requires authentication. Set Authorization: Bearer <token> or X-API-Key header.")
				return
			}

			if h := holderFrom(r.Context()); h != nil && identity != nil {
				h.subject = identity.Subject
			}
			next.ServeHTTP(w, r.WithContext(pkgmw.SetIdentity(r.Context(), identity)))
		})
	}
}

func unauthorized(w http.ResponseWriter, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="samo"`)
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   code,
		"message": message,
	})
}
