package middleware

import (
	"context"

	"github.com/little-samo/samo-api/pkg/contracts"
	"github.com/little-samo/samo-api/pkg/models"
)

const identityKey contextKey = "identity"

// SetIdentity stores the authenticated Identity in the context.
// Called by the auth middleware after successful authentication.
func SetIdentity(ctx context.Context, identity *contracts.Identity) context.Context {
	if identity == nil {
		return ctx
	}
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity retrieves the authenticated Identity from the context.
// Returns nil if no identity is set (anonymous/unauthenticated request).
func GetIdentity(ctx context.Context) *contracts.Identity {
	if v, ok := ctx.Value(identityKey).(*contracts.Identity); ok {
		return v
	}
	return nil
}

// GetUserID returns the platform user id of the caller, when known.
func GetUserID(ctx context.Context) (models.UserID, bool) {
	id := GetIdentity(ctx)
	if id == nil || id.UserID == 0 {
		return 0, false
	}
	return id.UserID, true
}

// GetVerifiedUserID is GetUserID restricted to identities a provider
// verified. It returns 0 otherwise.
func GetVerifiedUserID(ctx context.Context) models.UserID {
	if id := GetIdentity(ctx); id == nil || !id.Verified {
		return 0
	}
	uid, _ := GetUserID(ctx)
	return uid
}
