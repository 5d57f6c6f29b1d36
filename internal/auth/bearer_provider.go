package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/little-samo/samo-api/pkg/contracts"
	"github.com/little-samo/samo-api/pkg/models"
)

// ErrMalformedToken is returned for a bearer value that is not a JWT.
var ErrMalformedToken = errors.New("malformed bearer token")

// TokenClaims is the payload of a platform access token.
type TokenClaims struct {
	UserID   models.UserID `json:"userId,omitempty"`
	Username string        `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// BearerProvider recognizes platform JWTs.
//
// With a secret the signature (HS256) and expiry are verified. Without one
// the claims are read unverified, expiry is still enforced, and the
// identity is marked unverified.
type BearerProvider struct {
	secret []byte
	parser *jwt.Parser
	now    func() time.Time
}

// NewBearerProvider creates a bearer provider. secret may be empty.
func NewBearerProvider(secret string) *BearerProvider {
	p := &BearerProvider{now: time.Now}
	if secret != "" {
		p.secret = []byte(secret)
	}
	p.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(30*time.Second),
		jwt.WithTimeFunc(func() time.Time { return p.now() }),
	)
	return p
}

func (p *BearerProvider) Name() string { return "bearer" }

func (p *BearerProvider) Enabled() bool { return true }

// Authenticate returns (nil, nil) when there is no bearer token.
func (p *BearerProvider) Authenticate(_ context.Context, r *http.Request) (*contracts.Identity, error) {
	raw, ok := bearerToken(r)
	if !ok {
		return nil, nil
	}

	claims := &TokenClaims{}
	verified := p.secret != nil
	if verified {
		if _, err := p.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return p.secret, nil
		}); err != nil {
			return nil, fmt.Errorf("bearer token: %w", err)
		}
	} else {
		if _, _, err := p.parser.ParseUnverified(raw, claims); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
		if claims.ExpiresAt != nil && p.now().After(claims.ExpiresAt.Add(30*time.Second)) {
			return nil, fmt.Errorf("bearer token: %w", jwt.ErrTokenExpired)
		}
	}

	return identityFromClaims(claims, verified)
}

func identityFromClaims(claims *TokenClaims, verified bool) (*contracts.Identity, error) {
	id := &contracts.Identity{
		Subject:  claims.Subject,
		UserID:   claims.UserID,
		Provider: "bearer",
		Verified: verified,
	}
	if id.UserID == 0 && id.Subject != "" {
		if uid, err := models.ParseID(id.Subject); err == nil {
			id.UserID = uid
		}
	}
	if id.Subject == "" && id.UserID != 0 {
		id.Subject = id.UserID.String()
	}
	if id.Subject == "" {
		return nil, fmt.Errorf("%w: no subject", ErrMalformedToken)
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.Username != "" {
		id.Claims = map[string]string{"username": claims.Username}
	}
	return id, nil
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(h[7:])
	return token, token != ""
}
