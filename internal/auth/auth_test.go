package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/little-samo/samo-api/internal/auth"
	"github.com/little-samo/samo-api/pkg/contracts"
	"github.com/little-samo/samo-api/pkg/models"
)

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func requestWith(header, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/agents", nil)
	if header != "" {
		r.Header.Set(header, value)
	}
	return r
}

// ─── Bearer ──────────────────────────────────────────────────

func TestBearerProvider_NoToken(t *testing.T) {
	p := auth.NewBearerProvider("secret")
	id, err := p.Authenticate(context.Background(), requestWith("", ""))
	assert.NoError(t, err)
	assert.Nil(t, id)
}

func TestBearerProvider_VerifiedToken(t *testing.T) {
	token := signToken(t, "secret", &auth.TokenClaims{
		Username: "samo",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1234",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	p := auth.NewBearerProvider("secret")
	id, err := p.Authenticate(context.Background(), requestWith("Authorization", "Bearer "+token))
	require.NoError(t, err)
	require.NotNil(t, id)

	assert.Equal(t, "1234", id.Subject)
	assert.Equal(t, models.UserID(1234), id.UserID)
	assert.Equal(t, "bearer", id.Provider)
	assert.True(t, id.Verified)
	assert.Equal(t, "samo", id.Claims["username"])
}

func TestBearerProvider_WrongSecret(t *testing.T) {
	token := signToken(t, "other", &auth.TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}})

	p := auth.NewBearerProvider("secret")
	_, err := p.Authenticate(context.Background(), requestWith("Authorization", "Bearer "+token))
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestBearerProvider_Expired(t *testing.T) {
	token := signToken(t, "secret", &auth.TokenClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}})

	for _, secret := range []string{"secret", ""} {
		p := auth.NewBearerProvider(secret)
		_, err := p.Authenticate(context.Background(), requestWith("Authorization", "Bearer "+token))
		require.Error(t, err, "secret=%q", secret)
		assert.True(t, errors.Is(err, jwt.ErrTokenExpired), "secret=%q: %v", secret, err)
	}
}

func TestBearerProvider_UnverifiedWithoutSecret(t *testing.T) {
	token := signToken(t, "whatever", &auth.TokenClaims{UserID: 77})

	p := auth.NewBearerProvider("")
	id, err := p.Authenticate(context.Background(), requestWith("Authorization", "bearer "+token))
	require.NoError(t, err)
	assert.Equal(t, "77", id.Subject)
	assert.Equal(t, models.UserID(77), id.UserID)
	assert.False(t, id.Verified)
}

func TestBearerProvider_Malformed(t *testing.T) {
	p := auth.NewBearerProvider("")
	_, err := p.Authenticate(context.Background(), requestWith("Authorization", "Bearer not-a-jwt"))
	assert.True(t, errors.Is(err, auth.ErrMalformedToken))
}

// ─── API key ─────────────────────────────────────────────────

func TestAPIKeyProvider_OpenAcceptsAnyKey(t *testing.T) {
	p := auth.NewAPIKeyProvider(nil)
	id, err := p.Authenticate(context.Background(), requestWith("X-API-Key", "sk-user"))
	require.NoError(t, err)
	require.NotNil(t, id)

	assert.Equal(t, "apikey", id.Provider)
	assert.Equal(t, models.UserAPIKeyTypeMCP, id.APIKeyType)
	assert.False(t, id.Verified)
	assert.Len(t, id.Subject, len("apikey:")+16)
}

func TestAPIKeyProvider_AllowList(t *testing.T) {
	p := auth.NewAPIKeyProvider([]string{" key-1 ", "key-2"})

	id, err := p.Authenticate(context.Background(), requestWith("X-API-Key", "key-2"))
	require.NoError(t, err)
	assert.True(t, id.Verified)

	_, err = p.Authenticate(context.Background(), requestWith("X-API-Key", "key-3"))
	assert.ErrorIs(t, err, auth.ErrInvalidAPIKey)
}

func TestAPIKeyProvider_QueryParameter(t *testing.T) {
	p := auth.NewAPIKeyProvider(nil)
	r := httptest.NewRequest(http.MethodGet, "/mcp?api_key=abc", nil)
	id, err := p.Authenticate(context.Background(), r)
	require.NoError(t, err)
	assert.NotNil(t, id)
}

// ─── Chain ───────────────────────────────────────────────────

func TestProviderChain_Order(t *testing.T) {
	chain := auth.NewProviderChain()
	chain.RegisterProvider(auth.NewBearerProvider(""))
	chain.RegisterProvider(auth.NewAPIKeyProvider(nil))
	assert.Equal(t, []string{"bearer", "apikey"}, chain.ListProviders())

	id, err := chain.Authenticate(context.Background(), requestWith("X-API-Key", "k"))
	require.NoError(t, err)
	assert.Equal(t, "apikey", id.Provider)

	id, err = chain.Authenticate(context.Background(), requestWith("", ""))
	assert.NoError(t, err)
	assert.Nil(t, id)
}

func TestProviderChain_StopsOnError(t *testing.T) {
	chain := auth.NewProviderChain()
	chain.RegisterProvider(auth.NewBearerProvider(""))
	chain.RegisterProvider(auth.NewAPIKeyProvider(nil))

	r := requestWith("Authorization", "Bearer junk")
	r.Header.Set("X-API-Key", "k")
	_, err := chain.Authenticate(context.Background(), r)
	assert.Error(t, err)
}

type staticProvider struct {
	name     string
	enabled  bool
	identity *contracts.Identity
	calls    int
}

func (p *staticProvider) Name() string  { return p.name }
func (p *staticProvider) Enabled() bool { return p.enabled }

func (p *staticProvider) Authenticate(context.Context, *http.Request) (*contracts.Identity, error) {
	p.calls++
	return p.identity, nil
}

func TestProviderChain_TagsIdentityWithProvider(t *testing.T) {
	chain := auth.NewProviderChain()
	chain.RegisterProvider(&staticProvider{name: "gateway-header", enabled: true, identity: &contracts.Identity{Subject: "7"}})

	id, err := chain.Authenticate(context.Background(), requestWith("", ""))
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "gateway-header", id.Provider)
}

func TestProviderChain_SkipsDisabledProviders(t *testing.T) {
	disabled := &staticProvider{name: "off", identity: &contracts.Identity{Subject: "x", Provider: "off"}}
	enabled := &staticProvider{name: "on", enabled: true, identity: &contracts.Identity{Subject: "y", Provider: "on"}}

	chain := auth.NewProviderChain()
	chain.RegisterProvider(disabled)
	chain.RegisterProvider(enabled)
	assert.Equal(t, []string{"off", "on"}, chain.ListProviders())

	id, err := chain.Authenticate(context.Background(), requestWith("", ""))
	require.NoError(t, err)
	assert.Equal(t, "on", id.Provider)
	assert.Zero(t, disabled.calls)
}

var _ contracts.AuthProviderChain = (*auth.ProviderChain)(nil)
