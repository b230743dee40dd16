package usecase

import (
	"context"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"

	"github.com/inventry-dev/inventry/pkg/domain/model/auth"
)

// JWTAuthn verifies bearer JWTs issued by an external identity provider.
// The sub claim becomes the chat owner ID.
type JWTAuthn struct {
	issuer string
	keySet jwk.Set
	secret []byte
}

type JWTOption func(*JWTAuthn)

// WithIssuer requires the iss claim to match
func WithIssuer(issuer string) JWTOption {
	return func(a *JWTAuthn) {
		a.issuer = issuer
	}
}

// NewJWTAuthn creates a verifier against a remote JWKS endpoint. The key
// set is cached and refreshed per the endpoint's cache headers.
func NewJWTAuthn(ctx context.Context, jwksURL string, opts ...JWTOption) (*JWTAuthn, error) {
	if jwksURL == "" {
		return nil, goerr.New("JWKS URL is required")
	}

	cache := jwk.NewCache(ctx)
	if err := cache.Register(jwksURL); err != nil {
		return nil, goerr.Wrap(err, "failed to register JWKS endpoint", goerr.V("url", jwksURL))
	}
	if _, err := cache.Refresh(ctx, jwksURL); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch JWKS", goerr.V("url", jwksURL))
	}

	a := &JWTAuthn{
		keySet: jwk.NewCachedSet(cache, jwksURL),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// NewJWTAuthnHMAC creates a verifier using a shared HS256 secret,
// mainly for local setups without a JWKS endpoint
func NewJWTAuthnHMAC(secret string, opts ...JWTOption) (*JWTAuthn, error) {
	if secret == "" {
		return nil, goerr.New("JWT secret is required")
	}

	a := &JWTAuthn{
		secret: []byte(secret),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *JWTAuthn) Verify(ctx context.Context, credential string) (*auth.Token, error) {
	if credential == "" {
		return nil, goerr.New("credential is empty")
	}

	parseOpts := []jwt.ParseOption{
		jwt.WithContext(ctx),
		jwt.WithValidate(true),
	}
	if a.keySet != nil {
		parseOpts = append(parseOpts, jwt.WithKeySet(a.keySet))
	} else {
		parseOpts = append(parseOpts, jwt.WithKey(jwa.HS256, a.secret))
	}
	if a.issuer != "" {
		parseOpts = append(parseOpts, jwt.WithIssuer(a.issuer))
	}

	tok, err := jwt.Parse([]byte(credential), parseOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to verify JWT")
	}

	sub := tok.Subject()
	if sub == "" {
		return nil, goerr.New("JWT has no subject claim")
	}

	token := auth.NewToken(sub, stringClaim(tok, "email"), stringClaim(tok, "name"))
	return token, nil
}

func (a *JWTAuthn) IsNoAuthn() bool {
	return false
}

func stringClaim(tok jwt.Token, name string) string {
	if v, ok := tok.Get(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
