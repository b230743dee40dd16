package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/gt"

	"github.com/inventry-dev/inventry/pkg/usecase"
)

const testSecret = "test-hmac-secret"

func signToken(t *testing.T, build func(b *jwt.Builder)) string {
	t.Helper()

	b := jwt.NewBuilder().
		Subject("user_1234").
		Claim("email", "inventor@example.com").
		Claim("name", "Ada Inventor").
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(time.Hour))
	if build != nil {
		build(b)
	}

	tok, err := b.Build()
	gt.NoError(t, err).Required()

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte(testSecret)))
	gt.NoError(t, err).Required()
	return string(signed)
}

func TestJWTAuthnHMAC(t *testing.T) {
	ctx := context.Background()

	t.Run("verifies a valid token", func(t *testing.T) {
		authn, err := usecase.NewJWTAuthnHMAC(testSecret)
		gt.NoError(t, err).Required()

		token, err := authn.Verify(ctx, signToken(t, nil))
		gt.NoError(t, err).Required()

		gt.Value(t, token.Sub).Equal("user_1234")
		gt.Value(t, token.Email).Equal("inventor@example.com")
		gt.Value(t, token.Name).Equal("Ada Inventor")
		gt.Bool(t, authn.IsNoAuthn()).False()
	})

	t.Run("rejects an empty credential", func(t *testing.T) {
		authn, err := usecase.NewJWTAuthnHMAC(testSecret)
		gt.NoError(t, err).Required()

		_, err = authn.Verify(ctx, "")
		gt.Error(t, err)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		authn, err := usecase.NewJWTAuthnHMAC("different-secret")
		gt.NoError(t, err).Required()

		_, err = authn.Verify(ctx, signToken(t, nil))
		gt.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		authn, err := usecase.NewJWTAuthnHMAC(testSecret)
		gt.NoError(t, err).Required()

		expired := signToken(t, func(b *jwt.Builder) {
			b.Expiration(time.Now().Add(-time.Hour))
		})
		_, err = authn.Verify(ctx, expired)
		gt.Error(t, err)
	})

	t.Run("enforces the issuer when configured", func(t *testing.T) {
		authn, err := usecase.NewJWTAuthnHMAC(testSecret, usecase.WithIssuer("https://issuer.example.com"))
		gt.NoError(t, err).Required()

		_, err = authn.Verify(ctx, signToken(t, nil))
		gt.Error(t, err)

		matching := signToken(t, func(b *jwt.Builder) {
			b.Issuer("https://issuer.example.com")
		})
		token, err := authn.Verify(ctx, matching)
		gt.NoError(t, err).Required()
		gt.Value(t, token.Sub).Equal("user_1234")
	})

	t.Run("rejects a token without a subject", func(t *testing.T) {
		authn, err := usecase.NewJWTAuthnHMAC(testSecret)
		gt.NoError(t, err).Required()

		noSub := signToken(t, func(b *jwt.Builder) {
			b.Subject("")
		})
		_, err = authn.Verify(ctx, noSub)
		gt.Error(t, err)
	})

	t.Run("empty secret is rejected at construction", func(t *testing.T) {
		_, err := usecase.NewJWTAuthnHMAC("")
		gt.Error(t, err)
	})
}
