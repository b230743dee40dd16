package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/inventry-dev/inventry/pkg/cli/config"
)

func TestAuthn_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("no-auth mode returns a fixed identity verifier", func(t *testing.T) {
		cfg := config.NewAuthnForTest("", "", "", "dev-user")
		authn, err := cfg.Configure(ctx)
		gt.NoError(t, err).Required()
		gt.Bool(t, authn.IsNoAuthn()).True()

		token, err := authn.Verify(ctx, "")
		gt.NoError(t, err).Required()
		gt.Value(t, token.Sub).Equal("dev-user")
	})

	t.Run("HMAC secret returns a JWT verifier", func(t *testing.T) {
		cfg := config.NewAuthnForTest("", "", "some-secret", "")
		authn, err := cfg.Configure(ctx)
		gt.NoError(t, err).Required()
		gt.Bool(t, authn.IsNoAuthn()).False()
	})

	t.Run("no mode selected is an error", func(t *testing.T) {
		cfg := config.NewAuthnForTest("", "", "", "")
		_, err := cfg.Configure(ctx)
		gt.Error(t, err)
	})

	t.Run("returns flags", func(t *testing.T) {
		var cfg config.Authn
		gt.Value(t, len(cfg.Flags())).Equal(4)
	})
}
