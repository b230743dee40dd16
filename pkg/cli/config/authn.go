package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/inventry-dev/inventry/pkg/usecase"
	"github.com/inventry-dev/inventry/pkg/utils/logging"
)

// Authn holds CLI flags for request authentication. Exactly one of the
// JWKS, HMAC secret, or no-auth modes must be selected.
type Authn struct {
	jwksURL   string
	jwtIssuer string
	jwtSecret string
	noAuthUID string
}

// Flags returns CLI flags for authentication configuration
func (a *Authn) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwks-url",
			Usage:       "JWKS endpoint of the identity provider",
			Category:    "Authentication",
			Sources:     cli.EnvVars("INVENTRY_JWKS_URL"),
			Destination: &a.jwksURL,
		},
		&cli.StringFlag{
			Name:        "jwt-issuer",
			Usage:       "Expected issuer of bearer tokens",
			Category:    "Authentication",
			Sources:     cli.EnvVars("INVENTRY_JWT_ISSUER"),
			Destination: &a.jwtIssuer,
		},
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "HMAC secret for bearer tokens (instead of JWKS)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("INVENTRY_JWT_SECRET"),
			Destination: &a.jwtSecret,
		},
		&cli.StringFlag{
			Name:        "no-auth",
			Usage:       "Skip authentication and run as the specified user ID (development only). Example: --no-auth=dev-user",
			Category:    "Authentication",
			Sources:     cli.EnvVars("INVENTRY_NO_AUTH"),
			Destination: &a.noAuthUID,
		},
	}
}

// Configure builds the authentication verifier from flags
func (a *Authn) Configure(ctx context.Context) (usecase.Authn, error) {
	var opts []usecase.JWTOption
	if a.jwtIssuer != "" {
		opts = append(opts, usecase.WithIssuer(a.jwtIssuer))
	}

	switch {
	case a.noAuthUID != "":
		logging.Default().Warn("Running in no-auth mode (development only)", "user_id", a.noAuthUID)
		return usecase.NewNoAuthn(a.noAuthUID, a.noAuthUID+"@localhost", a.noAuthUID), nil

	case a.jwksURL != "":
		authn, err := usecase.NewJWTAuthn(ctx, a.jwksURL, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure JWKS authentication")
		}
		logging.Default().Info("JWT authentication enabled", "jwks_url", a.jwksURL)
		return authn, nil

	case a.jwtSecret != "":
		authn, err := usecase.NewJWTAuthnHMAC(a.jwtSecret, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure HMAC authentication")
		}
		logging.Default().Info("JWT authentication enabled (HMAC)")
		return authn, nil

	default:
		return nil, goerr.New("one of jwks-url, jwt-secret, or no-auth is required")
	}
}

// LogValue masks the secret when the config is logged
func (a Authn) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("jwks_url", a.jwksURL),
		slog.String("jwt_issuer", a.jwtIssuer),
		slog.Bool("jwt_secret_set", a.jwtSecret != ""),
		slog.String("no_auth", a.noAuthUID),
	)
}
