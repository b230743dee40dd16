package usecase

import (
	"context"

	"github.com/inventry-dev/inventry/pkg/domain/model/auth"
)

// NoAuthn provides authentication as a fixed user (for development/testing)
type NoAuthn struct {
	sub   string
	email string
	name  string
}

// NewNoAuthn creates a NoAuthn instance with the specified user info
func NewNoAuthn(sub, email, name string) *NoAuthn {
	return &NoAuthn{
		sub:   sub,
		email: email,
		name:  name,
	}
}

// Verify always returns the configured identity regardless of credential
func (a *NoAuthn) Verify(ctx context.Context, credential string) (*auth.Token, error) {
	return auth.NewToken(a.sub, a.email, a.name), nil
}

// IsNoAuthn returns true for NoAuthn
func (a *NoAuthn) IsNoAuthn() bool {
	return true
}
