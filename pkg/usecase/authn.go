package usecase

import (
	"context"

	"github.com/inventry-dev/inventry/pkg/domain/model/auth"
)

// Authn verifies the identity credential presented with a request.
// Identity issuance itself is an external collaborator; this layer only
// checks a bearer credential and extracts the owner identity.
type Authn interface {
	// Verify checks the raw bearer credential and returns the verified
	// identity, or an error when the credential is missing or invalid.
	Verify(ctx context.Context, credential string) (*auth.Token, error)

	// IsNoAuthn reports whether authentication is disabled (development)
	IsNoAuthn() bool
}
