package similarity

import (
	"context"

	"github.com/inventry-dev/inventry/pkg/domain/model"
)

// Service defines the interface for the prior-art similarity search
type Service interface {
	// Search returns patents similar to the given idea description.
	// An empty result is a valid outcome, not an error.
	Search(ctx context.Context, idea string) ([]model.Patent, error)
}
