package suggestion

import (
	"context"

	"github.com/inventry-dev/inventry/pkg/domain/model"
)

// Service defines the interface for the idea analysis suggestion generator
type Service interface {
	// Suggest produces analysis text for the idea conditioned on the prior
	// art found for the same turn. An empty result is a failure.
	Suggest(ctx context.Context, idea string, patents []model.Patent) (string, error)
}
