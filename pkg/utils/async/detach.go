package async

import (
	"context"

	"github.com/inventry-dev/inventry/pkg/utils/logging"
)

// Detached returns a context that is not cancelled when ctx is, while
// preserving its values and logger. Used for work that must run to
// completion even if the requesting client goes away, such as persisting
// an in-flight chat turn.
func Detached(ctx context.Context) context.Context {
	detached := context.WithoutCancel(ctx)
	if logger := logging.From(ctx); logger != nil {
		detached = logging.With(detached, logger)
	}
	return detached
}
