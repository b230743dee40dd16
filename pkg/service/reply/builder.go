package reply

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/service/similarity"
	"github.com/inventry-dev/inventry/pkg/service/suggestion"
	"github.com/inventry-dev/inventry/pkg/utils/logging"
)

// Fallback texts composed when the suggestion service is unavailable.
// The counted variant is a literal template; tests assert the exact output.
const (
	fallbackWithPatentsFmt = "I found %d similar patents related to your idea. Please review them above for insights on prior art and potential areas of novelty."
	fallbackUnavailable    = "I apologize, but the AI analysis service is currently unavailable. Please try again later."
	fallbackEmpty          = "I apologize, but I was unable to generate a response at this time. Please try again later."
)

const (
	defaultSearchTimeout  = 10 * time.Second
	defaultSuggestTimeout = 25 * time.Second
)

// Builder orchestrates one turn's downstream pipeline: similarity search
// first, then suggestion generation conditioned on its result. The two
// calls are independent failure domains; losing either still yields a
// coherent assistant message.
type Builder struct {
	similarity     similarity.Service
	suggestion     suggestion.Service
	searchTimeout  time.Duration
	suggestTimeout time.Duration
}

// Option is a functional option for Builder configuration
type Option func(*Builder)

// WithSearchTimeout bounds the similarity call
func WithSearchTimeout(d time.Duration) Option {
	return func(b *Builder) {
		b.searchTimeout = d
	}
}

// WithSuggestTimeout bounds the suggestion call
func WithSuggestTimeout(d time.Duration) Option {
	return func(b *Builder) {
		b.suggestTimeout = d
	}
}

// New creates a Builder over the two downstream services
func New(sim similarity.Service, sug suggestion.Service, opts ...Option) (*Builder, error) {
	if sim == nil {
		return nil, goerr.New("similarity service is required")
	}
	if sug == nil {
		return nil, goerr.New("suggestion service is required")
	}

	b := &Builder{
		similarity:     sim,
		suggestion:     sug,
		searchTimeout:  defaultSearchTimeout,
		suggestTimeout: defaultSuggestTimeout,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Produce runs the pipeline for one user turn and returns the assistant
// message. Downstream failures never propagate as errors; they only select
// the fallback content.
func (b *Builder) Produce(ctx context.Context, idea string) model.Message {
	patents := b.search(ctx, idea)
	text, sugErr := b.suggest(ctx, idea, patents)
	content := composeContent(text, sugErr, len(patents))
	return model.NewAssistantMessage(content, patents)
}

func (b *Builder) search(ctx context.Context, idea string) []model.Patent {
	searchCtx, cancel := context.WithTimeout(ctx, b.searchTimeout)
	defer cancel()

	patents, err := b.similarity.Search(searchCtx, idea)
	if err != nil {
		logging.From(ctx).Warn("similarity search unavailable, continuing without prior art",
			"error", err.Error())
		return []model.Patent{}
	}
	if patents == nil {
		return []model.Patent{}
	}
	return patents
}

func (b *Builder) suggest(ctx context.Context, idea string, patents []model.Patent) (string, error) {
	suggestCtx, cancel := context.WithTimeout(ctx, b.suggestTimeout)
	defer cancel()

	text, err := b.suggestion.Suggest(suggestCtx, idea, patents)
	if err != nil {
		logging.From(ctx).Warn("suggestion generation unavailable, falling back",
			"error", err.Error())
		return "", err
	}
	return text, nil
}

// composeContent selects the assistant content from the two call outcomes.
// Pure function so the fallback policy is testable without any transport.
func composeContent(text string, sugErr error, patentCount int) string {
	if sugErr != nil {
		if patentCount > 0 {
			return fmt.Sprintf(fallbackWithPatentsFmt, patentCount)
		}
		return fallbackUnavailable
	}
	if text == "" {
		return fallbackEmpty
	}
	return text
}
