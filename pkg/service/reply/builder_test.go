package reply_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/domain/types"
	"github.com/inventry-dev/inventry/pkg/service/reply"
)

type stubSimilarity struct {
	patents []model.Patent
	err     error
}

func (s *stubSimilarity) Search(ctx context.Context, idea string) ([]model.Patent, error) {
	return s.patents, s.err
}

type stubSuggestion struct {
	text    string
	err     error
	gotIdea string
	gotList []model.Patent
}

func (s *stubSuggestion) Suggest(ctx context.Context, idea string, patents []model.Patent) (string, error) {
	s.gotIdea = idea
	s.gotList = patents
	return s.text, s.err
}

func TestBuilderProduce(t *testing.T) {
	ctx := context.Background()

	twoPatents := []model.Patent{
		{Title: "Foldable drone frame", PublicationNumber: "US1111111"},
		{Title: "Modular drone arm", PublicationNumber: "US2222222"},
	}

	t.Run("both services succeed", func(t *testing.T) {
		sug := &stubSuggestion{text: "Your idea overlaps with two prior patents."}
		b, err := reply.New(&stubSimilarity{patents: twoPatents}, sug)
		gt.NoError(t, err).Required()

		msg := b.Produce(ctx, "a foldable drone")

		gt.Value(t, msg.Role).Equal(types.RoleAssistant)
		gt.Value(t, msg.Content).Equal("Your idea overlaps with two prior patents.")
		gt.Array(t, msg.Patents).Length(2)
		gt.Value(t, msg.Patents[0].Title).Equal("Foldable drone frame")
		gt.Value(t, sug.gotIdea).Equal("a foldable drone")
		gt.Array(t, sug.gotList).Length(2)
	})

	t.Run("suggestion fails with patents found", func(t *testing.T) {
		sug := &stubSuggestion{err: context.DeadlineExceeded}
		b, err := reply.New(&stubSimilarity{patents: twoPatents}, sug)
		gt.NoError(t, err).Required()

		msg := b.Produce(ctx, "a foldable drone")

		gt.Value(t, msg.Content).Equal("I found 2 similar patents related to your idea. Please review them above for insights on prior art and potential areas of novelty.")
		gt.Array(t, msg.Patents).Length(2)
	})

	t.Run("suggestion fails with no patents", func(t *testing.T) {
		sug := &stubSuggestion{err: context.DeadlineExceeded}
		b, err := reply.New(&stubSimilarity{patents: []model.Patent{}}, sug)
		gt.NoError(t, err).Required()

		msg := b.Produce(ctx, "a foldable drone")

		gt.Value(t, msg.Content).Equal("I apologize, but the AI analysis service is currently unavailable. Please try again later.")
		gt.Array(t, msg.Patents).Length(0)
	})

	t.Run("suggestion returns empty text", func(t *testing.T) {
		sug := &stubSuggestion{text: ""}
		b, err := reply.New(&stubSimilarity{patents: twoPatents}, sug)
		gt.NoError(t, err).Required()

		msg := b.Produce(ctx, "a foldable drone")

		gt.Value(t, msg.Content).Equal("I apologize, but I was unable to generate a response at this time. Please try again later.")
	})

	t.Run("similarity failure degrades to an empty patent list", func(t *testing.T) {
		sug := &stubSuggestion{text: "Analysis without prior art."}
		b, err := reply.New(&stubSimilarity{err: context.DeadlineExceeded}, sug)
		gt.NoError(t, err).Required()

		msg := b.Produce(ctx, "a foldable drone")

		gt.Value(t, msg.Content).Equal("Analysis without prior art.")
		gt.Array(t, msg.Patents).Length(0)
		// The suggestion call still runs, with an empty but non-nil list
		gt.Value(t, sug.gotList).NotNil()
		gt.Array(t, sug.gotList).Length(0)
	})

	t.Run("both services fail", func(t *testing.T) {
		sug := &stubSuggestion{err: context.DeadlineExceeded}
		b, err := reply.New(&stubSimilarity{err: context.DeadlineExceeded}, sug)
		gt.NoError(t, err).Required()

		msg := b.Produce(ctx, "a foldable drone")

		gt.Value(t, msg.Content).Equal("I apologize, but the AI analysis service is currently unavailable. Please try again later.")
		gt.Array(t, msg.Patents).Length(0)
	})

	t.Run("nil patents from search are normalized", func(t *testing.T) {
		sug := &stubSuggestion{text: "ok"}
		b, err := reply.New(&stubSimilarity{patents: nil}, sug)
		gt.NoError(t, err).Required()

		msg := b.Produce(ctx, "a foldable drone")
		gt.Value(t, msg.Patents).NotNil()
		gt.Array(t, msg.Patents).Length(0)
	})
}

func TestBuilderNew(t *testing.T) {
	t.Run("missing similarity service", func(t *testing.T) {
		_, err := reply.New(nil, &stubSuggestion{})
		gt.Error(t, err)
	})

	t.Run("missing suggestion service", func(t *testing.T) {
		_, err := reply.New(&stubSimilarity{}, nil)
		gt.Error(t, err)
	})
}
