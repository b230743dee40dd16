package usecase

import (
	"context"

	"github.com/inventry-dev/inventry/pkg/domain/interfaces"
	"github.com/inventry-dev/inventry/pkg/domain/model"
)

// Replier produces the assistant message for one user turn. Implemented by
// reply.Builder; abstracted here so the chat use case can be tested with a
// stub pipeline.
type Replier interface {
	Produce(ctx context.Context, idea string) model.Message
}

type UseCases struct {
	repo interfaces.Repository
	Chat *ChatUseCase
}

type Option func(*UseCases)

func New(repo interfaces.Repository, replier Replier, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Chat = NewChatUseCase(repo, replier)

	return uc
}
