package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/domain/types"
)

// AppendTurn runs one full conversation turn: load the chat, append the
// user message, produce the assistant reply via the downstream pipeline,
// and persist both as one transcript write.
//
// When the persistence write fails after the reply was produced, the
// computed assistant message is returned alongside the ErrStorage error.
// Callers must not re-run AppendTurn for the same turn, which would repeat
// downstream side effects; retry only the write via PersistTurn with the
// already-computed messages.
func (uc *ChatUseCase) AppendTurn(ctx context.Context, userID types.UserID, chatID types.ChatID, prompt string) (*model.Message, error) {
	idea := strings.TrimSpace(prompt)
	if idea == "" {
		return nil, goerr.Wrap(ErrValidation, "prompt cannot be empty", goerr.V(ChatIDKey, chatID))
	}
	if uc.replier == nil {
		return nil, goerr.New("reply pipeline is not configured")
	}

	chat, err := uc.repo.Chat().Get(ctx, userID, chatID)
	if err != nil {
		return nil, mapRepoErr(err, chatID)
	}

	userMsg := model.NewUserMessage(idea)
	assistantMsg := uc.replier.Produce(ctx, idea)

	chat.Messages = append(chat.Messages, userMsg, assistantMsg)
	if _, err := uc.repo.Chat().Update(ctx, chat); err != nil {
		return &assistantMsg, goerr.Wrap(ErrStorage, "failed to persist turn",
			goerr.V(ChatIDKey, chatID), goerr.V("cause", err.Error()))
	}

	return &assistantMsg, nil
}

// PersistTurn appends already-computed messages to the transcript without
// touching the downstream services. It is the remedial path for a storage
// failure reported by AppendTurn.
func (uc *ChatUseCase) PersistTurn(ctx context.Context, userID types.UserID, chatID types.ChatID, msgs ...model.Message) error {
	if len(msgs) == 0 {
		return goerr.Wrap(ErrValidation, "no messages to persist", goerr.V(ChatIDKey, chatID))
	}
	for _, m := range msgs {
		if m.Pending {
			return goerr.Wrap(ErrValidation, "pending placeholder must not be persisted",
				goerr.V(ChatIDKey, chatID))
		}
	}

	chat, err := uc.repo.Chat().Get(ctx, userID, chatID)
	if err != nil {
		return mapRepoErr(err, chatID)
	}

	chat.Messages = append(chat.Messages, msgs...)
	if _, err := uc.repo.Chat().Update(ctx, chat); err != nil {
		return mapRepoErr(err, chatID)
	}

	return nil
}
