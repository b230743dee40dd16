package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/inventry-dev/inventry/pkg/domain/interfaces"
	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/domain/types"
)

// ChatUseCase owns all transcript mutation: create/get/list/rename/delete
// plus the append-turn pipeline in turn.go
type ChatUseCase struct {
	repo    interfaces.Repository
	replier Replier
}

func NewChatUseCase(repo interfaces.Repository, replier Replier) *ChatUseCase {
	return &ChatUseCase{
		repo:    repo,
		replier: replier,
	}
}

// mapRepoErr translates repository errors into use case sentinels
func mapRepoErr(err error, chatID types.ChatID) error {
	if errors.Is(err, types.ErrNotFound) {
		return goerr.Wrap(ErrChatNotFound, "chat not found", goerr.V(ChatIDKey, chatID))
	}
	return goerr.Wrap(ErrStorage, "repository operation failed",
		goerr.V(ChatIDKey, chatID), goerr.V("cause", err.Error()))
}

func (uc *ChatUseCase) CreateChat(ctx context.Context, userID types.UserID) (*model.Chat, error) {
	if err := userID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "invalid user ID")
	}

	created, err := uc.repo.Chat().Create(ctx, model.NewChat(userID))
	if err != nil {
		return nil, goerr.Wrap(ErrStorage, "failed to create chat",
			goerr.V(UserIDKey, userID), goerr.V("cause", err.Error()))
	}

	return created, nil
}

func (uc *ChatUseCase) GetChat(ctx context.Context, userID types.UserID, chatID types.ChatID) (*model.Chat, error) {
	chat, err := uc.repo.Chat().Get(ctx, userID, chatID)
	if err != nil {
		return nil, mapRepoErr(err, chatID)
	}
	return chat, nil
}

func (uc *ChatUseCase) ListChats(ctx context.Context, userID types.UserID) ([]*model.Chat, error) {
	chats, err := uc.repo.Chat().ListByUser(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(ErrStorage, "failed to list chats",
			goerr.V(UserIDKey, userID), goerr.V("cause", err.Error()))
	}
	return chats, nil
}

// RenameChat updates the display name. Renaming to the current name is
// accepted and leaves the transcript untouched.
func (uc *ChatUseCase) RenameChat(ctx context.Context, userID types.UserID, chatID types.ChatID, newName string) error {
	name := strings.TrimSpace(newName)
	if name == "" {
		return goerr.Wrap(ErrValidation, "chat name cannot be empty", goerr.V(ChatIDKey, chatID))
	}

	chat, err := uc.repo.Chat().Get(ctx, userID, chatID)
	if err != nil {
		return mapRepoErr(err, chatID)
	}

	chat.Name = name
	if _, err := uc.repo.Chat().Update(ctx, chat); err != nil {
		return mapRepoErr(err, chatID)
	}

	return nil
}

func (uc *ChatUseCase) DeleteChat(ctx context.Context, userID types.UserID, chatID types.ChatID) error {
	if err := uc.repo.Chat().Delete(ctx, userID, chatID); err != nil {
		return mapRepoErr(err, chatID)
	}
	return nil
}
