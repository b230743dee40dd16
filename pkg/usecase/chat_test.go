package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/domain/types"
	"github.com/inventry-dev/inventry/pkg/repository/memory"
	"github.com/inventry-dev/inventry/pkg/usecase"
)

// stubReplier returns a canned assistant message and records the ideas it
// was asked about
type stubReplier struct {
	msg   model.Message
	ideas []string
}

func (r *stubReplier) Produce(ctx context.Context, idea string) model.Message {
	r.ideas = append(r.ideas, idea)
	return r.msg
}

func newTestUseCases(replier usecase.Replier) *usecase.UseCases {
	return usecase.New(memory.New(), replier)
}

func TestCreateChat(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCases(&stubReplier{})

	t.Run("creates an empty chat with the default name", func(t *testing.T) {
		chat, err := uc.Chat.CreateChat(ctx, "user_a")
		gt.NoError(t, err).Required()

		gt.Value(t, chat.Name).Equal("New Chat")
		gt.Value(t, chat.UserID).Equal(types.UserID("user_a"))
		gt.Array(t, chat.Messages).Length(0)
	})

	t.Run("empty user ID is a validation error", func(t *testing.T) {
		_, err := uc.Chat.CreateChat(ctx, "")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})
}

func TestGetChat(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCases(&stubReplier{})

	created, err := uc.Chat.CreateChat(ctx, "user_a")
	gt.NoError(t, err).Required()

	t.Run("owner retrieves the chat", func(t *testing.T) {
		chat, err := uc.Chat.GetChat(ctx, "user_a", created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, chat.ID).Equal(created.ID)
	})

	t.Run("unknown chat maps to ErrChatNotFound", func(t *testing.T) {
		_, err := uc.Chat.GetChat(ctx, "user_a", types.NewChatID())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrChatNotFound)).True()
	})

	t.Run("another user's access maps to ErrChatNotFound", func(t *testing.T) {
		_, err := uc.Chat.GetChat(ctx, "user_b", created.ID)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrChatNotFound)).True()
	})
}

func TestListChats(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCases(&stubReplier{})

	_, err := uc.Chat.CreateChat(ctx, "user_a")
	gt.NoError(t, err).Required()
	_, err = uc.Chat.CreateChat(ctx, "user_a")
	gt.NoError(t, err).Required()
	_, err = uc.Chat.CreateChat(ctx, "user_b")
	gt.NoError(t, err).Required()

	chats, err := uc.Chat.ListChats(ctx, "user_a")
	gt.NoError(t, err).Required()
	gt.Array(t, chats).Length(2)
	for _, chat := range chats {
		gt.Value(t, chat.UserID).Equal(types.UserID("user_a"))
	}
}

func TestRenameChat(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*usecase.UseCases, *model.Chat) {
		uc := newTestUseCases(&stubReplier{})
		chat, err := uc.Chat.CreateChat(ctx, "user_a")
		gt.NoError(t, err).Required()
		return uc, chat
	}

	t.Run("renames and persists", func(t *testing.T) {
		uc, chat := setup(t)
		gt.NoError(t, uc.Chat.RenameChat(ctx, "user_a", chat.ID, "Drone Ideas")).Required()

		got, err := uc.Chat.GetChat(ctx, "user_a", chat.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("Drone Ideas")
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		uc, chat := setup(t)
		gt.NoError(t, uc.Chat.RenameChat(ctx, "user_a", chat.ID, "  Padded  ")).Required()

		got, err := uc.Chat.GetChat(ctx, "user_a", chat.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("Padded")
	})

	t.Run("blank name is a validation error", func(t *testing.T) {
		uc, chat := setup(t)
		err := uc.Chat.RenameChat(ctx, "user_a", chat.ID, "   ")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("renaming to the current name is accepted", func(t *testing.T) {
		uc, chat := setup(t)
		gt.NoError(t, uc.Chat.RenameChat(ctx, "user_a", chat.ID, chat.Name)).Required()
	})

	t.Run("rename never touches the transcript", func(t *testing.T) {
		uc, chat := setup(t)
		_, err := uc.Chat.AppendTurn(ctx, "user_a", chat.ID, "an idea")
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.Chat.RenameChat(ctx, "user_a", chat.ID, "Renamed")).Required()

		got, err := uc.Chat.GetChat(ctx, "user_a", chat.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, got.Messages).Length(2)
	})

	t.Run("another user's rename maps to ErrChatNotFound", func(t *testing.T) {
		uc, chat := setup(t)
		err := uc.Chat.RenameChat(ctx, "user_b", chat.ID, "Stolen")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrChatNotFound)).True()
	})
}

func TestDeleteChat(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCases(&stubReplier{})

	chat, err := uc.Chat.CreateChat(ctx, "user_a")
	gt.NoError(t, err).Required()

	t.Run("another user's delete maps to ErrChatNotFound", func(t *testing.T) {
		err := uc.Chat.DeleteChat(ctx, "user_b", chat.ID)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrChatNotFound)).True()
	})

	t.Run("owner deletes the chat", func(t *testing.T) {
		gt.NoError(t, uc.Chat.DeleteChat(ctx, "user_a", chat.ID)).Required()

		_, err := uc.Chat.GetChat(ctx, "user_a", chat.ID)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrChatNotFound)).True()
	})

	t.Run("double delete maps to ErrChatNotFound", func(t *testing.T) {
		err := uc.Chat.DeleteChat(ctx, "user_a", chat.ID)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrChatNotFound)).True()
	})
}
