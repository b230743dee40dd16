package client

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/domain/types"
)

// Session is the client-side conversation cache: an optimistic,
// eventually-reconciled mirror of the caller's chats. All local mutation
// goes through it. Speculative state (the user's echoed message and the
// pending assistant placeholder) is rolled back on failure and replaced,
// never merged, by the server's authoritative copy on success.
//
// Session is not safe for concurrent use; it models one user's view.
type Session struct {
	api      API
	identity *Identity
	chats    []*model.Chat
	selected *model.Chat
	notify   func(message string)
}

// SessionOption is a functional option for Session configuration
type SessionOption func(*Session)

// WithNotifier sets the sink for transient, user-visible notifications
func WithNotifier(fn func(message string)) SessionOption {
	return func(s *Session) {
		s.notify = fn
	}
}

// NewSession creates a conversation session over the given API
func NewSession(api API, opts ...SessionOption) *Session {
	s := &Session{
		api:    api,
		notify: func(string) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Identity returns the authenticated caller, available after Load
func (s *Session) Identity() *Identity {
	return s.identity
}

// Chats returns the cached chat list, newest updated first
func (s *Session) Chats() []*model.Chat {
	return s.chats
}

// Selected returns the currently selected chat, or nil
func (s *Session) Selected() *model.Chat {
	return s.selected
}

// Load fetches the caller's identity and chat list, then establishes an
// initial selection. A caller with zero chats gets one created and
// selected automatically.
func (s *Session) Load(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	var identity *Identity
	var chats []*model.Chat

	eg.Go(func() error {
		id, err := s.api.Me(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to fetch identity")
		}
		identity = id
		return nil
	})
	eg.Go(func() error {
		list, err := s.api.ListChats(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to fetch chats")
		}
		chats = list
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	s.identity = identity
	s.chats = chats

	if len(s.chats) == 0 {
		_, err := s.CreateAndSelect(ctx)
		return err
	}
	s.selected = s.chats[0]
	return nil
}

// CreateAndSelect creates a new chat on the server, refreshes the list and
// selects the new chat
func (s *Session) CreateAndSelect(ctx context.Context) (*model.Chat, error) {
	created, err := s.api.CreateChat(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create chat")
	}

	if err := s.refreshList(ctx); err != nil {
		return nil, err
	}

	s.selectByID(created.ID)
	if s.selected == nil {
		// List refresh raced with a concurrent delete; fall back to the
		// created copy we already hold.
		s.selected = created
		s.chats = append([]*model.Chat{created}, s.chats...)
	}
	return s.selected, nil
}

// Select makes the chat with the given ID the current selection
func (s *Session) Select(chatID types.ChatID) error {
	s.selectByID(chatID)
	if s.selected == nil || s.selected.ID != chatID {
		return goerr.New("chat is not in the local list", goerr.V("id", chatID))
	}
	return nil
}

// SendPrompt runs one optimistic turn against the selected chat. The user
// message and a pending placeholder appear locally before the round trip;
// on success the placeholder is replaced by the authoritative assistant
// message and the cache reconciles with the server. On failure all
// speculative state is rolled back and the returned draft carries the
// original input so it is not lost.
func (s *Session) SendPrompt(ctx context.Context, prompt string) (msg *model.Message, draft string, err error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return nil, prompt, goerr.New("prompt is empty")
	}

	if s.selected == nil {
		if _, err := s.CreateAndSelect(ctx); err != nil {
			s.notify("Failed to create a new chat")
			return nil, prompt, err
		}
	}

	base := len(s.selected.Messages)
	s.selected.Messages = append(s.selected.Messages,
		model.NewUserMessage(trimmed),
		model.NewPendingMessage(),
	)

	reply, err := s.api.SendPrompt(ctx, s.selected.ID, trimmed)
	if err != nil {
		// Roll the speculative pair back out and hand the draft back.
		s.selected.Messages = s.selected.Messages[:base]
		s.notify("Failed to send message")
		return nil, prompt, goerr.Wrap(err, "turn failed")
	}

	// Replace the placeholder, never merge into it.
	s.selected.Messages = append(s.selected.Messages[:base+1], *reply)

	if err := s.Reconcile(ctx); err != nil {
		// The turn itself succeeded; drift resolves on the next fetch.
		s.notify("Failed to refresh chats")
	}

	return reply, "", nil
}

// Rename applies a server-confirmed rename to the local list
func (s *Session) Rename(ctx context.Context, chatID types.ChatID, name string) error {
	if err := s.api.RenameChat(ctx, chatID, name); err != nil {
		s.notify("Failed to rename chat")
		return err
	}

	for _, chat := range s.chats {
		if chat.ID == chatID {
			chat.Name = name
		}
	}
	if s.selected != nil && s.selected.ID == chatID {
		s.selected.Name = name
	}
	return nil
}

// Delete removes a chat. Deleting the selection falls back to the next
// available chat, or creates a fresh one when none remain.
func (s *Session) Delete(ctx context.Context, chatID types.ChatID) error {
	if err := s.api.DeleteChat(ctx, chatID); err != nil {
		s.notify("Failed to delete chat")
		return err
	}

	remaining := make([]*model.Chat, 0, len(s.chats))
	for _, chat := range s.chats {
		if chat.ID != chatID {
			remaining = append(remaining, chat)
		}
	}
	s.chats = remaining

	if s.selected != nil && s.selected.ID == chatID {
		s.selected = nil
		if len(s.chats) > 0 {
			s.selected = s.chats[0]
		} else if _, err := s.CreateAndSelect(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Reconcile overwrites the local cache with the server's authoritative
// state, keeping the current selection when it still exists
func (s *Session) Reconcile(ctx context.Context) error {
	var selectedID types.ChatID
	if s.selected != nil {
		selectedID = s.selected.ID
	}

	if err := s.refreshList(ctx); err != nil {
		return err
	}

	if selectedID != "" {
		s.selectByID(selectedID)
	}
	if s.selected == nil && len(s.chats) > 0 {
		s.selected = s.chats[0]
	}
	return nil
}

func (s *Session) refreshList(ctx context.Context) error {
	chats, err := s.api.ListChats(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch chats")
	}
	s.chats = chats
	return nil
}

func (s *Session) selectByID(chatID types.ChatID) {
	s.selected = nil
	for _, chat := range s.chats {
		if chat.ID == chatID {
			s.selected = chat
			return
		}
	}
}
