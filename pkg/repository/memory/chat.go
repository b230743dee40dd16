package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/domain/types"
)

type chatRepository struct {
	mu    sync.RWMutex
	chats map[types.ChatID]*model.Chat
}

func newChatRepository() *chatRepository {
	return &chatRepository{
		chats: make(map[types.ChatID]*model.Chat),
	}
}

func (r *chatRepository) Create(ctx context.Context, chat *model.Chat) (*model.Chat, error) {
	if err := chat.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid chat")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.chats[chat.ID]; exists {
		return nil, goerr.New("chat already exists", goerr.V("id", chat.ID))
	}

	now := time.Now().UTC()
	created := chat.Clone()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.chats[created.ID] = created
	return created.Clone(), nil
}

func (r *chatRepository) Get(ctx context.Context, userID types.UserID, chatID types.ChatID) (*model.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chat, exists := r.chats[chatID]
	if !exists || chat.UserID != userID {
		return nil, goerr.Wrap(types.ErrNotFound, "chat not found", goerr.V("id", chatID))
	}

	return chat.Clone(), nil
}

func (r *chatRepository) ListByUser(ctx context.Context, userID types.UserID) ([]*model.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chats := make([]*model.Chat, 0)
	for _, chat := range r.chats {
		if chat.UserID == userID {
			chats = append(chats, chat.Clone())
		}
	}

	sort.Slice(chats, func(i, j int) bool {
		return chats[i].UpdatedAt.After(chats[j].UpdatedAt)
	})

	return chats, nil
}

func (r *chatRepository) Update(ctx context.Context, chat *model.Chat) (*model.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.chats[chat.ID]
	if !exists || existing.UserID != chat.UserID {
		return nil, goerr.Wrap(types.ErrNotFound, "chat not found", goerr.V("id", chat.ID))
	}

	updated := chat.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.chats[updated.ID] = updated
	return updated.Clone(), nil
}

func (r *chatRepository) Delete(ctx context.Context, userID types.UserID, chatID types.ChatID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.chats[chatID]
	if !exists || existing.UserID != userID {
		return goerr.Wrap(types.ErrNotFound, "chat not found", goerr.V("id", chatID))
	}

	delete(r.chats, chatID)
	return nil
}
