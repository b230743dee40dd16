package interfaces

import (
	"context"

	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	Chat() ChatRepository

	Close() error
}

// ChatRepository defines the interface for chat transcript persistence.
// All read and mutate operations take the owner's UserID; a mismatch
// between the given owner and the stored owner behaves exactly like a
// missing record (types.ErrNotFound).
type ChatRepository interface {
	// Create persists a new chat. Timestamps are assigned here.
	Create(ctx context.Context, chat *model.Chat) (*model.Chat, error)

	// Get retrieves a chat by owner and ID
	Get(ctx context.Context, userID types.UserID, chatID types.ChatID) (*model.Chat, error)

	// ListByUser retrieves all chats of an owner, newest updated first
	ListByUser(ctx context.Context, userID types.UserID) ([]*model.Chat, error)

	// Update replaces the stored name and the whole messages sequence and
	// advances UpdatedAt. The document is written as one unit; concurrent
	// writers to the same chat follow last-writer-wins semantics.
	Update(ctx context.Context, chat *model.Chat) (*model.Chat, error)

	// Delete permanently removes a chat. No tombstone is kept.
	Delete(ctx context.Context, userID types.UserID, chatID types.ChatID) error
}
