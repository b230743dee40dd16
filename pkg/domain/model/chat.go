package model

import (
	"time"

	"github.com/inventry-dev/inventry/pkg/domain/types"
)

// DefaultChatName is the display label assigned to a chat at creation
const DefaultChatName = "New Chat"

// Chat represents an owned, append-only conversation transcript.
// The messages sequence only grows; entries are never reordered or
// mutated in place once appended.
type Chat struct {
	ID        types.ChatID  `firestore:"-" json:"id"`
	UserID    types.UserID  `firestore:"user_id" json:"userId"`
	Name      string        `firestore:"name" json:"name"`
	Messages  []Message     `firestore:"messages" json:"messages"`
	CreatedAt time.Time     `firestore:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `firestore:"updated_at" json:"updatedAt"`
}

// NewChat creates an empty chat owned by userID with a fresh ID and the
// default name. Timestamps are assigned by the repository on create.
func NewChat(userID types.UserID) *Chat {
	return &Chat{
		ID:       types.NewChatID(),
		UserID:   userID,
		Name:     DefaultChatName,
		Messages: []Message{},
	}
}

// Validate checks structural integrity of the chat
func (c *Chat) Validate() error {
	if err := c.ID.Validate(); err != nil {
		return err
	}
	if err := c.UserID.Validate(); err != nil {
		return err
	}
	return nil
}

// Clone returns a deep copy of the chat
func (c *Chat) Clone() *Chat {
	messages := make([]Message, len(c.Messages))
	for i, m := range c.Messages {
		messages[i] = m.Clone()
	}

	return &Chat{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Messages:  messages,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
