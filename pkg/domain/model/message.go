package model

import (
	"time"

	"github.com/inventry-dev/inventry/pkg/domain/types"
)

// Message is a single entry of a chat transcript. Patents are attached only
// to assistant messages and hold exactly what the similarity search returned
// for the preceding user turn.
//
// Pending marks a client-side placeholder shown while a turn is in flight.
// A pending message must never reach the store, hence the excluded tags.
type Message struct {
	Role      types.MessageRole `firestore:"role" json:"role"`
	Content   string            `firestore:"content" json:"content"`
	Patents   []Patent          `firestore:"patents,omitempty" json:"patents,omitempty"`
	Timestamp time.Time         `firestore:"timestamp" json:"timestamp"`
	Pending   bool              `firestore:"-" json:"-"`
}

// NewUserMessage creates a user message with the current time
func NewUserMessage(content string) Message {
	return Message{
		Role:      types.RoleUser,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// NewAssistantMessage creates an assistant message carrying the similarity
// results of its turn
func NewAssistantMessage(content string, patents []Patent) Message {
	if patents == nil {
		patents = []Patent{}
	}
	return Message{
		Role:      types.RoleAssistant,
		Content:   content,
		Patents:   patents,
		Timestamp: time.Now().UTC(),
	}
}

// NewPendingMessage creates the transient assistant placeholder used by the
// client while waiting for the server's reply
func NewPendingMessage() Message {
	return Message{
		Role:      types.RoleAssistant,
		Content:   "Thinking...",
		Timestamp: time.Now().UTC(),
		Pending:   true,
	}
}

// Clone returns a deep copy of the message
func (m Message) Clone() Message {
	cloned := m
	if m.Patents != nil {
		cloned.Patents = make([]Patent, len(m.Patents))
		for i, p := range m.Patents {
			cloned.Patents[i] = p.Clone()
		}
	}
	return cloned
}
