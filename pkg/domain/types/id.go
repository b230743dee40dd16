package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// ChatID represents a unique identifier for a chat
type ChatID string

// NewChatID generates a new random ChatID
func NewChatID() ChatID {
	return ChatID(uuid.New().String())
}

// Validate checks if the ChatID is valid
func (x ChatID) Validate() error {
	if x == "" {
		return goerr.New("chat ID cannot be empty")
	}
	return nil
}

// String returns the string representation of ChatID
func (x ChatID) String() string {
	return string(x)
}

// UserID represents the identifier of an authenticated chat owner
type UserID string

// Validate checks if the UserID is valid
func (x UserID) Validate() error {
	if x == "" {
		return goerr.New("user ID cannot be empty")
	}
	return nil
}

// String returns the string representation of UserID
func (x UserID) String() string {
	return string(x)
}
