package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// ErrChatNotFound covers both a missing chat and an owner mismatch so
	// that callers cannot probe for existence of other users' chats.
	ErrChatNotFound = errors.New("chat not found")

	// ErrValidation signals an empty or malformed input field
	ErrValidation = errors.New("validation failed")

	// ErrStorage signals a persistence layer failure
	ErrStorage = errors.New("storage failure")
)

// Context keys for error values
const (
	ChatIDKey = "chat_id"
	UserIDKey = "user_id"
)
