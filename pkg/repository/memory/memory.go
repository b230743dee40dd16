package memory

import (
	"github.com/inventry-dev/inventry/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository for development and testing
type Memory struct {
	chat *chatRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		chat: newChatRepository(),
	}
}

func (m *Memory) Chat() interfaces.ChatRepository {
	return m.chat
}

func (m *Memory) Close() error {
	return nil
}
