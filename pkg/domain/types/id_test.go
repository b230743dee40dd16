package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/inventry-dev/inventry/pkg/domain/types"
)

func TestChatID(t *testing.T) {
	t.Run("NewChatID generates unique IDs", func(t *testing.T) {
		id1 := types.NewChatID()
		id2 := types.NewChatID()

		gt.NoError(t, id1.Validate())
		gt.NoError(t, id2.Validate())
		gt.Value(t, id1).NotEqual(id2)
	})

	t.Run("empty ID fails validation", func(t *testing.T) {
		gt.Error(t, types.ChatID("").Validate())
	})

	t.Run("String round trip", func(t *testing.T) {
		id := types.ChatID("abc-123")
		gt.S(t, id.String()).Equal("abc-123")
	})
}

func TestUserID(t *testing.T) {
	gt.NoError(t, types.UserID("user_1").Validate())
	gt.Error(t, types.UserID("").Validate())
	gt.S(t, types.UserID("user_1").String()).Equal("user_1")
}
