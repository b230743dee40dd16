package auth_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/inventry-dev/inventry/pkg/domain/model/auth"
	"github.com/inventry-dev/inventry/pkg/domain/types"
)

func TestToken(t *testing.T) {
	token := auth.NewToken("user_1", "one@example.com", "User One")

	gt.NoError(t, token.Validate()).Required()
	gt.Value(t, token.UserID()).Equal(types.UserID("user_1"))

	gt.Error(t, auth.NewToken("", "x@example.com", "X").Validate())
}

func TestTokenContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		token := auth.NewToken("user_1", "one@example.com", "User One")
		ctx := auth.ContextWithToken(context.Background(), token)

		got, err := auth.TokenFromContext(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Sub).Equal("user_1")
	})

	t.Run("missing token is an error", func(t *testing.T) {
		_, err := auth.TokenFromContext(context.Background())
		gt.Error(t, err)
	})
}
