package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/inventry-dev/inventry/pkg/domain/types"
	"github.com/inventry-dev/inventry/pkg/usecase"
)

func TestNoAuthn(t *testing.T) {
	sub := "dev-user"
	email := "dev@example.com"
	name := "Dev User"

	authn := usecase.NewNoAuthn(sub, email, name)

	t.Run("Verify returns the fixed identity regardless of credential", func(t *testing.T) {
		ctx := context.Background()

		for _, credential := range []string{"", "anything", "Bearer junk"} {
			token, err := authn.Verify(ctx, credential)
			gt.NoError(t, err).Required()

			gt.Value(t, token.Sub).Equal(sub)
			gt.Value(t, token.Email).Equal(email)
			gt.Value(t, token.Name).Equal(name)
			gt.Value(t, token.UserID()).Equal(types.UserID(sub))
		}
	})

	t.Run("IsNoAuthn returns true", func(t *testing.T) {
		gt.Bool(t, authn.IsNoAuthn()).True()
	})
}

func TestNoAuthnImplementsInterface(t *testing.T) {
	var _ usecase.Authn = usecase.NewNoAuthn("sub", "email", "name")
}
