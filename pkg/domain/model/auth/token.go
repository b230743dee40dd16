package auth

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/inventry-dev/inventry/pkg/domain/types"
)

// Token represents a verified identity for the current request. It is
// produced by the authentication layer and carried through the request
// context; everything below the transport boundary trusts Sub as the
// chat owner.
type Token struct {
	Sub   string
	Email string
	Name  string
}

// NewToken creates a new verified identity token
func NewToken(sub, email, name string) *Token {
	return &Token{
		Sub:   sub,
		Email: email,
		Name:  name,
	}
}

// Validate checks if the token carries a usable identity
func (t *Token) Validate() error {
	if t.Sub == "" {
		return goerr.New("token subject is required")
	}
	return nil
}

// UserID returns the owner identifier derived from the token subject
func (t *Token) UserID() types.UserID {
	return types.UserID(t.Sub)
}

type ctxTokenKey struct{}

// ContextWithToken embeds the verified token into the context
func ContextWithToken(ctx context.Context, token *Token) context.Context {
	return context.WithValue(ctx, ctxTokenKey{}, token)
}

// TokenFromContext extracts the verified token from the context. It returns
// an error when the request has not been authenticated.
func TokenFromContext(ctx context.Context) (*Token, error) {
	token, ok := ctx.Value(ctxTokenKey{}).(*Token)
	if !ok || token == nil {
		return nil, goerr.New("no verified identity in context")
	}
	return token, nil
}
