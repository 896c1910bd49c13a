// Package auth carries the caller's marketplace bearer token through the
// request context. The gateway never mints or verifies tokens; it forwards
// whatever credential the frontend obtained from the auth provider.
package auth

import (
	"context"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
)

type tokenKey struct{}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// ContextTokenSource yields the request's bearer token. Its absence means
// the user is not signed in.
type ContextTokenSource struct{}

func (ContextTokenSource) Token(ctx context.Context) (string, error) {
	token, ok := FromContext(ctx)
	if !ok {
		return "", domain.ErrNotSignedIn
	}
	return token, nil
}
