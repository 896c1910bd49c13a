package ports

import "context"

// TokenSource supplies the caller's bearer token. It is consulted before
// every authenticated upstream call; an error means "not signed in".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
