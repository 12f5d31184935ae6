// Package session carries the authenticated identity through a request's
// context. It sits below the handlers so every handler package can read
// the identity without importing the middleware.
package session

import (
	"context"

	"github.com/google/uuid"
)

// Session identifies the authenticated user behind a request.
type Session struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

type contextKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the request's session. ok is false on
// unauthenticated requests, which only happens off the protected routes.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}
