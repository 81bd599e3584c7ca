package middleware

import (
	"context"

	"github.com/tusharoffice40/Whole-X/pkg/session"
)

type sessionCtxKey struct{}

// WithSession attaches the resolved session to the request context.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, sess)
}

// SessionFromContext returns the session attached by the Session
// middleware, or nil.
func SessionFromContext(ctx context.Context) *session.Session {
	if ctx == nil {
		return nil
	}
	if sess, ok := ctx.Value(sessionCtxKey{}).(*session.Session); ok {
		return sess
	}
	return nil
}
