package sessions

import (
	"context"
	"time"
)

// Session is the authenticated state of one dashboard user. It replaces the authentication flag,
// username and access token that browser clients keep in global storage: callers receive it
// explicitly and pass it to the auth gate and to every backend call.
type Session struct {
	ID            string
	Username      string
	AccessToken   string
	Authenticated bool
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

// IsAuthenticated reports whether the session may access the dashboard at now.
func (s *Session) IsAuthenticated(now time.Time) bool {
	if s == nil {
		return false
	}
	return s.Authenticated && s.Username != "" && s.AccessToken != "" && now.Before(s.ExpiresAt)
}

type ctxKey struct{}

// WithSession attaches s to ctx. It is used between the auth gate and the handlers only.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached by WithSession.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
