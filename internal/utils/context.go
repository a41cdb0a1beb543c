// Package utils provides small helpers shared by the transport and service
// layers: typed context keys, random identifiers, cookie header parsing and
// JSON response writing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// other packages' string keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SessionUserCtxKey stores the username resolved from a session cookie by
// the access middleware.
var SessionUserCtxKey = contextKey("sessionUser")

// TraceIDCtxKey stores the request trace id.
var TraceIDCtxKey = contextKey("traceID")

// WithSessionUser returns a copy of ctx carrying the session username.
func WithSessionUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, SessionUserCtxKey, user)
}

// GetSessionUserFromContext returns the session username and whether a
// non-empty one was present.
func GetSessionUserFromContext(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(SessionUserCtxKey).(string)
	return user, ok && user != ""
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id, or "" when none is set.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
