// Package utils provides general-purpose helpers shared by the storefront
// client and its development backend: type-safe context keys, trace IDs,
// JSON response writing, HTTP client construction and session JWTs.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user identifier (int64).
	UserIDCtxKey = contextKey("userID")
	// TraceIDCtxKey stores the request trace identifier (string).
	TraceIDCtxKey = contextKey("traceID")
)

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace identifier stored in ctx, or an
// empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
