// Package utils provides general-purpose helper utilities shared by the
// qa-console packages: type-safe context keys, trace id propagation, the
// resty HTTP client wrapper and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key used to store the request trace id in the context.
// The adapter forwards it to the backend in the X-Trace-ID header.
var TraceIDCtxKey = contextKey("traceID")

// TraceIDHeader is the header carrying the trace id between the consoles and
// the backend.
const TraceIDHeader = "X-Trace-ID"

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id from the context.
//
// Returns ok == false when the value is missing, empty or not a string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
