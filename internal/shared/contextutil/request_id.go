package contextutil

import "context"

// Unexported key type so other packages cannot collide with it.
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID returns the request ID carried by ctx, or "" when the
// middleware never ran (background jobs, tests).
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects an ID into ctx (also handy in unit tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}
