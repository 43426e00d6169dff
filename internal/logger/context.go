package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

var requestIDKey ctxKey

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// FromCtx returns the global logger tagged with the request id when the
// context carries one.
func FromCtx(ctx context.Context) *zap.Logger {
	rid := RequestIDFrom(ctx)
	if rid == "" {
		return L()
	}
	return L().With(zap.String("request_id", rid))
}
