// internal/reqctx/reqctx.go
package reqctx

import (
	"context"

	"authbox/internal/models"
)

type key int

const (
	keyRequestID key = iota
	keyUsername
	keySessionKey
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, keyUsername, username)
}

func GetUsername(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyUsername).(string)
	return v, ok
}

func WithSessionKey(ctx context.Context, k models.SessionKey) context.Context {
	return context.WithValue(ctx, keySessionKey, k)
}

func GetSessionKey(ctx context.Context) (models.SessionKey, bool) {
	v, ok := ctx.Value(keySessionKey).(models.SessionKey)
	return v, ok
}
