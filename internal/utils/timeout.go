package utils

import (
	"context"
	"time"
)

const DefaultRedisTimeout = 2 * time.Second

func WithRedisTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultRedisTimeout)
}
