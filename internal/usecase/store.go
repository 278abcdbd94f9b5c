package usecase

import (
	"context"
	"time"
)

// Store is the client-local persistent store consumed by the chat and
// proposal usecases. The Redis implementation degrades to a bypass, so every
// method is best-effort from the caller's point of view.
type Store interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	SetAdd(ctx context.Context, key string, ids ...int64) error
	SetRemove(ctx context.Context, key string, ids ...int64) error
	SetMembers(ctx context.Context, key string) ([]int64, error)
}
