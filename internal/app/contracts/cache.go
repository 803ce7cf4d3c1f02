package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ResourceCache keeps one cached collection per resource and is invalidated
// on every mutation of that resource.
type ResourceCache interface {
	GetList(ctx context.Context, resource string) ([]byte, bool, error)
	SetList(ctx context.Context, resource string, payload []byte) error
	Invalidate(ctx context.Context, resource string) error
}
