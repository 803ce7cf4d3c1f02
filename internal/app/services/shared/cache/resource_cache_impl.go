package cache

import (
	"context"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/app/contracts"
	"time"

	"github.com/goccy/go-json"
)

const listKeyPrefix = "console:list:"

type resourceCache struct {
	redis contracts.RedisRepository
	ttl   time.Duration
}

// NewResourceCache is the shared data-access cache every list screen reads
// through, replacing the per-screen refetching the console used to do.
func NewResourceCache(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.ResourceCache {
	return &resourceCache{
		redis: redisRepository,
		ttl:   time.Duration(internalConfig.Cache.ListTTLInSeconds) * time.Second,
	}
}

func (c *resourceCache) GetList(ctx context.Context, resource string) ([]byte, bool, error) {
	data, err := c.redis.Get(ctx, listKeyPrefix+resource)
	if err != nil {
		return nil, false, err
	}
	if data == "" {
		return nil, false, nil
	}

	// Values are stored JSON-marshalled, so the cached payload is a JSON
	// string wrapping the collection.
	var payload string
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, false, nil
	}
	return []byte(payload), true, nil
}

func (c *resourceCache) SetList(ctx context.Context, resource string, payload []byte) error {
	return c.redis.Set(ctx, listKeyPrefix+resource, string(payload), c.ttl)
}

func (c *resourceCache) Invalidate(ctx context.Context, resource string) error {
	return c.redis.Delete(ctx, listKeyPrefix+resource)
}
