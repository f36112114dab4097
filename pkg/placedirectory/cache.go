package placedirectory

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/roamplan/roam/pkg/redis_client"
)

type directoryCache struct {
	Cache *cache.Cache[string]
}

func newDirectoryCache() *directoryCache {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(90*time.Minute))

	return &directoryCache{
		Cache: cache.New[string](redisStore),
	}
}

func (c *directoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.Cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	return []byte(value), nil
}

func (c *directoryCache) Set(ctx context.Context, key string, value []byte) {
	c.Cache.Set(ctx, key, string(value))
}
