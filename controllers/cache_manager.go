package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	catalogListCachePrefix = "catalog:v:"
	catalogVersionKey      = "catalog:version"
	defaultCacheTTL        = 5 * time.Minute
)

// CatalogCache caches customer catalog reads in Redis. Writes bump a version
// key so every cached list goes stale at once without key scans.
type CatalogCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCatalogCache creates a CatalogCache.
func NewCatalogCache(rdb *redis.Client, logger *zap.Logger) *CatalogCache {
	return &CatalogCache{redis: rdb, ttl: defaultCacheTTL, logger: logger}
}

// GetList retrieves a cached catalog response.
func (cc *CatalogCache) GetList(ctx context.Context, brand string, page, limit int) (map[string]interface{}, bool) {
	if cc == nil || cc.redis == nil {
		return nil, false
	}
	version, err := cc.version(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cached, err := cc.redis.Get(ctx, cc.listKey(version, brand, page, limit)).Result()
	if err != nil {
		return nil, false
	}

	var response map[string]interface{}
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		cc.logger.Warn("Failed to unmarshal cached catalog list", zap.Error(err))
		return nil, false
	}
	return response, true
}

// SetListAsync caches a catalog response without blocking the request.
func (cc *CatalogCache) SetListAsync(brand string, page, limit int, response map[string]interface{}) {
	if cc == nil || cc.redis == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cc.version(bgCtx)
		if err != nil || version == 0 {
			return
		}

		jsonBytes, err := json.Marshal(response)
		if err != nil {
			cc.logger.Warn("Failed to marshal catalog list for cache", zap.Error(err))
			return
		}
		if err := cc.redis.Set(bgCtx, cc.listKey(version, brand, page, limit), jsonBytes, cc.ttl).Err(); err != nil {
			cc.logger.Warn("Failed to cache catalog list", zap.Error(err))
		}
	}()
}

// Invalidate bumps the catalog version, expiring every cached list.
func (cc *CatalogCache) Invalidate(ctx context.Context) {
	if cc == nil || cc.redis == nil {
		return
	}
	newVersion, err := cc.redis.Incr(ctx, catalogVersionKey).Result()
	if err != nil {
		cc.logger.Error("Failed to invalidate catalog cache", zap.Error(err))
		return
	}
	cc.logger.Info("Catalog cache invalidated", zap.Int64("new_version", newVersion))
}

func (cc *CatalogCache) version(ctx context.Context) (int64, error) {
	const maxRetries = 3

	for i := 0; i < maxRetries; i++ {
		ver, err := cc.redis.Get(ctx, catalogVersionKey).Int64()
		if err == nil && ver > 0 {
			return ver, nil
		}
		if err == redis.Nil {
			if err := cc.redis.Set(ctx, catalogVersionKey, 1, 0).Err(); err == nil {
				return 1, nil
			}
		}
		if i < maxRetries-1 {
			time.Sleep(50 * time.Millisecond)
		}
	}
	return 0, fmt.Errorf("failed to get catalog cache version after %d retries", maxRetries)
}

func (cc *CatalogCache) listKey(version int64, brand string, page, limit int) string {
	return fmt.Sprintf("%s%d:b:%s:p:%d:l:%d", catalogListCachePrefix, version, brand, page, limit)
}
