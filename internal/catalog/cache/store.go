// internal/catalog/cache/store.go

// Package cache wraps a catalog.Store with a Redis read-through cache for the
// size chart. Products and variants reflect live stock and are never cached.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"fitting-engine/internal/catalog"
	"fitting-engine/internal/common/logger"
	"fitting-engine/internal/common/metrics"
)

const sizesKey = "catalog:sizes"

// Store decorates a catalog.Store. Cache failures degrade to the inner store
// rather than failing the read.
type Store struct {
	inner  catalog.Store
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewStore(inner catalog.Store, rdb *redis.Client, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		inner:  inner,
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "catalog-cache"}),
	}
}

// Sizes serves the size chart from Redis when present, falling back to the
// inner store and repopulating the cache on a miss.
func (s *Store) Sizes(ctx context.Context) ([]catalog.SizeRange, error) {
	if val, err := s.redis.Get(ctx, sizesKey).Result(); err == nil {
		var sizes []catalog.SizeRange
		if uerr := json.Unmarshal([]byte(val), &sizes); uerr == nil {
			metrics.CatalogCacheHits.WithLabelValues("hit").Inc()
			return sizes, nil
		} else {
			s.logger.Warn("discarding undecodable cached size chart", map[string]interface{}{
				"error": uerr.Error(),
			})
		}
	}
	metrics.CatalogCacheHits.WithLabelValues("miss").Inc()

	sizes, err := s.inner.Sizes(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(sizes); err == nil {
		if err := s.redis.Set(ctx, sizesKey, data, s.ttl).Err(); err != nil {
			s.logger.Warn("failed to cache size chart", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return sizes, nil
}

func (s *Store) Products(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	return s.inner.Products(ctx, filter)
}

func (s *Store) AvailableVariants(ctx context.Context, productID uuid.UUID) ([]catalog.Variant, error) {
	return s.inner.AvailableVariants(ctx, productID)
}

// Invalidate drops the cached size chart, for callers reacting to catalog
// updates.
func (s *Store) Invalidate(ctx context.Context) error {
	return s.redis.Del(ctx, sizesKey).Err()
}
