// internal/catalog/cache/store_test.go
package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitting-engine/internal/catalog"
	"fitting-engine/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	return mr, redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}

// countingStore records how many times the inner store was hit.
type countingStore struct {
	sizes     []catalog.SizeRange
	sizeCalls int
}

func (s *countingStore) Sizes(ctx context.Context) ([]catalog.SizeRange, error) {
	s.sizeCalls++
	return s.sizes, nil
}

func (s *countingStore) Products(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	return nil, nil
}

func (s *countingStore) AvailableVariants(ctx context.Context, productID uuid.UUID) ([]catalog.Variant, error) {
	return nil, nil
}

func chart() []catalog.SizeRange {
	return []catalog.SizeRange{
		{Name: "S", ChestMin: 80, ChestMax: 90, WaistMin: 65, WaistMax: 75},
		{Name: "M", ChestMin: 90, ChestMax: 100, WaistMin: 75, WaistMax: 85},
	}
}

// ==========================
// Read-Through Cache Tests
// ==========================

func TestSizes_MissPopulatesCache(t *testing.T) {
	mr, rdb := setupRedis(t)
	inner := &countingStore{sizes: chart()}
	store := NewStore(inner, rdb, 5*time.Minute, logger.NewNoOpLogger())

	sizes, err := store.Sizes(context.Background())
	require.NoError(t, err)
	require.Len(t, sizes, 2)
	assert.Equal(t, 1, inner.sizeCalls)

	cached, err := mr.Get("catalog:sizes")
	require.NoError(t, err)

	var decoded []catalog.SizeRange
	require.NoError(t, json.Unmarshal([]byte(cached), &decoded))
	assert.Equal(t, chart(), decoded)
}

func TestSizes_HitSkipsInnerStore(t *testing.T) {
	_, rdb := setupRedis(t)
	inner := &countingStore{sizes: chart()}
	store := NewStore(inner, rdb, 5*time.Minute, logger.NewNoOpLogger())

	_, err := store.Sizes(context.Background())
	require.NoError(t, err)
	sizes, err := store.Sizes(context.Background())
	require.NoError(t, err)

	require.Len(t, sizes, 2)
	assert.Equal(t, 1, inner.sizeCalls, "second read must come from cache")
}

func TestSizes_CorruptCacheFallsThrough(t *testing.T) {
	mr, rdb := setupRedis(t)
	require.NoError(t, mr.Set("catalog:sizes", "{not json"))

	inner := &countingStore{sizes: chart()}
	store := NewStore(inner, rdb, 5*time.Minute, logger.NewNoOpLogger())

	sizes, err := store.Sizes(context.Background())
	require.NoError(t, err)
	require.Len(t, sizes, 2)
	assert.Equal(t, 1, inner.sizeCalls)
}

func TestSizes_ExpiryRefetches(t *testing.T) {
	mr, rdb := setupRedis(t)
	inner := &countingStore{sizes: chart()}
	store := NewStore(inner, rdb, time.Minute, logger.NewNoOpLogger())

	_, err := store.Sizes(context.Background())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Sizes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, inner.sizeCalls)
}

func TestInvalidate_DropsCachedChart(t *testing.T) {
	mr, rdb := setupRedis(t)
	inner := &countingStore{sizes: chart()}
	store := NewStore(inner, rdb, 5*time.Minute, logger.NewNoOpLogger())

	_, err := store.Sizes(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.Invalidate(context.Background()))

	assert.False(t, mr.Exists("catalog:sizes"))
}

func TestSizes_RedisDownDegradesToInnerStore(t *testing.T) {
	mr, rdb := setupRedis(t)
	mr.Close()

	inner := &countingStore{sizes: chart()}
	store := NewStore(inner, rdb, 5*time.Minute, logger.NewNoOpLogger())

	sizes, err := store.Sizes(context.Background())
	require.NoError(t, err)
	require.Len(t, sizes, 2)
	assert.Equal(t, 1, inner.sizeCalls)
}
