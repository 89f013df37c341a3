package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oakfieldhq/oakfield/internal/cache"
	"github.com/oakfieldhq/oakfield/internal/models"
	"github.com/oakfieldhq/oakfield/pkg/logger"
	"github.com/oakfieldhq/oakfield/pkg/metrics"
)

// CollectionCacheKey is the single key under which the whole property
// collection is cached. There is deliberately no per-record keying.
const CollectionCacheKey = "all_properties"

// DefaultCacheTTL is the collection snapshot lifetime.
const DefaultCacheTTL = 3600 * time.Second

// CacheStats is the introspection payload returned by Stats.
type CacheStats struct {
	CacheKey      string `json:"cache_key"`
	IsCached      bool   `json:"is_cached"`
	CachedCount   int    `json:"cached_count"`
	DatabaseCount int64  `json:"database_count"`
	CacheBackend  string `json:"cache_backend"`
	CacheTimeout  string `json:"cache_timeout"`
}

// ListingCacheService is the cache-aside accessor for the property
// collection: reads check the cache first and fall back to the store,
// repopulating the cache with a TTL. Concurrent misses may each query the
// store; last write wins, which is harmless since values are idempotent
// snapshots.
type ListingCacheService struct {
	store      cache.Store
	properties PropertyReader
	ttl        time.Duration
	log        *zap.Logger
}

// NewListingCacheService wires the cache backend and the store accessor.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewListingCacheService(store cache.Store, properties PropertyReader, ttl time.Duration) (*ListingCacheService, error) {
	if store == nil {
		return nil, errors.New("listing cache service: cache store is required")
	}
	if properties == nil {
		return nil, errors.New("listing cache service: property reader is required")
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ListingCacheService{
		store:      store,
		properties: properties,
		ttl:        ttl,
		log:        logger.WithModule("listing_cache"),
	}, nil
}

// GetAllProperties returns the property collection, serving the cached
// snapshot when present and reading through to the store otherwise.
func (s *ListingCacheService) GetAllProperties(ctx context.Context) ([]models.Property, error) {
	if s == nil {
		return nil, errors.New("listing cache service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	raw, ok, err := s.store.Get(ctx, CollectionCacheKey)
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if ok {
		properties, err := decodeSnapshot(raw)
		if err != nil {
			return nil, err
		}
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		s.log.Debug("cache hit", zap.Int("count", len(properties)))
		return properties, nil
	}

	metrics.CacheLookups.WithLabelValues("miss").Inc()
	s.log.Debug("cache miss, reading store")

	properties, err := s.properties.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(properties)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.store.Set(ctx, CollectionCacheKey, encoded, s.ttl); err != nil {
		return nil, fmt.Errorf("cache set: %w", err)
	}

	s.log.Debug("cache populated",
		zap.Int("count", len(properties)),
		zap.Duration("ttl", s.ttl),
	)
	return properties, nil
}

// IsCached reports whether a collection snapshot is currently present.
// The lookup does not count as a hit for any metric.
func (s *ListingCacheService) IsCached(ctx context.Context) (bool, error) {
	if s == nil {
		return false, errors.New("listing cache service: service not initialised")
	}

	_, ok, err := s.store.Get(ensuredContext(ctx), CollectionCacheKey)
	if err != nil {
		return false, fmt.Errorf("cache get: %w", err)
	}
	return ok, nil
}

// Invalidate removes the collection snapshot. Deleting an absent key is a
// no-op, so repeated invalidations succeed identically.
func (s *ListingCacheService) Invalidate(ctx context.Context) error {
	if s == nil {
		return errors.New("listing cache service: service not initialised")
	}

	if err := s.store.Delete(ensuredContext(ctx), CollectionCacheKey); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}

	metrics.CacheInvalidations.Inc()
	s.log.Info("cache invalidated", zap.String("key", CollectionCacheKey))
	return nil
}

// Stats performs a fresh cache lookup and a fresh store count and reports
// both. The lookup here is introspective and does not count as a hit.
func (s *ListingCacheService) Stats(ctx context.Context) (CacheStats, error) {
	if s == nil {
		return CacheStats{}, errors.New("listing cache service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	stats := CacheStats{
		CacheKey:     CollectionCacheKey,
		CacheBackend: s.store.Backend(),
		CacheTimeout: ttlLabel(s.ttl),
	}

	raw, ok, err := s.store.Get(ctx, CollectionCacheKey)
	if err != nil {
		return CacheStats{}, fmt.Errorf("cache get: %w", err)
	}
	if ok {
		cached, err := decodeSnapshot(raw)
		if err != nil {
			return CacheStats{}, err
		}
		stats.IsCached = true
		stats.CachedCount = len(cached)
	}

	storeCount, err := s.properties.Count(ctx)
	if err != nil {
		return CacheStats{}, err
	}
	stats.DatabaseCount = storeCount

	return stats, nil
}

// TTL exposes the configured snapshot lifetime.
func (s *ListingCacheService) TTL() time.Duration {
	return s.ttl
}

// TTLLabel renders the snapshot lifetime in the human form used by
// introspection payloads, e.g. "1 hour (3600 seconds)".
func (s *ListingCacheService) TTLLabel() string {
	return ttlLabel(s.ttl)
}

// Backend exposes the cache backend label.
func (s *ListingCacheService) Backend() string {
	return s.store.Backend()
}

func decodeSnapshot(raw []byte) ([]models.Property, error) {
	var properties []models.Property
	if err := json.Unmarshal(raw, &properties); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return properties, nil
}

func ttlLabel(ttl time.Duration) string {
	seconds := int64(ttl.Seconds())

	switch {
	case seconds >= 3600 && seconds%3600 == 0:
		hours := seconds / 3600
		if hours == 1 {
			return fmt.Sprintf("1 hour (%d seconds)", seconds)
		}
		return fmt.Sprintf("%d hours (%d seconds)", hours, seconds)
	case seconds >= 60 && seconds%60 == 0:
		minutes := seconds / 60
		if minutes == 1 {
			return fmt.Sprintf("1 minute (%d seconds)", seconds)
		}
		return fmt.Sprintf("%d minutes (%d seconds)", minutes, seconds)
	default:
		return fmt.Sprintf("%d seconds", seconds)
	}
}
