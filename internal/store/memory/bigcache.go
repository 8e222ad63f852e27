package memory

import (
	"context"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"go-booking-cache/internal/config"
	"go-booking-cache/internal/interfaces"
	"go-booking-cache/internal/metrics"
	"go-booking-cache/internal/periodictask"
)

const backendName = "memory"

// lifeWindow is long enough that bigcache never ages out the booking slot.
// Expiry is checked by the retrieval policy, not by the store.
const lifeWindow = 365 * 24 * time.Hour

// Ensure BigCacheStore implements interfaces.Store
var _ interfaces.Store = (*BigCacheStore)(nil)

// BigCacheStore implements an in-process store using BigCache.
// Contents do not survive a restart.
type BigCacheStore struct {
	cache     *bigcache.BigCache
	logger    *zap.Logger
	statsTask *periodictask.PeriodicTask
}

// NewBigCacheStore creates a new BigCacheStore instance
func NewBigCacheStore(memoryCfg *config.MemoryConfig, statsInterval time.Duration, logger *zap.Logger) (*BigCacheStore, error) {
	cfg := bigcache.DefaultConfig(lifeWindow)
	cfg.Shards = 16
	cfg.CleanWindow = 0 // no background eviction
	cfg.HardMaxCacheSize = memoryCfg.Size // MB
	cfg.MaxEntriesInWindow = 64
	cfg.MaxEntrySize = 4 * 1024
	cfg.Verbose = false

	cache, err := bigcache.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	s := &BigCacheStore{
		cache:  cache,
		logger: logger,
	}

	// Start periodic stats collection
	s.statsTask = periodictask.New(statsInterval, s.updateMetrics)
	s.statsTask.Start()
	s.updateMetrics()

	return s, nil
}

// Set stores value under key
func (s *BigCacheStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.cache.Set(key, []byte(value))
}

// Get retrieves value by key
func (s *BigCacheStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := s.cache.Get(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Remove deletes key; a missing key is not an error
func (s *BigCacheStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.cache.Delete(key)
	if err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		return err
	}
	return nil
}

// Clear drops every entry
func (s *BigCacheStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.cache.Reset()
}

// Close stops stats collection and closes the cache
func (s *BigCacheStore) Close() error {
	if s.statsTask != nil {
		s.statsTask.Stop()
	}
	return s.cache.Close()
}

// updateMetrics publishes capacity and entry count
func (s *BigCacheStore) updateMetrics() {
	metrics.UpdateStoreStats(backendName, int64(s.cache.Capacity()), int64(s.cache.Len()))
	s.logger.Debug("Updated memory store metrics",
		zap.Int("capacity", s.cache.Capacity()),
		zap.Int("entries", s.cache.Len()))
}
