package retrieval

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"go-booking-cache/internal/cache"
	"go-booking-cache/internal/interfaces"
	"go-booking-cache/internal/metrics"
	"go-booking-cache/internal/models"
	"go-booking-cache/internal/timepolicy"
)

// Ensure Manager implements interfaces.BookingRetriever
var _ interfaces.BookingRetriever = (*Manager)(nil)

// Manager decides on every read whether the cached booking can be trusted,
// falls back to the remote source when it can't and persists what it fetched.
type Manager struct {
	cache  interfaces.BookingCache
	remote interfaces.RemoteSource
	policy *timepolicy.Policy
	logger *zap.Logger
}

// NewManager creates a new retrieval manager. A nil policy uses the wall clock.
func NewManager(bookingCache interfaces.BookingCache, remote interfaces.RemoteSource, policy *timepolicy.Policy, logger *zap.Logger) *Manager {
	if policy == nil {
		policy = timepolicy.New(nil)
	}
	return &Manager{
		cache:  bookingCache,
		remote: remote,
		policy: policy,
		logger: logger,
	}
}

// GetBooking returns the cached booking while it is still valid. Otherwise,
// or when forceRefresh is set, it fetches from the remote source and saves
// the result. Cache failures are logged and never surface to the caller; a
// fetch failure is returned as is.
func (m *Manager) GetBooking(ctx context.Context, forceRefresh bool) (*models.RetrievalResult, error) {
	if !forceRefresh {
		if result := m.fromCache(ctx); result != nil {
			metrics.RecordRetrieval(string(result.Source), false, false)
			return result, nil
		}
	}

	record, err := m.fetch(ctx)
	if err != nil {
		return nil, err
	}

	// Expired records are saved too
	if err := m.cache.Save(ctx, record); err != nil {
		m.logger.Warn("Failed to save booking to cache",
			zap.String("ship_reference", record.ShipReference),
			zap.Error(err))
		metrics.RecordCacheError("save", errorKind(err))
	}

	expired := m.policy.IsExpired(record.ExpiryTime)
	if expired {
		m.logger.Info("Remote source returned an expired booking",
			zap.String("ship_reference", record.ShipReference),
			zap.String("expiry_time", record.ExpiryTime.String()))
	}
	metrics.RecordRetrieval(string(models.SourceService), forceRefresh, expired)

	return &models.RetrievalResult{
		Data:      record,
		Source:    models.SourceService,
		IsExpired: expired,
	}, nil
}

// RefreshBooking bypasses the cache read and always fetches
func (m *Manager) RefreshBooking(ctx context.Context) (*models.RetrievalResult, error) {
	return m.GetBooking(ctx, true)
}

// ClearCache empties the cache slot
func (m *Manager) ClearCache(ctx context.Context) error {
	if err := m.cache.Clear(ctx); err != nil {
		m.logger.Error("Failed to clear booking cache", zap.Error(err))
		metrics.RecordCacheError("clear", errorKind(err))
		return err
	}

	m.logger.Info("Booking cache cleared")
	return nil
}

// fromCache returns a result for a fresh cached booking, or nil when the
// slot is empty, expired or unreadable.
func (m *Manager) fromCache(ctx context.Context) *models.RetrievalResult {
	record, found, err := m.cache.Load(ctx)
	if err != nil {
		m.logger.Warn("Failed to load booking from cache, falling back to remote source", zap.Error(err))
		metrics.RecordCacheError("load", errorKind(err))
		return nil
	}
	if !found || record == nil {
		m.logger.Debug("No cached booking")
		return nil
	}

	if m.policy.IsExpired(record.ExpiryTime) {
		m.logger.Debug("Cached booking expired",
			zap.String("ship_reference", record.ShipReference),
			zap.String("expiry_time", record.ExpiryTime.String()))
		metrics.RecordStaleCacheHit()
		return nil
	}

	return &models.RetrievalResult{
		Data:      *record,
		Source:    models.SourceCache,
		IsExpired: false,
	}
}

func (m *Manager) fetch(ctx context.Context) (models.BookingRecord, error) {
	timer := metrics.TimeFetch()
	defer timer()

	record, err := m.remote.Fetch(ctx)
	if err != nil {
		m.logger.Error("Failed to fetch booking", zap.Error(err))
		metrics.RecordFetchError()
		return models.BookingRecord{}, err
	}

	m.logger.Debug("Fetched booking",
		zap.String("ship_reference", record.ShipReference),
		zap.Int("segments", len(record.Segments)))
	return record, nil
}

// errorKind maps a cache error to a metrics label
func errorKind(err error) string {
	switch {
	case errors.Is(err, cache.ErrDeserialization):
		return "deserialization"
	case errors.Is(err, cache.ErrStorageRead):
		return "storage_read"
	case errors.Is(err, cache.ErrStorageWrite):
		return "storage_write"
	case errors.Is(err, cache.ErrClear):
		return "clear"
	default:
		return "unknown"
	}
}
