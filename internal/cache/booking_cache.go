package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"go-booking-cache/internal/interfaces"
	"go-booking-cache/internal/models"
)

// Key is the single slot holding the cached booking
const Key = "@booking_cache"

// Ensure BookingCache implements interfaces.BookingCache
var _ interfaces.BookingCache = (*BookingCache)(nil)

// BookingCache stores exactly one booking record as JSON under Key.
// It never records freshness; expiry is evaluated by the caller.
type BookingCache struct {
	store  interfaces.Store
	logger *zap.Logger
}

// NewBookingCache creates a BookingCache on top of store
func NewBookingCache(store interfaces.Store, logger *zap.Logger) *BookingCache {
	return &BookingCache{
		store:  store,
		logger: logger,
	}
}

// Save serializes record and overwrites the slot
func (c *BookingCache) Save(ctx context.Context, record models.BookingRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	if err := c.store.Set(ctx, Key, string(payload)); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	c.logger.Debug("Saved booking to cache",
		zap.String("ship_reference", record.ShipReference),
		zap.Int("bytes", len(payload)))
	return nil
}

// Load reads the slot. An empty slot is reported with found=false and no error.
func (c *BookingCache) Load(ctx context.Context) (*models.BookingRecord, bool, error) {
	raw, found, err := c.store.Get(ctx, Key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}
	if !found {
		return nil, false, nil
	}

	var record models.BookingRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}

	return &record, true, nil
}

// Clear removes the slot; clearing an empty slot is not an error
func (c *BookingCache) Clear(ctx context.Context) error {
	if err := c.store.Remove(ctx, Key); err != nil {
		return fmt.Errorf("%w: %w", ErrClear, err)
	}

	c.logger.Debug("Cleared booking cache")
	return nil
}
