package remote

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"go-booking-cache/internal/interfaces"
	"go-booking-cache/internal/models"
)

// DefaultDelay is the simulated network latency of the fixture source
const DefaultDelay = 1000 * time.Millisecond

//go:embed fixtures/booking.json
var embeddedBooking []byte

// Ensure FixtureSource implements interfaces.RemoteSource
var _ interfaces.RemoteSource = (*FixtureSource)(nil)

// FixtureSource stands in for the booking backend: it waits a fixed delay
// and then returns a static record.
type FixtureSource struct {
	record models.BookingRecord
	delay  time.Duration
	logger *zap.Logger
}

// NewFixtureSource creates a source serving the embedded fixture
func NewFixtureSource(delay time.Duration, logger *zap.Logger) (*FixtureSource, error) {
	return newFixtureSource(embeddedBooking, delay, logger)
}

// NewFixtureSourceFromFile creates a source serving the fixture stored at path
func NewFixtureSourceFromFile(path string, delay time.Duration, logger *zap.Logger) (*FixtureSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return newFixtureSource(data, delay, logger)
}

func newFixtureSource(data []byte, delay time.Duration, logger *zap.Logger) (*FixtureSource, error) {
	var record models.BookingRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	return &FixtureSource{
		record: record,
		delay:  delay,
		logger: logger,
	}, nil
}

// Fetch waits for the configured delay and returns a copy of the fixture.
// Cancelling ctx aborts the wait with ErrFetch.
func (s *FixtureSource) Fetch(ctx context.Context) (models.BookingRecord, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return models.BookingRecord{}, fmt.Errorf("%w: %w", ErrFetch, ctx.Err())
		}
	} else if err := ctx.Err(); err != nil {
		return models.BookingRecord{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	s.logger.Debug("Served booking fixture",
		zap.String("ship_reference", s.record.ShipReference),
		zap.Duration("delay", s.delay))
	return s.record.Clone(), nil
}
