package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"go-booking-cache/internal/interfaces"
	"go-booking-cache/internal/models"
)

// maxBodySize caps the booking payload read from the backend
const maxBodySize = 1 << 20

// Ensure HTTPSource implements interfaces.RemoteSource
var _ interfaces.RemoteSource = (*HTTPSource)(nil)

// HTTPSource fetches the booking with a GET against a JSON endpoint
type HTTPSource struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewHTTPSource creates a new HTTPSource instance
func NewHTTPSource(url string, timeout time.Duration, logger *zap.Logger) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch retrieves and decodes the booking record
func (s *HTTPSource) Fetch(ctx context.Context) (models.BookingRecord, error) {
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return models.BookingRecord{}, fmt.Errorf("%w: failed to create request: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.BookingRecord{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return models.BookingRecord{}, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	var record models.BookingRecord
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&record); err != nil {
		return models.BookingRecord{}, fmt.Errorf("%w: failed to decode response: %w", ErrFetch, err)
	}

	s.logger.Debug("Fetched booking from backend",
		zap.String("url", s.url),
		zap.String("ship_reference", record.ShipReference),
		zap.Duration("elapsed", time.Since(startTime)))
	return record, nil
}
