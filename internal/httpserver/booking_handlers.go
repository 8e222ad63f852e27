package httpserver

import (
	"net/http"

	"go.uber.org/zap"

	"go-booking-cache/internal/models"
)

// noDataMessage is shown when no booking could be retrieved
const noDataMessage = "No booking data available"

// handleGetBooking serves the booking, preferring a valid cached copy
func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	result, err := s.retriever.GetBooking(r.Context(), false)
	s.writeRetrieval(w, r, result, err)
}

// handleRefreshBooking serves a freshly fetched booking
func (s *Server) handleRefreshBooking(w http.ResponseWriter, r *http.Request) {
	result, err := s.retriever.RefreshBooking(r.Context())
	s.writeRetrieval(w, r, result, err)
}

// handleClearCache empties the booking cache
func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	if err := s.retriever.ClearCache(r.Context()); err != nil {
		s.requestLogger(r.Context()).Error("Failed to clear booking cache", zap.Error(err))
		s.writeErrorResponse(w, "Failed to clear cache", http.StatusInternalServerError)
		return
	}

	s.writeResponse(w, http.StatusOK, &BookingResponse{Success: true})
}

func (s *Server) writeRetrieval(w http.ResponseWriter, r *http.Request, result *models.RetrievalResult, err error) {
	logger := s.requestLogger(r.Context())

	if err != nil || result == nil {
		logger.Error("Failed to retrieve booking", zap.Error(err))
		s.writeErrorResponse(w, noDataMessage, http.StatusBadGateway)
		return
	}

	timeRemaining := s.policy.FormatTimeRemaining(result.Data.ExpiryTime)
	logger.Debug("Booking retrieved",
		zap.String("ship_reference", result.Data.ShipReference),
		zap.String("source", string(result.Source)),
		zap.Bool("is_expired", result.IsExpired),
		zap.String("time_remaining", timeRemaining),
		zap.Int("segments", len(result.Data.Segments)))

	data := result.Data
	s.writeResponse(w, http.StatusOK, &BookingResponse{
		Success:       true,
		Data:          &data,
		Source:        result.Source,
		IsExpired:     result.IsExpired,
		TimeRemaining: timeRemaining,
	})
}
