package httpserver

import "go-booking-cache/internal/models"

// BookingResponse is returned by every booking endpoint
type BookingResponse struct {
	Success       bool                  `json:"success"`
	Data          *models.BookingRecord `json:"data,omitempty"`
	Source        models.Source         `json:"source,omitempty"`
	IsExpired     bool                  `json:"is_expired"`
	TimeRemaining string                `json:"time_remaining,omitempty"`
	Error         string                `json:"error,omitempty"`
}
