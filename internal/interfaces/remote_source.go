package interfaces

import (
	"context"

	"go-booking-cache/internal/models"
)

//go:generate mockgen -package=mock -source=remote_source.go -destination=mock/remote_source.go

// RemoteSource fetches the current booking from the backend
type RemoteSource interface {
	Fetch(ctx context.Context) (models.BookingRecord, error)
}
