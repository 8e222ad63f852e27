package interfaces

import (
	"context"

	"go-booking-cache/internal/models"
)

//go:generate mockgen -package=mock -source=cache.go -destination=mock/cache.go

// BookingCache persists exactly one booking record in a single fixed slot
type BookingCache interface {
	Save(ctx context.Context, record models.BookingRecord) error
	Load(ctx context.Context) (*models.BookingRecord, bool, error) // returns record and found flag
	Clear(ctx context.Context) error
}
