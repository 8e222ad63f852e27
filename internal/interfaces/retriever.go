package interfaces

import (
	"context"

	"go-booking-cache/internal/models"
)

//go:generate mockgen -package=mock -source=retriever.go -destination=mock/retriever.go

// BookingRetriever is the read contract exposed to the presentation layer
type BookingRetriever interface {
	GetBooking(ctx context.Context, forceRefresh bool) (*models.RetrievalResult, error)
	RefreshBooking(ctx context.Context) (*models.RetrievalResult, error)
	ClearCache(ctx context.Context) error
}
