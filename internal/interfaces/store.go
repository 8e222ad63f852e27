package interfaces

import "context"

//go:generate mockgen -package=mock -source=store.go -destination=mock/store.go

// Store is a durable string key-value store
type Store interface {
	// Set writes value under key, overwriting any prior value
	Set(ctx context.Context, key, value string) error

	// Get returns the value and found flag; a missing key is not an error
	Get(ctx context.Context, key string) (string, bool, error)

	// Remove deletes key; removing a missing key is not an error
	Remove(ctx context.Context, key string) error

	// Clear removes every key owned by this store
	Clear(ctx context.Context) error

	// Close releases the underlying resources
	Close() error
}
