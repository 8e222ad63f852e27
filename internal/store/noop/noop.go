package noop

import (
	"context"

	"go-booking-cache/internal/interfaces"
)

// Ensure NoOpStore implements interfaces.Store
var _ interfaces.Store = (*NoOpStore)(nil)

// NoOpStore is a no-operation store used when caching is disabled.
// Every read is a miss, so every retrieval goes to the remote source.
type NoOpStore struct{}

// NewNoOpStore creates a new no-operation store instance
func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

// Set does nothing
func (n *NoOpStore) Set(ctx context.Context, key, value string) error {
	return nil
}

// Get always returns a miss
func (n *NoOpStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

// Remove does nothing
func (n *NoOpStore) Remove(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing
func (n *NoOpStore) Clear(ctx context.Context) error {
	return nil
}

// Close does nothing
func (n *NoOpStore) Close() error {
	return nil
}
