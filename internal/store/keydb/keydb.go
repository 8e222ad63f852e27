package keydb

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"go-booking-cache/internal/config"
	"go-booking-cache/internal/interfaces"
	"go-booking-cache/internal/metrics"
)

const backendName = "keydb"

// Ensure KeyDBStore implements interfaces.Store
var _ interfaces.Store = (*KeyDBStore)(nil)

// KeyDBStore implements a shared durable store on KeyDB/Redis.
// Keys are namespaced with the configured prefix and written without expiration.
type KeyDBStore struct {
	client interfaces.KeyDbClient
	config *config.Config
	logger *zap.Logger
}

// NewKeyDBStore creates a new KeyDBStore instance with provided client
func NewKeyDBStore(cfg *config.Config, client interfaces.KeyDbClient, logger *zap.Logger) *KeyDBStore {
	return &KeyDBStore{
		client: client,
		config: cfg,
		logger: logger,
	}
}

// Set stores value under key with no expiration
func (ks *KeyDBStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := withTimeout(ctx, ks.config.GetSendTimeout())
	defer cancel()
	defer metrics.TimeStoreOperation("set", backendName)()

	if err := ks.client.Set(ctx, ks.namespaced(key), value, 0).Err(); err != nil {
		ks.logger.Error("Failed to set KeyDB entry", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Get retrieves value by key
func (ks *KeyDBStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := withTimeout(ctx, ks.config.GetReadTimeout())
	defer cancel()
	defer metrics.TimeStoreOperation("get", backendName)()

	value, err := ks.client.Get(ctx, ks.namespaced(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		ks.logger.Error("KeyDB get error", zap.String("key", key), zap.Error(err))
		return "", false, err
	}
	return value, true, nil
}

// Remove deletes key; a missing key is not an error
func (ks *KeyDBStore) Remove(ctx context.Context, key string) error {
	ctx, cancel := withTimeout(ctx, ks.config.GetSendTimeout())
	defer cancel()
	defer metrics.TimeStoreOperation("remove", backendName)()

	if err := ks.client.Del(ctx, ks.namespaced(key)).Err(); err != nil {
		ks.logger.Error("Failed to delete KeyDB entry", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Clear removes every key under the configured prefix
func (ks *KeyDBStore) Clear(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, ks.config.GetSendTimeout())
	defer cancel()
	defer metrics.TimeStoreOperation("clear", backendName)()

	keys, err := ks.client.Keys(ctx, ks.config.Store.KeyDB.KeyPrefix+"*").Result()
	if err != nil {
		ks.logger.Error("Failed to list KeyDB entries", zap.Error(err))
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	if err := ks.client.Del(ctx, keys...).Err(); err != nil {
		ks.logger.Error("Failed to clear KeyDB entries", zap.Int("keys", len(keys)), zap.Error(err))
		return err
	}
	return nil
}

// Close closes the KeyDB connection
func (ks *KeyDBStore) Close() error {
	return ks.client.Close()
}

func (ks *KeyDBStore) namespaced(key string) string {
	return ks.config.Store.KeyDB.KeyPrefix + key
}

// withTimeout bounds ctx by timeout when one is configured
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
