package disk

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"go-booking-cache/internal/config"
	"go-booking-cache/internal/interfaces"
	"go-booking-cache/internal/metrics"
)

const backendName = "badger"

// Ensure BadgerStore implements interfaces.Store
var _ interfaces.Store = (*BadgerStore)(nil)

// BadgerStore implements the on-device durable store on an embedded badger database
type BadgerStore struct {
	db     *badger.DB
	logger *zap.Logger
}

// NewBadgerStore opens (or creates) the badger database described by cfg
func NewBadgerStore(cfg *config.BadgerConfig, logger *zap.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(newBadgerLogger(logger))

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database at %q: %w", cfg.Path, err)
	}

	logger.Info("Opened badger store",
		zap.String("path", cfg.Path),
		zap.Bool("in_memory", cfg.InMemory),
		zap.Bool("sync_writes", cfg.SyncWrites))

	return &BadgerStore{
		db:     db,
		logger: logger,
	}, nil
}

// Set stores value under key
func (bs *BadgerStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer metrics.TimeStoreOperation("set", backendName)()

	return bs.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

// Get retrieves value by key
func (bs *BadgerStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	defer metrics.TimeStoreOperation("get", backendName)()

	var value []byte
	err := bs.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(value), true, nil
}

// Remove deletes key; a missing key is not an error
func (bs *BadgerStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer metrics.TimeStoreOperation("remove", backendName)()

	return bs.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Clear drops every key in the database
func (bs *BadgerStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer metrics.TimeStoreOperation("clear", backendName)()

	return bs.db.DropAll()
}

// Close flushes and closes the database
func (bs *BadgerStore) Close() error {
	return bs.db.Close()
}

// badgerLogger adapts zap.Logger to badger.Logger
type badgerLogger struct {
	sugar *zap.SugaredLogger
}

func newBadgerLogger(logger *zap.Logger) badger.Logger {
	return &badgerLogger{sugar: logger.Named("badger").Sugar()}
}

// Errorf logs an error message
func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Warningf logs a warning message
func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Infof logs badger's info chatter at debug level
func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Debugf logs a debug message
func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}
