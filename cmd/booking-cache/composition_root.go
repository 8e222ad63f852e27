package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"go-booking-cache/internal/cache"
	"go-booking-cache/internal/config"
	"go-booking-cache/internal/httpserver"
	"go-booking-cache/internal/interfaces"
	"go-booking-cache/internal/remote"
	"go-booking-cache/internal/retrieval"
	"go-booking-cache/internal/store/disk"
	"go-booking-cache/internal/store/keydb"
	"go-booking-cache/internal/store/memory"
	"go-booking-cache/internal/store/noop"
	"go-booking-cache/internal/timepolicy"
)

// CompositionRoot holds all application dependencies and is the only place
// where they are created and closed.
type CompositionRoot struct {
	// Configuration
	Config   *config.Config
	Logger   *zap.Logger
	logLevel zap.AtomicLevel

	// Storage
	Store interfaces.Store
	Cache interfaces.BookingCache

	// Services
	Remote     interfaces.RemoteSource
	Policy     *timepolicy.Policy
	Manager    *retrieval.Manager
	HTTPServer *httpserver.Server
}

// NewCompositionRoot creates and initializes all application dependencies.
//
// Initialization order:
// 1. Logger (needed by all other components)
// 2. Configuration (log level, store backend, remote source)
// 3. Store and booking cache
// 4. Remote source
// 5. Retrieval manager
// 6. HTTP Server
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{}

	// Initialize logger first
	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Load configuration
	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize storage components
	if err := root.initStorage(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize remote source
	if err := root.initRemote(); err != nil {
		_ = root.Cleanup()
		return nil, fmt.Errorf("failed to initialize remote source: %w", err)
	}

	// Initialize services
	root.initServices()

	return root, nil
}

// initLogger initializes the application logger
func (r *CompositionRoot) initLogger() error {
	zapConfig := zap.NewProductionConfig()
	logger, err := zapConfig.Build()
	if err != nil {
		return err
	}
	r.Logger = logger
	r.logLevel = zapConfig.Level
	return nil
}

// loadConfig loads the application configuration and applies its log level
func (r *CompositionRoot) loadConfig() error {
	configPath := os.Getenv("BOOKING_CONFIG_FILE")
	if configPath == "" {
		configPath = "/app/booking_config.yaml"
	}

	cfg, err := config.LoadConfig(configPath, r.Logger)
	if err != nil {
		return err
	}

	if address := GetListenAddress(); address != "" {
		cfg.Server.Address = address
		cfg.Server.SocketPath = ""
	}

	if err := r.logLevel.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	r.Config = cfg
	return nil
}

// initStorage initializes the key-value store and the booking cache over it
func (r *CompositionRoot) initStorage() error {
	store, err := r.newStore()
	if err != nil {
		return err
	}
	r.Store = store
	r.Cache = cache.NewBookingCache(r.Store, r.Logger)
	return nil
}

// newStore creates the store for the configured backend
func (r *CompositionRoot) newStore() (interfaces.Store, error) {
	storeCfg := &r.Config.Store

	switch storeCfg.Backend {
	case config.BackendBadger:
		store, err := disk.NewBadgerStore(&storeCfg.Badger, r.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger store: %w", err)
		}
		r.Logger.Info("Badger store initialized",
			zap.String("path", storeCfg.Badger.Path),
			zap.Bool("in_memory", storeCfg.Badger.InMemory))
		return store, nil

	case config.BackendKeyDB:
		keydbURL := GetKeyDBURL(r.Logger)

		keydbClient, err := keydb.NewRedisKeyDbClient(r.Config, keydbURL, r.Logger)
		if err != nil {
			r.Logger.Warn("Failed to connect to KeyDB, falling back to no store",
				zap.String("keydb_url", keydbURL),
				zap.Error(err))
			return noop.NewNoOpStore(), nil
		}

		r.Logger.Info("KeyDB store initialized", zap.String("keydb_url", keydbURL))
		return keydb.NewKeyDBStore(r.Config, keydbClient, r.Logger), nil

	case config.BackendMemory:
		store, err := memory.NewBigCacheStore(&storeCfg.Memory, r.Config.GetStatsInterval(), r.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create memory store: %w", err)
		}
		r.Logger.Info("Memory store initialized", zap.Int("size_mb", storeCfg.Memory.Size))
		return store, nil

	default:
		r.Logger.Info("Booking store disabled")
		return noop.NewNoOpStore(), nil
	}
}

// initRemote initializes the remote booking source
func (r *CompositionRoot) initRemote() error {
	remoteCfg := &r.Config.Remote

	if remoteCfg.Kind == config.RemoteHTTP {
		r.Remote = remote.NewHTTPSource(remoteCfg.URL, r.Config.GetFetchTimeout(), r.Logger)
		r.Logger.Info("HTTP remote source initialized",
			zap.String("url", remoteCfg.URL),
			zap.Duration("timeout", r.Config.GetFetchTimeout()))
		return nil
	}

	var (
		source *remote.FixtureSource
		err    error
	)
	if remoteCfg.FixturePath != "" {
		source, err = remote.NewFixtureSourceFromFile(remoteCfg.FixturePath, r.Config.GetFetchDelay(), r.Logger)
	} else {
		source, err = remote.NewFixtureSource(r.Config.GetFetchDelay(), r.Logger)
	}
	if err != nil {
		return err
	}

	r.Remote = source
	r.Logger.Info("Fixture remote source initialized",
		zap.String("fixture_path", remoteCfg.FixturePath),
		zap.Duration("delay", r.Config.GetFetchDelay()))
	return nil
}

// initServices initializes the retrieval manager and the HTTP server
func (r *CompositionRoot) initServices() {
	r.Policy = timepolicy.New(nil)
	r.Manager = retrieval.NewManager(r.Cache, r.Remote, r.Policy, r.Logger)
	r.HTTPServer = httpserver.NewServer(r.Manager, r.Policy, r.Logger)
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	var errors []error

	// Close store
	if r.Store != nil {
		if err := r.Store.Close(); err != nil {
			errors = append(errors, fmt.Errorf("failed to close store: %w", err))
		}
	}

	// Sync logger
	if r.Logger != nil {
		if err := r.Logger.Sync(); err != nil {
			errors = append(errors, fmt.Errorf("failed to sync logger: %w", err))
		}
	}

	// Return first error if any
	if len(errors) > 0 {
		return errors[0]
	}

	return nil
}
