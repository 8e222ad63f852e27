package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Store backends
const (
	BackendBadger = "badger"
	BackendKeyDB  = "keydb"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Remote source kinds
const (
	RemoteFixture = "fixture"
	RemoteHTTP    = "http"
)

var validate = validator.New()

// Config represents the main configuration structure
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Remote RemoteConfig `yaml:"remote"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// ServerConfig configures the HTTP adapter
type ServerConfig struct {
	Address         string `yaml:"address"`
	SocketPath      string `yaml:"socket_path"`
	ShutdownTimeout int    `yaml:"shutdown_timeout"` // milliseconds
}

// StoreConfig selects and configures the durable key-value store
type StoreConfig struct {
	Backend string       `yaml:"backend" validate:"oneof=badger keydb memory none"`
	Badger  BadgerConfig `yaml:"badger"`
	KeyDB   KeyDBConfig  `yaml:"keydb"`
	Memory  MemoryConfig `yaml:"memory"`
}

// BadgerConfig configures the on-disk badger store
type BadgerConfig struct {
	Path       string `yaml:"path" validate:"required_without=InMemory"`
	InMemory   bool   `yaml:"in_memory"`
	SyncWrites bool   `yaml:"sync_writes"`
}

// KeyDBConfig configures the KeyDB/Redis store
type KeyDBConfig struct {
	KeyPrefix  string           `yaml:"key_prefix"`
	Connection ConnectionConfig `yaml:"connection"`
	Keepalive  KeepaliveConfig  `yaml:"keepalive"`
}

// ConnectionConfig holds KeyDB timeouts in milliseconds
type ConnectionConfig struct {
	ConnectTimeout int `yaml:"connect_timeout"`
	SendTimeout    int `yaml:"send_timeout"`
	ReadTimeout    int `yaml:"read_timeout"`
}

// KeepaliveConfig holds KeyDB pool settings
type KeepaliveConfig struct {
	PoolSize       int `yaml:"pool_size"`
	MaxIdleTimeout int `yaml:"max_idle_timeout"` // milliseconds
}

// MemoryConfig configures the in-process BigCache store
type MemoryConfig struct {
	Size          int `yaml:"size"`           // MB
	StatsInterval int `yaml:"stats_interval"` // seconds
}

// RemoteConfig selects and configures the remote booking source
type RemoteConfig struct {
	Kind        string `yaml:"kind" validate:"oneof=fixture http"`
	Delay       int    `yaml:"delay"` // milliseconds, fixture only
	FixturePath string `yaml:"fixture_path"`
	URL         string `yaml:"url" validate:"required_if=Kind http"`
	Timeout     int    `yaml:"timeout"` // milliseconds, http only
}

// Default returns a configuration with every default applied
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// LoadConfig loads configuration from file path. A missing file yields the defaults.
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	var config Config

	file, err := os.Open(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Warn("Configuration file not found, using defaults", zap.String("path", configPath))
	case err != nil:
		return nil, fmt.Errorf("failed to open config file: %w", err)
	default:
		defer func() { _ = file.Close() }()

		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML config: %w", err)
		}
	}

	// Apply defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration after defaults have been applied
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Server.Address == "" && c.Server.SocketPath == "" {
		c.Server.Address = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30000
	}

	if c.Store.Backend == "" {
		c.Store.Backend = BackendBadger
	}
	if c.Store.Badger.Path == "" && !c.Store.Badger.InMemory {
		c.Store.Badger.Path = "/app/data/booking"
	}

	// KeyDB defaults
	if c.Store.KeyDB.KeyPrefix == "" {
		c.Store.KeyDB.KeyPrefix = "booking:"
	}
	if c.Store.KeyDB.Connection.ConnectTimeout == 0 {
		c.Store.KeyDB.Connection.ConnectTimeout = 1000
	}
	if c.Store.KeyDB.Connection.SendTimeout == 0 {
		c.Store.KeyDB.Connection.SendTimeout = 1000
	}
	if c.Store.KeyDB.Connection.ReadTimeout == 0 {
		c.Store.KeyDB.Connection.ReadTimeout = 1000
	}
	if c.Store.KeyDB.Keepalive.PoolSize == 0 {
		c.Store.KeyDB.Keepalive.PoolSize = 10
	}
	if c.Store.KeyDB.Keepalive.MaxIdleTimeout == 0 {
		c.Store.KeyDB.Keepalive.MaxIdleTimeout = 10000
	}

	// Memory defaults
	if c.Store.Memory.Size == 0 {
		c.Store.Memory.Size = 16
	}
	if c.Store.Memory.StatsInterval == 0 {
		c.Store.Memory.StatsInterval = 30
	}

	if c.Remote.Kind == "" {
		c.Remote.Kind = RemoteFixture
	}
	if c.Remote.Delay == 0 {
		c.Remote.Delay = 1000
	}
	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 10000
	}
}

// GetShutdownTimeout returns the graceful shutdown deadline
func (c *Config) GetShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Millisecond
}

// GetConnectTimeout returns the KeyDB connect timeout
func (c *Config) GetConnectTimeout() time.Duration {
	return time.Duration(c.Store.KeyDB.Connection.ConnectTimeout) * time.Millisecond
}

// GetSendTimeout returns the KeyDB send timeout
func (c *Config) GetSendTimeout() time.Duration {
	return time.Duration(c.Store.KeyDB.Connection.SendTimeout) * time.Millisecond
}

// GetReadTimeout returns the KeyDB read timeout
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.Store.KeyDB.Connection.ReadTimeout) * time.Millisecond
}

// GetMaxIdleTimeout returns the KeyDB idle connection timeout
func (c *Config) GetMaxIdleTimeout() time.Duration {
	return time.Duration(c.Store.KeyDB.Keepalive.MaxIdleTimeout) * time.Millisecond
}

// GetStatsInterval returns how often the memory store publishes stats
func (c *Config) GetStatsInterval() time.Duration {
	return time.Duration(c.Store.Memory.StatsInterval) * time.Second
}

// GetFetchDelay returns the simulated latency of the fixture source.
// A negative delay disables it.
func (c *Config) GetFetchDelay() time.Duration {
	if c.Remote.Delay < 0 {
		return 0
	}
	return time.Duration(c.Remote.Delay) * time.Millisecond
}

// GetFetchTimeout returns the HTTP client timeout of the remote source
func (c *Config) GetFetchTimeout() time.Duration {
	return time.Duration(c.Remote.Timeout) * time.Millisecond
}
