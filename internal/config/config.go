package config

// Backend names accepted for storage.backend.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendRemote   = "remote"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage"  validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Remote   RemoteConfig   `mapstructure:"remote"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig selects which reading store backs the API server:
// postgres (row-per-reading), redis (single-blob local cache variant),
// remote (proxy to another readings collection), or memory (dev/test).
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=postgres memory redis remote"`
}

// DatabaseConfig contains all database-related configuration settings.
// The URL is required when the postgres backend is selected; Load enforces
// that cross-group rule since it spans two config groups.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// CacheConfig contains settings for the redis backend. The address is
// required when that backend is selected; Load enforces the cross-group
// rule.
type CacheConfig struct {
	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db"   validate:"gte=0"`
}

// RemoteConfig contains settings for the remote backend. The base URL is
// required when that backend is selected; Load enforces the cross-group
// rule.
type RemoteConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}
