package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load,
// e.g. BPTRACK_SERVER_PORT maps to server.port.
const envPrefix = "BPTRACK"

// Load reads configuration from environment variables and optionally a
// config file. Environment variables take precedence over values from
// config files. Returns a populated Config struct or an error if loading
// or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8078)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("storage.backend", BackendPostgres)
	v.SetDefault("cache.redis_db", 0)

	// Empty defaults so AutomaticEnv-sourced values survive Unmarshal;
	// viper only unmarshals keys it already knows about.
	v.SetDefault("database.url", "")
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("remote.base_url", "")

	// Optional config file in the working directory
	v.SetConfigName("bptrack")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with BPTRACK_ prefix override everything
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Backend-specific settings are only mandatory when that backend is
	// selected, so these rules span config groups and live here instead of
	// in struct tags.
	switch cfg.Storage.Backend {
	case BackendPostgres:
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("config validation failed: database.url is required for the postgres backend")
		}
	case BackendRedis:
		if cfg.Cache.RedisAddr == "" {
			return nil, fmt.Errorf("config validation failed: cache.redis_addr is required for the redis backend")
		}
	case BackendRemote:
		if cfg.Remote.BaseURL == "" {
			return nil, fmt.Errorf("config validation failed: remote.base_url is required for the remote backend")
		}
	}

	return &cfg, nil
}
