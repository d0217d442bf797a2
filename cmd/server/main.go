// Command server runs the readings HTTP API: the remote persisted store
// behind the /readings/ collection contract.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/bptrack/bptrack/internal/api"
	"github.com/bptrack/bptrack/internal/config"
	"github.com/bptrack/bptrack/internal/platform/localcache"
	"github.com/bptrack/bptrack/internal/platform/logger"
	"github.com/bptrack/bptrack/internal/platform/memory"
	"github.com/bptrack/bptrack/internal/platform/postgres"
	"github.com/bptrack/bptrack/internal/platform/remoteapi"
	"github.com/bptrack/bptrack/internal/service"
	"github.com/bptrack/bptrack/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"backend", cfg.Storage.Backend)

	readingStore, cleanup, err := buildStore(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	repo, err := service.NewReadingRepository(readingStore, log)
	if err != nil {
		return fmt.Errorf("failed to build reading repository: %w", err)
	}

	handler := api.NewReadingHandler(repo)
	router := newRouter(handler)

	return serve(cfg.Server, log, router)
}

// buildStore constructs the configured ReadingStore and a cleanup function
// releasing its resources.
func buildStore(cfg *config.Config, log *slog.Logger) (store.ReadingStore, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		log.Warn("using in-memory storage, readings will not survive restarts")
		return memory.NewMemoryReadingStore(), func() {}, nil

	case config.BackendPostgres:
		db, err := sql.Open("pgx", cfg.Database.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := runMigrations(db); err != nil {
			return nil, nil, err
		}

		cleanup := func() {
			if err := db.Close(); err != nil {
				log.Error("failed to close database", "error", err)
			}
		}
		return postgres.NewPostgresReadingStore(db, log), cleanup, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}

		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close redis client", "error", err)
			}
		}
		return localcache.NewLocalReadingStore(localcache.NewRedisKV(client), log), cleanup, nil

	case config.BackendRemote:
		return remoteapi.NewRemoteReadingStore(cfg.Remote.BaseURL, log), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
