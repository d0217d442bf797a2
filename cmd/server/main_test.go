package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bptrack/bptrack/internal/config"
)

func TestBuildStoreMemory(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{
		Storage: config.StorageConfig{Backend: config.BackendMemory},
	}

	readingStore, cleanup, err := buildStore(cfg, slog.Default())
	require.NoError(t, err)
	require.NotNil(t, readingStore)
	cleanup()
}

func TestBuildStoreRemote(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"readings":[]}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		Storage: config.StorageConfig{Backend: config.BackendRemote},
		Remote:  config.RemoteConfig{BaseURL: server.URL},
	}

	readingStore, cleanup, err := buildStore(cfg, slog.Default())
	require.NoError(t, err)
	defer cleanup()

	readings, err := readingStore.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, readings)
}

func TestBuildStoreRedisUnreachable(t *testing.T) {
	t.Parallel()
	// Port 1 is never a redis server; the backend must fail fast at startup
	// instead of handing back a store that fails on first use.
	cfg := &config.Config{
		Storage: config.StorageConfig{Backend: config.BackendRedis},
		Cache:   config.CacheConfig{RedisAddr: "127.0.0.1:1"},
	}

	_, _, err := buildStore(cfg, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestBuildStoreUnknownBackend(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{
		Storage: config.StorageConfig{Backend: "sqlite"},
	}

	_, _, err := buildStore(cfg, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}
