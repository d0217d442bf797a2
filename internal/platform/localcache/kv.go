// Package localcache implements the local key-value variant of the reading
// store: the whole reading set lives as one serialized JSON blob under a
// single fixed key.
package localcache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned by KV implementations when the key is absent.
// The local store treats an absent key as an empty reading set.
var ErrKeyNotFound = errors.New("key not found")

// KV is the minimal key-value surface the local store needs. It exists so
// the read-modify-write semantics can be exercised against a map-backed
// double in tests while production uses Redis.
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value atomically.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// RedisKV implements KV over a Redis client.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV creates a KV backed by the given Redis client.
func NewRedisKV(client *redis.Client) *RedisKV {
	if client == nil {
		panic("client cannot be nil")
	}
	return &RedisKV{client: client}
}

// Ensure RedisKV implements the KV interface
var _ KV = (*RedisKV)(nil)

// Get implements KV.Get.
func (kv *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := kv.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return val, nil
}

// Set implements KV.Set. Values are stored without expiry; the reading set
// is durable state, not a cache entry.
func (kv *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return kv.client.Set(ctx, key, value, 0).Err()
}

// Delete implements KV.Delete.
func (kv *RedisKV) Delete(ctx context.Context, key string) error {
	return kv.client.Del(ctx, key).Err()
}
