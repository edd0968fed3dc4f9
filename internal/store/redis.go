package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"studyabroad/departure-planner/internal/plannererror"
)

const redisDialTimeout = 3 * time.Second

// RedisBackend stores blobs as plain string keys under a prefix.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend connects to addr and verifies the server answers.
func NewRedisBackend(ctx context.Context, addr, prefix string) (*RedisBackend, error) {
	if addr == "" {
		return nil, &plannererror.ConfigError{Key: "store.redis_addr", Reason: "must not be empty"}
	}

	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: redisDialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, &plannererror.StoreError{Backend: BackendRedis, Op: "ping", Err: err}
	}

	return newRedisBackendWithClient(client, prefix), nil
}

func newRedisBackendWithClient(client *redis.Client, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

func (r *RedisBackend) key(key string) string {
	return r.prefix + key
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &plannererror.StoreError{Backend: BackendRedis, Op: "get", Key: key, Err: err}
	}
	return val, true, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return &plannererror.StoreError{Backend: BackendRedis, Op: "set", Key: key, Err: err}
	}
	return nil
}

func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return &plannererror.StoreError{Backend: BackendRedis, Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}
