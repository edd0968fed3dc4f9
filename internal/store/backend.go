// Package store persists the planner state as named JSON blobs on a
// pluggable backend.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"studyabroad/departure-planner/internal/plannererror"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Backend names
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Backends lists the supported backend names.
var Backends = []string{BackendFile, BackendSQLite, BackendRedis, BackendMemory}

// Backend stores raw blobs by key.
type Backend interface {
	// Get returns the blob for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend     string
	Path        string
	RedisAddr   string
	RedisPrefix string
}

// Open creates the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case BackendFile, "":
		return NewFileBackend(opts.Path)
	case BackendSQLite:
		return NewSQLiteBackend(sqlitePath(opts.Path))
	case BackendRedis:
		return NewRedisBackend(ctx, opts.RedisAddr, opts.RedisPrefix)
	case BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, &plannererror.ConfigError{
			Key:    "store.backend",
			Reason: fmt.Sprintf("unknown backend '%s'", opts.Backend),
		}
	}
}

// sqlitePath swaps a .json store path for a .db one so both backends can share
// the configured default.
func sqlitePath(path string) string {
	if strings.HasSuffix(path, ".json") {
		return strings.TrimSuffix(path, ".json") + ".db"
	}
	return path
}
