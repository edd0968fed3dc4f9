package store

import (
	"context"
	"encoding/json"
	"sync"

	"studyabroad/departure-planner/internal/fileutils"
	"studyabroad/departure-planner/internal/models"
	"studyabroad/departure-planner/internal/plannererror"
)

// FileBackend keeps every blob in a single JSON document on disk.
type FileBackend struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// NewFileBackend loads the document at path. A missing file starts empty; an
// unreadable document is logged and replaced on the next write.
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		return nil, &plannererror.ConfigError{Key: "store.path", Reason: "must not be empty"}
	}

	b := &FileBackend{path: path, data: make(map[string]json.RawMessage)}
	if !fileutils.FileExists(path) {
		return b, nil
	}

	raw, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, &plannererror.StoreError{Backend: BackendFile, Op: "open", Err: err}
	}
	if len(raw) == 0 {
		return b, nil
	}
	if err := json.Unmarshal(raw, &b.data); err != nil {
		log.WithField("file_path", path).WithError(err).Warn("Ignoring malformed store file")
		b.data = make(map[string]json.RawMessage)
	}
	return b, nil
}

// Path returns the document location.
func (b *FileBackend) Path() string {
	return b.path
}

func (b *FileBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	value, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (b *FileBackend) Set(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !json.Valid(value) {
		return &plannererror.StoreError{Backend: BackendFile, Op: "set", Key: key, Err: errInvalidJSON}
	}
	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	b.data[key] = stored
	return b.flush(key, "set")
}

func (b *FileBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.data[key]; !ok {
		return nil
	}
	delete(b.data, key)
	return b.flush(key, "delete")
}

func (b *FileBackend) Close() error {
	return nil
}

// flush must be called with mu held.
func (b *FileBackend) flush(key, op string) error {
	raw, err := json.MarshalIndent(b.data, "", "  ")
	if err != nil {
		return &plannererror.StoreError{Backend: BackendFile, Op: op, Key: key, Err: err}
	}
	if err := fileutils.WriteFile(b.path, raw, models.PermissionConfigFile); err != nil {
		return &plannererror.StoreError{Backend: BackendFile, Op: op, Key: key, Err: err}
	}
	return nil
}
