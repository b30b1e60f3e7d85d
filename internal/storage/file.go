package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// File persists all keys in a single JSON document on disk, the closest
// server-side analog to a browser's local storage. Values are stored as
// base64 strings so non-JSON payloads (hints, cached tokens) survive the
// round trip. The whole document is rewritten on every Write via a temp-file
// rename.
type File struct {
	mu     sync.Mutex
	path   string
	data   map[string][]byte
	logger *zap.Logger
}

// NewFile loads (or initializes) the backing file. A file that exists but
// does not parse is treated as empty rather than refusing to start.
func NewFile(path string, logger *zap.Logger) (*File, error) {
	f := &File{
		path:   path,
		data:   make(map[string][]byte),
		logger: logger,
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(raw, &f.data); err != nil {
			logger.Warn("storage file is not valid JSON, starting empty",
				zap.String("path", path), zap.Error(err))
			f.data = make(map[string][]byte)
		}
	}

	logger.Info("file storage ready", zap.String("path", path), zap.Int("keys", len(f.data)))
	return f, nil
}

// Read returns the stored value or ErrNotFound.
func (f *File) Read(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// Write stores value under key and flushes the whole document.
func (f *File) Write(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	f.data[key] = stored
	return f.flushLocked()
}

// Delete removes key and flushes; absent keys are a no-op.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.flushLocked()
}

// Ping verifies the directory that holds the file is reachable.
func (f *File) Ping(context.Context) error {
	dir := filepath.Dir(f.path)
	_, err := os.Stat(dir)
	return err
}

// Close flushes any pending state.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushLocked()
}

func (f *File) flushLocked() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
