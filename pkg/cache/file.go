package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache persists layout documents under a directory, the default backend
// for CLI runs. Each entry is one JSON file named by the hash of its cache
// key and fanned out into 256 subdirectories by the hash's first byte, so a
// long-lived cache of layouts never piles thousands of files into one
// directory.
//
// There is no background sweeper: a layout result is only ever read back
// through Get, so expiry is checked there and stale files are removed on
// first touch. `lattica cache clear` handles bulk cleanup.
type FileCache struct {
	dir string
}

// fileEntry is the on-disk form: the cached bytes plus the deadline after
// which Get treats the file as gone. A zero deadline never expires.
type fileEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewFileCache opens (creating if needed) a file cache rooted at dir.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get reads an entry, reporting a miss for absent, expired, or undecodable
// files. Expired and undecodable files are deleted on the way out.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	p := c.entryPath(key)

	raw, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = os.Remove(p)
		return nil, false, nil
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(p)
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set writes an entry, creating its fan-out subdirectory as needed. A
// non-positive ttl stores the entry without a deadline.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	p := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	return os.WriteFile(p, raw, 0644)
}

// Delete removes an entry; a missing entry is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; file handles are not held between calls.
func (c *FileCache) Close() error {
	return nil
}

// entryPath maps a cache key to dir/<hash[:2]>/<hash[2:]>.json. Keys are
// hashed so arbitrary key text (option structs, URLs) never reaches the
// filesystem.
func (c *FileCache) entryPath(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
