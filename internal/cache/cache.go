// Package cache stores downloaded artwork on disk with a time-to-live.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/spf13/afero"
)

// Store is a directory of blobs named by key. Entries older than ttl are treated as missing.
type Store struct {
	dir string
	ttl time.Duration
}

// New creates a store rooted at dir. A zero ttl never expires entries.
func New(dir string, ttl time.Duration) *Store {
	return &Store{dir: dir, ttl: ttl}
}

// Key hashes an arbitrary string (usually a URL) into a file-safe key.
func Key(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])
}

func (s *Store) expired(info fs.FileInfo) bool {
	return s.ttl > 0 && time.Since(info.ModTime()) > s.ttl
}

// Read returns the stored blob if it exists and has not expired.
func (s *Store) Read(key string) ([]byte, bool) {
	path := filepath.Join(s.dir, key)

	info, err := filesystem.API().Stat(path)
	if err != nil || s.expired(info) {
		return nil, false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, false
	}

	return data, true
}

// Write stores the blob, replacing any previous one through a temporary file and rename.
func (s *Store) Write(key string, data []byte) error {
	if err := filesystem.API().MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(s.dir, key)
	tmpPath := path + ".tmp"

	if err := filesystem.API().WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return filesystem.API().Rename(tmpPath, path)
}

// CollectGarbage removes expired entries.
func (s *Store) CollectGarbage() error {
	exists, err := filesystem.API().DirExists(s.dir)
	if err != nil || !exists {
		return err
	}

	return afero.Walk(filesystem.API(), s.dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if s.expired(info) {
			_ = filesystem.API().Remove(path)
		}

		return nil
	})
}
