// Package filestore persists each key as a JSON file under a data
// directory. It survives restarts without requiring external services.
package filestore

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"threadz/internal/domain/repository"
	"threadz/internal/errors"
)

type store struct {
	dir string
}

// New creates a file-backed store rooted at dir, creating it if needed.
func New(dir string) (repository.KVStore, error) {
	if dir == "" {
		return nil, errors.New("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create data directory")
	}

	return &store{dir: dir}, nil
}

func (s *store) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read key %q", key)
	}

	return data, nil
}

func (s *store) Set(_ context.Context, key string, value []byte) error {
	path := s.path(key)

	// Write to a temp file then rename so readers never see a partial write.
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.Wrapf(err, "write key %q", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.Wrapf(err, "close temp file for key %q", key)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return errors.Wrapf(err, "commit key %q", key)
	}

	return nil
}

func (s *store) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "delete key %q", key)
	}

	return nil
}

// path maps a key to a filename. Keys are expected to be simple
// identifiers; anything outside [a-zA-Z0-9._-] is hex-escaped so a key
// can never traverse out of the data directory.
func (s *store) path(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteString(hex.EncodeToString([]byte{c}))
		}
	}

	return filepath.Join(s.dir, b.String()+".json")
}
