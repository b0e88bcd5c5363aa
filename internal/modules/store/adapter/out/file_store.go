package out

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	storeout "taskflows/internal/modules/store/port/out"
	apperrors "taskflows/internal/platform/errors"
)

// FileKeyValueStore keeps each key in <dir>/<escaped key>.json. Escaping is
// lossless, so distinct keys never share a file.
type FileKeyValueStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileKeyValueStore(dir string) (*FileKeyValueStore, error) {
	if dir == "" {
		return nil, errors.New("empty data dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileKeyValueStore{dir: dir}, nil
}

func (s *FileKeyValueStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

func (s *FileKeyValueStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return raw, nil
}

// Save writes through a temp file and renames it over the old entry.
func (s *FileKeyValueStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tmp, err := os.CreateTemp(s.dir, "entry-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, s.path(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

var _ storeout.KeyValueStore = (*FileKeyValueStore)(nil)
