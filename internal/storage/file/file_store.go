package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nurshop/storefront/internal/storage"
)

// fileStore keeps one JSON file per key under a directory. It is the default
// backing store, standing in for browser local storage.
type fileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (storage.Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStore) Get(_ context.Context, key string, value any) (bool, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, fmt.Errorf("failed to read key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal data for key %s: %w", key, err)
	}

	return true, nil
}

func (s *fileStore) Set(_ context.Context, key string, value any) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write via a temp file and rename so readers never see a partial document.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}

	return nil
}

func (s *fileStore) Delete(_ context.Context, key string) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}

func (s *fileStore) Close() error {
	return nil
}
