package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// FileStore keeps each record as a JSON file in a directory.
type FileStore struct {
	mu      sync.Mutex
	baseDir string
}

// NewFileStore creates a file store in baseDir.
// If baseDir is empty, defaults to ~/.config/menulayout/scenes/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "menulayout", "scenes")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create scene dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// recordPath returns "" for IDs that are not UUIDs, so callers never touch
// paths outside baseDir.
func (s *FileStore) recordPath(id string) string {
	if _, err := uuid.Parse(id); err != nil {
		return ""
	}
	return filepath.Join(s.baseDir, id+".json")
}

// Get returns the record for id, or nil if it is missing or expired.
// Expired records are removed, so Get holds the write lock.
func (s *FileStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.recordPath(id)
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read scene file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse scene record: %w", err)
	}
	if rec.IsExpired() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("remove expired scene file: %w", err)
		}
		return nil, nil
	}
	return &rec, nil
}

func (s *FileStore) Set(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.recordPath(rec.ID)
	if path == "" {
		return fmt.Errorf("invalid record id %q", rec.ID)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write scene file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.recordPath(id)
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove scene file: %w", err)
	}
	return nil
}

func (s *FileStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return fmt.Errorf("read scene dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(s.baseDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		if rec.IsExpired() {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove expired scene file: %w", err)
			}
		}
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for scene files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
