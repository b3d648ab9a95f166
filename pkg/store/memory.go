package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store.
type Memory struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]Record)}
}

func (s *Memory) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if rec.IsExpired() {
		s.mu.Lock()
		delete(s.records, id)
		s.mu.Unlock()
		return nil, nil
	}
	return &rec, nil
}

func (s *Memory) Set(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = *rec
	return nil
}

func (s *Memory) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

func (s *Memory) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rec := range s.records {
		if rec.IsExpired() {
			delete(s.records, id)
		}
	}
	return nil
}

// Len returns the number of stored records, expired ones included.
func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Memory) Close() error { return nil }

var _ Store = (*Memory)(nil)
