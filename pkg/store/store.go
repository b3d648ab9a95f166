// Package store keeps the scenes of the HTTP service.
//
// A [Record] holds a scene's source and its current selection; managers
// are rebuilt from records, so any instance sharing a store can serve any
// scene. Backends:
//   - [Memory]: in-process map for a single instance and tests
//   - [RedisStore]: shared storage for multi-instance deployments
//   - [FileStore]: JSON files in a directory
//
// Records expire after their TTL. Get reports expired and missing records
// the same way, as nil with no error.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/menulayout/pkg/scene"
)

// DefaultTTL is how long a scene lives without being written.
const DefaultTTL = time.Hour

// Record is a stored scene.
type Record struct {
	ID        string       `json:"id"`
	Source    string       `json:"source"`
	Format    scene.Format `json:"format"`
	Selected  int          `json:"selected"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at,omitempty"`
}

// New creates a record with a fresh ID. A ttl of zero never expires.
func New(source []byte, format scene.Format, selected int, ttl time.Duration) *Record {
	now := time.Now()
	rec := &Record{
		ID:        uuid.NewString(),
		Source:    string(source),
		Format:    format,
		Selected:  selected,
		CreatedAt: now,
	}
	if ttl > 0 {
		rec.ExpiresAt = now.Add(ttl)
	}
	return rec
}

// IsExpired returns true if the record has expired.
func (r *Record) IsExpired() bool {
	return !r.ExpiresAt.IsZero() && time.Now().After(r.ExpiresAt)
}

// Touch pushes the expiry ttl into the future.
func (r *Record) Touch(ttl time.Duration) {
	if ttl > 0 {
		r.ExpiresAt = time.Now().Add(ttl)
	}
}

// ttl returns the remaining lifetime, or zero for records that never expire.
func (r *Record) ttl() time.Duration {
	if r.ExpiresAt.IsZero() {
		return 0
	}
	return time.Until(r.ExpiresAt)
}

// Store is the interface for scene storage backends.
type Store interface {
	// Get retrieves a record by ID.
	// Returns nil, nil if the record doesn't exist or has expired.
	Get(ctx context.Context, id string) (*Record, error)

	// Set stores a record, replacing any with the same ID.
	Set(ctx context.Context, rec *Record) error

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired records (no-op for Redis).
	Cleanup(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
