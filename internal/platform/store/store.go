// Package store loads the collision dataset into an immutable in-memory
// snapshot. The snapshot is built once at startup and shared read-only by
// every request; refreshing means building a new snapshot and swapping the
// pointer, never mutating a live one.
package store

import (
	"context"
	"time"

	"crashlens/internal/core/dataset"
	"crashlens/internal/core/schema"
	"crashlens/internal/platform/logger"

	"github.com/google/uuid"
)

// Snapshot is one loaded dataset generation
// zero value is safe but holds no rows
type Snapshot struct {
	// Log is the logger used while loading
	// zero means a no op zerolog logger
	Log logger.Logger

	id       uuid.UUID
	source   string
	loadedAt time.Time
	data     *dataset.Dataset
	skipped  int
}

// ID identifies this snapshot generation
func (s *Snapshot) ID() uuid.UUID { return s.id }

// Source is the path the snapshot was loaded from
func (s *Snapshot) Source() string { return s.source }

// LoadedAt is when the load finished
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Dataset returns the loaded rows; never nil after a successful Open
func (s *Snapshot) Dataset() *dataset.Dataset {
	if s.data == nil {
		return dataset.New(schema.Set{}, nil)
	}
	return s.data
}

// Skipped reports how many malformed rows the loader dropped
func (s *Snapshot) Skipped() int { return s.skipped }

// Open reads the configured source and builds a snapshot
// the context bounds the load, which matters for large exports
func Open(ctx context.Context, cfg Config, opts ...Option) (*Snapshot, error) {
	s := &Snapshot{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// defaults for zero logger to avoid nil checks
	s.Log = s.Log.With().Logger()

	d, skipped, err := loadCSV(ctx, cfg.Data, s.Log)
	if err != nil {
		return nil, err
	}

	s.id = uuid.New()
	s.source = cfg.Data.Path
	s.loadedAt = time.Now().UTC()
	s.data = d
	s.skipped = skipped

	s.Log.Info().
		Str("snapshot_id", s.id.String()).
		Str("source", s.source).
		Int("rows", d.Len()).
		Int("skipped", skipped).
		Msg("dataset snapshot loaded")

	return s, nil
}
