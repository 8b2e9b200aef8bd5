package store

import "crashlens/internal/platform/logger"

// Option mutates the Snapshot during Open
type Option func(*Snapshot) error

// WithLogger sets the logger used while loading
func WithLogger(l logger.Logger) Option {
	return func(s *Snapshot) error {
		s.Log = l
		return nil
	}
}
