// Package modkit provides module wiring and core deps
package modkit

import (
	"crashlens/internal/platform/config"
	"crashlens/internal/platform/logger"
	"crashlens/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log  logger.Logger
	Cfg  config.Conf
	Data *store.Snapshot
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the snapshot
func (d Deps) ZeroOK() bool { return true }
