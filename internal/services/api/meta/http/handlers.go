// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"crashlens/internal/core/version"
	"crashlens/internal/modkit/httpkit"
	"crashlens/internal/platform/store"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Data        *store.Snapshot
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/dataset", h.dataset)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"crashlens-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"snapshot"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"no dataset snapshot loaded"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"crashlens-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// DatasetResponse reports the loaded snapshot
type DatasetResponse struct {
	SnapshotID string `json:"snapshot_id" example:"0c9c5f3e-4e9b-4c43-9d2f-0a4f1f6b2a10"`
	Source     string `json:"source"      example:"data/collisions.csv"`
	LoadedAt   string `json:"loaded_at"   example:"2025-09-03T13:00:00Z"`
	Rows       int    `json:"rows"        example:"104891"`
	Skipped    int    `json:"skipped"     example:"12"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	snap := ReadyCheck{Name: "snapshot", Status: "ok"}
	switch {
	case h.deps.Data == nil:
		snap = ReadyCheck{Name: "snapshot", Status: "fail", Error: "no dataset snapshot loaded"}
	case h.deps.Data.Dataset().Len() == 0:
		snap = ReadyCheck{Name: "snapshot", Status: "fail", Error: "dataset snapshot is empty"}
	}

	overall := "ok"
	if snap.Status != "ok" {
		overall = "fail"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{snap},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// @Summary Loaded dataset snapshot info
// @Tags Meta
// @Produce json
// @Success 200 type DatasetResponse ok
// @Router /meta/dataset [get]
func (h *handlers) dataset(_ *http.Request) (any, error) {
	d := h.deps.Data
	if d == nil {
		return DatasetResponse{}, nil
	}
	return DatasetResponse{
		SnapshotID: d.ID().String(),
		Source:     d.Source(),
		LoadedAt:   d.LoadedAt().UTC().Format(time.RFC3339),
		Rows:       d.Dataset().Len(),
		Skipped:    d.Skipped(),
	}, nil
}
