package module

import (
	"context"

	"crashlens/internal/services/api/collisions/domain"
	colsvc "crashlens/internal/services/api/collisions/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptCollisionsPort struct{ svc colsvc.Service }

// Query returns the rows matching the combined criteria
func (a adaptCollisionsPort) Query(ctx context.Context, in domain.QueryInput) (domain.QueryResult, error) {
	return a.svc.Query(ctx, in)
}

// Summarize computes aggregate metrics over the matching rows
func (a adaptCollisionsPort) Summarize(ctx context.Context, in domain.QueryInput) (domain.SummaryResult, error) {
	return a.svc.Summarize(ctx, in)
}

// Parse exposes the free-text query parser
func (a adaptCollisionsPort) Parse(ctx context.Context, in domain.ParseInput) (domain.ParseResult, error) {
	return a.svc.Parse(ctx, in)
}

// Options returns the distinct values of one column
func (a adaptCollisionsPort) Options(ctx context.Context, column string) (domain.OptionsResult, error) {
	return a.svc.Options(ctx, column)
}

// Columns lists the canonical columns present in the snapshot
func (a adaptCollisionsPort) Columns(ctx context.Context) (domain.ColumnsResult, error) {
	return a.svc.Columns(ctx)
}
