// Package repo provides snapshot access for collisions
package repo

import (
	"context"

	"crashlens/internal/core/dataset"
	"crashlens/internal/core/filter"
	"crashlens/internal/platform/store"

	perr "crashlens/internal/platform/errors"
)

// Repo is the minimal read surface for the collision snapshot
type Repo interface {
	SnapshotID() string
	Columns(ctx context.Context) []string
	Filter(ctx context.Context, spec filter.Spec) (*dataset.Dataset, error)
	Distinct(ctx context.Context, column string) ([]string, error)
}

type snapshotRepo struct{ snap *store.Snapshot }

// NewSnapshot wires a loaded snapshot to the repo
func NewSnapshot(snap *store.Snapshot) Repo {
	if snap == nil {
		panic("collisions.Repo requires a non nil snapshot")
	}
	return &snapshotRepo{snap: snap}
}

func (r *snapshotRepo) SnapshotID() string { return r.snap.ID().String() }

func (r *snapshotRepo) Columns(_ context.Context) []string {
	return r.snap.Dataset().Columns()
}

func (r *snapshotRepo) Filter(ctx context.Context, spec filter.Spec) (*dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "filter canceled")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return filter.Apply(r.snap.Dataset(), spec), nil
}

func (r *snapshotRepo) Distinct(ctx context.Context, column string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "distinct canceled")
	}
	d := r.snap.Dataset()
	if !d.Has(column) {
		return nil, perr.NotFoundf("column %s not present in snapshot", column)
	}
	return dataset.DistinctValues(d, column), nil
}
