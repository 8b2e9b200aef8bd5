// Package service contains collision query workflows
package service

import (
	"context"

	"crashlens/internal/core/aggregate"
	"crashlens/internal/core/dataset"
	"crashlens/internal/core/filter"
	"crashlens/internal/core/schema"
	"crashlens/internal/core/searchquery"
	"crashlens/internal/services/api/collisions/domain"
	"crashlens/internal/services/api/collisions/repo"

	perr "crashlens/internal/platform/errors"
)

// Service defines the collisions service contract
type Service interface {
	domain.ServicePort
}

// Options tune limits and severity labels without recompiling
type Options struct {
	// MaxRows caps rows returned by Query, 0 means the default
	MaxRows int

	// FatalLabels and NoInjuryLabels override the severity classifier
	FatalLabels    []string
	NoInjuryLabels []string
}

const defaultMaxRows = 500

// Svc implements the collisions service
type Svc struct {
	Repo       repo.Repo
	maxRows    int
	classifier aggregate.Classifier
}

// New constructs a collisions service over a snapshot repo
func New(r repo.Repo, opt Options) *Svc {
	if r == nil {
		panic("collisions.Service requires a non nil Repo")
	}
	maxRows := opt.MaxRows
	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}
	cls := aggregate.DefaultClassifier()
	if len(opt.FatalLabels) > 0 || len(opt.NoInjuryLabels) > 0 {
		fatal := opt.FatalLabels
		if len(fatal) == 0 {
			fatal = []string{"Killed"}
		}
		noInjury := opt.NoInjuryLabels
		if len(noInjury) == 0 {
			noInjury = []string{"Unspecified"}
		}
		cls = aggregate.NewClassifier(fatal, noInjury)
	}
	return &Svc{Repo: r, maxRows: maxRows, classifier: cls}
}

// Query returns the rows matching the combined explicit and parsed criteria
func (s *Svc) Query(ctx context.Context, in domain.QueryInput) (domain.QueryResult, error) {
	d, err := s.filtered(ctx, in)
	if err != nil {
		return domain.QueryResult{}, err
	}

	limit := in.Limit
	if limit <= 0 || limit > s.maxRows {
		limit = s.maxRows
	}

	rows := d.Rows()
	if in.Offset > 0 {
		if in.Offset >= len(rows) {
			rows = nil
		} else {
			rows = rows[in.Offset:]
		}
	}
	capped := rows
	if len(capped) > limit {
		capped = capped[:limit]
	}

	out := domain.QueryResult{
		SnapshotID: s.Repo.SnapshotID(),
		Matched:    d.Len(),
		Returned:   len(capped),
		Summary:    aggregate.Summarize(d, s.classifier),
		Rows:       make([]domain.RecordRow, 0, len(capped)),
	}
	for _, rec := range capped {
		out.Rows = append(out.Rows, rowFrom(rec))
	}
	return out, nil
}

// Summarize computes aggregate metrics over the matching rows
func (s *Svc) Summarize(ctx context.Context, in domain.QueryInput) (domain.SummaryResult, error) {
	d, err := s.filtered(ctx, in)
	if err != nil {
		return domain.SummaryResult{}, err
	}
	return domain.SummaryResult{
		SnapshotID: s.Repo.SnapshotID(),
		Matched:    d.Len(),
		Summary:    aggregate.Summarize(d, s.classifier),
	}, nil
}

// Parse exposes the free-text query parser without touching the dataset
func (s *Svc) Parse(_ context.Context, in domain.ParseInput) (domain.ParseResult, error) {
	q := searchquery.Parse(in.Query)
	return domain.ParseResult{
		Borough:  q.Borough,
		Year:     q.Year,
		Keywords: q.Keywords,
	}, nil
}

// Options returns the distinct values of one canonical column
func (s *Svc) Options(ctx context.Context, column string) (domain.OptionsResult, error) {
	name, ok := schema.NewRegistry().Canonicalize(column)
	if !ok {
		return domain.OptionsResult{}, perr.InvalidArgf("unknown column %q", column)
	}
	vals, err := s.Repo.Distinct(ctx, name)
	if err != nil {
		return domain.OptionsResult{}, err
	}
	return domain.OptionsResult{Column: name, Values: vals}, nil
}

// Columns lists the canonical columns present in the snapshot
func (s *Svc) Columns(ctx context.Context) (domain.ColumnsResult, error) {
	return domain.ColumnsResult{
		SnapshotID: s.Repo.SnapshotID(),
		Columns:    s.Repo.Columns(ctx),
	}, nil
}

// filtered merges explicit and parsed criteria and applies them once
func (s *Svc) filtered(ctx context.Context, in domain.QueryInput) (*dataset.Dataset, error) {
	spec := specFrom(in.Filter)
	merged := filter.Merge(spec, searchquery.Parse(in.Query))
	return s.Repo.Filter(ctx, merged)
}

func specFrom(f domain.FilterInput) filter.Spec {
	return filter.Spec{
		Boroughs:     f.Boroughs,
		Years:        f.Years,
		Months:       f.Months,
		Hours:        f.Hours,
		Injuries:     f.Injuries,
		PersonTypes:  f.PersonTypes,
		VehicleTypes: f.VehicleTypes,
		Factors:      f.Factors,
		Search:       f.Search,
	}
}

func rowFrom(rec dataset.Record) domain.RecordRow {
	return domain.RecordRow{
		Borough:      rec.Borough,
		Year:         rec.Year,
		Month:        rec.Month,
		Hour:         rec.Hour,
		Latitude:     rec.Latitude,
		Longitude:    rec.Longitude,
		CollisionID:  rec.CollisionID,
		PersonType:   rec.PersonType,
		PersonInjury: rec.PersonInjury,
		VehicleType:  rec.VehicleType,
		Factor:       rec.Factor,
	}
}
