// Package filter applies a conjunctive combination of optional criteria to a
// dataset. Every criterion is a no-op when absent or empty; a criterion over
// a column the dataset never had is also a no-op, which keeps the engine
// usable against partial or evolving schemas. Filtering is a pure function of
// (dataset, spec) and preserves the relative order of matching rows.
package filter

import (
	"strings"

	"crashlens/internal/core/dataset"
	"crashlens/internal/core/normalize"
	"crashlens/internal/core/schema"
	"crashlens/internal/core/searchquery"
	perr "crashlens/internal/platform/errors"
)

// Spec is the full set of optional criteria. String-set members compare
// case-insensitively; Search is a case-insensitive substring matched against
// the searchable columns. The zero value matches everything.
type Spec struct {
	Boroughs     []string
	Years        []int
	Months       []int
	Hours        []int
	Injuries     []string
	PersonTypes  []string
	VehicleTypes []string
	Factors      []string
	Search       string
}

// Empty reports whether no criterion narrows the result
func (s Spec) Empty() bool {
	return len(s.Boroughs) == 0 &&
		len(s.Years) == 0 &&
		len(s.Months) == 0 &&
		len(s.Hours) == 0 &&
		len(s.Injuries) == 0 &&
		len(s.PersonTypes) == 0 &&
		len(s.VehicleTypes) == 0 &&
		len(s.Factors) == 0 &&
		strings.TrimSpace(s.Search) == ""
}

// Validate rejects malformed criteria before any scanning happens.
// A blank member inside a string set is a caller bug, not a real filter
// value, so it fails here rather than silently matching nothing mid-scan.
func (s Spec) Validate() error {
	for field, vals := range map[string][]string{
		"boroughs":      s.Boroughs,
		"injuries":      s.Injuries,
		"person_types":  s.PersonTypes,
		"vehicle_types": s.VehicleTypes,
		"factors":       s.Factors,
	} {
		for _, v := range vals {
			if strings.TrimSpace(v) == "" {
				return perr.WithField(
					perr.Newf(perr.ErrorCodeValidation, "%s contains a blank value", field), field)
			}
		}
	}
	for _, y := range s.Years {
		if y <= 0 {
			return perr.WithField(
				perr.Newf(perr.ErrorCodeValidation, "years contains a non-positive year"), "years")
		}
	}
	return nil
}

// Merge fills the gaps of an explicit Spec from a parsed free-text query.
// Explicit criteria win when both constrain the same field; parsed values
// only land on fields the explicit spec leaves empty, and leftover keywords
// become the substring search when no explicit one is set.
func Merge(explicit Spec, q searchquery.ParsedQuery) Spec {
	out := explicit
	if len(out.Boroughs) == 0 && q.Borough != "" {
		out.Boroughs = []string{q.Borough}
	}
	if len(out.Years) == 0 && q.Year != nil {
		out.Years = []int{*q.Year}
	}
	if strings.TrimSpace(out.Search) == "" && len(q.Keywords) > 0 {
		out.Search = strings.Join(q.Keywords, " ")
	}
	return out
}

// Apply returns the subset of d matching every supplied criterion.
// It never mutates d; call Validate on the spec first.
func Apply(d *dataset.Dataset, s Spec) *dataset.Dataset {
	if d == nil || s.Empty() {
		return d
	}

	// Fold set members once, not per row
	boroughs := normalize.FoldSet(s.Boroughs)
	injuries := normalize.FoldSet(s.Injuries)
	personTypes := normalize.FoldSet(s.PersonTypes)
	vehicleTypes := normalize.FoldSet(s.VehicleTypes)
	factors := normalize.FoldSet(s.Factors)
	years := intSet(s.Years)
	months := intSet(s.Months)
	hours := intSet(s.Hours)
	search := normalize.Fold(s.Search)

	// Criteria over columns the dataset never had degrade to always-true
	matchers := make([]func(dataset.Record) bool, 0, 9)

	if len(boroughs) > 0 && d.Has(schema.ColBorough) {
		matchers = append(matchers, func(rec dataset.Record) bool {
			return inFoldSet(boroughs, rec.Borough)
		})
	}
	if len(years) > 0 && d.Has(schema.ColYear) {
		matchers = append(matchers, func(rec dataset.Record) bool {
			return inIntSet(years, rec.Year)
		})
	}
	if len(months) > 0 && d.Has(schema.ColMonth) {
		matchers = append(matchers, func(rec dataset.Record) bool {
			return inIntSet(months, rec.Month)
		})
	}
	if len(hours) > 0 && d.Has(schema.ColHour) {
		matchers = append(matchers, func(rec dataset.Record) bool {
			return inIntSet(hours, rec.Hour)
		})
	}
	if len(injuries) > 0 && d.Has(schema.ColPersonInjury) {
		matchers = append(matchers, func(rec dataset.Record) bool {
			return inFoldSet(injuries, rec.PersonInjury)
		})
	}
	if len(personTypes) > 0 && d.Has(schema.ColPersonType) {
		matchers = append(matchers, func(rec dataset.Record) bool {
			return inFoldSet(personTypes, rec.PersonType)
		})
	}
	if len(vehicleTypes) > 0 && d.Has(schema.ColVehicleType) {
		matchers = append(matchers, func(rec dataset.Record) bool {
			return inFoldSet(vehicleTypes, rec.VehicleType)
		})
	}
	if len(factors) > 0 && d.Has(schema.ColFactor) {
		matchers = append(matchers, func(rec dataset.Record) bool {
			return inFoldSet(factors, rec.Factor)
		})
	}
	if search != "" {
		cols := searchableColumns(d)
		if len(cols) > 0 {
			matchers = append(matchers, func(rec dataset.Record) bool {
				return matchesSearch(rec, cols, search)
			})
		}
	}

	if len(matchers) == 0 {
		return d
	}

	return d.Select(func(rec dataset.Record) bool {
		for _, m := range matchers {
			if !m(rec) {
				return false
			}
		}
		return true
	})
}

// searchableColumns narrows the fixed search column list to what the dataset has
func searchableColumns(d *dataset.Dataset) []string {
	cols := make([]string, 0, 3)
	for _, c := range schema.SearchColumns() {
		if d.Has(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// matchesSearch reports whether ANY searchable column contains the folded
// needle. Blank values never match; they do not fail the row either.
func matchesSearch(rec dataset.Record, cols []string, folded string) bool {
	for _, c := range cols {
		v, ok := rec.Categorical(c)
		if !ok || v == "" {
			continue
		}
		if strings.Contains(normalize.Fold(v), folded) {
			return true
		}
	}
	return false
}

func inFoldSet(set map[string]struct{}, v string) bool {
	if v == "" {
		return false
	}
	_, ok := set[normalize.Fold(v)]
	return ok
}

func intSet(vals []int) map[int]struct{} {
	if len(vals) == 0 {
		return nil
	}
	out := make(map[int]struct{}, len(vals))
	for _, v := range vals {
		out[v] = struct{}{}
	}
	return out
}

// null numeric values are excluded by any set criterion on that column
func inIntSet(set map[int]struct{}, v *int) bool {
	if v == nil {
		return false
	}
	_, ok := set[*v]
	return ok
}
