// Package aggregate computes the display metrics for an already-filtered
// dataset in a single pass. Crash count groups rows by collision identifier;
// the other three metrics are row-level.
package aggregate

import (
	"crashlens/internal/core/dataset"
	"crashlens/internal/core/normalize"
	"crashlens/internal/core/schema"
)

// Summary holds the scalar metrics shown alongside a filtered view.
// Derived values only; recomputed on every filter change.
type Summary struct {
	Crashes    int64 `json:"crashes"    example:"4"`
	Persons    int64 `json:"persons"    example:"10"`
	Injuries   int64 `json:"injuries"   example:"5"`
	Fatalities int64 `json:"fatalities" example:"2"`
}

// Classifier maps injury-severity labels to metric buckets. The label sets
// are dataset-defined, so they are configuration rather than constants.
// Comparison happens on folded labels; a blank or missing severity always
// counts as non-injury regardless of configuration.
type Classifier struct {
	fatal    map[string]struct{}
	noInjury map[string]struct{}
}

// NewClassifier builds a classifier from fatal and no-injury label sets
func NewClassifier(fatal, noInjury []string) Classifier {
	return Classifier{
		fatal:    normalize.FoldSet(fatal),
		noInjury: normalize.FoldSet(noInjury),
	}
}

// DefaultClassifier matches the NYC person-level severity labels
func DefaultClassifier() Classifier {
	return NewClassifier([]string{"Killed"}, []string{"Unspecified"})
}

// Fatal reports whether the severity label denotes a fatal outcome
func (c Classifier) Fatal(severity string) bool {
	if severity == "" {
		return false
	}
	_, ok := c.fatal[normalize.Fold(severity)]
	return ok
}

// Injury reports whether the severity label denotes any non-trivial injury,
// fatal outcomes included
func (c Classifier) Injury(severity string) bool {
	f := normalize.Fold(severity)
	if f == "" {
		return false
	}
	_, trivial := c.noInjury[f]
	return !trivial
}

// Summarize computes all four metrics in one pass over the filtered subset.
// An empty or nil dataset yields zero-valued metrics, never an error. When
// the collision identifier column is absent every row counts as its own
// crash, mirroring the engine's missing-column tolerance.
func Summarize(d *dataset.Dataset, c Classifier) Summary {
	var out Summary
	if d == nil || d.Len() == 0 {
		return out
	}

	hasID := d.Has(schema.ColCollisionID)
	hasInjury := d.Has(schema.ColPersonInjury)
	collisions := make(map[string]struct{})

	for _, rec := range d.Rows() {
		out.Persons++

		if hasID && rec.CollisionID != "" {
			collisions[rec.CollisionID] = struct{}{}
		} else {
			out.Crashes++
		}

		if !hasInjury {
			continue
		}
		if c.Injury(rec.PersonInjury) {
			out.Injuries++
		}
		if c.Fatal(rec.PersonInjury) {
			out.Fatalities++
		}
	}
	out.Crashes += int64(len(collisions))
	return out
}
