// Package dataset holds the immutable in-memory table of collision
// person-rows that the filter engine and summaries operate on.
package dataset

import (
	"sort"
	"strconv"

	"crashlens/internal/core/normalize"
	"crashlens/internal/core/schema"
)

// Record is one person-involvement row. One collision usually yields several
// records, so CollisionID is not unique per record. Numeric columns are
// nullable because the source data is; absent string columns are "".
type Record struct {
	Borough      string
	Year         *int
	Month        *int
	Hour         *int
	Latitude     *float64
	Longitude    *float64
	CollisionID  string
	PersonType   string
	PersonInjury string
	VehicleType  string
	Factor       string
}

// Categorical returns the string value of a categorical or searchable column
// and whether that column carries string values at all
func (rec Record) Categorical(col string) (string, bool) {
	switch col {
	case schema.ColBorough:
		return rec.Borough, true
	case schema.ColCollisionID:
		return rec.CollisionID, true
	case schema.ColPersonType:
		return rec.PersonType, true
	case schema.ColPersonInjury:
		return rec.PersonInjury, true
	case schema.ColVehicleType:
		return rec.VehicleType, true
	case schema.ColFactor:
		return rec.Factor, true
	default:
		return "", false
	}
}

// Dataset is an ordered, immutable collection of records plus the set of
// canonical columns that were actually present in the source. Filtering
// produces new Dataset views; the row slice is never mutated in place.
type Dataset struct {
	cols schema.Set
	rows []Record
}

// New builds a Dataset over rows. The caller hands over ownership of rows.
func New(cols schema.Set, rows []Record) *Dataset {
	if cols == nil {
		cols = schema.Set{}
	}
	return &Dataset{cols: cols, rows: rows}
}

// Len returns the number of records
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Rows exposes the backing records for read-only iteration
func (d *Dataset) Rows() []Record {
	if d == nil {
		return nil
	}
	return d.rows
}

// Has reports whether the canonical column was present in the source
func (d *Dataset) Has(col string) bool {
	if d == nil {
		return false
	}
	return d.cols.Has(col)
}

// Columns returns the present canonical columns in declaration order
func (d *Dataset) Columns() []string {
	if d == nil {
		return nil
	}
	return d.cols.Columns()
}

// Select returns a new view holding the records keep accepts, preserving
// source order and sharing the column set
func (d *Dataset) Select(keep func(Record) bool) *Dataset {
	if d == nil {
		return New(nil, nil)
	}
	out := make([]Record, 0, len(d.rows))
	for _, rec := range d.rows {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return &Dataset{cols: d.cols, rows: out}
}

// DistinctValues returns the sorted unique non-blank values of a categorical
// column, deduplicated case-insensitively with the first-seen spelling kept.
// Selection UIs treat the result as read-only configuration data.
func DistinctValues(d *Dataset, col string) []string {
	if d == nil || !d.cols.Has(col) {
		return nil
	}
	seen := make(map[string]string)
	for _, rec := range d.rows {
		v, ok := categoricalOrNumeric(rec, col)
		if !ok || v == "" {
			continue
		}
		key := normalize.Fold(v)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; !dup {
			seen[key] = v
		}
	}
	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// categoricalOrNumeric stringifies numeric columns so they can feed option
// lists alongside the categorical ones
func categoricalOrNumeric(rec Record, col string) (string, bool) {
	if v, ok := rec.Categorical(col); ok {
		return v, true
	}
	switch col {
	case schema.ColYear:
		return itoaPtr(rec.Year)
	case schema.ColMonth:
		return itoaPtr(rec.Month)
	case schema.ColHour:
		return itoaPtr(rec.Hour)
	default:
		return "", false
	}
}

func itoaPtr(p *int) (string, bool) {
	if p == nil {
		return "", true
	}
	return strconv.Itoa(*p), true
}

// IntPtr is a literal helper for nullable int columns
func IntPtr(v int) *int { return &v }

// FloatPtr is a literal helper for nullable float columns
func FloatPtr(v float64) *float64 { return &v }
