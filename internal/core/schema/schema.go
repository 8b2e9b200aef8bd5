// Package schema defines the canonical column set for collision person-rows
// and the registry that maps raw CSV header variants onto it.
// The registry is an explicit immutable value handed to the loader; nothing
// in the filter or aggregation paths reaches for ambient naming tables.
package schema

import "strings"

// Canonical column names shared by the loader, filter engine, and summaries
const (
	ColBorough      = "BOROUGH"
	ColYear         = "CRASH_YEAR"
	ColMonth        = "CRASH_MONTH"
	ColHour         = "CRASH_HOUR"
	ColLatitude     = "LATITUDE"
	ColLongitude    = "LONGITUDE"
	ColCollisionID  = "COLLISION_ID"
	ColPersonInjury = "PERSON_INJURY"
	ColPersonType   = "PERSON_TYPE"
	ColVehicleType  = "VEHICLE_TYPE_CODE_1"
	ColFactor       = "CONTRIBUTING_FACTOR_VEHICLE_1"
)

// canonical is the closed set of columns the core understands
var canonical = []string{
	ColBorough,
	ColYear,
	ColMonth,
	ColHour,
	ColLatitude,
	ColLongitude,
	ColCollisionID,
	ColPersonInjury,
	ColPersonType,
	ColVehicleType,
	ColFactor,
}

// Canonical returns the canonical column names in declaration order
func Canonical() []string {
	out := make([]string, len(canonical))
	copy(out, canonical)
	return out
}

// IsCanonical reports whether name is one of the canonical columns
func IsCanonical(name string) bool {
	for _, c := range canonical {
		if c == name {
			return true
		}
	}
	return false
}

// SearchColumns are the columns scanned by the free-text criterion
func SearchColumns() []string {
	return []string{ColFactor, ColVehicleType, ColBorough}
}

// Registry maps raw header names to canonical columns
type Registry struct {
	renames map[string]string
}

// NewRegistry builds a registry preloaded with the known header variants
// (trailing spaces, spaced instead of underscored names)
func NewRegistry() Registry {
	return Registry{renames: map[string]string{
		"BOROUGH ":                      ColBorough,
		"CRASH YEAR":                    ColYear,
		"CRASH MONTH":                   ColMonth,
		"CRASH HOUR":                    ColHour,
		"LATITUDE ":                     ColLatitude,
		"LONGITUDE ":                    ColLongitude,
		"VEHICLE TYPE CODE 1":           ColVehicleType,
		"CONTRIBUTING FACTOR VEHICLE 1": ColFactor,
		"PERSON TYPE":                   ColPersonType,
		"PERSON INJURY":                 ColPersonInjury,
	}}
}

// Canonicalize resolves a raw header to its canonical column name.
// Resolution order: exact canonical, known rename, then a generic
// trim/upper/space-to-underscore fallback. ok is false for headers the
// core does not understand; the loader skips those columns.
func (r Registry) Canonicalize(raw string) (name string, ok bool) {
	if IsCanonical(raw) {
		return raw, true
	}
	if v, found := r.renames[raw]; found {
		return v, true
	}

	n := strings.ToUpper(strings.TrimSpace(raw))
	n = strings.Join(strings.Fields(n), "_")
	if IsCanonical(n) {
		return n, true
	}
	if v, found := r.renames[n]; found {
		return v, true
	}
	return "", false
}

// Set records which canonical columns a loaded dataset actually has
type Set map[string]struct{}

// NewSet builds a Set from column names, dropping non-canonical entries
func NewSet(cols ...string) Set {
	s := make(Set, len(cols))
	for _, c := range cols {
		if IsCanonical(c) {
			s[c] = struct{}{}
		}
	}
	return s
}

// FullSet returns a Set containing every canonical column
func FullSet() Set { return NewSet(canonical...) }

// Has reports whether col is present
func (s Set) Has(col string) bool {
	_, ok := s[col]
	return ok
}

// Columns returns the present columns in canonical declaration order
func (s Set) Columns() []string {
	out := make([]string, 0, len(s))
	for _, c := range canonical {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
