// Package searchquery interprets a free-text search string as a partial
// filter: an optional borough, an optional 4-digit year, and the leftover
// keywords in input order. Parsing is total; every input yields a valid
// ParsedQuery and there are no error conditions.
package searchquery

import "strings"

// boroughs is the fixed enumeration a token is matched against after uppercasing
var boroughs = map[string]struct{}{
	"MANHATTAN":     {},
	"BROOKLYN":      {},
	"QUEENS":        {},
	"BRONX":         {},
	"STATEN":        {},
	"STATEN ISLAND": {},
}

// StatenIsland is the canonical value any STATEN* token normalizes to
const StatenIsland = "STATEN ISLAND"

// ParsedQuery is the structured reading of a free-text query. Borough is ""
// and Year nil when unset. It is a partial filter spec; callers merge it with
// explicitly chosen criteria before filtering.
type ParsedQuery struct {
	Borough  string
	Year     *int
	Keywords []string
}

// Empty reports whether nothing was recognized and no keywords remain
func (p ParsedQuery) Empty() bool {
	return p.Borough == "" && p.Year == nil && len(p.Keywords) == 0
}

// Parse classifies each whitespace-separated token, first match wins:
// borough, then 4-digit year, then keyword. When several tokens qualify as
// borough or year the last one wins; earlier qualifying tokens are dropped,
// not demoted to keywords. An ISLAND token directly after a STATEN match is
// consumed so "staten island" reads as one borough, not a borough plus a
// stray keyword.
func Parse(query string) ParsedQuery {
	var out ParsedQuery
	afterStaten := false
	for _, tok := range strings.Fields(query) {
		up := strings.ToUpper(tok)
		if afterStaten && up == "ISLAND" {
			afterStaten = false
			continue
		}
		afterStaten = false
		if _, ok := boroughs[up]; ok {
			if strings.HasPrefix(up, "STATEN") {
				up = StatenIsland
				afterStaten = true
			}
			out.Borough = up
			continue
		}
		if y, ok := parseYear(tok); ok {
			out.Year = &y
			continue
		}
		out.Keywords = append(out.Keywords, tok)
	}
	return out
}

// parseYear accepts exactly 4 ASCII digits; no calendar range validation
func parseYear(tok string) (int, bool) {
	if len(tok) != 4 {
		return 0, false
	}
	y := 0
	for i := 0; i < 4; i++ {
		ch := tok[i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		y = y*10 + int(ch-'0')
	}
	return y, true
}
