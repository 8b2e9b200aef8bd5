package store

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"crashlens/internal/core/dataset"
	"crashlens/internal/core/normalize"
	"crashlens/internal/core/schema"
	"crashlens/internal/platform/logger"

	perr "crashlens/internal/platform/errors"
)

// loadCSV reads the export at cfg.Path into a Dataset. Headers go through the
// schema registry; columns the registry cannot resolve are ignored. Numeric
// cells that fail to parse become null rather than poisoning the row.
func loadCSV(ctx context.Context, cfg DataConfig, log logger.Logger) (*dataset.Dataset, int, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, 0, perr.Wrapf(err, perr.ErrorCodeUnavailable, "data source unavailable: %s", cfg.Path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("close dataset file")
		}
	}()

	r := csv.NewReader(f)
	if cfg.Comma != 0 {
		r.Comma = cfg.Comma
	}
	r.ReuseRecord = true
	// person exports pad short rows; tolerate ragged widths and fix up below
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return dataset.New(schema.Set{}, nil), 0, nil
	}
	if err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeData, "read csv header")
	}

	reg := schema.NewRegistry()
	// index -> canonical column, unresolved headers stay out of the map
	colAt := make(map[int]string, len(header))
	for i, raw := range header {
		name, ok := reg.Canonicalize(raw)
		if !ok {
			log.Debug().Str("header", raw).Msg("ignoring unknown column")
			continue
		}
		colAt[i] = name
	}

	cols := schema.Set{}
	for _, name := range colAt {
		cols[name] = struct{}{}
	}

	var rows []dataset.Record
	skipped := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, 0, perr.Wrap(err, perr.ErrorCodeUnavailable, "dataset load canceled")
		}
		raw, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if cfg.MaxRows > 0 && len(rows) >= cfg.MaxRows {
			break
		}

		var rec dataset.Record
		for i, cell := range raw {
			name, ok := colAt[i]
			if !ok {
				continue
			}
			assign(&rec, name, cell)
		}
		rows = append(rows, rec)
	}

	return dataset.New(cols, rows), skipped, nil
}

// assign writes one cell into its record field, coercing numerics
func assign(rec *dataset.Record, col, cell string) {
	cell = strings.TrimSpace(normalize.Sanitize(cell))
	switch col {
	case schema.ColBorough:
		rec.Borough = cell
	case schema.ColYear:
		rec.Year = parseIntCell(cell)
	case schema.ColMonth:
		rec.Month = parseIntCell(cell)
	case schema.ColHour:
		rec.Hour = parseIntCell(cell)
	case schema.ColLatitude:
		rec.Latitude = parseFloatCell(cell)
	case schema.ColLongitude:
		rec.Longitude = parseFloatCell(cell)
	case schema.ColCollisionID:
		rec.CollisionID = normalizeID(cell)
	case schema.ColPersonType:
		rec.PersonType = cell
	case schema.ColPersonInjury:
		rec.PersonInjury = cell
	case schema.ColVehicleType:
		rec.VehicleType = cell
	case schema.ColFactor:
		rec.Factor = cell
	}
}

// parseIntCell maps blanks and junk to null. Exports sometimes write integer
// ids and years as "2021.0", so a float fallback truncates those.
func parseIntCell(s string) *int {
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return &v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		v := int(f)
		return &v
	}
	return nil
}

func parseFloatCell(s string) *float64 {
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return &v
	}
	return nil
}

// normalizeID strips a float-style ".0" suffix off collision ids so the same
// collision never counts twice under two spellings
func normalizeID(s string) string {
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return s
}
