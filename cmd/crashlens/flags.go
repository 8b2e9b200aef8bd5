package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"crashlens/internal/platform/config"
	"crashlens/internal/services/api/collisions/domain"
	colmod "crashlens/internal/services/api/collisions/module"
	colrepo "crashlens/internal/services/api/collisions/repo"
	colsvc "crashlens/internal/services/api/collisions/service"
)

// filterFlags holds the criteria flags shared by query and summary
type filterFlags struct {
	boroughs     []string
	years        []int
	months       []int
	hours        []int
	injuries     []string
	personTypes  []string
	vehicleTypes []string
	factors      []string
	search       string
	query        string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringSliceVar(&f.boroughs, "borough", nil, "borough filter, repeatable")
	fl.IntSliceVar(&f.years, "year", nil, "crash year filter, repeatable")
	fl.IntSliceVar(&f.months, "month", nil, "crash month filter (1-12), repeatable")
	fl.IntSliceVar(&f.hours, "hour", nil, "crash hour filter (0-23), repeatable")
	fl.StringSliceVar(&f.injuries, "injury", nil, "person injury filter, repeatable")
	fl.StringSliceVar(&f.personTypes, "person-type", nil, "person type filter, repeatable")
	fl.StringSliceVar(&f.vehicleTypes, "vehicle-type", nil, "vehicle type filter, repeatable")
	fl.StringSliceVar(&f.factors, "factor", nil, "contributing factor filter, repeatable")
	fl.StringVar(&f.search, "search", "", "substring searched across factor, vehicle type, and borough")
	fl.StringVar(&f.query, "query", "", "free-text query, parsed for borough, year, and keywords")
}

func (f *filterFlags) input(limit int) domain.QueryInput {
	return domain.QueryInput{
		Filter: domain.FilterInput{
			Boroughs:     f.boroughs,
			Years:        f.years,
			Months:       f.months,
			Hours:        f.hours,
			Injuries:     f.injuries,
			PersonTypes:  f.personTypes,
			VehicleTypes: f.vehicleTypes,
			Factors:      f.factors,
			Search:       f.search,
		},
		Query: f.query,
		Limit: limit,
	}
}

// newService builds the collisions service over the loaded snapshot,
// honoring the same COLLISIONS_ env knobs the API reads
func newService() colsvc.Service {
	return colsvc.New(colrepo.NewSnapshot(snap), colmod.FromConfig(config.New()))
}

func fmtIntPtr(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func fmtFloatPtr(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
