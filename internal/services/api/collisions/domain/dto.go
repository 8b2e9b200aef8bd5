// Package domain holds DTOs for collisions http and service contracts
package domain

import "crashlens/internal/core/aggregate"

// FilterInput carries the explicit dropdown-style criteria
// every field is optional; an empty input matches the whole dataset
type FilterInput struct {
	Boroughs     []string `json:"boroughs,omitempty" validate:"omitempty,max=16,dive,nonblank" example:"QUEENS"`
	Years        []int    `json:"years,omitempty" validate:"omitempty,max=64,dive,min=1" example:"2021"`
	Months       []int    `json:"months,omitempty" validate:"omitempty,max=12,dive,min=1,max=12" example:"3"`
	Hours        []int    `json:"hours,omitempty" validate:"omitempty,max=24,dive,min=0,max=23" example:"8"`
	Injuries     []string `json:"injuries,omitempty" validate:"omitempty,max=16,dive,nonblank" example:"Killed"`
	PersonTypes  []string `json:"person_types,omitempty" validate:"omitempty,max=16,dive,nonblank" example:"Pedestrian"`
	VehicleTypes []string `json:"vehicle_types,omitempty" validate:"omitempty,max=64,dive,nonblank" example:"Sedan"`
	Factors      []string `json:"factors,omitempty" validate:"omitempty,max=64,dive,nonblank" example:"Unsafe Speed"`
	Search       string   `json:"search,omitempty" validate:"omitempty,max=200" example:"speed"`
}

// QueryInput combines explicit criteria with a free-text query
// Query is parsed for borough and year tokens; explicit fields win on overlap
type QueryInput struct {
	Filter FilterInput `json:"filter"`
	Query  string      `json:"q,omitempty" validate:"omitempty,max=200" example:"brooklyn 2022 pedestrian"`
	Limit  int         `json:"limit,omitempty" validate:"omitempty,min=1,max=5000" example:"100"`
	Offset int         `json:"offset,omitempty" validate:"omitempty,min=0" example:"0"`
}

// RecordRow is one person-involvement row in query output
type RecordRow struct {
	Borough      string   `json:"borough,omitempty" example:"QUEENS"`
	Year         *int     `json:"crash_year,omitempty" example:"2021"`
	Month        *int     `json:"crash_month,omitempty" example:"3"`
	Hour         *int     `json:"crash_hour,omitempty" example:"8"`
	Latitude     *float64 `json:"latitude,omitempty" example:"40.7"`
	Longitude    *float64 `json:"longitude,omitempty" example:"-73.8"`
	CollisionID  string   `json:"collision_id,omitempty" example:"4491234"`
	PersonType   string   `json:"person_type,omitempty" example:"Pedestrian"`
	PersonInjury string   `json:"person_injury,omitempty" example:"Injured"`
	VehicleType  string   `json:"vehicle_type,omitempty" example:"Sedan"`
	Factor       string   `json:"contributing_factor,omitempty" example:"Unsafe Speed"`
}

// QueryResult is the filtered view plus counts
// Rows is the Offset/Limit page; Matched and Summary cover the whole subset
type QueryResult struct {
	SnapshotID string            `json:"snapshot_id" example:"8a7e1b9e-1c0f-4c3a-b6ad-2f8d2f9a1c55"`
	Matched    int               `json:"matched" example:"245"`
	Returned   int               `json:"returned" example:"100"`
	Summary    aggregate.Summary `json:"summary"`
	Rows       []RecordRow       `json:"rows"`
}

// SummaryResult carries the aggregate metrics for the filtered view
type SummaryResult struct {
	SnapshotID string            `json:"snapshot_id" example:"8a7e1b9e-1c0f-4c3a-b6ad-2f8d2f9a1c55"`
	Matched    int               `json:"matched" example:"245"`
	Summary    aggregate.Summary `json:"summary"`
}

// ParseInput is a raw free-text query
type ParseInput struct {
	Query string `json:"q" validate:"max=200" example:"staten island 2019"`
}

// ParseResult is the structured reading of a free-text query
type ParseResult struct {
	Borough  string   `json:"borough,omitempty" example:"STATEN ISLAND"`
	Year     *int     `json:"year,omitempty" example:"2019"`
	Keywords []string `json:"keywords,omitempty" example:"pedestrian"`
}

// OptionsResult lists the distinct values of one column
type OptionsResult struct {
	Column string   `json:"column" example:"BOROUGH"`
	Values []string `json:"values"`
}

// ColumnsResult lists the canonical columns present in the snapshot
type ColumnsResult struct {
	SnapshotID string   `json:"snapshot_id" example:"8a7e1b9e-1c0f-4c3a-b6ad-2f8d2f9a1c55"`
	Columns    []string `json:"columns"`
}
