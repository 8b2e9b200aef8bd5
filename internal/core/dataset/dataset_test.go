package dataset

import (
	"testing"

	"crashlens/internal/core/schema"
)

func sample() *Dataset {
	cols := schema.NewSet(schema.ColBorough, schema.ColYear, schema.ColFactor, schema.ColCollisionID)
	rows := []Record{
		{Borough: "BROOKLYN", Year: IntPtr(2021), Factor: "Unsafe Speed", CollisionID: "c1"},
		{Borough: "QUEENS", Year: IntPtr(2022), Factor: "Driver Inattention", CollisionID: "c2"},
		{Borough: "brooklyn", Year: IntPtr(2021), Factor: "", CollisionID: "c1"},
	}
	return New(cols, rows)
}

func TestSelectPreservesOrder(t *testing.T) {
	d := sample()
	got := d.Select(func(rec Record) bool { return rec.CollisionID == "c1" })
	if got.Len() != 2 {
		t.Fatalf("Len = %d, want 2", got.Len())
	}
	if got.Rows()[0].Borough != "BROOKLYN" || got.Rows()[1].Borough != "brooklyn" {
		t.Fatal("relative row order not preserved")
	}
	// source untouched
	if d.Len() != 3 {
		t.Fatal("source dataset mutated")
	}
	// view shares the column set
	if !got.Has(schema.ColYear) {
		t.Fatal("view lost schema columns")
	}
}

func TestDistinctValues(t *testing.T) {
	d := sample()

	// case-insensitive dedup, first spelling wins, blanks dropped, sorted
	got := DistinctValues(d, schema.ColBorough)
	if len(got) != 2 {
		t.Fatalf("DistinctValues(BOROUGH) = %v", got)
	}
	if got[0] != "BROOKLYN" || got[1] != "QUEENS" {
		t.Fatalf("DistinctValues(BOROUGH) = %v", got)
	}

	if got := DistinctValues(d, schema.ColFactor); len(got) != 2 {
		t.Fatalf("blank factor should be dropped, got %v", got)
	}

	// numeric columns stringify
	years := DistinctValues(d, schema.ColYear)
	if len(years) != 2 || years[0] != "2021" || years[1] != "2022" {
		t.Fatalf("DistinctValues(CRASH_YEAR) = %v", years)
	}

	// absent column yields nil
	if got := DistinctValues(d, schema.ColVehicleType); got != nil {
		t.Fatalf("absent column should yield nil, got %v", got)
	}
}

func TestNilSafety(t *testing.T) {
	var d *Dataset
	if d.Len() != 0 || d.Rows() != nil || d.Has(schema.ColBorough) {
		t.Fatal("nil dataset accessors should be zero-valued")
	}
	if got := d.Select(func(Record) bool { return true }); got.Len() != 0 {
		t.Fatal("Select on nil dataset should be empty")
	}
}

func TestCategorical(t *testing.T) {
	rec := Record{Borough: "BRONX", Factor: "Glare"}
	if v, ok := rec.Categorical(schema.ColBorough); !ok || v != "BRONX" {
		t.Fatalf("Categorical(BOROUGH) = (%q, %v)", v, ok)
	}
	if _, ok := rec.Categorical(schema.ColYear); ok {
		t.Fatal("year is not a categorical column")
	}
}
