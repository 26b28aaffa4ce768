package ingest_test

import (
	"strings"
	"testing"

	"aedmap/internal/ingest"
)

func TestMapColumns_MatchesRequiredAndOptional(t *testing.T) {
	t.Parallel()

	header := []string{"AED Name", "AED Address", "Latitude", "Longitude"}

	m, err := ingest.MapColumns(header)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := map[string]string{
		ingest.FieldName:    "AED Name",
		ingest.FieldAddress: "AED Address",
		ingest.FieldLat:     "Latitude",
		ingest.FieldLng:     "Longitude",
	}
	for field, col := range want {
		if m[field] != col {
			t.Fatalf("field %s mapped to %q, want %q", field, m[field], col)
		}
	}
	if _, ok := m[ingest.FieldBrand]; ok {
		t.Fatalf("brand should be unmapped for this header, got %q", m[ingest.FieldBrand])
	}
}

func TestMapColumns_AliasPriority(t *testing.T) {
	t.Parallel()

	// Both the long official alias and the short one are present; the
	// first alias in the priority list must win regardless of header order.
	header := []string{
		"lat",
		"Location Google Map coordinate: latitude",
		"lng",
		"Longitude",
		"Name",
		"AED Name",
		"Address",
	}

	m, err := ingest.MapColumns(header)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got := m[ingest.FieldLat]; got != "Location Google Map coordinate: latitude" {
		t.Fatalf("lat mapped to %q, want the highest-priority alias", got)
	}
	if got := m[ingest.FieldLng]; got != "Longitude" {
		t.Fatalf("lng mapped to %q, want %q", got, "Longitude")
	}
	if got := m[ingest.FieldName]; got != "AED Name" {
		t.Fatalf("name mapped to %q, want %q", got, "AED Name")
	}
}

func TestMapColumns_MissingRequiredFieldFails(t *testing.T) {
	t.Parallel()

	header := []string{"AED Name", "AED Address", "Longitude", "Brand"}

	_, err := ingest.MapColumns(header)
	if err == nil {
		t.Fatal("expected error for header without any latitude alias")
	}
	if !strings.Contains(err.Error(), "lat") {
		t.Fatalf("error should name the missing field, got: %v", err)
	}
}

func TestMapColumns_FullOfficialHeader(t *testing.T) {
	t.Parallel()

	header := []string{
		"AED Name",
		"AED Address",
		"Detailed location of the AED installed",
		"Location Google Map coordinate: latitude",
		"Location Google Map coordinate: longitude",
		"Whether the AED can be used by anyone",
		"Person allowed to operate the AED",
		"Person who has access to the AED",
		"Ground level categories",
		"Service Hour Remark",
		"AED brand",
		"AED model",
		"AED remark",
	}

	m, err := ingest.MapColumns(header)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(m) != 13 {
		t.Fatalf("expected all 13 fields mapped, got %d: %v", len(m), m)
	}
}
