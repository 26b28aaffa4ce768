package ingest_test

import (
	"testing"

	"aedmap/internal/ingest"
)

func fullMapping() ingest.Mapping {
	return ingest.Mapping{
		ingest.FieldName:         "Name",
		ingest.FieldAddress:      "Address",
		ingest.FieldLat:          "Latitude",
		ingest.FieldLng:          "Longitude",
		ingest.FieldPublicUse:    "Public Use",
		ingest.FieldServiceHours: "Service Hours",
		ingest.FieldBrand:        "Brand",
	}
}

func validRow() ingest.Row {
	return ingest.Row{
		"Name":      "Central Station AED",
		"Address":   "1 Station Rd",
		"Latitude":  "22.3193",
		"Longitude": "114.1694",
	}
}

func TestNormalizeRow_Accepted(t *testing.T) {
	t.Parallel()

	row := validRow()
	row["Public Use"] = "Yes"
	row["Service Hours"] = "24"
	row["Brand"] = "Philips"

	res := ingest.NormalizeRow(row, fullMapping())
	if res.Class != ingest.RowAccepted {
		t.Fatalf("expected accepted, got %s (%s)", res.Class, res.Reason)
	}
	d := res.Draft
	if d.Latitude != 22.3193 || d.Longitude != 114.1694 {
		t.Fatalf("coordinates mangled: %+v", d)
	}
	if !d.PublicUse {
		t.Fatal("Public Use=Yes should parse true")
	}
	if d.ServiceHours != "24" {
		t.Fatalf("service hours should be the string %q, got %q", "24", d.ServiceHours)
	}
	if d.Brand != "Philips" {
		t.Fatalf("brand = %q", d.Brand)
	}
}

func TestNormalizeRow_LatitudeOutOfRangeSkipped(t *testing.T) {
	t.Parallel()

	row := validRow()
	row["Latitude"] = "95.0"

	res := ingest.NormalizeRow(row, fullMapping())
	if res.Class != ingest.RowSkipped {
		t.Fatalf("expected skipped, got %s", res.Class)
	}
	if res.Draft != nil {
		t.Fatal("skipped row must not produce a draft")
	}
}

func TestNormalizeRow_NonNumericLatitudeSkipped(t *testing.T) {
	t.Parallel()

	row := validRow()
	row["Latitude"] = "abc"

	res := ingest.NormalizeRow(row, fullMapping())
	if res.Class != ingest.RowSkipped {
		t.Fatalf("expected skipped, got %s (%s)", res.Class, res.Reason)
	}
}

func TestNormalizeRow_MissingCoordinateCoercesToZeroAndPasses(t *testing.T) {
	t.Parallel()

	// An absent cell coerces to 0.0, which is inside both legal ranges, so
	// the row is accepted at (0,0) rather than rejected.
	row := validRow()
	delete(row, "Latitude")
	delete(row, "Longitude")

	res := ingest.NormalizeRow(row, fullMapping())
	if res.Class != ingest.RowAccepted {
		t.Fatalf("expected accepted, got %s (%s)", res.Class, res.Reason)
	}
	if res.Draft.Latitude != 0 || res.Draft.Longitude != 0 {
		t.Fatalf("expected coerced (0,0), got (%v,%v)", res.Draft.Latitude, res.Draft.Longitude)
	}
}

func TestNormalizeRow_MissingOptionalColumnDefaultsEmpty(t *testing.T) {
	t.Parallel()

	// brand is not in the mapping at all.
	m := fullMapping()
	delete(m, ingest.FieldBrand)

	res := ingest.NormalizeRow(validRow(), m)
	if res.Class != ingest.RowAccepted {
		t.Fatalf("expected accepted, got %s (%s)", res.Class, res.Reason)
	}
	if res.Draft.Brand != "" {
		t.Fatalf("unmapped brand should default to empty, got %q", res.Draft.Brand)
	}
	if res.Draft.ServiceHours != "" {
		t.Fatalf("absent service hours should normalize to empty string, got %q", res.Draft.ServiceHours)
	}
}

func TestNormalizeRow_PublicUseTruthTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want bool
	}{
		{"Yes", true},
		{"yes", true},
		{"TRUE", true},
		{"1", true},
		{"No", false},
		{"0", false},
		{"maybe", false},
		{"", false},
	}

	for _, tc := range cases {
		row := validRow()
		if tc.raw != "" {
			row["Public Use"] = tc.raw
		}
		res := ingest.NormalizeRow(row, fullMapping())
		if res.Class != ingest.RowAccepted {
			t.Fatalf("raw=%q: expected accepted, got %s", tc.raw, res.Class)
		}
		if res.Draft.PublicUse != tc.want {
			t.Fatalf("public_use(%q) = %v, want %v", tc.raw, res.Draft.PublicUse, tc.want)
		}
	}
}
