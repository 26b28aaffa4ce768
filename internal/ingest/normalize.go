package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"aedmap/internal/domain"
)

// Row is one parsed feed record, keyed by header column name. Cells missing
// from a ragged record are simply absent.
type Row map[string]string

type RowClass int

const (
	RowAccepted RowClass = iota
	RowSkipped
	RowErrored
)

func (c RowClass) String() string {
	switch c {
	case RowAccepted:
		return "accepted"
	case RowSkipped:
		return "skipped"
	case RowErrored:
		return "errored"
	}
	return "unknown"
}

// RowResult classifies one row. Skipped means a deliberate validation
// rejection with a known cause; Errored means an unexpected failure. Neither
// outcome affects any other row.
type RowResult struct {
	Class  RowClass
	Reason string
	Draft  *domain.AedDraft
}

// NormalizeRow converts one raw row plus a column mapping into an AedDraft or
// a skip/error classification.
func NormalizeRow(row Row, m Mapping) (result RowResult) {
	defer func() {
		if r := recover(); r != nil {
			result = RowResult{Class: RowErrored, Reason: fmt.Sprintf("unexpected error: %v", r)}
		}
	}()

	lat, ok, reason := parseCoordinate(row, m, FieldLat, -90, 90)
	if !ok {
		return RowResult{Class: RowSkipped, Reason: reason}
	}
	lng, ok, reason := parseCoordinate(row, m, FieldLng, -180, 180)
	if !ok {
		return RowResult{Class: RowSkipped, Reason: reason}
	}

	// service_hours is always stored as a string, never null.
	serviceHours := safeGet(row, m, FieldServiceHours, "")

	publicUse := parsePublicUse(safeGet(row, m, FieldPublicUse, "No"))

	draft := &domain.AedDraft{
		Name:             safeGet(row, m, FieldName, "Unknown"),
		Address:          safeGet(row, m, FieldAddress, ""),
		LocationDetail:   safeGet(row, m, FieldLocationDetail, ""),
		Latitude:         lat,
		Longitude:        lng,
		PublicUse:        publicUse,
		AllowedOperators: safeGet(row, m, FieldAllowedOperators, ""),
		AccessPersons:    safeGet(row, m, FieldAccessPersons, ""),
		Category:         safeGet(row, m, FieldCategory, ""),
		ServiceHours:     serviceHours,
		Brand:            safeGet(row, m, FieldBrand, ""),
		Model:            safeGet(row, m, FieldModel, ""),
		Remark:           safeGet(row, m, FieldRemark, ""),
	}

	return RowResult{Class: RowAccepted, Draft: draft}
}

// parseCoordinate coerces a missing cell to 0.0, fails the row on a
// non-numeric cell, and bounds-checks the result.
func parseCoordinate(row Row, m Mapping, field string, min, max float64) (float64, bool, string) {
	col, mapped := m[field]
	if !mapped {
		return 0, false, fmt.Sprintf("missing %s column", field)
	}

	raw := strings.TrimSpace(row[col])
	v := 0.0
	if raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false, fmt.Sprintf("unparseable %s %q", field, raw)
		}
		v = parsed
	}

	if v < min || v > max {
		return 0, false, fmt.Sprintf("%s %v out of range [%v,%v]", field, v, min, max)
	}
	return v, true, ""
}

// parsePublicUse interprets the feed's free-form boolean: yes/true/1
// (case-insensitive) mean true, everything else means false.
func parsePublicUse(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1":
		return true
	}
	return false
}

func safeGet(row Row, m Mapping, field, def string) string {
	col, ok := m[field]
	if !ok {
		return def
	}
	val, ok := row[col]
	if !ok || val == "" {
		return def
	}
	return val
}
