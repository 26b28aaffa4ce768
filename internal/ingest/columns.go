package ingest

import (
	"fmt"
	"strings"
)

// Canonical field names used by the column reconciler. The external feed's
// header is unstable, so each field carries an ordered alias list and the
// first alias present in the header wins.
const (
	FieldName             = "name"
	FieldAddress          = "address"
	FieldLocationDetail   = "location_detail"
	FieldLat              = "lat"
	FieldLng              = "lng"
	FieldPublicUse        = "public_use"
	FieldAllowedOperators = "allowed_operators"
	FieldAccessPersons    = "access_persons"
	FieldCategory         = "category"
	FieldServiceHours     = "service_hours"
	FieldBrand            = "brand"
	FieldModel            = "model"
	FieldRemark           = "remark"
)

type fieldAliases struct {
	Field   string
	Aliases []string
}

// Alias priority is fixed; header order is irrelevant.
var columnAliases = []fieldAliases{
	{FieldName, []string{"AED Name", "Name", "AEDName", "aed_name"}},
	{FieldAddress, []string{"AED Address", "Address", "AEDAddress", "aed_address"}},
	{FieldLocationDetail, []string{"Detailed location of the AED installed", "Location Detail", "DetailedLocation"}},
	{FieldLat, []string{"Location Google Map coordinate: latitude", "Latitude", "latitude", "lat"}},
	{FieldLng, []string{"Location Google Map coordinate: longitude", "Longitude", "longitude", "lng"}},
	{FieldPublicUse, []string{"Whether the AED can be used by anyone", "Public Use", "PublicUse"}},
	{FieldAllowedOperators, []string{"Person allowed to operate the AED", "Allowed Operators", "AllowedOperators"}},
	{FieldAccessPersons, []string{"Person who has access to the AED", "Access Persons", "AccessPersons"}},
	{FieldCategory, []string{"Ground level categories", "Category", "Categories", "ground_level_categories"}},
	{FieldServiceHours, []string{"Service Hour Remark", "Service Hours", "ServiceHours", "service_hour_remark"}},
	{FieldBrand, []string{"AED brand", "Brand", "aed_brand"}},
	{FieldModel, []string{"AED model", "Model", "aed_model"}},
	{FieldRemark, []string{"AED remark", "Remark", "aed_remark", "Remarks"}},
}

var requiredFields = []string{FieldName, FieldAddress, FieldLat, FieldLng}

// Mapping is canonical field name -> header column name.
type Mapping map[string]string

// MapColumns reconciles an external header against the canonical field set.
// It fails with an explicit error when any required field has no alias in the
// header; optional fields simply stay unmapped.
func MapColumns(header []string) (Mapping, error) {
	present := make(map[string]struct{}, len(header))
	for _, col := range header {
		present[col] = struct{}{}
	}

	matches := make(Mapping, len(columnAliases))
	for _, fa := range columnAliases {
		for _, alias := range fa.Aliases {
			if _, ok := present[alias]; ok {
				matches[fa.Field] = alias
				break
			}
		}
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := matches[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required fields in feed header: %s", strings.Join(missing, ", "))
	}

	return matches, nil
}
