package schema

// Profile describes one conversion variant: the expected source column
// labels, the per-field coercion rules, and the composite fields the
// normalizer synthesizes on top of them.
type Profile struct {
	// Name is the source group the profile serves, e.g. "parking-sites".
	Name string

	// HeaderLabels maps a source column label (often German) to the
	// canonical field it feeds. Matching against the actual header row is
	// case-insensitive with whitespace collapsed.
	HeaderLabels map[string]string

	// Fields lists the coercion rule per canonical field.
	Fields []FieldSpec

	// AddressStreetField and AddressCityField name the two raw fields that
	// are joined with ", " into a single address when both are present.
	AddressStreetField string
	AddressCityField   string

	// ExternalIDField names the raw field carrying a source-specific
	// identifier; ExternalIDType is the fixed label stored with it. The
	// normalizer emits a list of {type, value} objects.
	ExternalIDField string
	ExternalIDType  string

	// HasOpeningHours enables assembly of the opening_hours schedule string
	// from the six begin/end fields plus the 24/7 flag.
	HasOpeningHours bool

	// RestrictedTo, when non-nil, consumes the raw type field into a
	// restricted_to entry instead of a top-level type (parking spots).
	RestrictedTo EnumTable

	// HasRealtimeData is stamped onto every record of the variant.
	HasRealtimeData bool

	// StampUpdatedAt adds static_data_updated_at at normalization time.
	StampUpdatedAt bool
}

// Canonical field names for the opening-hours columns. The normalizer and
// the opening-hours formatter agree on these.
const (
	FieldOpeningHours24_7          = "opening_hours_is_24_7"
	FieldOpeningHoursWeekdayBegin  = "opening_hours_weekday_begin"
	FieldOpeningHoursWeekdayEnd    = "opening_hours_weekday_end"
	FieldOpeningHoursSaturdayBegin = "opening_hours_saturday_begin"
	FieldOpeningHoursSaturdayEnd   = "opening_hours_saturday_end"
	FieldOpeningHoursSundayBegin   = "opening_hours_sunday_begin"
	FieldOpeningHoursSundayEnd     = "opening_hours_sunday_end"
)

// DefaultParkingSiteType is the canonical code used when a site's type value
// is not in the type table. Surface lots are by far the most common entry,
// so unrecognized free text lands there.
const DefaultParkingSiteType = "OFF_STREET_PARKING_GROUND"

// purposeTable maps the German purpose column to canonical codes.
// Unknown purposes are omitted, not defaulted.
var purposeTable = NewEnumTable(map[string]string{
	"Auto":    "CAR",
	"Fahrrad": "BIKE",
})

// siteTypeTable maps the German facility type column to canonical codes.
var siteTypeTable = NewEnumTable(map[string]string{
	"Parkplatz":  "OFF_STREET_PARKING_GROUND",
	"Parkhaus":   "CAR_PARK",
	"Tiefgarage": "UNDERGROUND",
	"Parkdeck":   "CAR_PARK",
})

// supervisionTable maps the supervision column to canonical codes. The
// column is effectively a boolean in the source files.
var supervisionTable = NewEnumTable(map[string]string{
	"ja":    "YES",
	"nein":  "NO",
	"true":  "YES",
	"false": "NO",
})

// spotRestrictionTable maps the German dedication column of parking spots
// to canonical restriction codes.
var spotRestrictionTable = NewEnumTable(map[string]string{
	"Ladesäule": "CHARGING",
	"Familie":   "FAMILY",
	"Handicap":  "DISABLED",
})

// openingHourFields are shared by both spreadsheet profiles.
var openingHourFields = map[string]string{
	"24/7 geöffnet?":              FieldOpeningHours24_7,
	"Öffnungszeiten Mo-Fr Beginn": FieldOpeningHoursWeekdayBegin,
	"Öffnungszeiten Mo-Fr Ende":   FieldOpeningHoursWeekdayEnd,
	"Öffnungszeiten Sa Beginn":    FieldOpeningHoursSaturdayBegin,
	"Öffnungszeiten Sa Ende":      FieldOpeningHoursSaturdayEnd,
	"Öffnungszeiten So Beginn":    FieldOpeningHoursSundayBegin,
	"Öffnungszeiten So Ende":      FieldOpeningHoursSundayEnd,
}

// CSVProfile describes the flat CSV reference format. Column labels are
// already canonical, so the header map is an identity mapping.
func CSVProfile() Profile {
	labels := map[string]string{
		"uid":                "uid",
		"lat":                "lat",
		"lon":                "lon",
		"name":               "name",
		"address":            "address",
		"type":               "type",
		"max_height":         "max_height",
		"max_width":          "max_width",
		"max_depth":          "max_depth",
		"park_and_ride_type": "park_and_ride_type",
		"DHID":               "DHID",
	}
	return Profile{
		Name:         "features",
		HeaderLabels: labels,
		Fields: []FieldSpec{
			{Name: "uid", Kind: KindText, Required: true},
			{Name: "lat", Kind: KindCoordinate, Required: true},
			{Name: "lon", Kind: KindCoordinate, Required: true},
			{Name: "name", Kind: KindText},
			{Name: "address", Kind: KindText},
			{Name: "type", Kind: KindText},
			{Name: "max_height", Kind: KindInt},
			{Name: "max_width", Kind: KindInt},
			{Name: "max_depth", Kind: KindInt},
			{Name: "park_and_ride_type", Kind: KindText, WrapInList: true},
		},
		ExternalIDField: "DHID",
		ExternalIDType:  "DHID",
	}
}

// ParkingSitesProfile describes the German parking-sites reference workbook.
func ParkingSitesProfile() Profile {
	labels := map[string]string{
		"ID":                           "uid",
		"Name":                         "name",
		"Art der Anlage":               "type",
		"Betreiber Name":               "operator_name",
		"Längengrad":                   "lon",
		"Breitengrad":                  "lat",
		"Straße und Hausnummer":        "street",
		"PLZ und Ort":                  "postcode_city",
		"Anzahl Stellplätze":           "capacity",
		"Anzahl Carsharing-Parkplätze": "capacity_carsharing",
		"Anzahl Ladeplätze":            "capacity_charging",
		"Anzahl Frauenparkplätze":      "capacity_woman",
		"Anzahl Behindertenparkplätze": "capacity_disabled",
		"Anlage beleuchtet?":           "has_lighting",
		"gebührenpflichtig?":           "has_fee",
		"Gebühren-Informationen":       "fee_description",
		"Maximale Parkdauer":           "max_stay",
		"Einfahrtshöhe (cm)":           "max_height",
		"Einfahrtsbreite (cm)":         "max_width",
		"Zweck der Anlage":             "purpose",
		"Überwachung?":                 "supervision_type",
		"Park&Ride":                    "park_and_ride_type",
		"Webseite":                     "public_url",
	}
	for label, field := range openingHourFields {
		labels[label] = field
	}
	return Profile{
		Name:         "parking-sites",
		HeaderLabels: labels,
		Fields: []FieldSpec{
			{Name: "uid", Kind: KindText, Required: true},
			{Name: "lat", Kind: KindCoordinate, Required: true},
			{Name: "lon", Kind: KindCoordinate, Required: true},
			{Name: "name", Kind: KindText},
			{Name: "operator_name", Kind: KindText},
			{Name: "type", Kind: KindEnum, Enum: siteTypeTable, EnumDefault: DefaultParkingSiteType},
			{Name: "purpose", Kind: KindEnum, Enum: purposeTable},
			{Name: "supervision_type", Kind: KindEnum, Enum: supervisionTable},
			{Name: "capacity", Kind: KindInt},
			{Name: "capacity_carsharing", Kind: KindInt},
			{Name: "capacity_charging", Kind: KindInt},
			{Name: "capacity_woman", Kind: KindInt},
			{Name: "capacity_disabled", Kind: KindInt},
			{Name: "has_lighting", Kind: KindBool},
			{Name: "has_fee", Kind: KindBool},
			{Name: "fee_description", Kind: KindMultiline},
			{Name: "max_stay", Kind: KindDuration},
			{Name: "max_height", Kind: KindInt, MetersToCentimeters: true},
			{Name: "max_width", Kind: KindInt},
			{Name: "park_and_ride_type", Kind: KindText, WrapInList: true},
			{Name: "public_url", Kind: KindText},
		},
		AddressStreetField: "street",
		AddressCityField:   "postcode_city",
		HasOpeningHours:    true,
		HasRealtimeData:    true,
		StampUpdatedAt:     true,
	}
}

// ParkingSpotsProfile describes the German parking-spots reference workbook.
// The dedication column ("Widmung") does not become a top-level type; it is
// consumed into the restricted_to entry together with the opening hours.
func ParkingSpotsProfile() Profile {
	labels := map[string]string{
		"ID":                 "uid",
		"Name":               "name",
		"Widmung":            "type",
		"Längengrad":         "lon",
		"Breitengrad":        "lat",
		"Zweck der Anlage":   "purpose",
		"Maximale Parkdauer": "max_stay",
	}
	for label, field := range openingHourFields {
		labels[label] = field
	}
	return Profile{
		Name:         "parking-spots",
		HeaderLabels: labels,
		Fields: []FieldSpec{
			{Name: "uid", Kind: KindText, Required: true},
			{Name: "lat", Kind: KindCoordinate, Required: true},
			{Name: "lon", Kind: KindCoordinate, Required: true},
			{Name: "name", Kind: KindText},
			{Name: "purpose", Kind: KindEnum, Enum: purposeTable},
			{Name: "max_stay", Kind: KindDuration},
		},
		HasOpeningHours: true,
		RestrictedTo:    spotRestrictionTable,
		HasRealtimeData: true,
		StampUpdatedAt:  true,
	}
}

// ProfileFor returns the spreadsheet profile for a source group. The second
// return is false for unknown groups.
func ProfileFor(sourceGroup string) (Profile, bool) {
	switch sourceGroup {
	case "parking-sites":
		return ParkingSitesProfile(), true
	case "parking-spots":
		return ParkingSpotsProfile(), true
	default:
		return Profile{}, false
	}
}
