package domain

import (
	"sort"
	"strings"
)

// Field keys used by the draft editor, the stage gate, and any UI that needs
// to highlight a specific input. They match the wire names of the draft
// fields; Dates is a synthetic key carrying the combined date-presence error.
const (
	FieldTripTitle          = "trip_title"
	FieldDestinationCountry = "destination_country"
	FieldDestinationCity    = "destination_city"
	FieldBudget             = "budget"
	FieldHotelName          = "hotel_name"
	FieldTransportMode      = "transport_mode"
	FieldTotalTravelers     = "total_travelers"
	FieldDescription        = "description"
	FieldFoodPreferences    = "food_preferences"
	FieldSpecialNotes       = "special_notes"
	FieldDates              = "dates"
)

// FieldOrder is the on-screen order of the Plan stage inputs. The gate
// reports errors in this order so the UI can scroll to the first offender.
var FieldOrder = []string{
	FieldTripTitle,
	FieldDestinationCountry,
	FieldDestinationCity,
	FieldBudget,
	FieldHotelName,
	FieldTransportMode,
	FieldTotalTravelers,
	FieldDescription,
	FieldFoodPreferences,
	FieldSpecialNotes,
	FieldDates,
}

// ErrorMap collects per-field validation messages, keyed by field name.
// An empty map means the draft passed the gate.
type ErrorMap map[string]string

// Error formats all messages in FieldOrder (unknown keys last,
// alphabetically) so an ErrorMap can travel as an ordinary error value.
func (m ErrorMap) Error() string {
	if len(m) == 0 {
		return "no validation errors"
	}
	var parts []string
	seen := make(map[string]bool, len(m))
	for _, key := range FieldOrder {
		if msg, ok := m[key]; ok {
			parts = append(parts, key+": "+msg)
			seen[key] = true
		}
	}
	var rest []string
	for key := range m {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		parts = append(parts, key+": "+m[key])
	}
	return strings.Join(parts, "; ")
}

// First returns the first failing field in FieldOrder and its message.
// Ok is false when the map is empty.
func (m ErrorMap) First() (field, msg string, ok bool) {
	for _, key := range FieldOrder {
		if v, found := m[key]; found {
			return key, v, true
		}
	}
	for key, v := range m {
		return key, v, true
	}
	return "", "", false
}
