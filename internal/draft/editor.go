// Package draft implements the in-memory trip draft pipeline: the Editor
// holding the mutable aggregate and its field errors, and the stage gate that
// decides whether the draft may advance.
package draft

import (
	"strconv"
	"strings"
	"time"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/validate"
)

// Editor owns a TripDraft for the lifetime of a planning session and is the
// only way the draft is mutated. It also tracks the per-field error map the
// UI renders next to each input.
//
// Editor is not safe for concurrent use; all mutations happen synchronously
// on user-input events.
type Editor struct {
	model  domain.TripDraft
	errors domain.ErrorMap

	// Raw display strings for the numeric inputs. A zero numeric value
	// renders as an empty input, so the raw entry has to be kept to
	// round-trip what the user actually typed.
	budgetRaw         string
	totalTravelersRaw string
}

// NewEditor returns an Editor over a fresh default draft.
func NewEditor() *Editor {
	return &Editor{
		model:  domain.NewTripDraft(),
		errors: domain.ErrorMap{},
	}
}

// Draft returns a deep copy of the current draft.
func (e *Editor) Draft() domain.TripDraft {
	return e.model.Clone()
}

// Errors returns a copy of the current field error map.
func (e *Editor) Errors() domain.ErrorMap {
	out := make(domain.ErrorMap, len(e.errors))
	for k, v := range e.errors {
		out[k] = v
	}
	return out
}

// SetField updates one scalar field from its raw input string and clears any
// existing error for that field. The update and the error clear are one
// transactional mutation; clearing never re-runs validation — stale input
// stays invalid until the next gate run.
func (e *Editor) SetField(key, value string) {
	switch key {
	case domain.FieldTripTitle:
		e.model.Title = value
	case domain.FieldDestinationCountry:
		e.model.DestinationCountry = value
	case domain.FieldDestinationCity:
		e.model.DestinationCity = value
	case domain.FieldBudget:
		e.budgetRaw = value
		e.model.Budget = parseAmount(value)
	case domain.FieldHotelName:
		e.model.HotelName = value
	case domain.FieldTransportMode:
		e.model.TransportMode = value
	case domain.FieldTotalTravelers:
		e.totalTravelersRaw = value
		e.model.TotalTravelers = int(parseAmount(value))
	case domain.FieldDescription:
		e.model.Description = value
	case domain.FieldFoodPreferences:
		e.model.FoodPreferences = validate.SplitPreferences(value)
	case domain.FieldSpecialNotes:
		e.model.SpecialNotes = value
	}
	delete(e.errors, key)
}

// FieldDisplay returns the string an input for key should render. Numeric
// fields round-trip their raw entry; an unset numeric field renders empty.
func (e *Editor) FieldDisplay(key string) string {
	switch key {
	case domain.FieldTripTitle:
		return e.model.Title
	case domain.FieldDestinationCountry:
		return e.model.DestinationCountry
	case domain.FieldDestinationCity:
		return e.model.DestinationCity
	case domain.FieldBudget:
		return e.budgetRaw
	case domain.FieldHotelName:
		return e.model.HotelName
	case domain.FieldTransportMode:
		return e.model.TransportMode
	case domain.FieldTotalTravelers:
		return e.totalTravelersRaw
	case domain.FieldDescription:
		return e.model.Description
	case domain.FieldFoodPreferences:
		return strings.Join(e.model.FoodPreferences, ", ")
	case domain.FieldSpecialNotes:
		return e.model.SpecialNotes
	}
	return ""
}

// SetDates records both schedule dates and clears the combined dates error.
// The bottom sheet confirms both dates together, so they are set together.
func (e *Editor) SetDates(start, end time.Time) {
	s, en := start, end
	e.model.StartDate = &s
	e.model.EndDate = &en
	delete(e.errors, domain.FieldDates)
}

// SetPublic toggles draft visibility. Never surfaced in the validated UI,
// kept for wire compatibility.
func (e *Editor) SetPublic(public bool) {
	e.model.IsPublic = public
}

// AddTraveler appends an empty traveler entry for the user to fill in.
func (e *Editor) AddTraveler() {
	e.model.Travelers = append(e.model.Travelers, domain.Traveler{Name: "", Age: 0})
}

// UpdateTravelerName replaces the name of the traveler at index.
// An out-of-range index is a caller bug (precondition violation), same as
// indexing the slice directly.
func (e *Editor) UpdateTravelerName(index int, name string) {
	e.model.Travelers[index].Name = name
}

// UpdateTravelerAge replaces the age of the traveler at index from its raw
// input. Non-numeric input stores zero, matching the empty-entry convention.
func (e *Editor) UpdateTravelerAge(index int, raw string) {
	e.model.Travelers[index].Age = int(parseAmount(raw))
}

// RemoveTraveler removes the traveler at index and re-packs the list so the
// remaining entries keep contiguous indices.
func (e *Editor) RemoveTraveler(index int) {
	e.model.Travelers = append(e.model.Travelers[:index], e.model.Travelers[index+1:]...)
}

// AddActivity appends an empty activity entry.
func (e *Editor) AddActivity() {
	e.model.Activities = append(e.model.Activities, domain.Activity{})
}

// UpdateActivity replaces one attribute of the activity at index.
// Unknown keys are ignored; out-of-range indices are a caller bug.
func (e *Editor) UpdateActivity(index int, key, value string) {
	a := &e.model.Activities[index]
	switch key {
	case "title":
		a.Title = value
	case "description":
		a.Description = value
	case "time":
		a.Time = value
	case "location":
		a.Location = value
	}
}

// RemoveActivity removes the activity at index and re-packs the list.
func (e *Editor) RemoveActivity(index int) {
	e.model.Activities = append(e.model.Activities[:index], e.model.Activities[index+1:]...)
}

// AppendImages adds picker results to the image list. Duplicate URIs are
// legal — no de-duplication is performed. A zero-length batch is a no-op,
// not an error (the picker was cancelled or returned nothing).
func (e *Editor) AppendImages(uris []string) {
	e.model.Images = append(e.model.Images, uris...)
}

// SetImages replaces the image list wholesale.
func (e *Editor) SetImages(uris []string) {
	e.model.Images = append([]string{}, uris...)
}

// RemoveImages drops every image whose URI is in the selected set.
func (e *Editor) RemoveImages(selected []string) {
	drop := make(map[string]bool, len(selected))
	for _, uri := range selected {
		drop[uri] = true
	}
	kept := e.model.Images[:0]
	for _, uri := range e.model.Images {
		if !drop[uri] {
			kept = append(kept, uri)
		}
	}
	e.model.Images = kept
}

// parseAmount converts a raw numeric entry to its value, mapping empty and
// unparseable input to zero (the "not entered" sentinel).
func parseAmount(raw string) float64 {
	t := strings.TrimSpace(raw)
	if t == "" {
		return 0
	}
	n, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0
	}
	return n
}
