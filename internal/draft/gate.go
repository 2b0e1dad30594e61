package draft

import (
	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/validate"
)

// ImagesRequiredMessage is surfaced when the Images stage is submitted with
// an empty image list.
const ImagesRequiredMessage = "Please select at least 1 image"

// Validate runs every field validator against the draft and returns the full
// error map. It never stops at the first failure: the UI highlights every
// offending field at once. An empty map means the draft may advance past the
// Plan stage.
//
// The checks are independent of each other and of call order; the map is the
// same however the validators are sequenced.
func Validate(d domain.TripDraft) domain.ErrorMap {
	errs := domain.ErrorMap{}

	record := func(key, msg string) {
		if msg != "" {
			errs[key] = msg
		}
	}

	record(domain.FieldTripTitle, validate.TripTitle(d.Title))
	record(domain.FieldDestinationCountry, validate.Required(d.DestinationCountry, "Country required"))
	record(domain.FieldDestinationCity, validate.Required(d.DestinationCity, "City required"))
	record(domain.FieldBudget, amountMessage(d.Budget, "Valid budget required"))
	record(domain.FieldHotelName, validate.Required(d.HotelName, "Hotel name required"))
	record(domain.FieldTransportMode, validate.Required(d.TransportMode, "Transport mode required"))
	record(domain.FieldTotalTravelers, amountMessage(float64(d.TotalTravelers), "Number of travelers required"))
	record(domain.FieldDescription, validate.Required(d.Description, "Description required"))
	record(domain.FieldFoodPreferences, validate.FoodPreferences(d.FoodPreferences))
	record(domain.FieldSpecialNotes, validate.Required(d.SpecialNotes, "Please add special notes"))
	record(domain.FieldDates, validate.Dates(d.StartDate, d.EndDate))

	return errs
}

// ValidateImages gates the Images → Review transition: at least one image
// must have been selected.
func ValidateImages(d domain.TripDraft) domain.ErrorMap {
	if len(d.Images) == 0 {
		return domain.ErrorMap{"trip_images": ImagesRequiredMessage}
	}
	return domain.ErrorMap{}
}

// Validate runs the stage gate over the editor's current draft and stores the
// resulting error map so the UI can render per-field highlights. Returns the
// map for the caller's transition decision.
func (e *Editor) Validate() domain.ErrorMap {
	errs := Validate(e.model)
	e.errors = errs
	return e.Errors()
}

// amountMessage mirrors validate.Amount for a value that has already been
// parsed: zero means "not entered" and fails.
func amountMessage(n float64, message string) string {
	if n == 0 {
		return message
	}
	return ""
}
