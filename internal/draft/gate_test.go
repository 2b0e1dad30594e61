package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/draft"
)

func TestValidate_EmptyDraft_FlagsEveryField(t *testing.T) {
	errs := draft.Validate(domain.NewTripDraft())

	// Every gated field reports at once; the gate never short-circuits.
	for _, key := range domain.FieldOrder {
		assert.Contains(t, errs, key, "expected an error for %q", key)
	}
	assert.Equal(t, "Trip title required", errs[domain.FieldTripTitle])
	assert.Equal(t, "Country required", errs[domain.FieldDestinationCountry])
	assert.Equal(t, "City required", errs[domain.FieldDestinationCity])
	assert.Equal(t, "Valid budget required", errs[domain.FieldBudget])
	assert.Equal(t, "Hotel name required", errs[domain.FieldHotelName])
	assert.Equal(t, "Transport mode required", errs[domain.FieldTransportMode])
	assert.Equal(t, "Number of travelers required", errs[domain.FieldTotalTravelers])
	assert.Equal(t, "Description required", errs[domain.FieldDescription])
	assert.Equal(t, "Select at least one food preference", errs[domain.FieldFoodPreferences])
	assert.Equal(t, "Please add special notes", errs[domain.FieldSpecialNotes])
	assert.Equal(t, "Please set trip dates", errs[domain.FieldDates])
}

func TestValidate_ValidDraft_Passes(t *testing.T) {
	e := draft.NewEditor()
	fillValid(e)

	assert.Empty(t, draft.Validate(e.Draft()))
}

func TestValidate_BadTitlePattern(t *testing.T) {
	e := draft.NewEditor()
	fillValid(e)
	e.SetField(domain.FieldTripTitle, "Summer  Vacation")

	errs := draft.Validate(e.Draft())

	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid title. Only letters, numbers, single space allowed", errs[domain.FieldTripTitle])
}

func TestValidate_ZeroNumericsFail(t *testing.T) {
	e := draft.NewEditor()
	fillValid(e)
	e.SetField(domain.FieldBudget, "0")
	e.SetField(domain.FieldTotalTravelers, "0")

	errs := draft.Validate(e.Draft())

	assert.Equal(t, "Valid budget required", errs[domain.FieldBudget])
	assert.Equal(t, "Number of travelers required", errs[domain.FieldTotalTravelers])
}

func TestValidate_TravelerCountIndependentOfTravelerList(t *testing.T) {
	// The headcount and the named-traveler list are separate inputs: a count
	// of 4 with an empty list is fine, and named travelers with a zero count
	// still fail the count check.
	e := draft.NewEditor()
	fillValid(e)
	require.Empty(t, draft.Validate(e.Draft()))

	e.SetField(domain.FieldTotalTravelers, "")
	e.AddTraveler()
	e.UpdateTravelerName(0, "Ali")

	errs := draft.Validate(e.Draft())
	assert.Equal(t, "Number of travelers required", errs[domain.FieldTotalTravelers])
}

func TestEditor_Validate_StoresErrorMap(t *testing.T) {
	e := draft.NewEditor()

	returned := e.Validate()

	assert.Equal(t, returned, e.Errors())
}

func TestErrorMap_Error_FollowsFieldOrder(t *testing.T) {
	errs := draft.Validate(domain.NewTripDraft())

	msg := errs.Error()
	assert.Contains(t, msg, "Trip title required")
	assert.Contains(t, msg, "Please set trip dates")
	// First surfaces the first failing field in display order.
	field, first, ok := errs.First()
	require.True(t, ok)
	assert.Equal(t, domain.FieldTripTitle, field)
	assert.Equal(t, "Trip title required", first)
}

func TestValidateImages(t *testing.T) {
	d := domain.NewTripDraft()

	errs := draft.ValidateImages(d)
	assert.Equal(t, draft.ImagesRequiredMessage, errs["trip_images"])

	d.Images = []string{"file:///a.jpg"}
	assert.Empty(t, draft.ValidateImages(d))
}
