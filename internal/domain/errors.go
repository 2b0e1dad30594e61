package domain

import "errors"

// ErrNotFound is returned by the stub backend store when the requested
// resource does not exist. Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing required field, malformed card number). The stub backend
// maps this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrSubmitInFlight is returned by flow.Session.Confirm when a submission is
// already awaiting a response. Guards the double-press race: two rapid
// confirm presses must produce exactly one network call.
var ErrSubmitInFlight = errors.New("submission already in flight")

// ErrPickerCancelled is returned by an image picker when the user dismisses
// the selection without choosing anything. Callers treat it as "no images
// added this call", never as a failure of the add action.
var ErrPickerCancelled = errors.New("image selection cancelled")
