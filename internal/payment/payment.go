// Package payment models the mock card-payment form: field validation with
// the same transactional error-clearing the draft editor uses, and receipt
// formatting. No real payment is processed; the form exists to exercise the
// checkout screen end to end.
package payment

import (
	"strings"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/validate"
)

// Field keys for the card form.
const (
	FieldCardNumber = "cardNumber"
	FieldExpiry     = "expiry"
	FieldCVV        = "cvv"
	FieldCardHolder = "cardHolder"
)

// Form is the card entry form state.
type Form struct {
	CardNumber string
	Expiry     string
	CVV        string
	CardHolder string

	errors map[string]string
}

// NewForm returns an empty card form.
func NewForm() *Form {
	return &Form{errors: map[string]string{}}
}

// SetField updates one field and clears its error, as a single transactional
// mutation. Validation runs only on Validate.
func (f *Form) SetField(key, value string) {
	switch key {
	case FieldCardNumber:
		f.CardNumber = value
	case FieldExpiry:
		f.Expiry = value
	case FieldCVV:
		f.CVV = value
	case FieldCardHolder:
		f.CardHolder = value
	}
	delete(f.errors, key)
}

// Errors returns a copy of the current field error map.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Validate runs all card validators, stores the error map, and returns true
// when the form may be submitted. All failures are reported together.
func (f *Form) Validate() bool {
	errs := map[string]string{}
	record := func(key, msg string) {
		if msg != "" {
			errs[key] = msg
		}
	}
	record(FieldCardNumber, validate.CardNumber(f.CardNumber))
	record(FieldExpiry, validate.CardExpiry(f.Expiry))
	record(FieldCVV, validate.CardCVV(f.CVV))
	record(FieldCardHolder, validate.CardHolder(f.CardHolder))
	f.errors = errs
	return len(errs) == 0
}

// MaskedNumber renders the card number for the receipt: all but the last
// four digits hidden. Empty input renders empty.
func (f *Form) MaskedNumber() string {
	n := strings.TrimSpace(f.CardNumber)
	if n == "" {
		return ""
	}
	if len(n) < 4 {
		return "**** **** **** " + n
	}
	return "**** **** **** " + n[len(n)-4:]
}
