package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/validate"
)

// ---- trip form rules --------------------------------------------------------

func TestTripTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"single word", "Summer", ""},
		{"two words single space", "Summer Vacation", ""},
		{"letters and digits", "Trip2026", ""},
		{"empty", "", "Trip title required"},
		{"whitespace only", "   ", "Trip title required"},
		{"double space", "Summer  Vacation", "Invalid title. Only letters, numbers, single space allowed"},
		{"three words", "Summer Beach Trip", "Invalid title. Only letters, numbers, single space allowed"},
		{"punctuation", "Summer!", "Invalid title. Only letters, numbers, single space allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.TripTitle(tt.title))
		})
	}
}

func TestTripTitle_TrimsBeforeMatching(t *testing.T) {
	// Leading/trailing whitespace is not the user's fault; only the interior
	// shape of the title is checked.
	assert.Empty(t, validate.TripTitle("  Summer Vacation  "))
}

func TestRequired(t *testing.T) {
	assert.Empty(t, validate.Required("Pakistan", "Country required"))
	assert.Equal(t, "Country required", validate.Required("", "Country required"))
	assert.Equal(t, "Country required", validate.Required("   ", "Country required"))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"positive", "50000", ""},
		{"decimal", "50000.50", ""},
		{"empty", "", "Valid budget required"},
		{"non numeric", "a lot", "Valid budget required"},
		{"zero means not entered", "0", "Valid budget required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Amount(tt.raw, "Valid budget required"))
		})
	}
}

func TestFoodPreferences(t *testing.T) {
	assert.Empty(t, validate.FoodPreferences([]string{"BBQ"}))
	assert.Equal(t, "Select at least one food preference", validate.FoodPreferences(nil))
	assert.Equal(t, "Select at least one food preference", validate.FoodPreferences([]string{}))
}

func TestDates(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, validate.Dates(&start, &end))
	assert.Equal(t, "Please set trip dates", validate.Dates(nil, nil))
	assert.Equal(t, "Please set trip dates", validate.Dates(&start, nil))
	assert.Equal(t, "Please set trip dates", validate.Dates(nil, &end))
}

func TestDates_ChronologyNotEnforced(t *testing.T) {
	// Only presence is checked; an end before the start still passes the gate.
	start := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, validate.Dates(&start, &end))
}

func TestSplitPreferences(t *testing.T) {
	assert.Equal(t, []string{"BBQ", "Fast Food"}, validate.SplitPreferences("BBQ, Fast Food"))
	assert.Equal(t, []string{"BBQ"}, validate.SplitPreferences("  BBQ , "))
	assert.Equal(t, []string{}, validate.SplitPreferences(""))
	assert.Equal(t, []string{}, validate.SplitPreferences(" , ,"))
}

// ---- auth form rules --------------------------------------------------------

func TestPersonName(t *testing.T) {
	assert.Empty(t, validate.PersonName("Ali", "Enter first name"))
	assert.Empty(t, validate.PersonName("Ali Raza", "Enter first name"))
	assert.Equal(t, "Enter first name", validate.PersonName("", "Enter first name"))
	assert.Equal(t, "Only letters, one space allowed", validate.PersonName("Ali  Raza", "Enter first name"))
	assert.Equal(t, "Only letters, one space allowed", validate.PersonName("Ali3", "Enter first name"))
}

func TestEmail(t *testing.T) {
	assert.Empty(t, validate.Email("user@example.com"))
	assert.Equal(t, "Enter email address", validate.Email(""))
	assert.Equal(t, "Enter valid email", validate.Email("user@example"))
	assert.Equal(t, "Enter valid email", validate.Email("user example@x.com"))
}

func TestPassword(t *testing.T) {
	assert.Empty(t, validate.Password("secret1"))
	assert.Equal(t, "Enter password", validate.Password(""))
	assert.Equal(t, "Password must be at least 6 characters", validate.Password("abc"))
}

func TestPhoneNumber(t *testing.T) {
	assert.Empty(t, validate.PhoneNumber("+923001234567"))
	assert.Equal(t, "Enter phone number", validate.PhoneNumber(""))
	assert.Equal(t, "Enter valid phone number", validate.PhoneNumber("03001234567"))
	assert.Equal(t, "Enter valid phone number", validate.PhoneNumber("+92300123456"))
}

func TestNormalizePhone(t *testing.T) {
	// A leading 0 is the local dialing prefix; it is swapped for +92.
	assert.Equal(t, "+923001234567", validate.NormalizePhone("03001234567"))
	assert.Equal(t, "+923001234567", validate.NormalizePhone("0300-1234567"))
	assert.Equal(t, "+923001234567", validate.NormalizePhone("+92 300 1234567"))
	assert.Equal(t, "", validate.NormalizePhone(""))
}

func TestOTP(t *testing.T) {
	assert.Empty(t, validate.OTP("1234"))
	assert.Equal(t, "Please enter complete 4 digit OTP", validate.OTP("123"))
	assert.Equal(t, "Please enter complete 4 digit OTP", validate.OTP("12345"))
	assert.Equal(t, "Please enter complete 4 digit OTP", validate.OTP("12a4"))
	assert.Equal(t, "Please enter complete 4 digit OTP", validate.OTP(""))
}

// ---- payment form rules -----------------------------------------------------

func TestCardNumber(t *testing.T) {
	assert.Empty(t, validate.CardNumber("4111111111111111"))
	assert.Equal(t, "Card number must be 16 digits", validate.CardNumber("411111111111111"))
	assert.Equal(t, "Card number must be 16 digits", validate.CardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "Card number must be 16 digits", validate.CardNumber(""))
}

func TestCardExpiry(t *testing.T) {
	assert.Empty(t, validate.CardExpiry("09/27"))
	assert.Empty(t, validate.CardExpiry("12/30"))
	assert.Equal(t, "Expiry must be MM/YY", validate.CardExpiry("13/27"))
	assert.Equal(t, "Expiry must be MM/YY", validate.CardExpiry("9/27"))
	assert.Equal(t, "Expiry must be MM/YY", validate.CardExpiry("0927"))
}

func TestCardCVV(t *testing.T) {
	assert.Empty(t, validate.CardCVV("123"))
	assert.Equal(t, "CVV must be 3 digits", validate.CardCVV("12"))
	assert.Equal(t, "CVV must be 3 digits", validate.CardCVV("1234"))
	assert.Equal(t, "CVV must be 3 digits", validate.CardCVV("12a"))
}

func TestCardHolder(t *testing.T) {
	assert.Empty(t, validate.CardHolder("Ali Raza"))
	assert.Equal(t, "Enter valid card holder name", validate.CardHolder("Al"))
	assert.Equal(t, "Enter valid card holder name", validate.CardHolder("Ali3"))
}

// ---- profile edit rules -----------------------------------------------------

func TestProfileText(t *testing.T) {
	assert.Empty(t, validate.ProfileText("Sara Khan", "Invalid first name"))
	assert.Equal(t, "Invalid first name", validate.ProfileText("S4ra", "Invalid first name"))
	assert.Equal(t, "Invalid city", validate.ProfileText("Lahore-2", "Invalid city"))
	// Empty means the field was left alone.
	assert.Empty(t, validate.ProfileText("", "Invalid first name"))
}

func TestLocalPhone(t *testing.T) {
	assert.Empty(t, validate.LocalPhone("03001234567"))
	assert.Empty(t, validate.LocalPhone(""))
	assert.Equal(t, "Phone must be like 03XXXXXXXXX", validate.LocalPhone("0300123456"))
	assert.Equal(t, "Phone must be like 03XXXXXXXXX", validate.LocalPhone("+923001234567"))
	assert.Equal(t, "Phone must be like 03XXXXXXXXX", validate.LocalPhone("04001234567"))
}

func TestAddress(t *testing.T) {
	assert.Empty(t, validate.Address("House #12, Street 4, F-8"))
	assert.Empty(t, validate.Address(""))
	assert.Equal(t, "Invalid address", validate.Address("home!!"))
}
