// Package validate holds the pure field validators used by the draft gate,
// the auth forms, and the payment form. Every validator takes the current
// field value, returns "" when it is acceptable and a human-readable message
// when it is not, and has no side effects, so each one is independently
// testable and the gate can run them in any order.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// tripTitleRe accepts one or two words of letters/digits with a single
	// interior space: "Summer" and "Summer Vacation" pass, "Summer  Vacation"
	// (double space) and "Summer Beach Trip" (three words) fail.
	tripTitleRe = regexp.MustCompile(`^[A-Za-z0-9]+(?: [A-Za-z0-9]+)?$`)

	// nameRe mirrors the sign-up rule for first/last names.
	nameRe = regexp.MustCompile(`^[A-Za-z]+(?: [A-Za-z]+)?$`)

	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe      = regexp.MustCompile(`^\+92\d{10}$`)
	cardHolderRe = regexp.MustCompile(`^[A-Za-z ]{3,}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	digitsRe     = regexp.MustCompile(`^\d+$`)

	// Profile-edit rules. Looser than the sign-up ones: names and places
	// allow any spacing, the phone is the local 03XXXXXXXXX form, and the
	// address admits common punctuation.
	profileTextRe = regexp.MustCompile(`^[A-Za-z ]+$`)
	localPhoneRe  = regexp.MustCompile(`^03\d{9}$`)
	addressRe     = regexp.MustCompile(`^[A-Za-z0-9#,\-.\s]+$`)
)

// TripTitle validates the draft title: required, then pattern-checked.
func TripTitle(title string) string {
	t := strings.TrimSpace(title)
	if t == "" {
		return "Trip title required"
	}
	if !tripTitleRe.MatchString(t) {
		return "Invalid title. Only letters, numbers, single space allowed"
	}
	return ""
}

// Required validates a free-text field that only needs to be non-empty after
// trimming. The message is supplied by the caller because it is field-specific
// ("Country required", "Please add special notes", ...).
func Required(value, message string) string {
	if strings.TrimSpace(value) == "" {
		return message
	}
	return ""
}

// Amount validates a numeric entry kept as its raw display string.
// Empty, non-numeric, and zero entries all fail: by UI convention a zero
// value renders as an empty input, so zero means "not yet entered".
func Amount(raw, message string) string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return message
	}
	n, err := strconv.ParseFloat(t, 64)
	if err != nil || n == 0 {
		return message
	}
	return ""
}

// FoodPreferences validates the derived preference list: at least one entry.
func FoodPreferences(prefs []string) string {
	if len(prefs) == 0 {
		return "Select at least one food preference"
	}
	return ""
}

// Dates validates the schedule as a single combined check: both dates must be
// present. Chronology is deliberately not checked; the gate only enforces
// presence.
func Dates(start, end *time.Time) string {
	if start == nil || end == nil {
		return "Please set trip dates"
	}
	return ""
}

// SplitPreferences derives the food preference list from the comma-delimited
// input string, trimming each entry and dropping empties. An empty input
// derives to an empty list (which then fails FoodPreferences).
func SplitPreferences(input string) []string {
	out := []string{}
	for _, part := range strings.Split(input, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// --- auth form rules --------------------------------------------------------

// PersonName validates a first or last name: required, letters only, at most
// one interior space.
func PersonName(name, requiredMsg string) string {
	t := strings.TrimSpace(name)
	if t == "" {
		return requiredMsg
	}
	if !nameRe.MatchString(t) {
		return "Only letters, one space allowed"
	}
	return ""
}

// Email validates an email address: required, then format-checked.
func Email(email string) string {
	t := strings.TrimSpace(email)
	if t == "" {
		return "Enter email address"
	}
	if !emailRe.MatchString(t) {
		return "Enter valid email"
	}
	return ""
}

// Password validates a password against the minimum-length rule.
func Password(password string) string {
	if password == "" {
		return "Enter password"
	}
	if len(password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}

// PhoneNumber validates a normalized Pakistani phone number: +92 followed by
// ten digits. Run NormalizePhone first when accepting raw input.
func PhoneNumber(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return "Enter phone number"
	}
	if !phoneRe.MatchString(phone) {
		return "Enter valid phone number"
	}
	return ""
}

// NormalizePhone strips non-digits and replaces a single leading 0 with +92,
// matching how the sign-up screen formats the number as the user types.
func NormalizePhone(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s := digits.String()
	if strings.HasPrefix(s, "0") {
		return "+92" + s[1:]
	}
	if s == "" {
		return ""
	}
	if strings.HasPrefix(input, "+") {
		return "+" + s
	}
	return s
}

// OTP validates a one-time passcode assembled from the four entry boxes:
// exactly four digits.
func OTP(code string) string {
	if len(code) != 4 || !digitsRe.MatchString(code) {
		return "Please enter complete 4 digit OTP"
	}
	return ""
}

// --- payment form rules -----------------------------------------------------

// CardNumber validates a 16-digit card number.
func CardNumber(number string) string {
	t := strings.TrimSpace(number)
	if len(t) < 16 || !digitsRe.MatchString(t) {
		return "Card number must be 16 digits"
	}
	return ""
}

// CardExpiry validates an MM/YY expiry.
func CardExpiry(expiry string) string {
	if !expiryRe.MatchString(strings.TrimSpace(expiry)) {
		return "Expiry must be MM/YY"
	}
	return ""
}

// CardCVV validates a 3-digit CVV.
func CardCVV(cvv string) string {
	t := strings.TrimSpace(cvv)
	if len(t) != 3 || !digitsRe.MatchString(t) {
		return "CVV must be 3 digits"
	}
	return ""
}

// CardHolder validates the card holder name: at least three characters,
// letters and spaces only.
func CardHolder(holder string) string {
	if !cardHolderRe.MatchString(strings.TrimSpace(holder)) {
		return "Enter valid card holder name"
	}
	return ""
}

// --- profile edit rules -----------------------------------------------------
//
// Profile validators only run against fields the user actually filled in,
// so an empty value passes: it means "leave this field alone".

// ProfileText validates a free-text profile field (name, city, country):
// letters and spaces only. message is returned on failure.
func ProfileText(value, message string) string {
	if value == "" {
		return ""
	}
	if !profileTextRe.MatchString(value) {
		return message
	}
	return ""
}

// LocalPhone validates a phone number in the local 03XXXXXXXXX form.
func LocalPhone(phone string) string {
	if phone == "" {
		return ""
	}
	if !localPhoneRe.MatchString(phone) {
		return "Phone must be like 03XXXXXXXXX"
	}
	return ""
}

// Address validates a street address: letters, digits and the usual
// punctuation (#, comma, hyphen, period).
func Address(value string) string {
	if value == "" {
		return ""
	}
	if !addressRe.MatchString(value) {
		return "Invalid address"
	}
	return ""
}
