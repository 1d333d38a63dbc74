package customer

import "strings"

const (
	DefaultCountryCode = "55"

	minPhoneDigits = 12
	maxPhoneDigits = 13
)

// PhoneNormalizer turns free-form phone strings into channel-addressable digit strings.
// It is a best-effort heuristic, not validation: some invalid numbers pass and longer
// numbers are truncated.
type PhoneNormalizer struct {
	countryCode string
}

func NewPhoneNormalizer(countryCode string) PhoneNormalizer {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	return PhoneNormalizer{countryCode: countryCode}
}

// Normalize returns "" when no usable number can be derived.
func (n PhoneNormalizer) Normalize(raw string) string {
	digits := digitsOnly(raw)
	if digits == "" {
		return ""
	}
	if !strings.HasPrefix(digits, n.countryCode) {
		digits = n.countryCode + digits
	}
	if len(digits) < minPhoneDigits {
		return ""
	}
	if len(digits) > maxPhoneDigits {
		digits = digits[:maxPhoneDigits]
	}
	return digits
}

// NormalizePhone uses the default country code.
func NormalizePhone(raw string) string {
	return NewPhoneNormalizer(DefaultCountryCode).Normalize(raw)
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
