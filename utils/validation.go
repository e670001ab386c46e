package utils

import (
	"regexp"
	"strconv"
	"time"
)

// Card network names returned by CardNetwork.
const (
	NetworkVisa       = "visa"
	NetworkMastercard = "mastercard"
	NetworkAmex       = "amex"
	NetworkRupay      = "rupay"
	NetworkUnknown    = "unknown"
)

var (
	vpaRegex      = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// ValidateVPA checks a UPI virtual payment address (handle@bank form).
// An empty string is invalid.
func ValidateVPA(vpa string) bool {
	return vpaRegex.MatchString(vpa)
}

// StripNonDigits removes spaces, dashes and any other non-digit characters
// from a card number.
func StripNonDigits(cardNumber string) string {
	return nonDigitRegex.ReplaceAllString(cardNumber, "")
}

// ValidateLuhn checks a card number against the Luhn checksum. Non-digit
// characters are stripped first; the digit count must be between 13 and 19.
func ValidateLuhn(cardNumber string) bool {
	clean := StripNonDigits(cardNumber)
	if len(clean) < 13 || len(clean) > 19 {
		return false
	}

	sum := 0
	// Double every second digit starting from the second-to-last,
	// subtracting 9 when the doubled value exceeds 9.
	double := false
	for i := len(clean) - 1; i >= 0; i-- {
		d := int(clean[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}

// CardNetwork classifies a card number by its prefix. Visa is checked first,
// then the two-digit prefixes; the first match wins.
func CardNetwork(cardNumber string) string {
	clean := StripNonDigits(cardNumber)
	if clean == "" {
		return NetworkUnknown
	}

	if clean[0] == '4' {
		return NetworkVisa
	}

	if len(clean) < 2 {
		return NetworkUnknown
	}
	prefix2, err := strconv.Atoi(clean[:2])
	if err != nil {
		return NetworkUnknown
	}

	switch {
	case prefix2 >= 51 && prefix2 <= 55:
		return NetworkMastercard
	case prefix2 == 34 || prefix2 == 37:
		return NetworkAmex
	case prefix2 == 60 || prefix2 == 65 || (prefix2 >= 81 && prefix2 <= 89):
		return NetworkRupay
	}

	return NetworkUnknown
}

// ValidateExpiry checks that a card expiry month/year is the current month or
// later. Two-digit years are taken as 20xx. Any parse failure is invalid.
func ValidateExpiry(month, year string) bool {
	m, err := strconv.Atoi(month)
	if err != nil {
		return false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}

	if m < 1 || m > 12 {
		return false
	}
	if y < 100 {
		y += 2000
	}

	now := time.Now()
	if y > now.Year() {
		return true
	}
	return y == now.Year() && m >= int(now.Month())
}
