package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	minWhatsAppDigits = 8
	maxWhatsAppDigits = 15
)

// ConvertArabicDigits replaces Arabic-Indic and Extended Arabic-Indic digits with ASCII digits.
func ConvertArabicDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		default:
			return r
		}
	}, s)
}

// Slugify turns free text into a lowercase, hyphen separated ASCII slug.
// Accents are folded ("Café" -> "cafe"); characters outside [a-z0-9] are dropped.
func Slugify(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(ConvertArabicDigits(folded))

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || r == '_' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}

	return b.String()
}

// NormalizeWhatsApp converts a merchant supplied phone number into the digits-only
// international form used by wa.me links. Numbers with a leading zero, or without
// the default country code, are treated as local and get defaultCountryCode. It returns false when the result is not a plausible number.
func NormalizeWhatsApp(raw, defaultCountryCode string) (string, bool) {
	number := ConvertArabicDigits(strings.TrimSpace(raw))
	international := strings.HasPrefix(number, "+") || strings.HasPrefix(number, "00")

	digits := onlyDigits(number)
	if international {
		digits = strings.TrimPrefix(digits, "00")
	} else {
		code := onlyDigits(defaultCountryCode)
		switch {
		case strings.HasPrefix(digits, "0"):
			digits = code + strings.TrimLeft(digits, "0")
		case !strings.HasPrefix(digits, code):
			digits = code + digits
		}
	}

	if len(digits) < minWhatsAppDigits || len(digits) > maxWhatsAppDigits {
		return "", false
	}

	return digits, true
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
