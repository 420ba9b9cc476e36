// Package price normalizes raw scraped price text into the canonical
// two-decimal form used everywhere else in the program.
package price

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatError reports price text that survived extraction but is not
// parseable as a number. Raw keeps the original text for the log.
type FormatError struct {
	Raw string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid price format: %q", e.Raw)
}

var nonPriceChars = regexp.MustCompile(`[^0-9,.]`)

// Normalize converts a raw price string in unknown locale formatting into
// a canonical decimal string with exactly two fraction digits, "." as the
// separator and no grouping characters.
//
// When the string contains a comma but no period, the comma is the
// decimal separator ("1 234,50" -> "1234.50"). Otherwise commas are
// treated as thousands separators and dropped ("1,234.56" -> "1234.56").
// Rounding is half away from zero.
func Normalize(raw string) (string, error) {
	cleaned := strings.ReplaceAll(raw, " ", " ")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = nonPriceChars.ReplaceAllString(cleaned, "")

	if strings.Contains(cleaned, ",") && !strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return "", &FormatError{Raw: raw}
	}
	return value.StringFixed(2), nil
}

var plnHint = regexp.MustCompile(`(?i)\bPLN\b|zl|z\x{0142}`)

// DetectCurrency resolves the currency code for a price. An explicit
// value from the page wins; otherwise the page text is sniffed for
// Polish currency markers. The fallback is "PLN" either way, reflecting
// the single fixed target market.
//
// The "zl" hint is a plain substring match and can false-positive on
// unrelated text; it is kept as-is as a known heuristic limitation.
func DetectCurrency(explicit, html string) string {
	if explicit != "" {
		return explicit
	}
	if plnHint.MatchString(html) {
		return "PLN"
	}
	return "PLN"
}
