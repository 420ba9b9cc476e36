package model

import (
	"fmt"
	"strings"
)

// PriceRecord is one observed price, immutable once appended to a history.
type PriceRecord struct {
	Date     string `json:"date"`     // ISO 8601 calendar date, e.g. "2025-04-01"
	Price    string `json:"price"`    // canonical two-decimal string, e.g. "3499.00"
	Currency string `json:"currency"` // short code, e.g. "PLN"
}

// History is the append-only chronological sequence of observed prices.
// Insertion order is chronological order; the last record is the current
// known price.
type History []PriceRecord

// Last returns the most recent record, or nil for an empty history.
func (h History) Last() *PriceRecord {
	if len(h) == 0 {
		return nil
	}
	return &h[len(h)-1]
}

// Format renders the history as one "date: price currency" line per
// record, oldest first.
func (h History) Format() string {
	var b strings.Builder
	for i, rec := range h {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s: %s %s", rec.Date, rec.Price, rec.Currency))
	}
	return b.String()
}

// ExtractedPrice is the raw extractor output before normalization.
// Currency is empty when the page declared no explicit currency.
type ExtractedPrice struct {
	Raw      string
	Currency string
}
