package notifier

import (
	"fmt"
	"strings"

	"pricewatch/internal/model"
)

// FormatUpdate builds the price-change message: the tracked URL, the
// previous and new price, and the full observation history oldest
// first. oldPrice is "N/A" when no prior record existed.
func FormatUpdate(url, oldPrice, newPrice, currency string, h model.History) string {
	var b strings.Builder
	b.WriteString("Price update\n")
	b.WriteString(fmt.Sprintf("URL: %s\n", url))
	b.WriteString(fmt.Sprintf("Old price: %s %s\n", oldPrice, currency))
	b.WriteString(fmt.Sprintf("New price: %s %s\n", newPrice, currency))
	b.WriteString("\nHistory:\n")
	b.WriteString(h.Format())
	return b.String()
}
