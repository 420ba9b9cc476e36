package extractor

import (
	"regexp"

	"pricewatch/internal/model"
)

// pricePatterns are tried in order against the raw HTML; the first
// match anywhere in the document wins.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)itemprop="price"\s+content="([^"]+)"`),
	regexp.MustCompile(`(?i)property="product:price:amount"\s+content="([^"]+)"`),
	regexp.MustCompile(`(?i)name="twitter:data1"\s+content="([^"]+)"`),
}

var currencyPattern = regexp.MustCompile(`(?i)itemprop="priceCurrency"\s+content="([^"]+)"`)

// extractFromMeta finds a price in inline meta/itemprop attributes. The
// currency is looked up independently of which price pattern matched.
func extractFromMeta(html string) (model.ExtractedPrice, bool) {
	currency := ""
	if m := currencyPattern.FindStringSubmatch(html); m != nil {
		currency = m[1]
	}
	for _, pat := range pricePatterns {
		if m := pat.FindStringSubmatch(html); m != nil {
			return model.ExtractedPrice{Raw: m[1], Currency: currency}, true
		}
	}
	return model.ExtractedPrice{}, false
}
