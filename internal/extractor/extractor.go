// Package extractor locates a product price inside loosely structured
// HTML. Two strategies run in order: embedded JSON-LD product metadata,
// then inline meta/itemprop attribute patterns. The first hit wins and
// partial results are never merged across strategies.
package extractor

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pricewatch/internal/model"
)

// ErrNoPrice means neither strategy found a price anywhere in the page.
var ErrNoPrice = errors.New("no price found in page HTML")

// Extract scans the page and returns the raw price text plus whatever
// currency was declared next to it. Currency may be empty.
func Extract(html string) (model.ExtractedPrice, error) {
	if p, ok := extractFromJSONLD(html); ok {
		return p, nil
	}
	if p, ok := extractFromMeta(html); ok {
		return p, nil
	}
	return model.ExtractedPrice{}, ErrNoPrice
}

// extractFromJSONLD walks every <script type="application/ld+json">
// block in document order and returns the first offer carrying a
// non-empty price. Blocks that fail to parse as JSON are skipped.
func extractFromJSONLD(html string) (model.ExtractedPrice, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return model.ExtractedPrice{}, false
	}

	var found model.ExtractedPrice
	var ok bool
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		typ, _ := s.Attr("type")
		if !strings.EqualFold(strings.TrimSpace(typ), "application/ld+json") {
			return true
		}
		if p, hit := scanBlock(strings.TrimSpace(s.Text())); hit {
			found, ok = p, true
			return false
		}
		return true
	})
	return found, ok
}
