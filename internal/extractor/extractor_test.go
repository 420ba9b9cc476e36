package extractor

import (
	"errors"
	"testing"
)

func TestExtract_JSONLDOffer(t *testing.T) {
	html := `<html><head>
<script type="application/ld+json">
{"@type": "Product", "offers": {"price": "999.99", "priceCurrency": "USD"}}
</script>
<meta itemprop="price" content="111.11">
</head></html>`

	got, err := Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Raw != "999.99" || got.Currency != "USD" {
		t.Errorf("got %+v, want {999.99 USD}", got)
	}
}

func TestExtract_JSONLDOffersList(t *testing.T) {
	html := `<script type="application/ld+json">
{"offers": [{"availability": "InStock"}, {"price": "3499.00", "priceCurrency": "PLN"}]}
</script>`

	got, err := Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Raw != "3499.00" || got.Currency != "PLN" {
		t.Errorf("got %+v, want {3499.00 PLN}", got)
	}
}

func TestExtract_JSONLDNestedGraph(t *testing.T) {
	// The offer sits inside a @graph list; the walk must descend.
	html := `<script type="APPLICATION/LD+JSON">
{"@graph": [{"@type": "WebPage"}, {"@type": "Product", "offers": {"price": 1299.5}}]}
</script>`

	got, err := Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Raw != "1299.5" {
		t.Errorf("got raw %q, want 1299.5", got.Raw)
	}
	if got.Currency != "" {
		t.Errorf("got currency %q, want empty", got.Currency)
	}
}

func TestExtract_JSONLDPriceSpecificationFallback(t *testing.T) {
	html := `<script type="application/ld+json">
{"offers": {"price": "", "priceSpecification": {"price": "42.00"}, "priceCurrency": "PLN"}}
</script>`

	got, err := Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Raw != "42.00" || got.Currency != "PLN" {
		t.Errorf("got %+v, want {42.00 PLN}", got)
	}
}

func TestExtract_SkipsInvalidBlock(t *testing.T) {
	html := `<script type="application/ld+json">{not json</script>
<script type="application/ld+json">{"offers": {"price": "10.00"}}</script>`

	got, err := Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Raw != "10.00" {
		t.Errorf("got raw %q, want 10.00", got.Raw)
	}
}

func TestExtract_FirstBlockWins(t *testing.T) {
	html := `<script type="application/ld+json">{"offers": {"price": "1.00"}}</script>
<script type="application/ld+json">{"offers": {"price": "2.00"}}</script>`

	got, err := Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Raw != "1.00" {
		t.Errorf("got raw %q, want 1.00", got.Raw)
	}
}

func TestExtract_MetaFallback(t *testing.T) {
	tests := []struct {
		name         string
		html         string
		wantRaw      string
		wantCurrency string
	}{
		{
			"itemprop price",
			`<meta itemprop="price" content="499.00">`,
			"499.00", "",
		},
		{
			"product price amount",
			`<meta property="product:price:amount" content="1 234,50">`,
			"1 234,50", "",
		},
		{
			"twitter data",
			`<meta name="twitter:data1" content="999 zł">`,
			"999 zł", "",
		},
		{
			"currency found independently",
			`<meta itemprop="priceCurrency" content="PLN"><meta itemprop="price" content="499.00">`,
			"499.00", "PLN",
		},
		{
			"case insensitive",
			`<META ITEMPROP="price" CONTENT="12.30">`,
			"12.30", "",
		},
	}
	for _, tt := range tests {
		got, err := Extract(tt.html)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got.Raw != tt.wantRaw || got.Currency != tt.wantCurrency {
			t.Errorf("%s: got %+v, want {%s %s}", tt.name, got, tt.wantRaw, tt.wantCurrency)
		}
	}
}

func TestExtract_JSONLDBeforeMeta(t *testing.T) {
	html := `<meta itemprop="price" content="111.11">
<script type="application/ld+json">{"offers": {"price": "222.22"}}</script>`

	got, err := Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Raw != "222.22" {
		t.Errorf("structured metadata should win, got %q", got.Raw)
	}
}

func TestExtract_NoPrice(t *testing.T) {
	html := `<html><body><p>Brak ceny</p>
<script type="application/ld+json">{"offers": {"availability": "OutOfStock"}}</script>
</body></html>`

	_, err := Extract(html)
	if !errors.Is(err, ErrNoPrice) {
		t.Fatalf("expected ErrNoPrice, got %v", err)
	}
}
