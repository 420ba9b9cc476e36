// Package watcher runs one fetch-extract-compare-notify cycle.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"pricewatch/internal/config"
	"pricewatch/internal/extractor"
	"pricewatch/internal/history"
	"pricewatch/internal/model"
	"pricewatch/internal/notifier"
	"pricewatch/internal/price"
)

// ErrMissingCredentials means a notification was due but the Telegram
// settings were not configured. Raised before any call to the API.
var ErrMissingCredentials = errors.New("missing TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID")

// PageFetcher retrieves the product page HTML.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Sender delivers the notification message.
type Sender interface {
	Send(text string) error
}

// Watcher wires the pipeline components together for a single run.
type Watcher struct {
	cfg     *config.Config
	fetcher PageFetcher
	sender  Sender
	now     func() time.Time
}

// New creates a Watcher around the given collaborators.
func New(cfg *config.Config, fetcher PageFetcher, sender Sender) *Watcher {
	return &Watcher{cfg: cfg, fetcher: fetcher, sender: sender, now: time.Now}
}

// Run executes one watch cycle. A changed price is persisted before the
// notification attempt, so a failed send never loses the observation.
func (w *Watcher) Run(ctx context.Context) error {
	html, err := w.fetcher.Fetch(ctx, w.cfg.URL)
	if err != nil {
		return err
	}

	extracted, err := extractor.Extract(html)
	if err != nil {
		return err
	}

	newPrice, err := price.Normalize(extracted.Raw)
	if err != nil {
		return err
	}
	currency := price.DetectCurrency(extracted.Currency, html)

	hist, err := history.Load(w.cfg.HistoryPath)
	if err != nil {
		return err
	}
	last := hist.Last()

	changed := last == nil || last.Price != newPrice
	if changed {
		hist = append(hist, model.PriceRecord{
			Date:     w.now().Format("2006-01-02"),
			Price:    newPrice,
			Currency: currency,
		})
		if err := history.Save(w.cfg.HistoryPath, hist); err != nil {
			return err
		}
		log.Printf("[INFO] price changed to %s %s, history updated", newPrice, currency)
	}

	if !changed && !w.cfg.ForceNotify {
		log.Println("[INFO] price unchanged; no notification sent")
		return nil
	}

	if !w.cfg.HasCredentials() {
		return ErrMissingCredentials
	}

	oldPrice := "N/A"
	if last != nil {
		oldPrice = last.Price
	}
	msg := notifier.FormatUpdate(w.cfg.URL, oldPrice, newPrice, currency, hist)
	if err := w.sender.Send(msg); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	log.Println("[INFO] notification sent")
	return nil
}
