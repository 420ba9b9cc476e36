// Package fetcher downloads the product page with browser-like request
// headers and decodes the body using the charset the server declared.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// StatusError reports a non-2xx response from the product page.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d, body: %s", e.Code, e.Body)
}

// Fetcher issues single GET requests for page HTML.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
}

// New creates a Fetcher with the given timeout and User-Agent.
func New(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

// Fetch retrieves the page at url and returns its decoded text. The
// Referer is the page itself, matching what a browser reload sends.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "pl-PL,pl;q=0.9,en-US;q=0.8,en;q=0.7")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Referer", url)

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(decodeBody(resp))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Code: resp.StatusCode, Body: snippet(body)}
	}
	return string(body), nil
}

// decodeBody wraps the response body in a charset decoder keyed on the
// Content-Type header. Unknown or missing charsets fall back to UTF-8;
// undecodable bytes are replaced, so decoding itself never fails.
func decodeBody(resp *http.Response) io.Reader {
	label := "utf-8"
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil {
		if cs := params["charset"]; cs != "" {
			label = cs
		}
	}
	r, err := charset.NewReaderLabel(label, resp.Body)
	if err != nil {
		return resp.Body
	}
	return r
}

func snippet(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max])
	}
	return string(body)
}
