// Package scrape fetches company web pages and reduces them to plain text
// for the extraction engine. All network failure modes degrade to empty
// strings or errors at this boundary; the core only ever sees text.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// UserAgent mimics a desktop browser; several investor-relations sites serve
// stripped pages to unknown clients.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher downloads pages with bounded exponential-backoff retries.
type Fetcher struct {
	client     *http.Client
	maxRetries int
	baseDelay  time.Duration
}

// NewFetcher creates a fetcher with the given per-request timeout and total
// attempt count (attempts = maxRetries, minimum 1).
func NewFetcher(timeout time.Duration, maxRetries int) *Fetcher {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Fetcher{
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		baseDelay:  1 * time.Second,
	}
}

// SetBaseDelay overrides the initial backoff delay (tests use milliseconds).
func (f *Fetcher) SetBaseDelay(d time.Duration) { f.baseDelay = d }

// Fetch downloads a URL and returns its body. Failed attempts retry with a
// doubling delay; the error of the final attempt is returned on exhaustion.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	backoff := retry.WithMaxRetries(uint64(f.maxRetries-1), retry.NewExponential(f.baseDelay))

	var body string
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		b, err := f.fetchOnce(ctx, url)
		if err != nil {
			fmt.Printf("[Fetch] attempt failed for %s: %v\n", url, err)
			return retry.RetryableError(err)
		}
		body = b
		return nil
	})
	if err != nil {
		return "", err
	}
	return body, nil
}

// fetchOnce performs a single GET with browser-like headers.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("server returned status %d for %s", resp.StatusCode, url)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
