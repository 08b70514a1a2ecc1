// Package pipeline wires page discovery, scraping, extraction, and
// normalization into the end-to-end revenue lookup flow.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"revenuescraper/pkg/core/currency"
	"revenuescraper/pkg/core/extract"
	"revenuescraper/pkg/models"
)

// PageScraper discovers and fetches candidate financial pages.
// Implementations may hit the live web (scrape.Fetcher) or serve fixtures in
// tests.
type PageScraper interface {
	DiscoverFinancialPages(ctx context.Context, baseURL string) ([]string, error)
	ScrapePage(ctx context.Context, url string) string
}

// ResultsRepository persists scrape results. Persistence is best-effort: a
// storage failure never fails a scrape.
type ResultsRepository interface {
	Save(ctx context.Context, result *models.ScrapeResult) error
}

// Orchestrator manages the flow for one company URL:
// discover pages -> scrape top N concurrently -> combine text ->
// extract figure -> normalize to USD -> store.
type Orchestrator struct {
	scraper  PageScraper
	repo     ResultsRepository
	maxPages int
}

// NewOrchestrator creates an orchestrator scraping at most maxPages
// candidate pages per company.
func NewOrchestrator(scraper PageScraper, maxPages int) *Orchestrator {
	if maxPages < 1 {
		maxPages = 5
	}
	return &Orchestrator{scraper: scraper, maxPages: maxPages}
}

// SetRepository injects a results store (nil disables persistence).
func (o *Orchestrator) SetRepository(repo ResultsRepository) {
	o.repo = repo
}

// ScrapeCompany runs the full flow for a single company URL. It always
// returns a result; every failure mode maps to the NotFound sentinel.
func (o *Orchestrator) ScrapeCompany(ctx context.Context, baseURL string) models.ScrapeResult {
	start := time.Now()
	result := models.ScrapeResult{
		URL:        baseURL,
		RevenueRaw: extract.NotFound,
		RevenueUSD: extract.NotFound,
		ScrapedAt:  start,
	}

	pages, err := o.scraper.DiscoverFinancialPages(ctx, baseURL)
	if err != nil {
		fmt.Printf("[Pipeline] discovery failed for %s: %v\n", baseURL, err)
		o.persist(ctx, &result)
		return result
	}
	if len(pages) > o.maxPages {
		pages = pages[:o.maxPages]
	}
	fmt.Printf("[Pipeline] %s: scraping %d candidate pages...\n", baseURL, len(pages))

	// Pages are independent; scrape them in parallel and keep discovery
	// order when combining so extraction stays deterministic.
	texts := make([]string, len(pages))
	var wg sync.WaitGroup
	for i, page := range pages {
		wg.Add(1)
		go func(i int, page string) {
			defer wg.Done()
			texts[i] = o.scraper.ScrapePage(ctx, page)
		}(i, page)
	}
	wg.Wait()

	combined := strings.TrimSpace(strings.Join(texts, " "))
	if combined != "" {
		result.RevenueRaw = extract.Extract(combined)
		result.RevenueUSD = currency.Normalize(result.RevenueRaw)
	}

	fmt.Printf("[Pipeline] %s -> %s (%s) in %v\n",
		baseURL, result.RevenueRaw, result.RevenueUSD, time.Since(start))
	o.persist(ctx, &result)
	return result
}

// RunBatch scrapes each URL in order, tagging all results with one job id.
// Rows are independent, but batches run sequentially to keep the load on
// target sites predictable.
func (o *Orchestrator) RunBatch(ctx context.Context, urls []string) models.BatchResult {
	batch := models.BatchResult{JobID: uuid.New().String()}
	fmt.Printf("[Pipeline] batch %s: %d URLs\n", batch.JobID, len(urls))

	for i, u := range urls {
		fmt.Printf("[Pipeline] batch %s: row %d/%d\n", batch.JobID, i+1, len(urls))
		result := o.ScrapeCompany(ctx, u)
		result.JobID = batch.JobID
		// Re-persist so the stored row carries the job id; the store upserts
		// on URL, so this updates the row ScrapeCompany just wrote.
		o.persist(ctx, &result)
		batch.Results = append(batch.Results, result)
	}
	return batch
}

func (o *Orchestrator) persist(ctx context.Context, result *models.ScrapeResult) {
	if o.repo == nil {
		return
	}
	if err := o.repo.Save(ctx, result); err != nil {
		fmt.Printf("[Pipeline] warning: failed to store result for %s: %v\n", result.URL, err)
	}
}
