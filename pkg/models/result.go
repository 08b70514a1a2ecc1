// Package models holds the shared data types exchanged between the scrape
// pipeline, the persistence layer, and the HTTP API.
package models

import "time"

// ScrapeResult is the outcome of scraping one company URL.
// RevenueRaw is the figure as extracted ("$450 million" or "Not Found");
// RevenueUSD is its canonical whole-dollar USD rendering.
type ScrapeResult struct {
	URL        string    `json:"url" csv:"url"`
	Company    string    `json:"company,omitempty" csv:"company"`
	RevenueRaw string    `json:"revenue" csv:"revenue"`
	RevenueUSD string    `json:"revenue_usd" csv:"revenue_usd"`
	JobID      string    `json:"job_id,omitempty" csv:"-"`
	ScrapedAt  time.Time `json:"scraped_at" csv:"-"`
}

// BatchResult groups the per-URL results of one batch run.
type BatchResult struct {
	JobID   string         `json:"job_id"`
	Results []ScrapeResult `json:"results"`
}

// CompanyRow is one input row of a batch CSV: a display name plus the URL to
// scrape.
type CompanyRow struct {
	Company string `csv:"company"`
	URL     string `csv:"url"`
}
