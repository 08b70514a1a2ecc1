package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"revenuescraper/pkg/models"
)

// ResultsRepo stores scrape results keyed by URL, upserting so a re-scrape
// replaces the previous figure.
type ResultsRepo struct{}

// NewResultsRepo creates a new repository instance.
func NewResultsRepo() *ResultsRepo {
	return &ResultsRepo{}
}

// Schema assumption (managed outside the app):
//
//	CREATE TABLE IF NOT EXISTS revenue_results (
//	  url TEXT PRIMARY KEY,
//	  company TEXT,
//	  revenue_raw TEXT,
//	  revenue_usd TEXT,
//	  job_id TEXT,
//	  scraped_at TIMESTAMPTZ
//	);

// Save upserts one result by URL.
func (r *ResultsRepo) Save(ctx context.Context, result *models.ScrapeResult) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	query := `
		INSERT INTO revenue_results (url, company, revenue_raw, revenue_usd, job_id, scraped_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (url)
		DO UPDATE SET
			company = EXCLUDED.company,
			revenue_raw = EXCLUDED.revenue_raw,
			revenue_usd = EXCLUDED.revenue_usd,
			job_id = EXCLUDED.job_id,
			scraped_at = EXCLUDED.scraped_at;
	`

	_, err := pool.Exec(ctx, query,
		result.URL, result.Company, result.RevenueRaw, result.RevenueUSD,
		result.JobID, result.ScrapedAt)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// Load retrieves the stored result for one URL.
func (r *ResultsRepo) Load(ctx context.Context, url string) (*models.ScrapeResult, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT url, company, revenue_raw, revenue_usd, job_id, scraped_at
		FROM revenue_results WHERE url = $1
	`

	var result models.ScrapeResult
	err := pool.QueryRow(ctx, query, url).Scan(
		&result.URL, &result.Company, &result.RevenueRaw, &result.RevenueUSD,
		&result.JobID, &result.ScrapedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no result stored for %s", url)
		}
		return nil, fmt.Errorf("failed to load result: %w", err)
	}
	return &result, nil
}

// ListByJob returns all results tagged with a batch job id.
func (r *ResultsRepo) ListByJob(ctx context.Context, jobID string) ([]models.ScrapeResult, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT url, company, revenue_raw, revenue_usd, job_id, scraped_at
		FROM revenue_results WHERE job_id = $1 ORDER BY scraped_at
	`

	rows, err := pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []models.ScrapeResult
	for rows.Next() {
		var result models.ScrapeResult
		if err := rows.Scan(&result.URL, &result.Company, &result.RevenueRaw,
			&result.RevenueUSD, &result.JobID, &result.ScrapedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
