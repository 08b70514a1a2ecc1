// Command pipeline runs the revenue scraper over a CSV of companies and
// writes the extracted figures to a results CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/joho/godotenv"

	"revenuescraper/pkg/core/config"
	"revenuescraper/pkg/core/extract"
	"revenuescraper/pkg/core/pipeline"
	"revenuescraper/pkg/core/scrape"
	"revenuescraper/pkg/core/store"
	"revenuescraper/pkg/models"
)

func main() {
	inPath := flag.String("in", "companies.csv", "input CSV with company,url columns")
	outPath := flag.String("out", "results.csv", "output CSV for scraped revenue figures")
	configPath := flag.String("config", "config/scraper.yaml", "scraper config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	overridesPath := cfg.OverridesPath
	if overridesPath == "" {
		overridesPath = extract.GetDefaultConfigPath()
	}
	extract.SetOverrideRegistry(extract.NewOverrideRegistry(overridesPath))

	in, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("Cannot open input CSV: %v", err)
	}
	defer in.Close()

	var companies []models.CompanyRow
	if err := gocsv.UnmarshalFile(in, &companies); err != nil {
		log.Fatalf("Cannot parse input CSV: %v", err)
	}
	if len(companies) == 0 {
		log.Fatal("Input CSV has no rows")
	}

	fetcher := scrape.NewFetcher(cfg.FetchTimeout(), cfg.MaxRetries)
	orchestrator := pipeline.NewOrchestrator(fetcher, cfg.MaxPages)

	ctx := context.Background()
	if err := store.InitDB(ctx, ""); err != nil {
		log.Printf("Results store disabled: %v", err)
	} else {
		orchestrator.SetRepository(store.NewResultsRepo())
		defer store.Close()
	}

	urls := make([]string, len(companies))
	for i, c := range companies {
		urls[i] = c.URL
	}

	batch := orchestrator.RunBatch(ctx, urls)

	// Carry the display names over to the output rows
	found := 0
	for i := range batch.Results {
		if i < len(companies) {
			batch.Results[i].Company = companies[i].Company
		}
		if batch.Results[i].RevenueRaw != extract.NotFound {
			found++
		}
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Cannot create output CSV: %v", err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&batch.Results, out); err != nil {
		log.Fatalf("Cannot write output CSV: %v", err)
	}

	fmt.Printf("Batch %s complete: %d/%d companies with revenue figures -> %s\n",
		batch.JobID, found, len(companies), *outPath)
}
