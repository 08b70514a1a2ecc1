package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apiconfig "revenuescraper/pkg/api/config"
	apiscrape "revenuescraper/pkg/api/scrape"
	"revenuescraper/pkg/core/config"
	"revenuescraper/pkg/core/extract"
	"revenuescraper/pkg/core/pipeline"
	"revenuescraper/pkg/core/scrape"
	"revenuescraper/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	cfg, err := config.Load("config/scraper.yaml")
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}

	// Layer operator-maintained overrides on top of the built-ins
	overridesPath := cfg.OverridesPath
	if overridesPath == "" {
		overridesPath = extract.GetDefaultConfigPath()
	}
	extract.SetOverrideRegistry(extract.NewOverrideRegistry(overridesPath))
	fmt.Printf("[Config] loaded %d company overrides (config: %s)\n",
		len(extract.DefaultRegistry().List()), overridesPath)

	fetcher := scrape.NewFetcher(cfg.FetchTimeout(), cfg.MaxRetries)
	orchestrator := pipeline.NewOrchestrator(fetcher, cfg.MaxPages)

	// Persistence is optional: attach the repo only when a database is
	// configured.
	handler := apiscrape.NewHandler(orchestrator)

	ctx := context.Background()
	if err := store.InitDB(ctx, ""); err != nil {
		fmt.Printf("[WARNING] results store disabled: %v\n", err)
	} else {
		repo := store.NewResultsRepo()
		orchestrator.SetRepository(repo)
		handler.SetResultsReader(repo)
		defer store.Close()
		fmt.Println("[Store] results persistence enabled")
	}

	http.HandleFunc("/api/scrape", handler.HandleScrape)
	http.HandleFunc("/api/batch-scrape", handler.HandleBatchScrape)
	http.HandleFunc("/api/results", handler.HandleResults)

	// Override management endpoints
	configHandler := apiconfig.NewHandler(extract.DefaultRegistry())
	http.HandleFunc("/api/overrides", configHandler.HandleOverrides)
	http.HandleFunc("/api/overrides/add", configHandler.HandleAddOverride)

	fmt.Printf("API server starting on %s...\n", cfg.Listen)
	fmt.Println("  - POST /api/scrape        {\"url\": \"example.com\"}")
	fmt.Println("  - POST /api/batch-scrape  {\"urls\": [...]}")
	fmt.Println("  - GET  /api/results?url=...|job_id=...")
	fmt.Println("  - GET  /api/overrides")
	fmt.Println("  - POST /api/overrides/add")

	if err := http.ListenAndServe(cfg.Listen, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
