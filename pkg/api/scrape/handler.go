// Package scrape exposes the revenue scraper over HTTP.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"revenuescraper/pkg/models"
)

// Scraper is the pipeline surface the handlers need.
type Scraper interface {
	ScrapeCompany(ctx context.Context, baseURL string) models.ScrapeResult
	RunBatch(ctx context.Context, urls []string) models.BatchResult
}

// ResultsReader reads back persisted scrape results. Nil when no database is
// configured.
type ResultsReader interface {
	Load(ctx context.Context, url string) (*models.ScrapeResult, error)
	ListByJob(ctx context.Context, jobID string) ([]models.ScrapeResult, error)
}

// Handler serves the /api/scrape endpoints.
type Handler struct {
	scraper Scraper
	results ResultsReader
}

// NewHandler creates a handler backed by the given pipeline.
func NewHandler(scraper Scraper) *Handler {
	return &Handler{scraper: scraper}
}

// SetResultsReader enables the /api/results read-back endpoint.
func (h *Handler) SetResultsReader(results ResultsReader) {
	h.results = results
}

// ScrapeRequest is the body of POST /api/scrape.
type ScrapeRequest struct {
	URL string `json:"url"`
}

// BatchScrapeRequest is the body of POST /api/batch-scrape.
type BatchScrapeRequest struct {
	URLs []string `json:"urls"`
}

// HandleScrape scrapes a single URL for revenue information.
func (h *Handler) HandleScrape(w http.ResponseWriter, r *http.Request) {
	if !allowRequest(w, r) {
		return
	}

	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		http.Error(w, "URL is required", http.StatusBadRequest)
		return
	}

	fmt.Printf("[API] scrape request: %s\n", req.URL)
	result := h.scraper.ScrapeCompany(r.Context(), req.URL)
	writeJSON(w, result)
}

// HandleBatchScrape scrapes a list of URLs and returns per-row results.
func (h *Handler) HandleBatchScrape(w http.ResponseWriter, r *http.Request) {
	if !allowRequest(w, r) {
		return
	}

	var req BatchScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.URLs) == 0 {
		http.Error(w, "A list of URLs is required", http.StatusBadRequest)
		return
	}

	fmt.Printf("[API] batch-scrape request: %d URLs\n", len(req.URLs))
	batch := h.scraper.RunBatch(r.Context(), req.URLs)
	writeJSON(w, batch)
}

// HandleResults reads back stored results by url or job_id query parameter.
func (h *Handler) HandleResults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.results == nil {
		http.Error(w, "results store not configured", http.StatusServiceUnavailable)
		return
	}

	if jobID := r.URL.Query().Get("job_id"); jobID != "" {
		results, err := h.results.ListByJob(r.Context(), jobID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, results)
		return
	}
	if url := r.URL.Query().Get("url"); url != "" {
		result, err := h.results.Load(r.Context(), url)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, result)
		return
	}
	http.Error(w, "url or job_id query parameter is required", http.StatusBadRequest)
}

// allowRequest applies CORS headers and filters methods. Returns false when
// the request was fully handled (preflight or rejection).
func allowRequest(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return false
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("[API] failed to encode response: %v\n", err)
	}
}
