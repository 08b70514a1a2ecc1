// Package config exposes the company override table over HTTP so operators
// can inspect and extend it without restarting the scraper.
package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"revenuescraper/pkg/core/extract"
)

type Response struct {
	Overrides []*extract.CompanyOverride `json:"overrides"`
}

// Handler holds dependencies for override endpoints
type Handler struct {
	Registry *extract.OverrideRegistry
}

// NewHandler creates a new override config handler
func NewHandler(registry *extract.OverrideRegistry) *Handler {
	return &Handler{
		Registry: registry,
	}
}

// HandleOverrides lists the current override table.
func (h *Handler) HandleOverrides(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	resp := Response{
		Overrides: h.Registry.List(),
	}
	json.NewEncoder(w).Encode(resp)
}

// HandleAddOverride registers or replaces one override at runtime.
func (h *Handler) HandleAddOverride(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var override extract.CompanyOverride
	err := json.NewDecoder(r.Body).Decode(&override)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if override.CompanyName == "" || len(override.Aliases) == 0 || override.Revenue == "" {
		http.Error(w, "company_name, aliases, and revenue are required", http.StatusBadRequest)
		return
	}
	for i := range override.Aliases {
		override.Aliases[i] = strings.ToLower(strings.TrimSpace(override.Aliases[i]))
	}

	h.Registry.Add(&override)
	if err := h.Registry.SaveToDisk(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fmt.Fprintf(w, "Success: Registered override for %s", override.CompanyName)
}
