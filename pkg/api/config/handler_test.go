package config

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"revenuescraper/pkg/core/extract"
)

func TestHandleOverridesListsTable(t *testing.T) {
	handler := NewHandler(extract.NewOverrideRegistry(""))

	req := httptest.NewRequest(http.MethodGet, "/api/overrides", nil)
	w := httptest.NewRecorder()
	handler.HandleOverrides(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	// Built-in entries ship with every registry
	if len(resp.Overrides) < 2 {
		t.Errorf("got %d overrides, want at least builtins", len(resp.Overrides))
	}
}

func TestHandleAddOverride(t *testing.T) {
	registry := extract.NewOverrideRegistry("")
	handler := NewHandler(registry)

	body := `{
		"company_name": "Initech",
		"aliases": [" Initech.example ", "INITECH LLC"],
		"revenue": "$12 million"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/overrides/add", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleAddOverride(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	// Aliases must be normalized to trimmed lowercase before registration
	figure, ok := registry.Lookup("Visit initech.example for details")
	if !ok || figure != "$12 million" {
		t.Errorf("Lookup after add = (%q, %v), want ($12 million, true)", figure, ok)
	}
}

func TestHandleAddOverrideValidation(t *testing.T) {
	handler := NewHandler(extract.NewOverrideRegistry(""))

	tests := []struct {
		name string
		body string
	}{
		{"Missing company name", `{"aliases":["x"],"revenue":"$1 million"}`},
		{"Missing aliases", `{"company_name":"X","revenue":"$1 million"}`},
		{"Missing revenue", `{"company_name":"X","aliases":["x"]}`},
		{"Malformed JSON", `{"company_name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/overrides/add", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.HandleAddOverride(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}
