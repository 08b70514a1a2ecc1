package currency

import (
	"testing"

	"revenuescraper/pkg/core/extract"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		display  string
		expected string
	}{
		// Pass-through law
		{"Not Found sentinel", extract.NotFound, extract.NotFound},

		// Scale correctness
		{"One million", "$1 million", "$1,000,000"},
		{"One billion", "$1 billion", "$1,000,000,000"},
		{"One trillion", "$1 trillion", "$1,000,000,000,000"},
		{"Abbreviated m", "$5m", "$5,000,000"},
		{"Abbreviated b", "$2 b", "$2,000,000,000"},
		{"No scale word", "$723", "$723"},

		// Decimal and comma handling
		{"Decimal amount", "$2.5 billion", "$2,500,000,000"},
		{"Comma-grouped amount", "$1,234.5 million", "$1,234,500,000"},

		// Currency conversion (fixed rates)
		{"Euro conversion", "€100 million", "$110,000,000"},
		{"Pound conversion", "£100 million", "$130,000,000"},
		{"Yen conversion", "¥15000 million", "$100,000,000"},
		{"Yen rounding", "¥1 million", "$6,667"},
		{"Euro decimal", "€89.7 million", "$98,670,000"},

		// Fail open, preserve input
		{"Malformed input", "TBD", "TBD"},
		{"Empty input", "", ""},
		{"No numeric token", "revenue unknown", "revenue unknown"},

		// Already-normalized strings are fixed points
		{"Normalized USD string", "$1,234,567", "$1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.display)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.display, result, tt.expected)
			}
		})
	}
}

// Normalizing an already-normalized output must be a no-op.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"$450 million", "€89.7 million", "£2.3 billion",
		"¥15000 million", "450 million", extract.NotFound,
	}

	for _, in := range inputs {
		first := Normalize(in)
		second := Normalize(first)
		if first != second {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, first, second)
		}
	}
}

// Raw extractor output always normalizes to the documented output contract.
func TestNormalizeExtractorOutputs(t *testing.T) {
	texts := []string{
		"Revenue reached $450 million in 2024.",
		"Revenue of €12 billion was posted.",
		"Turnover was 900 million dollars overall.",
		"Nothing financial here at all.",
	}

	for _, text := range texts {
		out := Normalize(extract.Extract(text))
		if out == extract.NotFound {
			continue
		}
		if out == "" || out[0] != '$' {
			t.Errorf("Normalize(Extract(%q)) = %q, want $-prefixed USD string", text, out)
		}
	}
}
