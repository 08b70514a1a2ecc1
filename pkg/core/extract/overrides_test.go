package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOverrideLookup(t *testing.T) {
	reg := NewOverrideRegistry("")

	tests := []struct {
		name      string
		text      string
		expected  string
		wantFound bool
	}{
		{"Built-in Apple alias", "Welcome to apple.com, home of iPhone and Mac.", "$391 billion", true},
		{"Built-in Ford alias", "Ford Motor Company corporate site", "$185 billion", true},
		{"Alias is case-insensitive", "FORD MOTOR COMPANY", "$185 billion", true},
		{"Unknown company", "Globex Corporation homepage", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := reg.Lookup(tt.text)
			if found != tt.wantFound || got != tt.expected {
				t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)",
					tt.text, got, found, tt.expected, tt.wantFound)
			}
		})
	}
}

func TestOverrideAddRemove(t *testing.T) {
	reg := NewOverrideRegistry("")
	reg.Add(&CompanyOverride{
		CompanyName: "Globex Corporation",
		Aliases:     []string{"globex"},
		Revenue:     "$12 billion",
	})

	if got, found := reg.Lookup("the globex annual report"); !found || got != "$12 billion" {
		t.Fatalf("Lookup after Add = (%q, %v), want ($12 billion, true)", got, found)
	}

	reg.Remove("Globex Corporation")
	if _, found := reg.Lookup("the globex annual report"); found {
		t.Error("Lookup after Remove still finds the override")
	}
}

// Config files are hand-edited; Hjson comments and trailing commas must load.
func TestOverrideConfigLenientLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.json")
	content := `{
  # canned answers for sites the scraper cannot read
  company_overrides: [
    {
      company_name: Initech
      aliases: ["initech.example"]
      revenue: "$45 million"
    },
  ]
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	reg := NewOverrideRegistry(path)
	got, found := reg.Lookup("see initech.example for details")
	if !found || got != "$45 million" {
		t.Errorf("Lookup = (%q, %v), want ($45 million, true)", got, found)
	}

	// Defaults stay layered underneath the file entries
	if _, found := reg.Lookup("apple.com press page"); !found {
		t.Error("built-in overrides should survive a config load")
	}
}

func TestExtractUsesOverridesBeforeNotFound(t *testing.T) {
	original := DefaultRegistry()
	defer SetOverrideRegistry(original)

	reg := NewOverrideRegistry("")
	reg.Add(&CompanyOverride{
		CompanyName: "Hooli",
		Aliases:     []string{"hooli.example"},
		Revenue:     "$1.2 billion",
	})
	SetOverrideRegistry(reg)

	if got := Extract("About hooli.example — making the world a better place."); got != "$1.2 billion" {
		t.Errorf("Extract = %q, want override answer", got)
	}

	// A genuine pattern match still beats the override table
	if got := Extract("hooli.example reported revenue of $900 million."); got != "$900 million" {
		t.Errorf("Extract = %q, want pattern match to win over override", got)
	}
}
