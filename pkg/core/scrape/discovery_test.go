package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

const homepageHTML = `<html><body>
<a href="/investor-relations">Investor Relations</a>
<a href="/blog">Blog</a>
<a href="/about-us">About Us</a>
<a href="https://example.org/partners">Partners</a>
<a href="/investor-relations">Investor Relations (footer)</a>
<a href="#top">Top</a>
<a href="mailto:press@example.com">Press</a>
</body></html>`

func TestDiscoverFinancialPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(homepageHTML))
	}))
	defer server.Close()

	pages, err := newTestFetcher(1).DiscoverFinancialPages(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("DiscoverFinancialPages failed: %v", err)
	}

	want := map[string]bool{
		server.URL + "/investor-relations": true, // discovered link
		server.URL + "/about-us":           true, // discovered link
		server.URL + "/investors":          true, // guessed path
		server.URL + "/annual-report":      true, // guessed path
	}
	got := make(map[string]bool, len(pages))
	for _, p := range pages {
		if got[p] {
			t.Errorf("duplicate candidate %s", p)
		}
		got[p] = true
	}
	for page := range want {
		if !got[page] {
			t.Errorf("missing candidate %s", page)
		}
	}

	if got[server.URL+"/blog"] {
		t.Error("non-financial link /blog should not be a candidate")
	}

	host := strings.TrimPrefix(server.URL, "http://")
	if !got["https://investors."+host] {
		t.Error("missing guessed investors subdomain")
	}
}

func TestDiscoverFinancialPagesDefaultsScheme(t *testing.T) {
	_, parsed, err := normalizeBaseURL("example.com/somewhere")
	if err != nil {
		t.Fatalf("normalizeBaseURL failed: %v", err)
	}
	if parsed.Scheme != "https" || parsed.Host != "example.com" {
		t.Errorf("parsed = %s://%s, want https://example.com", parsed.Scheme, parsed.Host)
	}
}

func TestResolveHref(t *testing.T) {
	base, _ := url.Parse("https://example.com")

	tests := []struct {
		name     string
		href     string
		expected string
	}{
		{"Relative path", "/investors", "https://example.com/investors"},
		{"Absolute URL", "https://ir.example.com/results", "https://ir.example.com/results"},
		{"Fragment only", "#main", ""},
		{"Mailto", "mailto:ir@example.com", ""},
		{"Javascript", "javascript:void(0)", ""},
		{"Fragment stripped", "/earnings#q3", "https://example.com/earnings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveHref(base, tt.href); got != tt.expected {
				t.Errorf("resolveHref(%q) = %q, want %q", tt.href, got, tt.expected)
			}
		})
	}
}
