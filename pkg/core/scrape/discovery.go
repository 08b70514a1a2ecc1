package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// financialPaths are the URL path tokens that mark a page as likely to carry
// financial results. Used both to filter discovered links and to guess pages
// the homepage never links to.
var financialPaths = []string{
	"investor", "investors", "investor-relations", "ir",
	"about", "about-us", "company", "corporate",
	"finance", "financial", "financials",
	"annual-report", "quarterly-report",
	"results", "earnings", "press", "news",
}

// financialSubdomains are guessed in addition to path candidates; many
// companies host investor relations on a dedicated subdomain.
var financialSubdomains = []string{"investors", "investor", "ir"}

// DiscoverFinancialPages fetches the homepage of baseURL and returns
// candidate financial pages: homepage links whose path contains a financial
// token, guessed direct paths, and investor-relations subdomains. The result
// is deduplicated and preserves discovery order.
func (f *Fetcher) DiscoverFinancialPages(ctx context.Context, baseURL string) ([]string, error) {
	homepage, parsed, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	html, err := f.Fetch(ctx, homepage)
	if err != nil {
		return nil, fmt.Errorf("homepage fetch failed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("homepage parse failed: %w", err)
	}

	seen := make(map[string]bool)
	var pages []string
	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			pages = append(pages, u)
		}
	}

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		abs := resolveHref(parsed, href)
		if abs == "" {
			return
		}
		if ref, err := url.Parse(abs); err == nil && pathLooksFinancial(ref.Path) {
			add(abs)
		}
	})

	for _, path := range financialPaths {
		add(homepage + "/" + path)
	}
	for _, sub := range financialSubdomains {
		add("https://" + sub + "." + parsed.Host)
	}

	return pages, nil
}

// normalizeBaseURL defaults the scheme to https and reduces the URL to its
// homepage.
func normalizeBaseURL(baseURL string) (string, *url.URL, error) {
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", nil, fmt.Errorf("invalid URL %q: %w", baseURL, err)
	}
	if parsed.Host == "" {
		return "", nil, fmt.Errorf("invalid URL %q: no host", baseURL)
	}

	scheme := parsed.Scheme
	if scheme == "" {
		scheme = "https"
	}
	homepage := scheme + "://" + parsed.Host
	return homepage, parsed, nil
}

// resolveHref turns a possibly relative href into an absolute URL.
func resolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	abs := base.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return ""
	}
	abs.Fragment = ""
	return abs.String()
}

// pathLooksFinancial checks the URL path against the financial path tokens.
func pathLooksFinancial(path string) bool {
	lower := strings.ToLower(path)
	for _, keyword := range financialPaths {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
