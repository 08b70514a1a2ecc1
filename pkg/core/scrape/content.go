package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"revenuescraper/pkg/core/extract"
)

// PageText reduces page HTML to the plain text fed to the extraction engine.
// Blocks that mention a financial keyword are concatenated first so the
// first-match pattern scan sees them before boilerplate, then the full page
// text follows as a fallback.
func PageText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find("script, style, noscript").Remove()

	var weighted []string
	doc.Find("p, div, section, table").Each(func(_ int, block *goquery.Selection) {
		text := collapseWhitespace(block.Text())
		if text != "" && extract.ContainsFinancialKeyword(text) {
			weighted = append(weighted, text)
		}
	})

	full := collapseWhitespace(doc.Text())
	return strings.TrimSpace(strings.Join(weighted, " ") + " " + full)
}

// ScrapePage fetches a single page and returns its extracted text. Any
// failure degrades to an empty string; the caller just gets less text.
func (f *Fetcher) ScrapePage(ctx context.Context, url string) string {
	html, err := f.Fetch(ctx, url)
	if err != nil {
		fmt.Printf("[Scrape] skipping %s: %v\n", url, err)
		return ""
	}
	return PageText(html)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
