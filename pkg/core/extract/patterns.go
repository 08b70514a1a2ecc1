// Package extract implements the Revenue Extraction Engine (REE).
// It scans unstructured page text for monetary revenue statements and
// returns them as raw figure display strings (e.g. "$450 million").
package extract

import (
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// =============================================================================
// MONETARY PATTERNS - Ordered rule set for figure matching
// =============================================================================
//
// Order is significant: patterns are tried in sequence and the first pattern
// that matches anywhere in the text wins. There is no re-ranking of multiple
// matches within one text.

// MonetaryPattern is one ordered extraction rule: a matcher plus the currency
// symbol the rule implies. The symbol hint is kept for inspection and
// extensibility; output formatting resolves the symbol independently from the
// full text (see DetectSymbol).
type MonetaryPattern struct {
	Name   string
	Symbol string // implied currency symbol, "" when the rule is symbol-free
	re     *regexp.Regexp
}

// Matcher exposes the compiled expression, mostly for tests.
func (p MonetaryPattern) Matcher() *regexp.Regexp { return p.re }

const (
	scaleAlts     = `million|billion|trillion|m|b|t`
	scaleWordAlts = `million|billion|trillion`
	numToken      = `([\d,.]+)`
)

func pattern(name, symbol, expr string) MonetaryPattern {
	return MonetaryPattern{
		Name:   name,
		Symbol: symbol,
		re:     regexp.MustCompile(`(?i)` + expr),
	}
}

// monetaryPatterns is the fixed priority sequence. Built once at init, never
// mutated afterwards.
var monetaryPatterns = []MonetaryPattern{
	// Symbol-prefixed amount + scale
	pattern("usd_symbol", "$", `\$`+numToken+`\s*(`+scaleAlts+`)`),
	// Amount + scale word + dollars/usd, no symbol
	pattern("dollars_suffix", "", numToken+`\s*(`+scaleWordAlts+`)\s*(?:dollars|usd)`),
	pattern("eur_symbol", "€", `€`+numToken+`\s*(`+scaleAlts+`)`),
	pattern("gbp_symbol", "£", `£`+numToken+`\s*(`+scaleAlts+`)`),
	pattern("jpy_symbol", "¥", `¥`+numToken+`\s*(`+scaleAlts+`)`),
	// Explicit revenue phrase variants
	pattern("revenue_of_usd", "$", `revenue of \$`+numToken+`\s*(`+scaleAlts+`)`),
	pattern("revenue_of_dollars", "", `revenue of `+numToken+`\s*(`+scaleWordAlts+`)\s*(?:dollars|usd)`),
	pattern("revenue_colon_usd", "$", `revenue: \$`+numToken+`\s*(`+scaleAlts+`)`),
	pattern("revenue_colon_dollars", "", `revenue: `+numToken+`\s*(`+scaleWordAlts+`)\s*(?:dollars|usd)`),
	pattern("revenue_was_usd", "$", `revenue was \$`+numToken+`\s*(`+scaleAlts+`)`),
	pattern("revenue_reached_usd", "$", `revenue reached \$`+numToken+`\s*(`+scaleAlts+`)`),
	pattern("total_revenue_of_usd", "$", `total revenue of \$`+numToken+`\s*(`+scaleAlts+`)`),
	// Trailing "X million in revenue" form
	pattern("in_revenue_suffix", "", numToken+`\s*(`+scaleWordAlts+`)\s*in revenue`),
}

// Patterns returns the ordered rule set (read-only by convention).
func Patterns() []MonetaryPattern { return monetaryPatterns }

// =============================================================================
// FINANCIAL KEYWORDS - Contextual gate vocabulary
// =============================================================================

// financialKeywords gates numeric matches: a match is only accepted when its
// surrounding text mentions one of these, or the text mentions revenue at
// all. Used for validation only, never for extraction.
var financialKeywords = []string{
	"revenue", "annual revenue", "annual revenue 2024",
	"annual revenue 2025", "turnover 2024", "turnover 2025",
	"sales", "turnover", "income", "earnings",
	"financial results", "financial highlights",
	"million", "billion", "trillion",
	"fiscal year", "fy",
}

// keywordMatcher does a single-pass multi-pattern scan of the context window.
// Keywords are lowercase; callers must lowercase the haystack.
var keywordMatcher = ahocorasick.NewStringMatcher(financialKeywords)

// FinancialKeywords returns the gate vocabulary.
func FinancialKeywords() []string { return financialKeywords }

// ContainsFinancialKeyword reports whether the text mentions any gate
// keyword (case-insensitive substring). The scrape layer also uses this to
// weight keyword-bearing paragraphs ahead of everything else on a page.
func ContainsFinancialKeyword(text string) bool {
	return keywordMatcher.Contains([]byte(strings.ToLower(text)))
}

// =============================================================================
// CURRENCY SYMBOL DETECTION
// =============================================================================

// symbolPriority is the fixed resolution order for output formatting.
var symbolPriority = []string{"$", "€", "£", "¥"}

// DetectSymbol returns the first currency symbol, in priority order, that
// appears anywhere in the text. Detection is deliberately decoupled from
// which pattern matched the amount.
func DetectSymbol(text string) string {
	for _, sym := range symbolPriority {
		if strings.Contains(text, sym) {
			return sym
		}
	}
	return ""
}
