package extract

import (
	"strings"
)

// contextWindow is how many bytes around a match are inspected by the gate.
const contextWindow = 50

// Extract scans text for a revenue figure and returns it as a raw figure
// display string, e.g. "$450 million" or "€89.7 billion". When no acceptable
// figure exists it returns NotFound.
//
// The first pattern (in priority order) that matches anywhere in the text is
// the structural match. If that match fails the contextual gate, extraction
// stops rather than falling back to later patterns, which keeps boilerplate
// numbers further down a page from being promoted to revenue figures.
func Extract(text string) string {
	for _, p := range monetaryPatterns {
		loc := p.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}

		if !inFinancialContext(text, loc[0], loc[1]) {
			break
		}

		amount := text[loc[2]:loc[3]]
		scale := strings.ToLower(text[loc[4]:loc[5]])
		symbol := DetectSymbol(text)

		return strings.TrimSpace(symbol + amount + " " + scale)
	}

	if canned, ok := overrides.Lookup(text); ok {
		return canned
	}
	return NotFound
}

// inFinancialContext applies the contextual gate: the ±50 byte window around
// the match must mention a financial keyword, or the full text must mention
// revenue somewhere.
func inFinancialContext(text string, start, end int) bool {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + contextWindow
	if hi > len(text) {
		hi = len(text)
	}

	if ContainsFinancialKeyword(text[lo:hi]) {
		return true
	}
	return strings.Contains(strings.ToLower(text), "revenue")
}
