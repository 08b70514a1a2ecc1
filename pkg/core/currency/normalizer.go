// Package currency normalizes raw revenue figures into canonical USD
// display strings. The normalizer is a total function: anything it cannot
// parse is returned verbatim so a reviewer still sees the raw text.
package currency

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"revenuescraper/pkg/core/extract"
)

// =============================================================================
// SCALE MULTIPLIERS & EXCHANGE RATES - Process-wide constants
// =============================================================================

// scaleShift maps a scale word to its decimal power of ten.
var scaleShift = map[string]int32{
	"million":  6,
	"billion":  9,
	"trillion": 12,
	"m":        6,
	"b":        9,
	"t":        12,
}

// conversionRate pairs a currency symbol with its fixed rate to USD.
// Checked in declaration order; the first symbol found in the input wins.
type conversionRate struct {
	symbol string
	rate   decimal.Decimal
	divide bool
}

var conversionRates = []conversionRate{
	{symbol: "€", rate: decimal.RequireFromString("1.1")},
	{symbol: "£", rate: decimal.RequireFromString("1.3")},
	{symbol: "¥", rate: decimal.NewFromInt(150), divide: true},
}

// figureRe captures the leading numeric token (digits, commas, at most one
// decimal point) and an optional scale word.
var figureRe = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*(million|billion|trillion|m|b|t)?\b`)

// usdPrinter formats whole-dollar amounts with English thousands grouping.
var usdPrinter = message.NewPrinter(language.English)

// Normalize converts a raw figure display string (e.g. "€89.7 million") to a
// canonical whole-dollar USD string (e.g. "$98,670,000").
//
// It never fails: the NotFound sentinel and any input without a parseable
// numeric token come back unchanged. Already-normalized USD strings are fixed
// points of this function.
func Normalize(display string) string {
	if display == extract.NotFound {
		return display
	}

	m := figureRe.FindStringSubmatch(display)
	if m == nil {
		return display
	}

	value, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return display
	}

	if shift, ok := scaleShift[strings.ToLower(m[2])]; ok {
		value = value.Shift(shift)
	}

	// Only one conversion applies; inputs should not carry multiple symbols.
	for _, c := range conversionRates {
		if !strings.Contains(display, c.symbol) {
			continue
		}
		if c.divide {
			value = value.Div(c.rate)
		} else {
			value = value.Mul(c.rate)
		}
		break
	}

	return "$" + usdPrinter.Sprintf("%d", value.Round(0).IntPart())
}
