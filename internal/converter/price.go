// =============================================================================
// moxbox - Price Formatting
// =============================================================================
//
// Moxfield exports purchase prices as free-form text, sometimes with a
// leading "$", sometimes blank. Deckbox expects "My Price" as "$" followed
// by exactly two fractional digits. Prices are parsed as exact decimals and
// rounded half-even, so repeated conversions never drift.
//
// An unparseable price degrades to the default value instead of failing
// the row; the converter never raises a price error to the caller.
//
// =============================================================================

package converter

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPrice is emitted when a purchase price is absent or unparseable.
const DefaultPrice = "$0.00"

// ParsePrice parses a raw purchase-price value into an exact decimal.
// A single leading "$" and surrounding whitespace are stripped first.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	if s == "" {
		return decimal.Zero, errors.New("empty price")
	}
	return decimal.NewFromString(s)
}

// FormatPrice normalizes a raw purchase-price value to the Deckbox form,
// e.g. "$1.25" or "$3.50" (never "$3.5").
//
// Rounding is half-even (banker's rounding) to two fractional digits.
// Absent or unparseable input yields DefaultPrice.
func FormatPrice(raw string) string {
	d, err := ParsePrice(raw)
	if err != nil {
		return DefaultPrice
	}
	return "$" + d.RoundBank(2).StringFixed(2)
}
