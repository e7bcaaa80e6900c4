// Package money formats minor-unit amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a record carries no currency code.
const DefaultCurrency = "GBP"

// minorExponent fixes two decimal subdivisions per major unit.
const minorExponent = -2

// Format renders minor units as "<CUR> <major>.<minor>", e.g. Format(158, "GBP") == "GBP 1.58".
func Format(minorUnits int64, currency string) string {
	return CurrencyOrDefault(currency) + " " + Major(minorUnits).StringFixed(2)
}

// Major converts minor units to a decimal major-unit amount.
func Major(minorUnits int64) decimal.Decimal {
	return decimal.New(minorUnits, minorExponent)
}

// CurrencyOrDefault returns the upper-cased currency, or DefaultCurrency when empty.
func CurrencyOrDefault(currency string) string {
	c := strings.ToUpper(strings.TrimSpace(currency))
	if c == "" {
		return DefaultCurrency
	}
	return c
}
