package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const amountPlaces = 2

var (
	// MaxAmount is the largest value a NUMERIC(14,2) money column holds.
	MaxAmount = decimal.RequireFromString("999999999999.99")
	// MaxPercentage is the largest value a NUMERIC(5,2) rate column holds.
	MaxPercentage = decimal.RequireFromString("999.99")
)

// ParseAmount parses a decimal string into a positive amount of whole cents.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := parseFixed(s, MaxAmount)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParseLimit parses a non-negative money value such as a minimum balance
// or a budget allocation.
func ParseLimit(s string) (decimal.Decimal, error) {
	return parseFixed(s, MaxAmount)
}

// ParsePercentage parses a non-negative percentage such as an interest rate.
func ParsePercentage(s string) (decimal.Decimal, error) {
	return parseFixed(s, MaxPercentage)
}

func parseFixed(s string, limit decimal.Decimal) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() || d.GreaterThan(limit) || !d.Equal(d.Round(amountPlaces)) {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(amountPlaces)
}
