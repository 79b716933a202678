package shared

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places money is reported with.
const MoneyScale = 2

// ParseDecimalOr parses raw as a decimal number. Empty input and anything
// that is not a number yield def instead of an error.
func ParseDecimalOr(raw string, def decimal.Decimal) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return def
	}
	return d
}

// RoundMoney rounds an amount to MoneyScale places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// MoneyFloat rounds an amount and converts it for JSON output.
func MoneyFloat(d decimal.Decimal) float64 {
	return RoundMoney(d).InexactFloat64()
}

// SumDecimals adds up a list of amounts.
func SumDecimals(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
