package invoicing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineItemInput is one billable row as submitted by a client, already
// coerced to numbers.
type LineItemInput struct {
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

// Totals holds the computed money fields of an invoice.
type Totals struct {
	Subtotal      decimal.Decimal
	TaxTotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	Total         decimal.Decimal
}

// RetainItems drops rows whose description is blank after trimming and
// returns the remaining rows with trimmed descriptions, in input order.
func RetainItems(items []LineItemInput) []LineItem {
	retained := make([]LineItem, 0, len(items))
	for _, item := range items {
		description := strings.TrimSpace(item.Description)
		if description == "" {
			continue
		}
		retained = append(retained, LineItem{
			Description: description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		})
	}
	return retained
}

// ComputeTotals derives subtotal, tax and grand total for a list of line
// items. A single invoice-level tax rate (a percentage) applies to the whole
// subtotal. The total is not floored, so a large discount yields a negative
// total.
func ComputeTotals(items []LineItemInput, taxRatePercent, discountTotal decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range RetainItems(items) {
		subtotal = subtotal.Add(item.Amount())
	}

	taxTotal := subtotal.Mul(taxRatePercent).Div(hundred)

	return Totals{
		Subtotal:      subtotal,
		TaxTotal:      taxTotal,
		DiscountTotal: discountTotal,
		Total:         subtotal.Add(taxTotal).Sub(discountTotal),
	}
}
