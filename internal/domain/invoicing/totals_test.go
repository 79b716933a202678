package invoicing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	t.Run("applies invoice level tax over the subtotal", func(t *testing.T) {
		items := []LineItemInput{
			{Description: "A", Quantity: d("10"), Rate: d("100")},
			{Description: "B", Quantity: d("1"), Rate: d("500")},
		}

		totals := ComputeTotals(items, d("10"), decimal.Zero)

		assert.True(t, d("1500").Equal(totals.Subtotal))
		assert.True(t, d("150").Equal(totals.TaxTotal))
		assert.True(t, decimal.Zero.Equal(totals.DiscountTotal))
		assert.True(t, d("1650").Equal(totals.Total))
	})

	t.Run("subtracts the discount", func(t *testing.T) {
		items := []LineItemInput{{Description: "P", Quantity: d("1"), Rate: d("1000")}}

		totals := ComputeTotals(items, decimal.Zero, d("100"))

		assert.True(t, d("1000").Equal(totals.Subtotal))
		assert.True(t, d("100").Equal(totals.DiscountTotal))
		assert.True(t, d("900").Equal(totals.Total))
	})

	t.Run("allows a negative total", func(t *testing.T) {
		items := []LineItemInput{{Description: "P", Quantity: d("1"), Rate: d("50")}}

		totals := ComputeTotals(items, d("10"), d("100"))

		assert.True(t, d("-45").Equal(totals.Total))
	})

	t.Run("ignores rows with blank descriptions", func(t *testing.T) {
		items := []LineItemInput{
			{Description: "  ", Quantity: d("3"), Rate: d("9")},
			{Description: "", Quantity: d("1"), Rate: d("1")},
			{Description: "Kept", Quantity: d("2"), Rate: d("7.5")},
		}

		totals := ComputeTotals(items, decimal.Zero, decimal.Zero)

		assert.True(t, d("15").Equal(totals.Subtotal))
	})

	t.Run("empty list yields zeros", func(t *testing.T) {
		totals := ComputeTotals(nil, d("20"), decimal.Zero)

		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.TaxTotal.IsZero())
		assert.True(t, totals.Total.IsZero())
	})

	t.Run("is deterministic", func(t *testing.T) {
		items := []LineItemInput{{Description: "X", Quantity: d("3"), Rate: d("33.33")}}

		first := ComputeTotals(items, d("7.25"), d("1"))
		second := ComputeTotals(items, d("7.25"), d("1"))

		assert.Equal(t, first, second)
	})
}

func TestRetainItems(t *testing.T) {
	items := []LineItemInput{
		{Description: " Design ", Quantity: d("1"), Rate: d("10")},
		{Description: "\t", Quantity: d("1"), Rate: d("10")},
		{Description: "Build", Quantity: d("2"), Rate: d("20")},
	}

	retained := RetainItems(items)

	if assert.Len(t, retained, 2) {
		assert.Equal(t, "Design", retained[0].Description)
		assert.Equal(t, "Build", retained[1].Description)
		assert.True(t, d("40").Equal(retained[1].Amount()))
	}
}
