// Package dashboard aggregates invoices and expenses into the headline
// metrics, monthly revenue trend and recent activity shown on the dashboard.
package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/shopspring/decimal"
)

const (
	// TrendMonths is the number of months in the revenue trend, current month included
	TrendMonths = 6
	// RecentInvoiceLimit caps the recent invoice list
	RecentInvoiceLimit = 5
	// UnknownCustomer labels recent invoices without a loaded customer
	UnknownCustomer = "Unknown"

	monthLabelLayout = "Jan 2006"
)

var hundred = decimal.NewFromInt(100)

// Metric is an amount with its month-over-month change in percent
type Metric struct {
	Amount decimal.Decimal
	Change decimal.Decimal
}

// Outstanding sums the unpaid invoices
type Outstanding struct {
	Amount decimal.Decimal
	Count  int
}

// TrendPoint is one month of paid revenue
type TrendPoint struct {
	Label string
	Month time.Time
	Total decimal.Decimal
}

// RecentInvoice is the projection of an invoice shown in recent activity.
// DueDate is nil when the stored due date does not parse.
type RecentInvoice struct {
	InvoiceNumber string
	CustomerName  string
	Total         decimal.Decimal
	Status        invoicing.Status
	DueDate       *time.Time
}

// Report is the complete dashboard. Amounts are unrounded.
type Report struct {
	TotalRevenue   Metric
	TotalExpenses  Metric
	Outstanding    Outstanding
	NetProfit      Metric
	RevenueTrend   []TrendPoint
	RecentInvoices []RecentInvoice
}

// Compute builds the dashboard for the month containing today
func Compute(invoices []invoicing.Invoice, expenses []finance.Expense, today time.Time) Report {
	var (
		report          Report
		revenueByMonth  = map[time.Time]decimal.Decimal{}
		expensesByMonth = map[time.Time]decimal.Decimal{}
		revenue         = decimal.Zero
		spent           = decimal.Zero
		outstanding     = decimal.Zero
	)

	for i := range invoices {
		inv := &invoices[i]
		if !inv.Status.IsPaid() {
			outstanding = outstanding.Add(inv.Total)
			report.Outstanding.Count++
			continue
		}
		revenue = revenue.Add(inv.Total)
		if day, ok := effectiveDate(inv.IssueDate, inv.CreatedAt); ok {
			m := MonthStart(day)
			revenueByMonth[m] = revenueByMonth[m].Add(inv.Total)
		}
	}

	for i := range expenses {
		exp := &expenses[i]
		spent = spent.Add(exp.Amount)
		if day, ok := effectiveDate(exp.Date, exp.CreatedAt); ok {
			m := MonthStart(day)
			expensesByMonth[m] = expensesByMonth[m].Add(exp.Amount)
		}
	}

	current := MonthStart(today)
	previous := ShiftMonth(current, -1)

	curRevenue, prevRevenue := revenueByMonth[current], revenueByMonth[previous]
	curExpenses, prevExpenses := expensesByMonth[current], expensesByMonth[previous]

	report.TotalRevenue = Metric{Amount: revenue, Change: PercentChange(curRevenue, prevRevenue)}
	report.TotalExpenses = Metric{Amount: spent, Change: PercentChange(curExpenses, prevExpenses)}
	report.Outstanding.Amount = outstanding
	report.NetProfit = Metric{
		Amount: revenue.Sub(spent),
		Change: PercentChange(curRevenue.Sub(curExpenses), prevRevenue.Sub(prevExpenses)),
	}

	report.RevenueTrend = make([]TrendPoint, 0, TrendMonths)
	for offset := -(TrendMonths - 1); offset <= 0; offset++ {
		m := ShiftMonth(current, offset)
		report.RevenueTrend = append(report.RevenueTrend, TrendPoint{
			Label: m.Format(monthLabelLayout),
			Month: m,
			Total: revenueByMonth[m],
		})
	}

	report.RecentInvoices = recentInvoices(invoices)
	return report
}

// PercentChange returns the change from previous to current in percent.
// A zero previous value reports 0 when current is also zero and 100
// otherwise.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// MonthStart returns the first day of the month of t, in UTC
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ShiftMonth moves a month start by offset months
func ShiftMonth(month time.Time, offset int) time.Time {
	return time.Date(month.Year(), month.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}

func recentInvoices(invoices []invoicing.Invoice) []RecentInvoice {
	type dated struct {
		inv  *invoicing.Invoice
		date time.Time
	}

	candidates := make([]dated, 0, len(invoices))
	for i := range invoices {
		day, _ := effectiveDate(invoices[i].IssueDate, invoices[i].CreatedAt)
		candidates = append(candidates, dated{inv: &invoices[i], date: day})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].date.After(candidates[j].date)
	})
	if len(candidates) > RecentInvoiceLimit {
		candidates = candidates[:RecentInvoiceLimit]
	}

	recent := make([]RecentInvoice, 0, len(candidates))
	for _, c := range candidates {
		item := RecentInvoice{
			InvoiceNumber: c.inv.InvoiceNumber,
			CustomerName:  UnknownCustomer,
			Total:         c.inv.Total,
			Status:        c.inv.Status,
		}
		if c.inv.Customer != nil {
			item.CustomerName = c.inv.Customer.Name
		}
		if due, ok := ParseISODate(c.inv.DueDate); ok {
			item.DueDate = &due
		}
		recent = append(recent, item)
	}
	return recent
}

// effectiveDate prefers the free-text date and falls back to the record's
// creation time. The zero time is returned when neither is usable.
func effectiveDate(raw string, createdAt time.Time) (time.Time, bool) {
	if day, ok := ParseISODate(raw); ok {
		return day, true
	}
	if !createdAt.IsZero() {
		return truncateDay(createdAt), true
	}
	return time.Time{}, false
}

var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseISODate parses an ISO 8601 date or datetime and returns its calendar
// date at midnight UTC. The first layout that parses wins.
func ParseISODate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return truncateDay(t), true
		}
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
