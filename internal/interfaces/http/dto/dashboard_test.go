package dto

import (
	"testing"
	"time"

	"github.com/ledgerflow/backend/internal/domain/dashboard"
	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDashboardResponse(t *testing.T) {
	due := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	report := dashboard.Report{
		TotalRevenue:  dashboard.Metric{Amount: decimal.RequireFromString("100.005"), Change: decimal.RequireFromString("33.3333")},
		TotalExpenses: dashboard.Metric{Amount: decimal.RequireFromString("40.1")},
		Outstanding:   dashboard.Outstanding{Amount: decimal.RequireFromString("12.499"), Count: 2},
		NetProfit:     dashboard.Metric{Amount: decimal.RequireFromString("59.905")},
		RevenueTrend: []dashboard.TrendPoint{
			{Label: "Mar", Total: decimal.RequireFromString("100.005")},
		},
		RecentInvoices: []dashboard.RecentInvoice{
			{InvoiceNumber: "INV-1", CustomerName: "Acme", Total: decimal.NewFromInt(10), Status: invoicing.StatusSent, DueDate: &due},
			{InvoiceNumber: "INV-2", CustomerName: "Unknown", Total: decimal.Zero, Status: invoicing.StatusDraft},
		},
	}

	resp := NewDashboardResponse(report)

	assert.Equal(t, 100.01, resp.Metrics.TotalRevenue.Amount)
	assert.Equal(t, 33.33, resp.Metrics.TotalRevenue.Change)
	assert.Equal(t, 12.5, resp.Metrics.OutstandingInvoices.Amount)
	assert.Equal(t, 2, resp.Metrics.OutstandingInvoices.Count)
	require.Len(t, resp.RevenueTrend, 1)
	assert.Equal(t, "Mar", resp.RevenueTrend[0].Label)
	require.Len(t, resp.RecentInvoices, 2)
	require.NotNil(t, resp.RecentInvoices[0].DueDate)
	assert.Equal(t, "2026-03-09", *resp.RecentInvoices[0].DueDate)
	assert.Equal(t, "sent", resp.RecentInvoices[0].Status)
	assert.Nil(t, resp.RecentInvoices[1].DueDate)
}

func TestNewDashboardResponse_EmptyListsAreArrays(t *testing.T) {
	resp := NewDashboardResponse(dashboard.Report{})
	assert.NotNil(t, resp.RevenueTrend)
	assert.NotNil(t, resp.RecentInvoices)
}
