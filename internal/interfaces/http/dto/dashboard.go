package dto

import (
	"github.com/ledgerflow/backend/internal/domain/dashboard"
	"github.com/ledgerflow/backend/internal/domain/shared"
)

// MetricResponse is an amount with its month-over-month change in percent
type MetricResponse struct {
	Amount float64 `json:"amount"`
	Change float64 `json:"change"`
}

// OutstandingResponse sums the unpaid invoices
type OutstandingResponse struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// DashboardMetrics groups the headline figures
type DashboardMetrics struct {
	TotalRevenue        MetricResponse      `json:"totalRevenue"`
	TotalExpenses       MetricResponse      `json:"totalExpenses"`
	OutstandingInvoices OutstandingResponse `json:"outstandingInvoices"`
	NetProfit           MetricResponse      `json:"netProfit"`
}

// TrendPointResponse is one month of paid revenue
type TrendPointResponse struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// RecentInvoiceResponse is one row of recent activity
type RecentInvoiceResponse struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	CustomerName  string  `json:"customerName"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
	DueDate       *string `json:"dueDate"`
}

// DashboardResponse is the whole dashboard, every figure rounded to cents
type DashboardResponse struct {
	Metrics        DashboardMetrics        `json:"metrics"`
	RevenueTrend   []TrendPointResponse    `json:"revenueTrend"`
	RecentInvoices []RecentInvoiceResponse `json:"recentInvoices"`
}

func metric(m dashboard.Metric) MetricResponse {
	return MetricResponse{Amount: shared.MoneyFloat(m.Amount), Change: shared.MoneyFloat(m.Change)}
}

// NewDashboardResponse maps and rounds a dashboard report
func NewDashboardResponse(r dashboard.Report) DashboardResponse {
	resp := DashboardResponse{
		Metrics: DashboardMetrics{
			TotalRevenue:  metric(r.TotalRevenue),
			TotalExpenses: metric(r.TotalExpenses),
			OutstandingInvoices: OutstandingResponse{
				Amount: shared.MoneyFloat(r.Outstanding.Amount),
				Count:  r.Outstanding.Count,
			},
			NetProfit: metric(r.NetProfit),
		},
		RevenueTrend:   make([]TrendPointResponse, len(r.RevenueTrend)),
		RecentInvoices: make([]RecentInvoiceResponse, len(r.RecentInvoices)),
	}
	for i, p := range r.RevenueTrend {
		resp.RevenueTrend[i] = TrendPointResponse{Label: p.Label, Total: shared.MoneyFloat(p.Total)}
	}
	for i, inv := range r.RecentInvoices {
		row := RecentInvoiceResponse{
			InvoiceNumber: inv.InvoiceNumber,
			CustomerName:  inv.CustomerName,
			Total:         shared.MoneyFloat(inv.Total),
			Status:        string(inv.Status),
		}
		if inv.DueDate != nil {
			due := inv.DueDate.Format("2006-01-02")
			row.DueDate = &due
		}
		resp.RecentInvoices[i] = row
	}
	return resp
}
