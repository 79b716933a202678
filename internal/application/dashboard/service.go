// Package dashboard serves the aggregated business overview.
package dashboard

import (
	"context"
	"time"

	"github.com/ledgerflow/backend/internal/domain/dashboard"
	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service computes the dashboard from the current invoices and expenses
type Service struct {
	invoiceRepo invoicing.InvoiceRepository
	expenseRepo finance.ExpenseRepository
	now         func() time.Time
	logger      *zap.Logger
}

// NewService creates a new dashboard Service
func NewService(invoiceRepo invoicing.InvoiceRepository, expenseRepo finance.ExpenseRepository, logger *zap.Logger) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		expenseRepo: expenseRepo,
		now:         time.Now,
		logger:      logger.Named("dashboard_service"),
	}
}

// Get loads invoices and expenses concurrently and aggregates them for today
func (s *Service) Get(ctx context.Context) (dashboard.Report, error) {
	var (
		invoices []invoicing.Invoice
		expenses []finance.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = s.invoiceRepo.FindAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.Report{}, err
	}

	report := dashboard.Compute(invoices, expenses, s.now())
	s.logger.Debug("Dashboard computed",
		zap.Int("invoices", len(invoices)),
		zap.Int("expenses", len(expenses)),
	)
	return report, nil
}
