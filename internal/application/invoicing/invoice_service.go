// Package invoicing implements the invoice use cases on top of the invoice
// aggregate and its repository.
package invoicing

import (
	"context"
	"errors"

	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/ledgerflow/backend/internal/domain/partner"
	"github.com/ledgerflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// InvoiceService handles invoice operations
type InvoiceService struct {
	invoiceRepo  invoicing.InvoiceRepository
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo invoicing.InvoiceRepository,
	customerRepo partner.CustomerRepository,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		logger:       logger.Named("invoice_service"),
	}
}

// List returns every invoice, newest first
func (s *InvoiceService) List(ctx context.Context) ([]invoicing.Invoice, error) {
	return s.invoiceRepo.FindAll(ctx)
}

// GetByID retrieves an invoice with its customer and line items
func (s *InvoiceService) GetByID(ctx context.Context, id uint) (*invoicing.Invoice, error) {
	return s.invoiceRepo.FindByID(ctx, id)
}

// Create computes totals and stores the invoice with its line items
func (s *InvoiceService) Create(ctx context.Context, draft invoicing.Draft) (*invoicing.Invoice, error) {
	inv, err := invoicing.NewInvoice(draft)
	if err != nil {
		return nil, err
	}
	if err := s.requireCustomer(ctx, inv.CustomerID); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Info("Invoice created",
		zap.Uint("invoice_id", inv.ID),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("total", inv.Total.String()),
	)
	return inv, nil
}

// Update recalculates the invoice from the draft and replaces its line items.
// A failed update leaves the stored invoice untouched.
func (s *InvoiceService) Update(ctx context.Context, id uint, draft invoicing.Draft) (*invoicing.Invoice, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := inv.Apply(draft); err != nil {
		return nil, err
	}
	if err := s.requireCustomer(ctx, inv.CustomerID); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Info("Invoice updated", zap.Uint("invoice_id", inv.ID), zap.Int("line_items", len(inv.Items)))
	return inv, nil
}

// Delete removes an invoice and its line items; payments keep their rows
func (s *InvoiceService) Delete(ctx context.Context, id uint) error {
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Invoice deleted", zap.Uint("invoice_id", id))
	return nil
}

func (s *InvoiceService) requireCustomer(ctx context.Context, id uint) error {
	_, err := s.customerRepo.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return invoicing.ErrUnknownCustomer
	}
	return err
}
