package finance

import (
	"context"

	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/ledgerflow/backend/internal/domain/partner"
	"go.uber.org/zap"
)

// PaymentService handles payment operations
type PaymentService struct {
	paymentRepo finance.PaymentRepository
	refs        references
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo finance.PaymentRepository,
	invoiceRepo invoicing.InvoiceRepository,
	vendorRepo partner.VendorRepository,
	customerRepo partner.CustomerRepository,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		refs:        references{vendors: vendorRepo, customers: customerRepo, invoices: invoiceRepo},
		logger:      logger.Named("payment_service"),
	}
}

// List returns every payment with its invoice and party summaries
func (s *PaymentService) List(ctx context.Context) ([]finance.Payment, error) {
	return s.paymentRepo.FindAll(ctx)
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, id uint) (*finance.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// Create validates the draft and its references and stores the payment
func (s *PaymentService) Create(ctx context.Context, draft finance.PaymentDraft) (*finance.Payment, error) {
	payment, err := finance.NewPayment(draft)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, payment); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Payment recorded",
		zap.Uint("payment_id", payment.ID),
		zap.String("amount", payment.Amount.String()),
		zap.Uintp("invoice_id", payment.InvoiceID),
	)
	return payment, nil
}

// Update overwrites an existing payment
func (s *PaymentService) Update(ctx context.Context, id uint, draft finance.PaymentDraft) (*finance.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := payment.Apply(draft); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, payment); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete removes a payment
func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	return s.paymentRepo.Delete(ctx, id)
}

func (s *PaymentService) checkReferences(ctx context.Context, p *finance.Payment) error {
	if err := s.refs.invoice(ctx, p.InvoiceID); err != nil {
		return err
	}
	if err := s.refs.vendor(ctx, p.VendorID); err != nil {
		return err
	}
	return s.refs.customer(ctx, p.CustomerID)
}
