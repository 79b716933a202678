package partner

import (
	"context"

	"github.com/ledgerflow/backend/internal/domain/partner"
	"go.uber.org/zap"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger.Named("customer_service"),
	}
}

// List returns every customer in id order
func (s *CustomerService) List(ctx context.Context) ([]partner.Customer, error) {
	return s.customerRepo.FindAll(ctx)
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uint) (*partner.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// Create validates the draft and stores a new customer
func (s *CustomerService) Create(ctx context.Context, draft partner.CustomerDraft) (*partner.Customer, error) {
	customer, err := partner.NewCustomer(draft)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("Customer created", zap.Uint("customer_id", customer.ID))
	return customer, nil
}

// Update replaces every writable field of an existing customer
func (s *CustomerService) Update(ctx context.Context, id uint, draft partner.CustomerDraft) (*partner.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := customer.Apply(draft); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer. Customers with invoices are kept; expenses and
// payments that referenced the customer lose the reference.
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Customer deleted", zap.Uint("customer_id", id))
	return nil
}
