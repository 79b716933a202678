// Package finance implements the expense and payment use cases.
package finance

import (
	"context"

	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/ledgerflow/backend/internal/domain/partner"
	"go.uber.org/zap"
)

// ExpenseService handles expense operations
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
	refs        references
	logger      *zap.Logger
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(
	expenseRepo finance.ExpenseRepository,
	vendorRepo partner.VendorRepository,
	customerRepo partner.CustomerRepository,
	logger *zap.Logger,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		refs:        references{vendors: vendorRepo, customers: customerRepo},
		logger:      logger.Named("expense_service"),
	}
}

// List returns every expense with vendor and customer summaries
func (s *ExpenseService) List(ctx context.Context) ([]finance.Expense, error) {
	return s.expenseRepo.FindAll(ctx)
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, id uint) (*finance.Expense, error) {
	return s.expenseRepo.FindByID(ctx, id)
}

// Create validates the draft and its references and stores the expense
func (s *ExpenseService) Create(ctx context.Context, draft finance.ExpenseDraft) (*finance.Expense, error) {
	expense, err := finance.NewExpense(draft)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, expense); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("Expense created",
		zap.Uint("expense_id", expense.ID),
		zap.String("type", expense.Type),
		zap.String("amount", expense.Amount.String()),
	)
	return expense, nil
}

// Update overwrites an existing expense
func (s *ExpenseService) Update(ctx context.Context, id uint, draft finance.ExpenseDraft) (*finance.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := expense.Apply(draft); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, expense); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	return s.expenseRepo.Delete(ctx, id)
}

func (s *ExpenseService) checkReferences(ctx context.Context, e *finance.Expense) error {
	if err := s.refs.vendor(ctx, e.VendorID); err != nil {
		return err
	}
	return s.refs.customer(ctx, e.CustomerID)
}
