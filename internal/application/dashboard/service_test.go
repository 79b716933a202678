package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uint) (*invoicing.Invoice, error) {
	panic("not used")
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context) ([]invoicing.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Create(ctx context.Context, entity *invoicing.Invoice) error {
	panic("not used")
}

func (m *MockInvoiceRepository) Update(ctx context.Context, entity *invoicing.Invoice) error {
	panic("not used")
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uint) error {
	panic("not used")
}

func (m *MockInvoiceRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	panic("not used")
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uint) (*finance.Expense, error) {
	panic("not used")
}

func (m *MockExpenseRepository) FindAll(ctx context.Context) ([]finance.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Create(ctx context.Context, entity *finance.Expense) error {
	panic("not used")
}

func (m *MockExpenseRepository) Update(ctx context.Context, entity *finance.Expense) error {
	panic("not used")
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uint) error {
	panic("not used")
}

func TestService_Get(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	expenseRepo := new(MockExpenseRepository)

	paid := invoicing.Invoice{InvoiceNumber: "INV-1", Status: invoicing.StatusPaid, IssueDate: "2024-03-02"}
	paid.Total = decimal.NewFromInt(300)
	sent := invoicing.Invoice{InvoiceNumber: "INV-2", Status: invoicing.StatusSent, IssueDate: "2024-03-05"}
	sent.Total = decimal.NewFromInt(200)

	invoiceRepo.On("FindAll", mock.Anything).Return([]invoicing.Invoice{paid, sent}, nil)
	expenseRepo.On("FindAll", mock.Anything).Return([]finance.Expense{
		{Type: "rent", Amount: decimal.NewFromInt(120), Date: "2024-03-01"},
	}, nil)

	svc := NewService(invoiceRepo, expenseRepo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC) }

	report, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.True(t, report.TotalRevenue.Amount.Equal(decimal.NewFromInt(300)))
	assert.True(t, report.TotalExpenses.Amount.Equal(decimal.NewFromInt(120)))
	assert.True(t, report.NetProfit.Amount.Equal(decimal.NewFromInt(180)))
	assert.Equal(t, 1, report.Outstanding.Count)
	assert.Len(t, report.RecentInvoices, 2)
	invoiceRepo.AssertExpectations(t)
	expenseRepo.AssertExpectations(t)
}

func TestService_GetPropagatesErrors(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	expenseRepo := new(MockExpenseRepository)
	boom := errors.New("connection refused")

	invoiceRepo.On("FindAll", mock.Anything).Return(nil, boom)
	expenseRepo.On("FindAll", mock.Anything).Return([]finance.Expense{}, nil).Maybe()

	_, err := NewService(invoiceRepo, expenseRepo, zap.NewNop()).Get(context.Background())
	assert.ErrorIs(t, err, boom)
}
