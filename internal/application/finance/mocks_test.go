package finance

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// mockRepo is a testify mock for shared.Repository[T]
type mockRepo[T any] struct {
	mock.Mock
}

func (m *mockRepo[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockRepo[T]) FindAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockRepo[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockRepo[T]) Update(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockRepo[T]) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// mockInvoiceRepo adds ExistsByID
type mockInvoiceRepo[T any] struct {
	mockRepo[T]
}

func (m *mockInvoiceRepo[T]) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
