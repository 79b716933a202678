package shared

import "context"

// Repository is the base interface for all repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id uint) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
}

// SingletonRepository stores a configuration record of which at most one
// row may exist per installation.
type SingletonRepository[T any] interface {
	// Get returns the single row, or nil when none exists yet.
	Get(ctx context.Context) (*T, error)
	// GetOrCreate returns the single row, creating defaults on first access.
	GetOrCreate(ctx context.Context, defaults *T) (*T, error)
	Save(ctx context.Context, entity *T) error
}
