package persistence

import (
	"context"
	"fmt"

	"github.com/ledgerflow/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// singletonRow is a model pointer with an addressable primary key
type singletonRow[M any] interface {
	*M
	PrimaryKey() uint
	SetPrimaryKey(id uint)
}

// SingletonStore reads and writes a table that holds at most one row.
// Finding a second row is reported as shared.ErrSingletonViolation.
type SingletonStore[M any, P singletonRow[M]] struct {
	db      *gorm.DB
	table   string
	preload func(*gorm.DB) *gorm.DB
	// afterSave writes child rows once the parent row has an id
	afterSave func(tx *gorm.DB, row P) error
}

// NewSingletonStore creates a store for the table behind M
func NewSingletonStore[M any, P singletonRow[M]](db *gorm.DB, table string) *SingletonStore[M, P] {
	return &SingletonStore[M, P]{db: db, table: table}
}

// WithTx returns a copy of the store bound to tx
func (s *SingletonStore[M, P]) WithTx(tx *gorm.DB) *SingletonStore[M, P] {
	clone := *s
	clone.db = tx
	return &clone
}

// Get returns the single row, or nil when the table is empty
func (s *SingletonStore[M, P]) Get(ctx context.Context) (P, error) {
	return s.get(s.db.WithContext(ctx))
}

func (s *SingletonStore[M, P]) get(db *gorm.DB) (P, error) {
	if s.preload != nil {
		db = s.preload(db)
	}
	var rows []M
	if err := db.Order("id").Limit(2).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load %s: %w", s.table, err)
	}
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return P(&rows[0]), nil
	default:
		return nil, shared.NewDomainError(shared.CodeSingletonViolation,
			fmt.Sprintf("More than one %s row exists", s.table))
	}
}

// GetOrCreate returns the single row, inserting defaults when none exists
func (s *SingletonStore[M, P]) GetOrCreate(ctx context.Context, defaults P) (P, error) {
	var out P
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.get(tx)
		if err != nil {
			return err
		}
		if existing != nil {
			out = existing
			return nil
		}
		defaults.SetPrimaryKey(0)
		if err := s.write(tx, defaults); err != nil {
			return err
		}
		out = defaults
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Save inserts or updates the row. A row without an id adopts the id of the
// existing row so a second row is never created.
func (s *SingletonStore[M, P]) Save(ctx context.Context, row P) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if row.PrimaryKey() == 0 {
			existing, err := s.get(tx)
			if err != nil {
				return err
			}
			if existing != nil {
				row.SetPrimaryKey(existing.PrimaryKey())
			}
		}
		return s.write(tx, row)
	})
}

func (s *SingletonStore[M, P]) write(tx *gorm.DB, row P) error {
	if err := tx.Omit(clause.Associations).Save(row).Error; err != nil {
		return fmt.Errorf("save %s: %w", s.table, err)
	}
	if s.afterSave != nil {
		return s.afterSave(tx, row)
	}
	return nil
}
