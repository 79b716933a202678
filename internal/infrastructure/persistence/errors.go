package persistence

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// translateNotFound maps gorm.ErrRecordNotFound to the given domain error
func translateNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// requireRow turns an update or delete that touched no rows into notFound
func requireRow(result *gorm.DB, notFound error) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
