// Package controller holds the generic read and delete helpers shared by the resource controllers.
package controller

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/db/patch"
)

// First loads the row with id or returns notFound.
func First[T any](ctx context.Context, db *gorm.DB, id uint64, notFound error) (*T, error) {
	if db == nil {
		return nil, patch.ErrDBNil
	}

	var row T

	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}

		return nil, err //nolint:wrapcheck
	}

	return &row, nil
}

// Find loads all rows in the given order.
func Find[T any](ctx context.Context, db *gorm.DB, order string) ([]T, error) {
	if db == nil {
		return nil, patch.ErrDBNil
	}

	rows := make([]T, 0)

	if err := db.WithContext(ctx).Order(order).Find(&rows).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return rows, nil
}

// Delete removes the row with id or returns notFound if none matched.
func Delete[T any](ctx context.Context, db *gorm.DB, id uint64, notFound error) error {
	if db == nil {
		return patch.ErrDBNil
	}

	var row T

	result := db.WithContext(ctx).Delete(&row, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}
