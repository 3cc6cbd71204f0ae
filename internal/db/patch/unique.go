package patch

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Unique checks that a value is not used by another row of the table.
type Unique struct {
	Table    string
	Column   string
	Key      string // primary key column, DefaultKey if empty
	FoldCase bool
	Message  string
}

// Taken reports whether another row holds value. A non-zero exclude skips that row.
func (u Unique) Taken(ctx context.Context, db *gorm.DB, value string, exclude uint64) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	col := clause.Column{Name: u.Column}

	q := db.WithContext(ctx).Table(u.Table)
	if u.FoldCase {
		q = q.Where("LOWER(?) = LOWER(?)", col, value)
	} else {
		q = q.Where("? = ?", col, value)
	}

	if exclude != 0 {
		key := u.Key
		if key == "" {
			key = DefaultKey
		}

		q = q.Where("? <> ?", clause.Column{Name: key}, exclude)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("unique check %s.%s: %w", u.Table, u.Column, err)
	}

	return n > 0, nil
}

// Check returns a ConflictError if value is taken.
func (u Unique) Check(ctx context.Context, db *gorm.DB, value string, exclude uint64) error {
	taken, err := u.Taken(ctx, db, value, exclude)
	if err != nil {
		return err
	}

	if taken {
		return &ConflictError{Field: u.Column, Message: u.Message}
	}

	return nil
}
