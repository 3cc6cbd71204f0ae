package patch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Assignment is one staged column = value pair.
type Assignment struct {
	Column string
	Value  any
}

type pendingUnique struct {
	check Unique
	value string
}

// Builder stages the provided fields of one partial update.
// The first invalid field is kept and reported by Apply.
type Builder struct {
	table       *Table
	now         func() time.Time
	assignments []Assignment
	uniques     []pendingUnique
	err         error
}

// New returns a Builder for t.
func New(t *Table) *Builder {
	return &Builder{table: t, now: time.Now}
}

// WithClock replaces the clock used for the touch column.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now

	return b
}

// Text stages a text column. A nil value means the field was not sent.
func (b *Builder) Text(column string, value *string) *Builder {
	if value == nil || b.err != nil {
		return b
	}

	v, err := b.table.Check(column, *value)
	if err != nil {
		b.err = err

		return b
	}

	if r := b.table.rule(column); r.Unique {
		b.uniques = append(b.uniques, pendingUnique{check: b.table.Unique(column), value: v})
	}

	b.assignments = append(b.assignments, Assignment{Column: column, Value: v})

	return b
}

// Bool stages a boolean column. A nil value means the field was not sent.
func (b *Builder) Bool(column string, value *bool) *Builder {
	if value == nil || b.err != nil {
		return b
	}

	b.assignments = append(b.assignments, Assignment{Column: column, Value: *value})

	return b
}

// Assignments returns the staged assignments in the order they were added.
func (b *Builder) Assignments() []Assignment {
	return b.assignments
}

// Err returns the first validation error.
func (b *Builder) Err() error {
	return b.err
}

// Statement renders the UPDATE for id including the touch column.
func (b *Builder) Statement(id uint64) (string, []any) {
	set := b.assignments
	if b.table.Touch != "" {
		set = append(set[:len(set):len(set)], Assignment{Column: b.table.Touch, Value: b.now().UTC()})
	}

	var (
		sb   strings.Builder
		vars = make([]any, 0, 2*len(set)+3) //nolint:mnd
	)

	sb.WriteString("UPDATE ? SET ")

	vars = append(vars, clause.Table{Name: b.table.Name})

	for i, a := range set {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString("? = ?")

		vars = append(vars, clause.Column{Name: a.Column}, a.Value)
	}

	sb.WriteString(" WHERE ? = ?")

	vars = append(vars, clause.Column{Name: b.table.key()}, id)

	return sb.String(), vars
}

// Apply validates, checks uniqueness and executes the update.
// It returns ErrNotFound when no row has the id.
func (b *Builder) Apply(ctx context.Context, db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	if b.err != nil {
		return b.err
	}

	if len(b.assignments) == 0 {
		return ErrNoFields
	}

	for _, u := range b.uniques {
		if err := u.check.Check(ctx, db, u.value, id); err != nil {
			return err
		}
	}

	query, vars := b.Statement(id)

	res := db.WithContext(ctx).Exec(query, vars...)
	if res.Error != nil {
		return fmt.Errorf("update %s %d: %w", b.table.Name, id, res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
