package patch

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultKey is the primary key column used when Table.Key is empty.
const DefaultKey = "id"

// Rule describes how one text column is normalized and validated.
type Rule struct {
	Column   string
	Label    string // used in error messages, e.g. "Title"
	Required bool   // blank values are rejected
	Default  string // stored instead of a blank value
	MaxLen   int    // in characters, 0 means unlimited
	OneOf    []string

	// Unique enables the existence check before the write.
	Unique   bool
	FoldCase bool
	Conflict string // message of the ConflictError
}

// Table describes the updatable columns of one table.
type Table struct {
	Name  string
	Key   string
	Touch string // timestamp column stamped on every update, empty for none
	Rules []Rule
}

func (t *Table) key() string {
	if t.Key == "" {
		return DefaultKey
	}

	return t.Key
}

func (t *Table) rule(column string) Rule {
	for _, r := range t.Rules {
		if r.Column == column {
			return r
		}
	}

	return Rule{Column: column, Label: column}
}

// Check trims value and applies the column rule. It returns the value to store.
func (t *Table) Check(column, value string) (string, error) {
	r := t.rule(column)
	v := strings.TrimSpace(value)

	if v == "" {
		if r.Required {
			return "", &FieldError{Field: column, Message: r.Label + " must be a non-empty string"}
		}

		v = r.Default
	}

	if r.MaxLen > 0 && utf8.RuneCountInString(v) > r.MaxLen {
		return "", &FieldError{
			Field:   column,
			Message: fmt.Sprintf("%s must be at most %d characters", r.Label, r.MaxLen),
		}
	}

	if len(r.OneOf) > 0 && !slices.Contains(r.OneOf, v) {
		return "", &FieldError{
			Field:   column,
			Message: fmt.Sprintf("%s must be one of: %s", r.Label, strings.Join(r.OneOf, ", ")),
		}
	}

	return v, nil
}

// Unique returns the conflict check of column.
func (t *Table) Unique(column string) Unique {
	r := t.rule(column)

	msg := r.Conflict
	if msg == "" {
		msg = r.Label + " already exists"
	}

	return Unique{
		Table:    t.Name,
		Column:   column,
		Key:      t.key(),
		FoldCase: r.FoldCase,
		Message:  msg,
	}
}
