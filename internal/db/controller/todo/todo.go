// Package todo provides CRUD operations for to-do items.
package todo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/db/controller"
	"github.com/showcase-apps/showcase/internal/db/models"
	"github.com/showcase-apps/showcase/internal/db/patch"
)

// ErrTodoNotFound is returned when no todo has the requested id.
var ErrTodoNotFound = patch.NotFound("Todo")

// Status filters the todo list.
type Status string

// List filters.
const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// ParseStatus maps a query value to a Status. Anything unknown means all.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive
	case StatusCompleted:
		return StatusCompleted
	default:
		return StatusAll
	}
}

// Table holds the update rules of the todos table.
var Table = &patch.Table{ //nolint:gochecknoglobals
	Name:  "todos",
	Touch: "updated_at",
	Rules: []patch.Rule{
		{
			Column:   "description",
			Label:    "Todo description",
			Required: true,
			MaxLen:   models.TodoDescriptionMaxLen,
		},
	},
}

// CreateInput is the payload of a new todo.
type CreateInput struct {
	Description string `json:"description" validate:"required"`
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// List returns the todos matching status, newest first.
func List(ctx context.Context, db *gorm.DB, status Status) ([]models.Todo, error) {
	if db == nil {
		return nil, patch.ErrDBNil
	}

	switch status {
	case StatusActive:
		db = db.Where("completed = ?", false)
	case StatusCompleted:
		db = db.Where("completed = ?", true)
	case StatusAll:
	}

	return controller.Find[models.Todo](ctx, db, "created_at DESC, id DESC")
}

// Get returns the todo with id.
func Get(ctx context.Context, db *gorm.DB, id uint64) (*models.Todo, error) {
	return controller.First[models.Todo](ctx, db, id, ErrTodoNotFound)
}

// Create validates and inserts an open todo.
func Create(ctx context.Context, db *gorm.DB, in CreateInput) (*models.Todo, error) {
	if db == nil {
		return nil, patch.ErrDBNil
	}

	description, err := Table.Check("description", in.Description)
	if err != nil {
		return nil, err
	}

	t := models.Todo{Description: description}

	if err = db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &t, nil
}

// Update applies the provided fields and returns the updated todo.
func Update(ctx context.Context, db *gorm.DB, id uint64, in UpdateInput) (*models.Todo, error) {
	err := patch.New(Table).
		Text("description", in.Description).
		Bool("completed", in.Completed).
		Apply(ctx, db, id)
	if errors.Is(err, patch.ErrNotFound) {
		return nil, ErrTodoNotFound
	}

	if err != nil {
		return nil, err
	}

	return Get(ctx, db, id)
}

// Delete removes the todo with id.
func Delete(ctx context.Context, db *gorm.DB, id uint64) error {
	return controller.Delete[models.Todo](ctx, db, id, ErrTodoNotFound)
}
