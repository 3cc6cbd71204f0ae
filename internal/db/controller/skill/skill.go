// Package skill provides CRUD operations for portfolio skills.
// Skill names are unique ignoring case.
package skill

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/db/controller"
	"github.com/showcase-apps/showcase/internal/db/models"
	"github.com/showcase-apps/showcase/internal/db/patch"
)

// ErrSkillNotFound is returned when no skill has the requested id.
var ErrSkillNotFound = patch.NotFound("Skill")

// Table holds the update rules of the skills table.
var Table = &patch.Table{ //nolint:gochecknoglobals
	Name:  "skills",
	Touch: "updated_at",
	Rules: []patch.Rule{
		{
			Column:   "name",
			Label:    "Skill name",
			Required: true,
			MaxLen:   100,
			Unique:   true,
			FoldCase: true,
			Conflict: "A skill with this name already exists",
		},
		{Column: "proficiency", Label: "Proficiency", Required: true, OneOf: models.Proficiencies},
	},
}

// CreateInput is the payload of a new skill.
type CreateInput struct {
	Name        string `json:"name" validate:"required"`
	Proficiency string `json:"proficiency" validate:"required"`
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Name        *string `json:"name"`
	Proficiency *string `json:"proficiency"`
}

// List returns all skills ordered by name.
func List(ctx context.Context, db *gorm.DB) ([]models.Skill, error) {
	return controller.Find[models.Skill](ctx, db, "name ASC")
}

// Get returns the skill with id.
func Get(ctx context.Context, db *gorm.DB, id uint64) (*models.Skill, error) {
	return controller.First[models.Skill](ctx, db, id, ErrSkillNotFound)
}

// Create validates, checks the name is unused and inserts a skill.
func Create(ctx context.Context, db *gorm.DB, in CreateInput) (*models.Skill, error) {
	if db == nil {
		return nil, patch.ErrDBNil
	}

	name, err := Table.Check("name", in.Name)
	if err != nil {
		return nil, err
	}

	proficiency, err := Table.Check("proficiency", in.Proficiency)
	if err != nil {
		return nil, err
	}

	if err = Table.Unique("name").Check(ctx, db, name, 0); err != nil {
		return nil, err
	}

	s := models.Skill{Name: name, Proficiency: models.Proficiency(proficiency)}

	if err = db.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &s, nil
}

// Update applies the provided fields and returns the updated skill.
// Keeping the skill's own name is not a conflict.
func Update(ctx context.Context, db *gorm.DB, id uint64, in UpdateInput) (*models.Skill, error) {
	err := patch.New(Table).
		Text("name", in.Name).
		Text("proficiency", in.Proficiency).
		Apply(ctx, db, id)
	if errors.Is(err, patch.ErrNotFound) {
		return nil, ErrSkillNotFound
	}

	if err != nil {
		return nil, err
	}

	return Get(ctx, db, id)
}

// Delete removes the skill with id.
func Delete(ctx context.Context, db *gorm.DB, id uint64) error {
	return controller.Delete[models.Skill](ctx, db, id, ErrSkillNotFound)
}
