// Package project provides CRUD operations for portfolio projects.
package project

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/db/controller"
	"github.com/showcase-apps/showcase/internal/db/models"
	"github.com/showcase-apps/showcase/internal/db/patch"
)

// ErrProjectNotFound is returned when no project has the requested id.
var ErrProjectNotFound = patch.NotFound("Project")

// Table holds the update rules of the projects table.
var Table = &patch.Table{ //nolint:gochecknoglobals
	Name:  "projects",
	Touch: "updated_at",
	Rules: []patch.Rule{
		{Column: "title", Label: "Title", Required: true, MaxLen: 255},
		{Column: "description", Label: "Description", Required: true},
		{Column: "technologies", Label: "Technologies", MaxLen: 255},
		{Column: "image_url", Label: "Image URL", MaxLen: 255},
		{Column: "live_link", Label: "Live link", MaxLen: 255},
		{Column: "github_link", Label: "GitHub link", MaxLen: 255},
	},
}

// CreateInput is the payload of a new project.
type CreateInput struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Technologies string `json:"technologies"`
	ImageURL     string `json:"imageUrl"`
	LiveLink     string `json:"liveLink"`
	GithubLink   string `json:"githubLink"`
}

// UpdateInput is a partial update. Nil fields are left unchanged,
// an empty optional field is cleared.
type UpdateInput struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Technologies *string `json:"technologies"`
	ImageURL     *string `json:"imageUrl"`
	LiveLink     *string `json:"liveLink"`
	GithubLink   *string `json:"githubLink"`
}

// List returns all projects, newest first.
func List(ctx context.Context, db *gorm.DB) ([]models.Project, error) {
	return controller.Find[models.Project](ctx, db, "created_at DESC, id DESC")
}

// Get returns the project with id.
func Get(ctx context.Context, db *gorm.DB, id uint64) (*models.Project, error) {
	return controller.First[models.Project](ctx, db, id, ErrProjectNotFound)
}

// Create validates and inserts a project.
func Create(ctx context.Context, db *gorm.DB, in CreateInput) (*models.Project, error) {
	if db == nil {
		return nil, patch.ErrDBNil
	}

	var p models.Project

	for _, f := range []struct {
		column string
		value  string
		dst    *string
	}{
		{"title", in.Title, &p.Title},
		{"description", in.Description, &p.Description},
		{"technologies", in.Technologies, &p.Technologies},
		{"image_url", in.ImageURL, &p.ImageURL},
		{"live_link", in.LiveLink, &p.LiveLink},
		{"github_link", in.GithubLink, &p.GithubLink},
	} {
		v, err := Table.Check(f.column, f.value)
		if err != nil {
			return nil, err
		}

		*f.dst = v
	}

	if err := db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &p, nil
}

// Update applies the provided fields and returns the updated project.
func Update(ctx context.Context, db *gorm.DB, id uint64, in UpdateInput) (*models.Project, error) {
	err := patch.New(Table).
		Text("title", in.Title).
		Text("description", in.Description).
		Text("technologies", in.Technologies).
		Text("image_url", in.ImageURL).
		Text("live_link", in.LiveLink).
		Text("github_link", in.GithubLink).
		Apply(ctx, db, id)
	if errors.Is(err, patch.ErrNotFound) {
		return nil, ErrProjectNotFound
	}

	if err != nil {
		return nil, err
	}

	return Get(ctx, db, id)
}

// Delete removes the project with id.
func Delete(ctx context.Context, db *gorm.DB, id uint64) error {
	return controller.Delete[models.Project](ctx, db, id, ErrProjectNotFound)
}
