// Package post provides CRUD operations for blog posts.
package post

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/db/controller"
	"github.com/showcase-apps/showcase/internal/db/models"
	"github.com/showcase-apps/showcase/internal/db/patch"
)

// ErrPostNotFound is returned when no post has the requested id.
var ErrPostNotFound = patch.NotFound("Post")

// Table holds the update rules of the posts table.
var Table = &patch.Table{ //nolint:gochecknoglobals
	Name:  "posts",
	Touch: "updated_at",
	Rules: []patch.Rule{
		{Column: "title", Label: "Title", Required: true, MaxLen: 255},
		{Column: "content", Label: "Content", Required: true},
		{Column: "author", Label: "Author", Default: models.DefaultAuthor, MaxLen: 100},
	},
}

// CreateInput is the payload of a new post.
type CreateInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author"`
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Author  *string `json:"author"`
}

// List returns all posts, newest first.
func List(ctx context.Context, db *gorm.DB) ([]models.Post, error) {
	return controller.Find[models.Post](ctx, db, "created_at DESC, id DESC")
}

// Get returns the post with id.
func Get(ctx context.Context, db *gorm.DB, id uint64) (*models.Post, error) {
	return controller.First[models.Post](ctx, db, id, ErrPostNotFound)
}

// Create validates and inserts a post.
func Create(ctx context.Context, db *gorm.DB, in CreateInput) (*models.Post, error) {
	if db == nil {
		return nil, patch.ErrDBNil
	}

	var (
		p   models.Post
		err error
	)

	if p.Title, err = Table.Check("title", in.Title); err != nil {
		return nil, err
	}

	if p.Content, err = Table.Check("content", in.Content); err != nil {
		return nil, err
	}

	if p.Author, err = Table.Check("author", in.Author); err != nil {
		return nil, err
	}

	if err = db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &p, nil
}

// Update applies the provided fields and returns the updated post.
func Update(ctx context.Context, db *gorm.DB, id uint64, in UpdateInput) (*models.Post, error) {
	err := patch.New(Table).
		Text("title", in.Title).
		Text("content", in.Content).
		Text("author", in.Author).
		Apply(ctx, db, id)
	if errors.Is(err, patch.ErrNotFound) {
		return nil, ErrPostNotFound
	}

	if err != nil {
		return nil, err
	}

	return Get(ctx, db, id)
}

// Delete removes the post with id.
func Delete(ctx context.Context, db *gorm.DB, id uint64) error {
	return controller.Delete[models.Post](ctx, db, id, ErrPostNotFound)
}
