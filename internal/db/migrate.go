package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db/models"
)

// Models returns the tables an app owns.
func Models(app config.App) []any {
	switch app {
	case config.AppBlog:
		return []any{&models.Post{}}
	case config.AppPortfolio:
		return []any{&models.User{}, &models.Project{}, &models.Skill{}, &models.Message{}}
	case config.AppTodo:
		return []any{&models.Todo{}}
	default:
		return nil
	}
}

// Migrate creates missing tables and columns of the app.
func Migrate(ctx context.Context, db *gorm.DB, app config.App) error {
	m := Models(app)
	if m == nil {
		return errors.Wrap(config.ErrUnknownApp, string(app))
	}

	if err := db.WithContext(ctx).AutoMigrate(m...); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}
