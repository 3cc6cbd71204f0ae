package daemon

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/auth"
	"github.com/showcase-apps/showcase/internal/config"
)

// seed creates the configured admin of the portfolio while the users table is empty.
func seed(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	if cfg.App != config.AppPortfolio || cfg.Auth.AdminUsername == "" || cfg.Auth.AdminPassword == "" {
		return nil
	}

	users := auth.NewLocalProvider(db)

	count, err := users.CountUsers(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count users")
	}

	if count > 0 {
		return nil
	}

	user, err := users.CreateUser(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to seed admin user")
	}

	log.Info().Str("username", user.Username).Msg("seeded admin user")

	return nil
}
