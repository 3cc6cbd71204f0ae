package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/showcase-apps/showcase/internal/auth"
	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db"
)

func init() { //nolint: gochecknoinits
	for _, cmd := range []*cobra.Command{userAddCmd, userPasswdCmd} {
		cmd.Flags().StringVar(&username, "username", "", "Username")
		cmd.Flags().StringVar(&password, "password", "", "Password")
		_ = cmd.MarkFlagRequired("username")
		_ = cmd.MarkFlagRequired("password")

		userCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(userCmd)
}

var (
	username string
	password string

	userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage the portfolio admin users",
	}

	userAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Create a portfolio user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUsers(cmd, func(users *auth.LocalProvider) error {
				u, err := users.CreateUser(background(cmd), username, password)
				if err != nil {
					return err //nolint:wrapcheck
				}

				cmd.Printf("created user %q (id %d)\n", u.Username, u.ID)

				return nil
			})
		},
	}

	userPasswdCmd = &cobra.Command{
		Use:   "passwd",
		Short: "Reset the password of a portfolio user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUsers(cmd, func(users *auth.LocalProvider) error {
				if err := users.ResetPassword(background(cmd), username, password); err != nil {
					return err //nolint:wrapcheck
				}

				cmd.Printf("password of %q changed\n", username)

				return nil
			})
		},
	}
)

// withUsers opens and migrates the portfolio database and runs fn on its users.
func withUsers(cmd *cobra.Command, fn func(*auth.LocalProvider) error) error {
	// the secret is not needed to manage users
	cfg, err := loadConfig(config.AppPortfolio, true)
	if err != nil {
		return err
	}

	ctx := background(cmd)

	gdb, closeDB, err := db.Open(ctx, &cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeDB()

	if err = db.Migrate(ctx, gdb, cfg.App); err != nil {
		return err //nolint:wrapcheck
	}

	return fn(auth.NewLocalProvider(gdb))
}
