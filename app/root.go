// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "showcase runs the blog, portfolio and to-do backends",
	Long: `showcase runs one of three small REST backends: a blog, a portfolio
with an authenticated admin area and a to-do list. Each backend is started
with its own subcommand and configured through a config file or SHOWCASE_
environment variables.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
