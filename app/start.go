package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/daemon"
	"github.com/showcase-apps/showcase/internal/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to the dotenv file (default .env)")

	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration file
	envFile    string // Path to the dotenv file

	devMode bool

	startCmd = &cobra.Command{
		Use:       "start <blog|portfolio|todo>",
		Short:     "Start one of the backends",
		ValidArgs: appNames(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config.App(args[0]), devMode)
			if err != nil {
				return err
			}

			if cfg.DevMode {
				if dump, err := config.DumpConfigJSON(cfg); err == nil {
					log.Debug().RawJSON("config", []byte(dump)).Msg("effective config")
				}
			}

			d, err := daemon.New(background(cmd), &cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return d.Start() //nolint:wrapcheck
		},
	}
)

func appNames() []string {
	names := make([]string, 0, len(config.Apps))
	for _, a := range config.Apps {
		names = append(names, string(a))
	}

	return names
}

// loadConfig reads the config of app and initializes the global logger from it.
func loadConfig(app config.App, dev bool) (config.Config, error) {
	cfg, err := config.ReadConfig(config.Options{
		Path:    configPath,
		EnvFile: envFile,
		App:     app,
		DevMode: dev,
	})
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err = logger.Init(cfg.Log); err != nil {
		return config.Config{}, fmt.Errorf("failed to init logger: %w", err)
	}

	return cfg, nil
}

func background(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
