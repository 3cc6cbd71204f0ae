// Package daemon wires config, logging, database and web service into one running backend.
package daemon

import (
	"context"
	"errors"
	"strconv"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db"
	"github.com/showcase-apps/showcase/internal/web"
)

// ErrConfigNil is returned by New without a config.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	closeDB    func()
	webService *web.Service
}

// New opens and migrates the database, seeds it and builds the web service.
func New(ctx context.Context, cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if cfg.Auth.GeneratedSecret {
		log.Warn().Msg("dev mode: no jwt secret configured, using a random one. Tokens do not survive a restart")
	}

	gdb, closeDB, err := db.Open(ctx, &cfg.DB)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = db.Migrate(ctx, gdb, cfg.App); err != nil {
		closeDB()

		return nil, err //nolint:wrapcheck
	}

	if err = seed(ctx, cfg, gdb); err != nil {
		closeDB()

		return nil, err
	}

	webService, err := web.New(cfg, gdb)
	if err != nil {
		closeDB()

		return nil, pkgerrors.Wrap(err, "failed to create web service")
	}

	log.Info().
		Str("app", string(cfg.App)).
		Str("engine", cfg.DB.Engine).
		Msg("daemon initialized")

	return &Daemon{
		cfg:        cfg,
		db:         gdb,
		closeDB:    closeDB,
		webService: webService,
	}, nil
}

// Web returns the web service.
func (d *Daemon) Web() *web.Service {
	return d.webService
}

// Start serves until SIGINT or SIGTERM, then closes the database.
func (d *Daemon) Start() error {
	defer d.closeDB()

	go d.webService.WaitShutdown()

	addr := ":" + strconv.Itoa(d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Msgf("%s backend listening", d.cfg.App.Title())

	return d.webService.Start(addr)
}
