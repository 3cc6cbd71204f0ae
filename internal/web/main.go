package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/auth"
	"github.com/showcase-apps/showcase/internal/config"
	fiberlogger "github.com/showcase-apps/showcase/internal/logger/adapter/fiber"
	"github.com/showcase-apps/showcase/internal/web/handler"
	"github.com/showcase-apps/showcase/internal/web/handler/account"
	"github.com/showcase-apps/showcase/internal/web/handler/messages"
	"github.com/showcase-apps/showcase/internal/web/handler/posts"
	"github.com/showcase-apps/showcase/internal/web/handler/projects"
	"github.com/showcase-apps/showcase/internal/web/handler/skills"
	"github.com/showcase-apps/showcase/internal/web/handler/todos"
)

const (
	// MetricsPath serves the prometheus metrics.
	MetricsPath = "/metrics"
	// DefaultCheckAliveURI is used when the config names no check alive route.
	DefaultCheckAliveURI = "/checkalive"
)

var (
	// ErrConfigNil is returned by New without a config.
	ErrConfigNil = errors.New("config cannot be nil")
	// ErrDBNil is returned by New without a database.
	ErrDBNil = errors.New("db cannot be nil")
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address and blocks until it stops.
func (s *Service) Start(addr string) error {
	s.alive.Store(true)

	err := s.App.Listen(addr, fiber.ListenConfig{DisableStartupMessage: !s.cfg.DevMode})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// Alive reports whether the check alive route answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// SetAlive switches the check alive route between 200 and 503.
func (s *Service) SetAlive(alive bool) {
	s.alive.Store(alive)
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown lets load balancers drain the instance, then stops the http server.
func (s *Service) Shutdown() {
	// reverse proxies see 503 on check alive while draining
	if !s.fastShutDown && s.cfg.Webserver.ShutDownTime > 0 {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service of cfg.App and registers its routes.
func New(cfg *config.Config, gdb *gorm.DB) (*Service, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if gdb == nil {
		return nil, ErrDBNil
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.App.Title(),
			CaseSensitive:  true,
			Immutable:      true,
			ErrorHandler:   handler.NewErrorHandler(cfg.Webserver.ExposeErrorDetails),
		},
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		db:           gdb,
		fastShutDown: cfg.DevMode,
	}

	if !cfg.Webserver.DisableRecover {
		app.Use(recoverer.New())
	}

	// outside the access log, which renders errors, so the final status is observed
	app.Use(newMetrics(cfg.App).handler)

	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Webserver.AllowOrigins}))

	checkAlive := cfg.Webserver.CheckAliveURI
	if checkAlive == "" {
		checkAlive = DefaultCheckAliveURI
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: checkAlive,
	}))

	app.Get(checkAlive, func(c fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	app.Get(handler.RootPath, func(c fiber.Ctx) error {
		return c.SendString(cfg.App.Title() + " Backend is operational!")
	})

	if err := service.initHandlers(app); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *Service) initHandlers(app *fiber.App) error {
	switch s.cfg.App {
	case config.AppBlog:
		return (&posts.Service{}).Init(app, s.cfg, s.db)
	case config.AppTodo:
		return (&todos.Service{}).Init(app, s.cfg, s.db)
	case config.AppPortfolio:
		tokens, err := auth.NewTokens(s.cfg.Auth.JWTSecret, s.cfg.Auth.TokenTTL, s.cfg.Auth.Issuer)
		if err != nil {
			return err //nolint:wrapcheck
		}

		for _, register := range []func(*fiber.App, *config.Config, *gorm.DB, *auth.Tokens) error{
			(&account.Service{}).Init,
			(&projects.Service{}).Init,
			(&skills.Service{}).Init,
			(&messages.Service{}).Init,
		} {
			if err = register(app, s.cfg, s.db, tokens); err != nil {
				return err
			}
		}

		return nil
	default:
		return config.ErrUnknownApp
	}
}
