package config

import (
	"time"

	"github.com/showcase-apps/showcase/internal/logger"
)

// App names one of the runnable backends.
type App string

// Known backends.
const (
	AppBlog      App = "blog"
	AppPortfolio App = "portfolio"
	AppTodo      App = "todo"
)

// Apps lists the backends in the order the CLI shows them.
var Apps = []App{AppBlog, AppPortfolio, AppTodo} //nolint:gochecknoglobals

// Title returns the display name used in the operational banner.
func (a App) Title() string {
	switch a {
	case AppBlog:
		return "Blog"
	case AppPortfolio:
		return "Portfolio"
	case AppTodo:
		return "To-Do"
	default:
		return string(a)
	}
}

// Config overall data structure.
type Config struct {
	App       App        `mapstructure:"-"`
	DevMode   bool       `mapstructure:"devmode"` // enable dev mode for development
	DB        DB         `mapstructure:"db"`
	Log       logger.Log `mapstructure:"log"`
	Title     string     `mapstructure:"title"`
	Webserver Webserver  `mapstructure:"webserver"`
	Auth      Auth       `mapstructure:"auth"`
}

// Webserver implement webserver settings.
type Webserver struct {
	Port               int      `mapstructure:"port"`               // listening port for the webserver
	ShutDownTime       int      `mapstructure:"shutdowntime"`       // seconds /checkalive reports 503 before shutdown
	AllowOrigins       []string `mapstructure:"alloworigins"`       // CORS origins, "*" allows all
	ExposeErrorDetails bool     `mapstructure:"exposeerrordetails"` // add the cause to 500 bodies
	CheckAliveURI      string   `mapstructure:"checkaliveuri"`
	DisableRecover     bool     `mapstructure:"disablerecover"` // disable recover middleware
}

// Auth holds token and admin seed settings of the portfolio backend.
type Auth struct {
	JWTSecret     string        `mapstructure:"jwtsecret"`
	TokenTTL      time.Duration `mapstructure:"tokenttl"`
	Issuer        string        `mapstructure:"issuer"`
	AdminUsername string        `mapstructure:"adminusername"`
	AdminPassword string        `mapstructure:"adminpassword"`

	// GeneratedSecret is set when dev mode filled in a random JWTSecret.
	GeneratedSecret bool `mapstructure:"-"`
}
