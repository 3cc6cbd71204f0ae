// Package config reads the service configuration from an optional file, a .env file and the environment.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/showcase-apps/showcase/internal/uniuri"
)

const (
	envPrefix           = "SHOWCASE"
	defaultShutDownTime = 5
	defaultTokenTTL     = time.Hour
)

// Options select what ReadConfig loads.
type Options struct {
	Path    string // optional config file (toml, yaml or json)
	EnvFile string // optional dotenv file, defaults to .env
	App     App
	DevMode bool
}

//nolint:gochecknoglobals
var defaultPorts = map[App]int{
	AppBlog:      8000,
	AppPortfolio: 7000,
	AppTodo:      5000,
}

// ReadConfig merges defaults, the config file and the environment.
func ReadConfig(opts Options) (Config, error) {
	if _, ok := defaultPorts[opts.App]; !ok {
		return Config{}, errors.Wrap(ErrUnknownApp, string(opts.App))
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, errors.Wrap(err, "failed to read env file")
	}

	v := viper.New()
	setDefaults(v, opts.App)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// names used by the original deployments
	for key, aliases := range map[string][]string{
		"db.url":         {"DATABASE_URL", "NEON_DATABASE_URL"},
		"auth.jwtsecret": {"JWT_SECRET"},
		"webserver.port": {"PORT"},
	} {
		names := append([]string{envName(key)}, aliases...)
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return Config{}, errors.Wrap(err, "failed to bind env")
		}
	}

	if opts.Path != "" {
		v.SetConfigFile(opts.Path)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "failed to read config file")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	c.App = opts.App
	if opts.DevMode {
		c.DevMode = true
	}

	return c, validate(&c)
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func setDefaults(v *viper.Viper, app App) {
	v.SetDefault("devmode", false)
	v.SetDefault("title", app.Title()+" Backend")

	v.SetDefault("db.engine", EnginePostgres)
	v.SetDefault("db.url", "")
	v.SetDefault("db.extras", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 0)
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "showcase")
	v.SetDefault("db.sslmode", "")
	v.SetDefault("db.maxconns", 10) //nolint:mnd
	v.SetDefault("db.loglevel", "warn")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.accesslogtoconsole", true)
	v.SetDefault("log.reportcaller", false)
	v.SetDefault("log.disablecheckalive", true)
	v.SetDefault("log.appname", "showcase")
	v.SetDefault("log.servicename", string(app))
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useconsolewriter", false)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./log")

	for _, f := range []string{"access", "error", "info", "trace", "warn"} {
		v.SetDefault("log.file."+f+".name", f+".log")
		v.SetDefault("log.file."+f+".maxsize", 100) //nolint:mnd
		v.SetDefault("log.file."+f+".maxbackups", 3) //nolint:mnd
		v.SetDefault("log.file."+f+".maxage", 28)    //nolint:mnd
	}

	v.SetDefault("webserver.port", defaultPorts[app])
	v.SetDefault("webserver.shutdowntime", defaultShutDownTime)
	v.SetDefault("webserver.alloworigins", []string{"*"})
	v.SetDefault("webserver.exposeerrordetails", false)
	v.SetDefault("webserver.checkaliveuri", "/checkalive")
	v.SetDefault("webserver.disablerecover", false)

	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.tokenttl", defaultTokenTTL)
	v.SetDefault("auth.issuer", "showcase-"+string(app))
	v.SetDefault("auth.adminusername", "")
	v.SetDefault("auth.adminpassword", "")
}

// DumpConfigJSON config as JSON String. Secrets are masked.
func DumpConfigJSON(c Config) (string, error) {
	var buffer bytes.Buffer

	c.DB.Password = mask(c.DB.Password)
	c.DB.URL = mask(c.DB.URL)
	c.Auth.JWTSecret = mask(c.Auth.JWTSecret)
	c.Auth.AdminPassword = mask(c.Auth.AdminPassword)

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

func mask(s string) string {
	if s == "" {
		return ""
	}

	return "***"
}

// validate checks the settings the services can not run without and fills derived defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	switch c.DB.Engine {
	case EnginePostgres, EngineMySQL, EngineSQLite:
	default:
		return errors.Wrap(ErrUnknownEngine, fmt.Sprintf("%s: %q", invalidErrMessage, c.DB.Engine))
	}

	if c.Webserver.ShutDownTime <= 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}

	if c.App == AppPortfolio && c.Auth.JWTSecret == "" {
		if !c.DevMode {
			return errors.Wrap(ErrJWTSecretMissing, invalidErrMessage)
		}

		c.Auth.JWTSecret = uniuri.NewSecret()
		c.Auth.GeneratedSecret = true
	}

	return nil
}
