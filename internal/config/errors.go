package config

import (
	"errors"
)

var (
	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrUnknownApp is returned for an app name other than blog, portfolio or todo.
	ErrUnknownApp = errors.New("unknown app")

	// ErrUnknownEngine is returned if db.engine is not postgres, mysql or sqlite.
	ErrUnknownEngine = errors.New("config db.engine must be postgres, mysql or sqlite")

	// ErrJWTSecretMissing is returned if the portfolio runs without auth.jwtsecret outside dev mode.
	ErrJWTSecretMissing = errors.New("config auth.jwtsecret (or JWT_SECRET) is required")
)
