package auth

import (
	"errors"

	"github.com/gofiber/fiber/v3"
)

// GateError is a rejection by RequireToken. Status is the HTTP status to send.
type GateError struct {
	Status  int
	Message string
}

// Error implements error.
func (e *GateError) Error() string {
	return e.Message
}

var (
	// ErrTokenRequired is returned when the Authorization header or its token is missing.
	ErrTokenRequired = &GateError{Status: fiber.StatusUnauthorized, Message: "Authentication token required"}

	// ErrMalformedHeader is returned when the Authorization header does not use the Bearer scheme.
	ErrMalformedHeader = &GateError{Status: fiber.StatusForbidden, Message: "Malformed authorization header"}

	// ErrInvalidToken is returned when the signature, expiry or claims of a token do not verify.
	ErrInvalidToken = &GateError{Status: fiber.StatusUnauthorized, Message: "Invalid or expired token"}

	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrEmptySecret is returned by NewTokens callers that pass no signing secret.
	ErrEmptySecret = errors.New("jwt secret can not be empty")

	// ErrUserNotFound is returned when a user cannot be found in the database.
	ErrUserNotFound = errors.New("user not found")
)
