package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/showcase-apps/showcase/internal/auth"
	"github.com/showcase-apps/showcase/internal/db/patch"
)

// ErrInvalidBody is returned when the request body is not valid JSON.
var ErrInvalidBody = errors.New("invalid JSON body")

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DeleteResponse is the body of a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}

// Deleted returns the delete confirmation for resource.
func Deleted(resource string, id uint64) DeleteResponse {
	return DeleteResponse{Message: resource + " deleted successfully", ID: id}
}

// Status maps an error to the HTTP status and the message sent to the client.
func Status(err error) (int, string) {
	var (
		fieldErr    *patch.FieldError
		conflictErr *patch.ConflictError
		notFoundErr *patch.NotFoundError
		gateErr     *auth.GateError
		fiberErr    *fiber.Error
	)

	switch {
	case errors.As(err, &fieldErr):
		return fiber.StatusBadRequest, fieldErr.Message
	case errors.Is(err, patch.ErrNoFields):
		return fiber.StatusBadRequest, "No fields provided for update"
	case errors.Is(err, ErrInvalidBody):
		return fiber.StatusBadRequest, "Request body must be valid JSON"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return fiber.StatusBadRequest, "Invalid username or password"
	case errors.As(err, &gateErr):
		return gateErr.Status, gateErr.Message
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound, notFoundErr.Message()
	case errors.Is(err, patch.ErrNotFound):
		return fiber.StatusNotFound, "Not found"
	case errors.As(err, &conflictErr):
		return fiber.StatusConflict, conflictErr.Message
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

// NewErrorHandler returns the fiber error handler rendering ErrorResponse bodies.
// Server errors are logged, their cause is only sent if exposeDetails is set.
func NewErrorHandler(exposeDetails bool) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		status, msg := Status(err)
		resp := ErrorResponse{Error: msg}

		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("request failed")

			if exposeDetails {
				resp.Details = err.Error()
			}
		}

		return c.Status(status).JSON(resp)
	}
}
