package handler_test

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showcase-apps/showcase/internal/auth"
	"github.com/showcase-apps/showcase/internal/db/patch"
	"github.com/showcase-apps/showcase/internal/web/handler"
)

func TestStatus(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"field", &patch.FieldError{Field: "title", Message: "Title must be a non-empty string"}, 400, "Title must be a non-empty string"},
		{"no fields", patch.ErrNoFields, 400, "No fields provided for update"},
		{"bad body", fmt.Errorf("%w: eof", handler.ErrInvalidBody), 400, "Request body must be valid JSON"},
		{"credentials", auth.ErrInvalidCredentials, 400, "Invalid username or password"},
		{"token required", auth.ErrTokenRequired, 401, "Authentication token required"},
		{"malformed", auth.ErrMalformedHeader, 403, "Malformed authorization header"},
		{"invalid token", auth.ErrInvalidToken, 401, "Invalid or expired token"},
		{"named not found", patch.NotFound("Skill"), 404, "Skill not found"},
		{"wrapped not found", fmt.Errorf("x: %w", patch.ErrNotFound), 404, "Not found"},
		{"conflict", &patch.ConflictError{Message: "Username already exists"}, 409, "Username already exists"},
		{"fiber", fiber.ErrMethodNotAllowed, 405, "Method Not Allowed"},
		{"other", errors.New("boom"), 500, "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := handler.Status(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}

func TestErrorHandlerDetails(t *testing.T) {
	for _, expose := range []bool{false, true} {
		t.Run(fmt.Sprint(expose), func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: handler.NewErrorHandler(expose)})
			app.Get("/", func(fiber.Ctx) error { return errors.New("database is down") })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

			var body handler.ErrorResponse
			require.NoError(t, decode(resp.Body, &body))
			assert.Equal(t, "Internal server error", body.Error)

			if expose {
				assert.Equal(t, "database is down", body.Details)
			} else {
				assert.Empty(t, body.Details)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: handler.NewErrorHandler(false)})
	app.Get("/:id", func(c fiber.Ctx) error {
		id, err := handler.ParseID(c, "Project")
		if err != nil {
			return err
		}

		return c.JSON(id)
	})

	for _, tc := range []struct {
		path       string
		wantStatus int
	}{
		{"/12", 200},
		{"/0", 400},
		{"/-1", 400},
		{"/abc", 400},
		{"/1.5", 400},
	} {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			if tc.wantStatus == 400 {
				var body handler.ErrorResponse
				require.NoError(t, decode(resp.Body, &body))
				assert.Equal(t, "Valid project ID is required", body.Error)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	type payload struct {
		Name  string `json:"name" validate:"required"`
		Level string `json:"level" validate:"omitempty,oneof=low high"`
		Note  string `json:"note" validate:"max=3"`
	}

	var fe *patch.FieldError

	require.ErrorAs(t, handler.Validate(&payload{}), &fe)
	assert.Equal(t, "name", fe.Field)
	assert.Equal(t, "name is required", fe.Message)

	require.ErrorAs(t, handler.Validate(&payload{Name: "x", Level: "mid"}), &fe)
	assert.Equal(t, "level must be one of: low, high", fe.Message)

	require.ErrorAs(t, handler.Validate(&payload{Name: "x", Note: "long"}), &fe)
	assert.Equal(t, "note must be at most 3 characters", fe.Message)

	require.NoError(t, handler.Validate(&payload{Name: "x", Level: "low"}))
}
