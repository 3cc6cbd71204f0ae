package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/showcase-apps/showcase/internal/db/patch"
)

// ParseID reads the :id route parameter. Anything but a positive integer is a
// FieldError naming resource, e.g. "Valid project ID is required".
func ParseID(c fiber.Ctx, resource string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, &patch.FieldError{
			Field:   "id",
			Message: "Valid " + strings.ToLower(resource) + " ID is required",
		}
	}

	return id, nil
}
