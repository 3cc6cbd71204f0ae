package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/showcase-apps/showcase/internal/db/patch"
)

//nolint:gochecknoglobals
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names, they are what clients send
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// BindJSON decodes the request body into dst and validates its struct tags.
// An empty body leaves dst untouched.
func BindJSON(c fiber.Ctx, dst any) error {
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(dst); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
	}

	return Validate(dst)
}

// Validate checks the struct tags of v and returns the first failure as FieldError.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err //nolint:wrapcheck
	}

	fe := verrs[0]

	msg := fmt.Sprintf("%s is invalid", fe.Field())

	switch fe.Tag() {
	case "required":
		msg = fe.Field() + " is required"
	case "max":
		msg = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		msg = fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}

	return &patch.FieldError{Field: fe.Field(), Message: msg}
}
