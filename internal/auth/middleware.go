package auth

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

const bearerScheme = "Bearer"

type identityKey struct{}

// RequireToken creates Fiber middleware that only lets requests with a valid bearer token pass.
// Rejections are returned as *GateError for the app's error handler.
func RequireToken(tokens *Tokens) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return ErrTokenRequired
		}

		scheme, raw, _ := strings.Cut(header, " ")
		if !strings.EqualFold(scheme, bearerScheme) {
			log.Warn().Str("path", c.Path()).Msg("authorization header without bearer scheme")

			return ErrMalformedHeader
		}

		raw = strings.TrimSpace(raw)
		if raw == "" {
			return ErrTokenRequired
		}

		id, err := tokens.Verify(raw)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("rejected bearer token")

			return ErrInvalidToken
		}

		c.Locals(identityKey{}, id)

		return c.Next()
	}
}

// IdentityFromContext returns the identity attached by RequireToken.
func IdentityFromContext(c fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(identityKey{}).(Identity)

	return id, ok
}
