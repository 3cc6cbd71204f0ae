// Package handlertest provides fiber apps and request helpers for handler tests.
package handlertest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"github.com/showcase-apps/showcase/internal/auth"
	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/web/handler"
)

// Secret signs test tokens.
const Secret = "handler-test-secret"

// NewApp returns a fiber app using the production error handler.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
		ErrorHandler:  handler.NewErrorHandler(false),
	})
}

// Config returns a minimal config for app.
func Config(app config.App) *config.Config {
	return &config.Config{
		App:  app,
		Auth: config.Auth{JWTSecret: Secret, TokenTTL: time.Hour, Issuer: "test"},
	}
}

// Tokens returns the token service matching Config.
func Tokens(t *testing.T) *auth.Tokens {
	t.Helper()

	tokens, err := auth.NewTokens(Secret, time.Hour, "test")
	require.NoError(t, err)

	return tokens
}

// Token issues a valid bearer token.
func Token(t *testing.T, tokens *auth.Tokens) string {
	t.Helper()

	raw, _, err := tokens.Issue(auth.Identity{ID: 1, Username: "admin"})
	require.NoError(t, err)

	return raw
}

// Do sends a request and returns status and body. body may be nil, a string or any JSON value.
func Do(t *testing.T, app *fiber.App, method, target string, body any, token string) (int, []byte) {
	t.Helper()

	var r io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)

		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, out
}

// Decode unmarshals body into a new T.
func Decode[T any](t *testing.T, body []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))

	return v
}
