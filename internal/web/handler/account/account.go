// Package account serves login, signup and the current identity of the portfolio admin.
package account

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/auth"
	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db/models"
	"github.com/showcase-apps/showcase/internal/web/handler"
)

// Path is the route group of the account API.
const Path = "/api/auth"

// Credentials is the login and signup payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response is returned by login and signup.
type Response struct {
	Message   string        `json:"message"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      auth.Identity `json:"user"`
}

// Service is the account handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	users  *auth.LocalProvider
	tokens *auth.Tokens
}

// Init registers the account routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, tokens *auth.Tokens) error {
	if app == nil || cfg == nil || db == nil || tokens == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.users = auth.NewLocalProvider(db)
	s.tokens = tokens

	router := app.Group(Path)
	router.Post("/login", s.Login)
	router.Post("/signup", s.Signup)
	router.Get("/me", auth.RequireToken(tokens), s.Me)

	return nil
}

// Login verifies the credentials and issues a token.
func (s *Service) Login(c fiber.Ctx) error {
	var in Credentials
	if err := handler.BindJSON(c, &in); err != nil {
		return err
	}

	if in.Username == "" || in.Password == "" {
		return auth.ErrInvalidCredentials
	}

	user, err := s.users.Authenticate(c.Context(), in.Username, in.Password)
	if err != nil {
		log.Warn().Str("username", in.Username).Err(err).Msg("login failed")

		return err
	}

	return s.respond(c, fiber.StatusOK, "Login successful", user)
}

// Signup creates a user and issues a token.
func (s *Service) Signup(c fiber.Ctx) error {
	var in Credentials
	if err := handler.BindJSON(c, &in); err != nil {
		return err
	}

	user, err := s.users.CreateUser(c.Context(), in.Username, in.Password)
	if err != nil {
		return err
	}

	log.Info().Uint64("user_id", user.ID).Str("username", user.Username).Msg("user registered")

	return s.respond(c, fiber.StatusCreated, "User registered successfully", user)
}

// Me returns the identity of the token holder.
func (s *Service) Me(c fiber.Ctx) error {
	id, ok := auth.IdentityFromContext(c)
	if !ok {
		return auth.ErrTokenRequired
	}

	return c.JSON(fiber.Map{"user": id})
}

func (s *Service) respond(c fiber.Ctx, status int, msg string, user *models.User) error {
	id := auth.Identity{ID: user.ID, Username: user.Username}

	token, exp, err := s.tokens.Issue(id)
	if err != nil {
		return err
	}

	return c.Status(status).JSON(Response{
		Message:   msg,
		Token:     token,
		ExpiresAt: exp,
		User:      id,
	})
}
