// Package messages serves the contact form API. Anyone may submit, reading and deleting need a token.
package messages

import (
	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/auth"
	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db/controller/message"
	"github.com/showcase-apps/showcase/internal/web/handler"
)

const (
	// Path is the route group of the message API.
	Path = "/api/messages"

	resource = "Message"
)

// Service is the messages handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Init registers the message routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, tokens *auth.Tokens) error {
	if app == nil || cfg == nil || db == nil || tokens == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.db = db

	gate := auth.RequireToken(tokens)

	router := app.Group(Path)
	router.Post(handler.RootPath, s.Create)
	router.Get(handler.RootPath, gate, s.List)
	router.Get(handler.IDPath, gate, s.Get)
	router.Delete(handler.IDPath, gate, s.Delete)

	return nil
}

// List returns all messages, newest first.
func (s *Service) List(c fiber.Ctx) error {
	msgs, err := message.List(c.Context(), s.db)
	if err != nil {
		return err
	}

	return c.JSON(msgs)
}

// Get returns one message.
func (s *Service) Get(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	m, err := message.Get(c.Context(), s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(m)
}

// Create stores a contact form submission.
func (s *Service) Create(c fiber.Ctx) error {
	var in message.CreateInput
	if err := handler.BindJSON(c, &in); err != nil {
		return err
	}

	m, err := message.Create(c.Context(), s.db, in)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(m)
}

// Delete removes a message.
func (s *Service) Delete(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	if err = message.Delete(c.Context(), s.db, id); err != nil {
		return err
	}

	return c.JSON(handler.Deleted(resource, id))
}
