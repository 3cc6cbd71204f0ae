// Package skills serves the portfolio skill API. Reads are public, writes need a token.
package skills

import (
	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/auth"
	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db/controller/skill"
	"github.com/showcase-apps/showcase/internal/web/handler"
)

const (
	// Path is the route group of the skill API.
	Path = "/api/skills"

	resource = "Skill"
)

// Service is the skills handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Init registers the skill routes. Mutations are guarded by tokens.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, tokens *auth.Tokens) error {
	if app == nil || cfg == nil || db == nil || tokens == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.db = db

	gate := auth.RequireToken(tokens)

	router := app.Group(Path)
	router.Get(handler.RootPath, s.List)
	router.Get(handler.IDPath, s.Get)
	router.Post(handler.RootPath, gate, s.Create)
	router.Put(handler.IDPath, gate, s.Update)
	router.Delete(handler.IDPath, gate, s.Delete)

	return nil
}

// List returns all skills ordered by name.
func (s *Service) List(c fiber.Ctx) error {
	skills, err := skill.List(c.Context(), s.db)
	if err != nil {
		return err
	}

	return c.JSON(skills)
}

// Get returns one skill.
func (s *Service) Get(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	sk, err := skill.Get(c.Context(), s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(sk)
}

// Create stores a new skill.
func (s *Service) Create(c fiber.Ctx) error {
	var in skill.CreateInput
	if err := handler.BindJSON(c, &in); err != nil {
		return err
	}

	sk, err := skill.Create(c.Context(), s.db, in)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(sk)
}

// Update changes the name or proficiency of a skill.
func (s *Service) Update(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	var in skill.UpdateInput
	if err = handler.BindJSON(c, &in); err != nil {
		return err
	}

	sk, err := skill.Update(c.Context(), s.db, id, in)
	if err != nil {
		return err
	}

	return c.JSON(sk)
}

// Delete removes a skill.
func (s *Service) Delete(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	if err = skill.Delete(c.Context(), s.db, id); err != nil {
		return err
	}

	return c.JSON(handler.Deleted(resource, id))
}
