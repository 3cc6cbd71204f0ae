// Package projects serves the portfolio project API. Reads are public, writes need a token.
package projects

import (
	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/auth"
	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db/controller/project"
	"github.com/showcase-apps/showcase/internal/web/handler"
)

const (
	// Path is the route group of the project API.
	Path = "/api/projects"

	resource = "Project"
)

// Service is the projects handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Init registers the project routes. Mutations are guarded by tokens.
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

// List returns all projects, newest first.
func (s *Service) List(c fiber.Ctx) error {
	projects, err := project.List(c.Context(), s.db)
	if err != nil {
		return err
	}

	return c.JSON(projects)
}

// Get returns one project.
func (s *Service) Get(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	p, err := project.Get(c.Context(), s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(p)
}

// Create stores a new project.
func (s *Service) Create(c fiber.Ctx) error {
	var in project.CreateInput
	if err := handler.BindJSON(c, &in); err != nil {
		return err
	}

	p, err := project.Create(c.Context(), s.db, in)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update changes the provided fields of a project.
func (s *Service) Update(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	var in project.UpdateInput
	if err = handler.BindJSON(c, &in); err != nil {
		return err
	}

	p, err := project.Update(c.Context(), s.db, id, in)
	if err != nil {
		return err
	}

	return c.JSON(p)
}

// Delete removes a project.
func (s *Service) Delete(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	if err = project.Delete(c.Context(), s.db, id); err != nil {
		return err
	}

	return c.JSON(handler.Deleted(resource, id))
}
