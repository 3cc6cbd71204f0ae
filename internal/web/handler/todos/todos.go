// Package todos serves the to-do API.
package todos

import (
	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db/controller/todo"
	"github.com/showcase-apps/showcase/internal/web/handler"
)

const (
	// Path is the route group of the to-do API.
	Path = "/todos"

	resource = "Todo"
)

// Service is the todos handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Init registers the todo routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.db = db

	router := app.Group(Path)
	router.Get(handler.RootPath, s.List)
	router.Post(handler.RootPath, s.Create)
	router.Get(handler.IDPath, s.Get)
	router.Put(handler.IDPath, s.Update)
	router.Delete(handler.IDPath, s.Delete)

	return nil
}

// List returns the todos filtered by ?status=all|active|completed.
func (s *Service) List(c fiber.Ctx) error {
	todos, err := todo.List(c.Context(), s.db, todo.ParseStatus(c.Query("status")))
	if err != nil {
		return err
	}

	return c.JSON(todos)
}

// Get returns one todo.
func (s *Service) Get(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	t, err := todo.Get(c.Context(), s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(t)
}

// Create stores a new todo.
func (s *Service) Create(c fiber.Ctx) error {
	var in todo.CreateInput
	if err := handler.BindJSON(c, &in); err != nil {
		return err
	}

	t, err := todo.Create(c.Context(), s.db, in)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(t)
}

// Update changes the description or completion of a todo.
func (s *Service) Update(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	var in todo.UpdateInput
	if err = handler.BindJSON(c, &in); err != nil {
		return err
	}

	t, err := todo.Update(c.Context(), s.db, id, in)
	if err != nil {
		return err
	}

	return c.JSON(t)
}

// Delete removes a todo.
func (s *Service) Delete(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	if err = todo.Delete(c.Context(), s.db, id); err != nil {
		return err
	}

	return c.JSON(handler.Deleted(resource, id))
}
