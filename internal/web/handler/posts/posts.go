// Package posts serves the blog post API.
package posts

import (
	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db/controller/post"
	"github.com/showcase-apps/showcase/internal/web/handler"
)

const (
	// Path is the route group of the post API.
	Path = "/api/posts"

	resource = "Post"
)

// Service is the posts handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Init registers the post routes.
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

// List returns all posts, newest first.
func (s *Service) List(c fiber.Ctx) error {
	posts, err := post.List(c.Context(), s.db)
	if err != nil {
		return err
	}

	return c.JSON(posts)
}

// Get returns one post.
func (s *Service) Get(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	p, err := post.Get(c.Context(), s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(p)
}

// Create stores a new post.
func (s *Service) Create(c fiber.Ctx) error {
	var in post.CreateInput
	if err := handler.BindJSON(c, &in); err != nil {
		return err
	}

	p, err := post.Create(c.Context(), s.db, in)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update changes the provided fields of a post.
func (s *Service) Update(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	var in post.UpdateInput
	if err = handler.BindJSON(c, &in); err != nil {
		return err
	}

	p, err := post.Update(c.Context(), s.db, id, in)
	if err != nil {
		return err
	}

	return c.JSON(p)
}

// Delete removes a post.
func (s *Service) Delete(c fiber.Ctx) error {
	id, err := handler.ParseID(c, resource)
	if err != nil {
		return err
	}

	if err = post.Delete(c.Context(), s.db, id); err != nil {
		return err
	}

	return c.JSON(handler.Deleted(resource, id))
}
