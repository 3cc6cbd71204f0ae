package posts_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db/dbtest"
	"github.com/showcase-apps/showcase/internal/db/models"
	"github.com/showcase-apps/showcase/internal/web/handler"
	"github.com/showcase-apps/showcase/internal/web/handler/handlertest"
	"github.com/showcase-apps/showcase/internal/web/handler/posts"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := dbtest.New(t, &models.Post{})
	app := handlertest.NewApp()

	s := &posts.Service{}
	require.NoError(t, s.Init(app, handlertest.Config(config.AppBlog), db))

	return app, db
}

func TestInitRejectsNil(t *testing.T) {
	s := &posts.Service{}
	require.ErrorIs(t, s.Init(nil, nil, nil), handler.ErrNilACD)
}

func TestCRUD(t *testing.T) {
	app, _ := setup(t)

	status, body := handlertest.Do(t, app, fiber.MethodPost, posts.Path,
		map[string]string{"title": "Hello", "content": "World"}, "")
	require.Equal(t, fiber.StatusCreated, status, string(body))

	created := handlertest.Decode[models.Post](t, body)
	assert.Equal(t, models.DefaultAuthor, created.Author)
	assert.NotZero(t, created.ID)

	status, body = handlertest.Do(t, app, fiber.MethodGet, posts.Path, nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, handlertest.Decode[[]models.Post](t, body), 1)

	status, _ = handlertest.Do(t, app, fiber.MethodGet, "/api/posts/1", nil, "")
	assert.Equal(t, fiber.StatusOK, status)

	status, body = handlertest.Do(t, app, fiber.MethodDelete, "/api/posts/1", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"message":"Post deleted successfully","id":1}`, string(body))

	status, body = handlertest.Do(t, app, fiber.MethodGet, "/api/posts/1", nil, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Post not found"}`, string(body))
}

func TestUpdateBlankAuthor(t *testing.T) {
	app, db := setup(t)

	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	p := models.Post{ID: 5, Title: "T", Content: "C", Author: "Ann", CreatedAt: past, UpdatedAt: past}
	dbtest.Seed(t, db, &p)

	status, body := handlertest.Do(t, app, fiber.MethodPut, "/api/posts/5", `{"author":"  "}`, "")
	require.Equal(t, fiber.StatusOK, status, string(body))

	got := handlertest.Decode[models.Post](t, body)
	assert.Equal(t, models.DefaultAuthor, got.Author)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "C", got.Content)
	assert.True(t, got.UpdatedAt.After(past))
}

func TestUpdateErrors(t *testing.T) {
	app, db := setup(t)

	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	dbtest.Seed(t, db, &models.Post{ID: 1, Title: "T", Content: "C", Author: "A", UpdatedAt: past})

	testCases := []struct {
		name       string
		target     string
		body       any
		wantStatus int
		wantError  string
	}{
		{"empty object", "/api/posts/1", `{}`, 400, "No fields provided for update"},
		{"empty body", "/api/posts/1", nil, 400, "No fields provided for update"},
		{"null fields are absent", "/api/posts/1", `{"title":null}`, 400, "No fields provided for update"},
		{"blank title", "/api/posts/1", `{"title":"   "}`, 400, "Title must be a non-empty string"},
		{"bad json", "/api/posts/1", `{"title":`, 400, "Request body must be valid JSON"},
		{"bad id", "/api/posts/abc", `{"title":"x"}`, 400, "Valid post ID is required"},
		{"unknown id", "/api/posts/999", `{"title":"x"}`, 404, "Post not found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := handlertest.Do(t, app, fiber.MethodPut, tc.target, tc.body, "")
			assert.Equal(t, tc.wantStatus, status)
			assert.JSONEq(t, `{"error":"`+tc.wantError+`"}`, string(body))
		})
	}

	var got models.Post
	require.NoError(t, db.First(&got, 1).Error)
	assert.True(t, got.UpdatedAt.Equal(past), "rejected updates must not write")
}

func TestCreateValidation(t *testing.T) {
	app, _ := setup(t)

	status, body := handlertest.Do(t, app, fiber.MethodPost, posts.Path, `{"title":"x"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"content is required"}`, string(body))
}
