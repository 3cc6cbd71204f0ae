package todos_test

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
	"github.com/showcase-apps/showcase/internal/web/handler/handlertest"
	"github.com/showcase-apps/showcase/internal/web/handler/todos"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := dbtest.New(t, &models.Todo{})
	app := handlertest.NewApp()

	s := &todos.Service{}
	require.NoError(t, s.Init(app, handlertest.Config(config.AppTodo), db))

	return app, db
}

func TestListStatusFilter(t *testing.T) {
	app, db := setup(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dbtest.Seed(t, db,
		&models.Todo{Description: "open", CreatedAt: base},
		&models.Todo{Description: "done", Completed: true, CreatedAt: base.Add(time.Second)},
	)

	for _, tc := range []struct {
		query string
		want  []string
	}{
		{"", []string{"done", "open"}},
		{"?status=active", []string{"open"}},
		{"?status=completed", []string{"done"}},
		{"?status=bogus", []string{"done", "open"}},
	} {
		t.Run(tc.query, func(t *testing.T) {
			status, body := handlertest.Do(t, app, fiber.MethodGet, todos.Path+tc.query, nil, "")
			require.Equal(t, fiber.StatusOK, status)

			got := handlertest.Decode[[]models.Todo](t, body)

			names := make([]string, 0, len(got))
			for _, td := range got {
				names = append(names, td.Description)
			}

			assert.Equal(t, tc.want, names)
		})
	}
}

func TestCreateUpdateDelete(t *testing.T) {
	app, _ := setup(t)

	status, body := handlertest.Do(t, app, fiber.MethodPost, todos.Path, `{"description":"  milk  "}`, "")
	require.Equal(t, fiber.StatusCreated, status, string(body))

	created := handlertest.Decode[models.Todo](t, body)
	assert.Equal(t, "milk", created.Description)
	assert.False(t, created.Completed)

	status, body = handlertest.Do(t, app, fiber.MethodPost, todos.Path,
		`{"description":"this description is far too long"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Todo description must be at most 25 characters"}`, string(body))

	status, body = handlertest.Do(t, app, fiber.MethodPut, "/todos/1", `{"completed":true}`, "")
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.True(t, handlertest.Decode[models.Todo](t, body).Completed)

	status, body = handlertest.Do(t, app, fiber.MethodGet, "/todos/1", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "milk", handlertest.Decode[models.Todo](t, body).Description)

	status, body = handlertest.Do(t, app, fiber.MethodDelete, "/todos/1", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"message":"Todo deleted successfully","id":1}`, string(body))

	status, _ = handlertest.Do(t, app, fiber.MethodDelete, "/todos/1", nil, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}
