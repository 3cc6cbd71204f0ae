package skills_test

import (
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db/dbtest"
	"github.com/showcase-apps/showcase/internal/db/models"
	"github.com/showcase-apps/showcase/internal/web/handler/handlertest"
	"github.com/showcase-apps/showcase/internal/web/handler/skills"
)

func setup(t *testing.T) (*fiber.App, string) {
	t.Helper()

	db := dbtest.New(t, &models.Skill{})
	app := handlertest.NewApp()
	tokens := handlertest.Tokens(t)

	s := &skills.Service{}
	require.NoError(t, s.Init(app, handlertest.Config(config.AppPortfolio), db, tokens))

	return app, handlertest.Token(t, tokens)
}

func TestCreate(t *testing.T) {
	app, token := setup(t)

	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"valid", `{"name":"Go","proficiency":"Expert"}`, 201, ""},
		{"unknown proficiency", `{"name":"Rust","proficiency":"Guru"}`, 400,
			"Proficiency must be one of: Beginner, Intermediate, Advanced, Expert"},
		{"missing name", `{"proficiency":"Expert"}`, 400, "name is required"},
		{"name taken ignoring case", `{"name":"gO","proficiency":"Beginner"}`, 409,
			"A skill with this name already exists"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := handlertest.Do(t, app, fiber.MethodPost, skills.Path, tc.body, token)
			require.Equal(t, tc.wantStatus, status, string(body))

			if tc.wantError != "" {
				assert.JSONEq(t, `{"error":"`+tc.wantError+`"}`, string(body))
			}
		})
	}
}

func TestUpdateConflict(t *testing.T) {
	app, token := setup(t)

	for _, name := range []string{"Go", "SQL"} {
		status, _ := handlertest.Do(t, app, fiber.MethodPost, skills.Path,
			map[string]string{"name": name, "proficiency": "Advanced"}, token)
		require.Equal(t, fiber.StatusCreated, status)
	}

	status, body := handlertest.Do(t, app, fiber.MethodPut, "/api/skills/2", `{"name":"go"}`, token)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.JSONEq(t, `{"error":"A skill with this name already exists"}`, string(body))

	status, body = handlertest.Do(t, app, fiber.MethodPut, "/api/skills/1", `{"name":"Go","proficiency":"Expert"}`, token)
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.Equal(t, models.Expert, handlertest.Decode[models.Skill](t, body).Proficiency)

	status, body = handlertest.Do(t, app, fiber.MethodGet, skills.Path, nil, "")
	require.Equal(t, fiber.StatusOK, status)

	list := handlertest.Decode[[]models.Skill](t, body)
	require.Len(t, list, 2)
	assert.Equal(t, "Go", list[0].Name)
}
