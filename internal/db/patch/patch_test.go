package patch_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/db/controller/post"
	"github.com/showcase-apps/showcase/internal/db/controller/skill"
	"github.com/showcase-apps/showcase/internal/db/controller/todo"
	"github.com/showcase-apps/showcase/internal/db/dbtest"
	"github.com/showcase-apps/showcase/internal/db/models"
	"github.com/showcase-apps/showcase/internal/db/patch"
)

// the controllers' own tables are under test
//nolint:gochecknoglobals
var (
	posts  = post.Table
	skills = skill.Table
	todos  = todo.Table

	past = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
)

func ptr[T any](v T) *T { return &v }

func seedPost(t *testing.T, db *gorm.DB) models.Post {
	t.Helper()

	p := models.Post{Title: "Hello", Content: "World", Author: "Ann", CreatedAt: past, UpdatedAt: past}
	dbtest.Seed(t, db, &p)

	return p
}

func TestStatement(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	b := patch.New(posts).WithClock(func() time.Time { return now }).
		Text("title", ptr("  New title ")).
		Text("author", ptr("   "))

	require.NoError(t, b.Err())

	query, vars := b.Statement(5)
	assert.Equal(t, "UPDATE ? SET ? = ?, ? = ?, ? = ? WHERE ? = ?", query)
	assert.NotContains(t, query, "title")
	require.Len(t, vars, 9)
	assert.Equal(t, "New title", vars[2])
	assert.Equal(t, models.DefaultAuthor, vars[4])
	assert.Equal(t, now, vars[6])
	assert.Equal(t, uint64(5), vars[8])

	assert.Equal(t, []patch.Assignment{
		{Column: "title", Value: "New title"},
		{Column: "author", Value: models.DefaultAuthor},
	}, b.Assignments())
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		table   *patch.Table
		column  string
		value   string
		want    string
		wantMsg string
	}{
		{"trim", posts, "title", "  x  ", "x", ""},
		{"required blank", posts, "title", " \t ", "", "Title must be a non-empty string"},
		{"default on blank", posts, "author", "", models.DefaultAuthor, ""},
		{"max length", posts, "title", strings.Repeat("a", 256), "", "Title must be at most 255 characters"},
		{"max length counts runes", posts, "author", strings.Repeat("é", 100), strings.Repeat("é", 100), ""},
		{"enum ok", skills, "proficiency", "Expert", "Expert", ""},
		{
			"enum rejected", skills, "proficiency", "Guru", "",
			"Proficiency must be one of: Beginner, Intermediate, Advanced, Expert",
		},
		{"todo max length", todos, "description", strings.Repeat("a", 26), "", "Todo description must be at most 25 characters"},
		{"todo at max length", todos, "description", strings.Repeat("a", 25), strings.Repeat("a", 25), ""},
		{"unknown column passes through", posts, "other", " v ", "v", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.table.Check(tt.column, tt.value)
			if tt.wantMsg != "" {
				var fe *patch.FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.wantMsg, fe.Message)
				assert.Equal(t, tt.column, fe.Field)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyChangesOnlyProvidedFields(t *testing.T) {
	db := dbtest.New(t, &models.Post{})
	p := seedPost(t, db)

	err := patch.New(posts).Text("author", ptr("  ")).Apply(context.Background(), db, p.ID)
	require.NoError(t, err)

	var got models.Post
	require.NoError(t, db.First(&got, p.ID).Error)

	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "World", got.Content)
	assert.Equal(t, models.DefaultAuthor, got.Author)
	assert.True(t, got.UpdatedAt.After(p.UpdatedAt), "updated_at must increase")
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))
}

func TestApplyErrors(t *testing.T) {
	db := dbtest.New(t, &models.Post{})
	p := seedPost(t, db)
	ctx := context.Background()

	t.Run("no fields", func(t *testing.T) {
		err := patch.New(posts).Text("title", nil).Apply(ctx, db, p.ID)
		require.ErrorIs(t, err, patch.ErrNoFields)
	})

	t.Run("first field error wins", func(t *testing.T) {
		err := patch.New(posts).
			Text("title", ptr("")).
			Text("content", ptr("")).
			Apply(ctx, db, p.ID)

		var fe *patch.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "title", fe.Field)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := patch.New(posts).Text("title", ptr("x")).Apply(ctx, db, 999)
		require.ErrorIs(t, err, patch.ErrNotFound)
	})

	t.Run("nil db", func(t *testing.T) {
		err := patch.New(posts).Text("title", ptr("x")).Apply(ctx, nil, p.ID)
		require.ErrorIs(t, err, patch.ErrDBNil)
	})

	var got models.Post
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, "Hello", got.Title)
	assert.True(t, got.UpdatedAt.Equal(p.UpdatedAt), "failed updates must not write")
}

func TestApplyIsIdempotent(t *testing.T) {
	db := dbtest.New(t, &models.Post{})
	p := seedPost(t, db)
	ctx := context.Background()

	var first, second models.Post

	require.NoError(t, patch.New(posts).Text("title", ptr("Same")).Apply(ctx, db, p.ID))
	require.NoError(t, db.First(&first, p.ID).Error)

	require.NoError(t, patch.New(posts).Text("title", ptr("Same")).Apply(ctx, db, p.ID))
	require.NoError(t, db.First(&second, p.ID).Error)

	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Author, second.Author)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestUniqueConflicts(t *testing.T) {
	db := dbtest.New(t, &models.Skill{})
	ctx := context.Background()

	react := models.Skill{Name: "React", Proficiency: models.Advanced}
	golang := models.Skill{Name: "Go", Proficiency: models.Expert}
	dbtest.Seed(t, db, &react, &golang)

	t.Run("other row folded case", func(t *testing.T) {
		err := patch.New(skills).Text("name", ptr("react")).Apply(ctx, db, golang.ID)

		var ce *patch.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "A skill with this name already exists", ce.Message)
	})

	t.Run("own name", func(t *testing.T) {
		err := patch.New(skills).Text("name", ptr("REACT")).Apply(ctx, db, react.ID)
		require.NoError(t, err)
	})

	t.Run("taken on create", func(t *testing.T) {
		taken, err := skills.Unique("name").Taken(ctx, db, "gO", 0)
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("case sensitive", func(t *testing.T) {
		u := patch.Unique{Table: "skills", Column: "name", Message: "taken"}

		taken, err := u.Taken(ctx, db, "go", 0)
		require.NoError(t, err)
		assert.False(t, taken)

		require.Error(t, u.Check(ctx, db, "Go", 0))
	})
}
