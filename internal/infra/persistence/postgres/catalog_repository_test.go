package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{token: "protein", want: "%protein%"},
		{token: "", want: "%%"},
		{token: "100%", want: `%100\%%`},
		{token: "omega_3", want: `%omega\_3%`},
		{token: `a\b`, want: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.token))
		})
	}
}

func TestCatalogRepository_FindCategoriesByName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCatalogRepository(db)

	categoryID := uuid.New()
	menuID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "categories" WHERE name ILIKE $1 ORDER BY created_at ASC`)).
		WithArgs("%mineral%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "menu_id", "name", "description", "created_at", "updated_at"}).
			AddRow(categoryID, menuID, "Minerals", "Trace minerals", now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "menus" WHERE "menus"."id" = $1`)).
		WithArgs(menuID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(menuID, "vitamins"))

	categories, err := repo.FindCategoriesByName(context.Background(), "mineral")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, categoryID, categories[0].ID)
	assert.Equal(t, "Minerals", categories[0].Name)
	require.NotNil(t, categories[0].Menu)
	assert.Equal(t, "vitamins", categories[0].Menu.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_FindGoalsByName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCatalogRepository(db)

	goalID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "goals" WHERE name ILIKE $1`)).
		WithArgs("%protein%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(goalID, "Protein"))

	goals, err := repo.FindGoalsByName(context.Background(), "protein")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, goalID, goals[0].ID)
	assert.Equal(t, "Protein", goals[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
