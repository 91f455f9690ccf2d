package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"vitashop/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestProductRepository_ProductExists(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "present", count: 1, want: true},
		{name: "absent", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewProductRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products" WHERE id = $1`)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.ProductExists(context.Background(), uuid.New())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepository_FindProductStock(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)

	stockID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product_stocks" WHERE product_id = $1 AND size = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "size", "price", "stock", "created_at", "updated_at"}).
			AddRow(stockID, productID, "500g", "30.00", 4, now, now))

	stock, err := repo.FindProductStock(context.Background(), productID, "500g")
	require.NoError(t, err)
	assert.Equal(t, stockID, stock.ID)
	assert.Equal(t, productID, stock.ProductID)
	assert.Equal(t, "500g", stock.Size)
	assert.True(t, decimal.RequireFromString("30").Equal(stock.Price))
	assert.Equal(t, 4, stock.Stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindProductStockByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product_stocks" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	stock, err := repo.FindProductStockByID(context.Background(), uuid.New())
	assert.Nil(t, stock)
	assert.ErrorIs(t, err, repository.ErrProductStockNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindProductByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewProductRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		product, err := repo.FindProductByID(context.Background(), uuid.New())
		assert.Nil(t, product)
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})

	t.Run("database error is wrapped", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewProductRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
			WillReturnError(errors.New("connection reset"))

		product, err := repo.FindProductByID(context.Background(), uuid.New())
		assert.Nil(t, product)
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrProductNotFound)
		assert.Contains(t, err.Error(), "failed to find product by ID")
	})
}

func TestProductRepository_EmptyFiltersSkipQueries(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	byCategory, err := repo.FindProductsByCategoryIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, byCategory)

	byGoal, err := repo.FindProductsByGoalIDs(ctx, []uuid.UUID{})
	require.NoError(t, err)
	assert.Empty(t, byGoal)

	similar, err := repo.FindSimilarProducts(ctx, uuid.New(), []uuid.UUID{uuid.New()}, 0)
	require.NoError(t, err)
	assert.Empty(t, similar)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindProductsByNewFlag(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)

	productID := uuid.New()
	categoryID := uuid.New()
	goalID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE is_new = $1 ORDER BY created_at ASC`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "name", "is_new", "created_at", "updated_at"}).
			AddRow(productID, categoryID, "Daily Multi", true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product_goals" WHERE "product_goals"."product_id" = $1`)).
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "goal_id"}).AddRow(productID, goalID))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "goals" WHERE "goals"."id" = $1`)).
		WithArgs(goalID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(goalID, "Energy"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "images" WHERE "images"."product_id" = $1`)).
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "image_url", "is_main"}).
			AddRow(uuid.New(), productID, "https://cdn.example.com/main.png", true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product_stocks" WHERE "product_stocks"."product_id" = $1 ORDER BY created_at ASC`)).
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "size", "price", "stock"}).
			AddRow(uuid.New(), productID, "", "12.50", 0))

	products, err := repo.FindProductsByNewFlag(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, products, 1)

	product := products[0]
	assert.Equal(t, "Daily Multi", product.Name)
	assert.True(t, product.IsNew)
	require.Len(t, product.Goals, 1)
	assert.Equal(t, "Energy", product.Goals[0].Name)
	assert.Equal(t, "https://cdn.example.com/main.png", product.MainImageURL())
	assert.True(t, product.IsSoldOut())
	assert.NoError(t, mock.ExpectationsWereMet())
}
