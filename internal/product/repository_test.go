package product

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{
	"id", "name", "customer_id", "price", "description", "quantity",
	"created_date", "location", "image_path", "category_id", "category_name",
	"number_sold", "rating_sum", "rating_count",
}

func productRow(rows *sqlmock.Rows, id int64) *sqlmock.Rows {
	return rows.AddRow(id, "Kite", 9, "12.50", "A kite", 3,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "Nashville", nil, 1, "Toys",
		2, 8, 2)
}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(productCols)
		productRow(rows, 1)
		productRow(rows, 2)
		mock.ExpectQuery(`WHERE op\.product_id = p\.id AND o\.payment_type_id IS NOT NULL\) AS number_sold` +
			`.+WHERE p\.deleted_at IS NULL ORDER BY p\.id`).WillReturnRows(rows)

		res, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.True(t, decimal.RequireFromString("12.5").Equal(res[0].Price))
		assert.Equal(t, "Toys", res[0].CategoryName)
		assert.Equal(t, 2, res[0].NumberSold)
		assert.Equal(t, 4.0, res[0].AverageRating())
		assert.Nil(t, res[0].ImagePath)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("FROM products p").WillReturnError(errors.New("db error"))

		_, err := repo.List(context.Background())
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("WHERE p.id = (.+) AND p.deleted_at IS NULL").
			WithArgs(int64(1)).
			WillReturnRows(productRow(sqlmock.NewRows(productCols), 1))

		p, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(9), p.SellerID)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("WHERE p.id").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 1)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_ListByOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows(productCols)
	productRow(rows, 1)
	productRow(rows, 1)
	mock.ExpectQuery("INNER JOIN order_products li").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	res, err := repo.ListByOrder(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	params := CreateProductParams{
		SellerID:    9,
		Name:        "Kite",
		Price:       decimal.RequireFromString("12.50"),
		Description: "A kite",
		Quantity:    3,
		CreatedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Location:    "Nashville",
		CategoryID:  1,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO products").
			WithArgs("Kite", int64(9), sqlmock.AnyArg(), "A kite", 3, sqlmock.AnyArg(), "Nashville", sqlmock.AnyArg(), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectQuery("WHERE p.id").
			WithArgs(int64(11)).
			WillReturnRows(productRow(sqlmock.NewRows(productCols), 11))

		p, err := repo.Create(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, int64(11), p.ID)
	})

	t.Run("Unknown category", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO products").
			WillReturnError(&pq.Error{Code: "23503"})

		_, err := repo.Create(context.Background(), params)
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("Check violation", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO products").
			WillReturnError(&pq.Error{Code: "23514"})

		_, err := repo.Create(context.Background(), params)
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newMockRepo(t)
	params := UpdateProductParams{Name: "Kite", Price: decimal.NewFromInt(10), CategoryID: 1}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE products").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(context.Background(), 1, params))
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectExec("UPDATE products").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(context.Background(), 1, params), ErrProductNotFound)
	})
}

func TestRepository_SoftDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE products SET deleted_at = NOW()").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SoftDelete(context.Background(), 1))
	})

	t.Run("Already deleted", func(t *testing.T) {
		mock.ExpectExec("UPDATE products SET deleted_at").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SoftDelete(context.Background(), 1), ErrProductNotFound)
	})
}

func TestRepository_AddRating(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO product_ratings").
		WithArgs(int64(1), int64(3), 5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))

	rt, err := repo.AddRating(context.Background(), 1, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(21), rt.ID)
	assert.Equal(t, 5, rt.Rating)
}

func TestRepository_PurchasedProductIDs(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT DISTINCT op.product_id").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}).AddRow(1).AddRow(4))

	got, err := repo.PurchasedProductIDs(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{1: true, 4: true}, got)
}
