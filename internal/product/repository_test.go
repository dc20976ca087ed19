package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "price", "image_url",
		"colors", "sizes", "available", "created_at", "updated_at",
	})
}

func TestRepository_GetProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := productRows().AddRow(
			"prod-1", "Handwoven Scarf", nil, int64(14500), nil,
			"{red,blue}", "{M,L}",
			true, time.Now(), time.Now(),
		)

		mock.ExpectQuery("FROM products").
			WithArgs("prod-1").
			WillReturnRows(rows)

		p, err := repo.GetProduct(context.Background(), "prod-1")
		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Handwoven Scarf", p.Name)
		assert.Equal(t, int64(14500), p.Price)
		assert.Equal(t, []string{"red", "blue"}, p.Colors)
		assert.True(t, p.Available)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("FROM products").
			WithArgs("missing").
			WillReturnRows(productRows())

		_, err := repo.GetProduct(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_ListProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success with limit", func(t *testing.T) {
		rows := productRows().
			AddRow("prod-1", "Scarf", nil, int64(14500), nil,
				"{}", "{}", true, time.Now(), time.Now()).
			AddRow("prod-2", "Mug", nil, int64(9900), nil,
				"{}", "{}", true, time.Now(), time.Now())

		limit := uint16(10)
		mock.ExpectQuery("FROM products").
			WithArgs(limit).
			WillReturnRows(rows)

		products, err := repo.ListProducts(context.Background(), &limit)
		assert.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("FROM products").
			WillReturnError(errors.New("db error"))

		_, err := repo.ListProducts(context.Background(), nil)
		assert.ErrorIs(t, err, ErrFailedListProducts)
	})
}

func TestRepository_CreateProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := productRows().AddRow(
			"prod-9", "Mug", nil, int64(9900), nil,
			"{white}", "{}", true, time.Now(), time.Now(),
		)

		mock.ExpectQuery("INSERT INTO products").
			WillReturnRows(rows)

		p, err := repo.CreateProduct(context.Background(), CreateProductParams{
			Name:      "Mug",
			Price:     9900,
			Colors:    []string{"white"},
			Available: true,
		})
		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "prod-9", p.ID)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO products").
			WillReturnError(errors.New("db error"))

		_, err := repo.CreateProduct(context.Background(), CreateProductParams{Name: "Mug"})
		assert.ErrorIs(t, err, ErrFailedCreateProduct)
	})
}

func TestRepository_UpdateProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	price := int64(12000)

	t.Run("Success", func(t *testing.T) {
		rows := productRows().AddRow(
			"prod-1", "Scarf", nil, price, nil,
			"{}", "{}", true, time.Now(), time.Now(),
		)

		mock.ExpectQuery("UPDATE products").
			WithArgs(price, "prod-1").
			WillReturnRows(rows)

		p, err := repo.UpdateProduct(context.Background(), UpdateProductParams{
			ID:    "prod-1",
			Price: &price,
		})
		assert.NoError(t, err)
		assert.Equal(t, price, p.Price)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("UPDATE products").
			WillReturnRows(productRows())

		_, err := repo.UpdateProduct(context.Background(), UpdateProductParams{
			ID:    "missing",
			Price: &price,
		})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_DeleteProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM products").
			WithArgs("prod-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteProduct(context.Background(), "prod-1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM products").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteProduct(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
