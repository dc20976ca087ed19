package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, limit *uint16) ([]*Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, price, image_url, colors, sizes, available, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.ImageURL,
		pq.Array(&p.Colors),
		pq.Array(&p.Sizes),
		&p.Available,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetProduct(ctx context.Context, id string) (*Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) ListProducts(ctx context.Context, limit *uint16) ([]*Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC
	`

	args := []any{}
	if limit != nil {
		query += ` LIMIT $1`
		args = append(args, *limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListProducts, err)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListProducts, err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	query := `
		INSERT INTO products (id, name, description, price, image_url, colors, sizes, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + productColumns

	p, err := scanProduct(r.db.QueryRowContext(ctx, query,
		uuid.New().String(),
		params.Name,
		params.Description,
		params.Price,
		params.ImageURL,
		pq.Array(params.Colors),
		pq.Array(params.Sizes),
		params.Available,
	))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedCreateProduct, err)
	}

	return p, nil
}

func (r *repository) UpdateProduct(ctx context.Context, params UpdateProductParams) (*Product, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}
	arg := 1

	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, arg))
		args = append(args, value)
		arg++
	}

	if params.Name != nil {
		addSet("name", *params.Name)
	}
	if params.Description != nil {
		addSet("description", *params.Description)
	}
	if params.Price != nil {
		addSet("price", *params.Price)
	}
	if params.ImageURL != nil {
		addSet("image_url", *params.ImageURL)
	}
	if params.Colors != nil {
		addSet("colors", pq.Array(params.Colors))
	}
	if params.Sizes != nil {
		addSet("sizes", pq.Array(params.Sizes))
	}
	if params.Available != nil {
		addSet("available", *params.Available)
	}

	query := fmt.Sprintf(`
		UPDATE products
		SET %s
		WHERE id = $%d
		RETURNING `+productColumns,
		strings.Join(sets, ", "), arg,
	)
	args = append(args, params.ID)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedUpdateProduct, err)
	}

	return p, nil
}

func (r *repository) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedDeleteProduct, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedDeleteProduct, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
