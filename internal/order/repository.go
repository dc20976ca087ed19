package order

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	// CreateOrder appends the order and its items in one transaction: the
	// log either gets the whole record or nothing.
	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	ListOrders(ctx context.Context, filter Filter) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
	CountOrders(ctx context.Context, userID uint) (total int64, pending int64, err error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, user_id, status, subtotal, shipping_fee, total, delivery_option,
		full_name, street, city, state, postal_code, email, phone, created_at, updated_at`

func (r *repository) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, status, subtotal, shipping_fee, total, delivery_option,
			full_name, street, city, state, postal_code, email, phone,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		o.ID,
		o.UserID,
		o.Status,
		o.Subtotal,
		o.ShippingFee,
		o.Total,
		o.Delivery,
		o.Shipping.FullName,
		o.Shipping.Street,
		o.Shipping.City,
		o.Shipping.State,
		o.Shipping.PostalCode,
		o.Shipping.Email,
		o.Shipping.Phone,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (
				order_id, product_id, name, unit_price, image_url, color, size, quantity
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`,
			o.ID,
			item.ProductID,
			item.Name,
			item.UnitPrice,
			item.ImageURL,
			item.Color,
			item.Size,
			item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}

	return nil
}

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.Status,
		&o.Subtotal,
		&o.ShippingFee,
		&o.Total,
		&o.Delivery,
		&o.Shipping.FullName,
		&o.Shipping.Street,
		&o.Shipping.City,
		&o.Shipping.State,
		&o.Shipping.PostalCode,
		&o.Shipping.Email,
		&o.Shipping.Phone,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, orderID))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

// ListOrders re-scans the log on every call; most recent first.
func (r *repository) ListOrders(ctx context.Context, filter Filter) ([]*Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE 1=1
	`

	args := []any{}
	arg := 1

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND user_id = $%d", arg)
		args = append(args, *filter.UserID)
		arg++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", arg)
		args = append(args, *filter.Status)
		arg++
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", arg)
		args = append(args, *filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListOrders, err)
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListOrders, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListOrders, err)
	}

	for _, o := range orders {
		items, err := r.loadItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}

	return orders, nil
}

func (r *repository) loadItems(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, name, unit_price, image_url, color, size, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListOrders, err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		err := rows.Scan(
			&it.ID,
			&it.OrderID,
			&it.ProductID,
			&it.Name,
			&it.UnitPrice,
			&it.ImageURL,
			&it.Color,
			&it.Size,
			&it.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListOrders, err)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, orderID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdateOrder, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdateOrder, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *repository) CountOrders(ctx context.Context, userID uint) (int64, int64, error) {
	var total, pending int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1)
		FROM orders
		WHERE user_id = $2
	`, StatusPending, userID).Scan(&total, &pending)
	if err != nil {
		return 0, 0, err
	}

	return total, pending, nil
}
