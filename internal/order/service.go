package order

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"shoplite-be/internal/address"
	"shoplite-be/internal/cart"
	"shoplite-be/internal/logger"
	"shoplite-be/internal/utils"
)

// Cart is what PlaceOrder needs from the cart engine: a snapshot to commit
// and a way to empty it once the write is acknowledged.
type Cart interface {
	Snapshot() []cart.Line
	Clear()
}

// Service defines the order lifecycle.
type Service interface {
	PlaceOrder(ctx context.Context, userID uint, crt Cart, option cart.DeliveryOption, fields address.Fields) (string, error)
	GetOrder(ctx context.Context, userID uint, isAdmin bool, orderID string) (*Order, error)
	ListOrders(ctx context.Context, filter Filter) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
	CountForUser(ctx context.Context, userID uint) (total int64, pending int64, err error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PlaceOrder turns the current cart into an immutable order record.
//
// The cart is cleared strictly after the append is acknowledged; on a
// persistence failure the lines stay put and the caller decides whether to
// resubmit (no automatic write retry, a blind replay could duplicate the
// order).
func (s *service) PlaceOrder(
	ctx context.Context,
	userID uint,
	crt Cart,
	option cart.DeliveryOption,
	fields address.Fields,
) (string, error) {

	log := logger.FromCtx(ctx).With(zap.Uint("user_id", userID))

	// 1. Snapshot the cart
	lines := crt.Snapshot()
	if len(lines) == 0 {
		log.Warn("checkout attempted with empty cart")
		return "", ErrEmptyCart
	}

	// 2. Validate inputs
	if err := fields.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	fee, err := cart.FeeFor(option)
	if err != nil {
		return "", err
	}

	// 3. Compute totals at this instant; they are never recomputed later
	var subtotal int64
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		subtotal += l.LineTotal()
		items = append(items, Item{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			ImageURL:  l.ImageURL,
			Color:     l.Color,
			Size:      l.Size,
			Quantity:  l.Quantity,
		})
	}

	now := time.Now()
	o := &Order{
		ID:          utils.NewOrderID(),
		UserID:      userID,
		Items:       items,
		Shipping:    fields,
		Delivery:    option,
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	log = log.With(
		zap.String("order_id", o.ID),
		zap.Int("item_count", len(items)),
		zap.Int64("total", o.Total),
	)

	// 4. Append to the log, then clear the cart
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return "", err
	}

	crt.Clear()

	log.Info("order placed")
	return o.ID, nil
}

func (s *service) GetOrder(ctx context.Context, userID uint, isAdmin bool, orderID string) (*Order, error) {
	o, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.UserID != userID {
		return nil, ErrForbidden
	}

	return o, nil
}

func (s *service) ListOrders(ctx context.Context, filter Filter) ([]*Order, error) {
	return s.repo.ListOrders(ctx, filter)
}

// UpdateStatus overwrites the status field only. Which statuses may follow
// which is deliberately unrestricted (see the Status doc).
func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
	)

	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		log.Warn("failed to update order status", zap.Error(err))
		return err
	}

	log.Info("order status updated")
	return nil
}

func (s *service) CountForUser(ctx context.Context, userID uint) (int64, int64, error) {
	return s.repo.CountOrders(ctx, userID)
}
