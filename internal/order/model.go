package order

import (
	"time"

	"shoplite-be/internal/address"
	"shoplite-be/internal/cart"
)

type Status string

// The five order states. Any state may follow any other: the admin console
// drives transitions freely and the engine only checks membership. The
// engine itself never moves an order past the initial pending assignment.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipping   Status = "shipping"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipping, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is written once at checkout and never changes afterwards except for
// Status and UpdatedAt. Items carry their own copies of product fields so
// the order stays renderable after a product leaves the catalog.
type Order struct {
	ID     string `json:"id"`
	UserID uint   `json:"user_id"`

	Items    []Item              `json:"items"`
	Shipping address.Fields      `json:"shipping"`
	Delivery cart.DeliveryOption `json:"delivery_option"`

	Subtotal    int64 `json:"subtotal"`
	ShippingFee int64 `json:"shipping_fee"`
	Total       int64 `json:"total"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item is a denormalized copy of a cart line at checkout time.
type Item struct {
	ID        uint    `json:"id"`
	OrderID   string  `json:"order_id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice int64   `json:"unit_price"`
	ImageURL  *string `json:"image_url,omitempty"`
	Color     *string `json:"color,omitempty"`
	Size      *string `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Filter narrows ListOrders. Nil fields match everything.
type Filter struct {
	UserID *uint
	Status *Status
	Limit  *uint16
}
