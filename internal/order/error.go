package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyCart      = errors.New("cannot place an order from an empty cart")
	ErrInvalidAddress = errors.New("invalid shipping address")
	ErrInvalidStatus  = errors.New("invalid order status")

	// -- Authorization --
	ErrForbidden = errors.New("cannot access another user's order")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")

	// -- Database & Operation Failures --
	ErrFailedCreateOrder = errors.New("failed to create order")
	ErrFailedListOrders  = errors.New("failed to list orders")
	ErrFailedUpdateOrder = errors.New("failed to update order")
)
