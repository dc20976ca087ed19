package product

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidPrice = errors.New("product price must not be negative")
	ErrEmptyName    = errors.New("product name is required")
	ErrNoFields     = errors.New("no product fields to update")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Database & Operation Failures --
	ErrFailedListProducts  = errors.New("failed to list products")
	ErrFailedCreateProduct = errors.New("failed to create product")
	ErrFailedUpdateProduct = errors.New("failed to update product")
	ErrFailedDeleteProduct = errors.New("failed to delete product")
)
