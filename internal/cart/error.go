package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidDeliveryOption = errors.New("unrecognized delivery option")

	// -- Resource State --
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")
)
