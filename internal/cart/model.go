package cart

// Line is one cart entry. Name, UnitPrice and ImageURL are a denormalized
// snapshot taken when the product was first added, so a later catalog edit
// never rewrites a line that is already in the cart.
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice int64   `json:"unit_price"`
	ImageURL  *string `json:"image_url,omitempty"`
	Color     *string `json:"color,omitempty"`
	Size      *string `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
}

// LineTotal is UnitPrice × Quantity in minor units.
func (l Line) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

type AddItemParams struct {
	ProductID string
	Color     *string
	Size      *string
}

// DeliveryOption is a named shipping speed with a fixed fee.
type DeliveryOption string

const (
	DeliveryStandard DeliveryOption = "standard"
	DeliveryExpress  DeliveryOption = "express"
)

// Fees in minor units: standard ₹20, express ₹50.
var deliveryFees = map[DeliveryOption]int64{
	DeliveryStandard: 2000,
	DeliveryExpress:  5000,
}

// FeeFor looks up the fixed fee for a delivery option.
func FeeFor(option DeliveryOption) (int64, error) {
	fee, ok := deliveryFees[option]
	if !ok {
		return 0, ErrInvalidDeliveryOption
	}
	return fee, nil
}
