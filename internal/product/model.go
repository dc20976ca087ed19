package product

import "time"

// Product is a catalog record. Price is in minor units (paise). Colors and
// Sizes are the variant sets shown on the product page; either may be
// empty.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       int64     `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Colors      []string  `json:"colors"`
	Sizes       []string  `json:"sizes"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProductParams struct {
	Name        string
	Description *string
	Price       int64
	ImageURL    *string
	Colors      []string
	Sizes       []string
	Available   bool
}

type UpdateProductParams struct {
	ID          string
	Name        *string
	Description *string
	Price       *int64
	ImageURL    *string
	Colors      []string
	Sizes       []string
	Available   *bool
}

// HasAnyField reports whether the update carries at least one change.
func (p UpdateProductParams) HasAnyField() bool {
	return p.Name != nil ||
		p.Description != nil ||
		p.Price != nil ||
		p.ImageURL != nil ||
		p.Colors != nil ||
		p.Sizes != nil ||
		p.Available != nil
}
