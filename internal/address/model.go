package address

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingField = errors.New("missing required address field")

// Fields is the shipping form as entered at checkout. Free text; the engine
// only guarantees presence, format checks belong to the presentation layer.
type Fields struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Validate rejects any blank required field. Whitespace-only counts as
// blank.
func (f Fields) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"full_name", f.FullName},
		{"street", f.Street},
		{"city", f.City},
		{"state", f.State},
		{"postal_code", f.PostalCode},
		{"email", f.Email},
		{"phone", f.Phone},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	return nil
}
