package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validFields() Fields {
	return Fields{
		FullName:   "Asha Rao",
		Street:     "14 MG Road",
		City:       "Bengaluru",
		State:      "Karnataka",
		PostalCode: "560001",
		Email:      "asha@example.com",
		Phone:      "+91-9000000000",
	}
}

func TestFields_Validate(t *testing.T) {
	t.Run("Complete address passes", func(t *testing.T) {
		assert.NoError(t, validFields().Validate())
	})

	t.Run("Blank field rejected", func(t *testing.T) {
		f := validFields()
		f.City = ""
		err := f.Validate()
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("Whitespace-only counts as blank", func(t *testing.T) {
		f := validFields()
		f.PostalCode = "   "
		assert.ErrorIs(t, f.Validate(), ErrMissingField)
	})

	t.Run("Format is not validated here", func(t *testing.T) {
		f := validFields()
		f.Email = "not-an-email"
		f.PostalCode = "xyz"
		assert.NoError(t, f.Validate())
	})
}
