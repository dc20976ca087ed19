package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "455.00", FormatMoney(45500))
	assert.Equal(t, "0.05", FormatMoney(5))
	assert.Equal(t, "0.00", FormatMoney(0))
	assert.Equal(t, "-12.34", FormatMoney(-1234))
}

func TestNewOrderID(t *testing.T) {
	a := NewOrderID()
	b := NewOrderID()

	assert.True(t, strings.HasPrefix(a, "ORD-"))
	assert.NotEqual(t, a, b)
}

func TestStrPtr(t *testing.T) {
	p := StrPtr("x")
	assert.Equal(t, "x", *p)
	assert.Equal(t, "x", PtrString(p))
	assert.Equal(t, "", PtrString(nil))
}
