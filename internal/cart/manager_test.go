package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplite-be/internal/product"
)

func TestManager_ForUser(t *testing.T) {
	cat := catalogWith(&product.Product{ID: "p1", Name: "Tee", Price: 10000, Available: true})
	m := NewManager(cat)

	first := m.ForUser(1)
	assert.Same(t, first, m.ForUser(1))
	assert.NotSame(t, first, m.ForUser(2))

	_, err := first.AddItem(context.Background(), AddItemParams{ProductID: "p1"})
	require.NoError(t, err)

	// carts are isolated per user
	assert.Equal(t, 1, m.ForUser(1).Len())
	assert.Equal(t, 0, m.ForUser(2).Len())
}
