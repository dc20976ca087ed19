package cart

import (
	"context"
	"errors"
	"sync"

	"shoplite-be/internal/product"
)

// Catalog is the read port into the product store. The engine checks it
// only when a line is first added; afterwards the line lives on its
// denormalized snapshot.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (*product.Product, error)
}

// Engine holds one user's cart. Lines keep insertion order and there is
// never more than one line per product ID.
type Engine struct {
	mu      sync.Mutex
	catalog Catalog
	lines   []*Line
	index   map[string]int
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{
		catalog: catalog,
		index:   make(map[string]int),
	}
}

// AddItem puts a product into the cart. An existing line gets its quantity
// bumped by one; a new line starts at quantity one with a snapshot of the
// product's current name, price and image.
func (e *Engine) AddItem(ctx context.Context, params AddItemParams) (*Line, error) {
	p, err := e.catalog.GetProduct(ctx, params.ProductID)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if !p.Available {
		return nil, ErrProductUnavailable
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if i, ok := e.index[params.ProductID]; ok {
		e.lines[i].Quantity++
		copied := *e.lines[i]
		return &copied, nil
	}

	line := &Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageURL:  p.ImageURL,
		Color:     params.Color,
		Size:      params.Size,
		Quantity:  1,
	}
	e.index[params.ProductID] = len(e.lines)
	e.lines = append(e.lines, line)

	copied := *line
	return &copied, nil
}

// RemoveItem drops the whole line regardless of quantity. Removing an
// absent line is a no-op.
func (e *Engine) RemoveItem(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(productID)
}

// AdjustQuantity adds delta (positive or negative) to a line's quantity. A
// result of zero or less removes the line. Absent lines are a no-op.
func (e *Engine) AdjustQuantity(productID string, delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, ok := e.index[productID]
	if !ok {
		return
	}

	e.lines[i].Quantity += delta
	if e.lines[i].Quantity <= 0 {
		e.removeLocked(productID)
	}
}

// Clear empties the cart unconditionally.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lines = nil
	e.index = make(map[string]int)
}

// Lines returns a copy of the cart in insertion order.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Line, 0, len(e.lines))
	for _, l := range e.lines {
		out = append(out, *l)
	}
	return out
}

// Snapshot is the checkout view of the cart; same copy semantics as Lines.
func (e *Engine) Snapshot() []Line {
	return e.Lines()
}

func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines)
}

// Subtotal sums unit price × quantity over all lines. Empty cart is 0.
func (e *Engine) Subtotal() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var sum int64
	for _, l := range e.lines {
		sum += l.LineTotal()
	}
	return sum
}

// Total is Subtotal plus the fixed fee for the delivery option.
func (e *Engine) Total(option DeliveryOption) (int64, error) {
	fee, err := FeeFor(option)
	if err != nil {
		return 0, err
	}
	return e.Subtotal() + fee, nil
}

func (e *Engine) removeLocked(productID string) {
	i, ok := e.index[productID]
	if !ok {
		return
	}

	e.lines = append(e.lines[:i], e.lines[i+1:]...)
	delete(e.index, productID)
	for pid, pos := range e.index {
		if pos > i {
			e.index[pid] = pos - 1
		}
	}
}
