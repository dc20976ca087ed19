package cart

import "sync"

// Manager hands out one Engine per user. Carts are process-local and do not
// survive a restart.
type Manager struct {
	mu      sync.Mutex
	catalog Catalog
	engines map[uint]*Engine
}

func NewManager(catalog Catalog) *Manager {
	return &Manager{
		catalog: catalog,
		engines: make(map[uint]*Engine),
	}
}

// ForUser returns the user's engine, creating it on first use.
func (m *Manager) ForUser(userID uint) *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()

	eng, ok := m.engines[userID]
	if !ok {
		eng = NewEngine(m.catalog)
		m.engines[userID] = eng
	}
	return eng
}
