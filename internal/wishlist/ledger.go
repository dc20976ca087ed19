package wishlist

import "sync"

// Ledger is a per-user membership set with stable iteration order. Toggle
// is the only mutation and is idempotent: two toggles restore the original
// state.
type Ledger struct {
	mu     sync.Mutex
	ids    []string
	member map[string]bool
}

func NewLedger() *Ledger {
	return &Ledger{member: make(map[string]bool)}
}

// Toggle flips membership for the product and reports whether it is a
// member afterwards. Never fails.
func (l *Ledger) Toggle(productID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.member[productID] {
		delete(l.member, productID)
		for i, id := range l.ids {
			if id == productID {
				l.ids = append(l.ids[:i], l.ids[i+1:]...)
				break
			}
		}
		return false
	}

	l.member[productID] = true
	l.ids = append(l.ids, productID)
	return true
}

func (l *Ledger) Contains(productID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.member[productID]
}

// Items returns the membership in insertion order.
func (l *Ledger) Items() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ids)
}

// Ledgers hands out one Ledger per user, like the cart manager does for
// engines.
type Ledgers struct {
	mu      sync.Mutex
	ledgers map[uint]*Ledger
}

func NewLedgers() *Ledgers {
	return &Ledgers{ledgers: make(map[uint]*Ledger)}
}

func (s *Ledgers) ForUser(userID uint) *Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.ledgers[userID]
	if !ok {
		l = NewLedger()
		s.ledgers[userID] = l
	}
	return l
}
