package profile

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"shoplite-be/internal/logger"
)

// OrderCounter reports how many orders a user has placed, total and still
// pending.
type OrderCounter interface {
	CountForUser(ctx context.Context, userID uint) (total int64, pending int64, err error)
}

// WishlistCounter reports the size of a user's wishlist.
type WishlistCounter interface {
	Len() int
}

// Refresher polls the order log and wishlist for one user and overwrites
// that user's stats gauges on every tick. Calling Start while a loop is
// already running replaces it rather than stacking a second one.
type Refresher struct {
	userID   uint
	interval time.Duration
	orders   OrderCounter
	wishlist WishlistCounter
	stats    *Stats

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewRefresher(userID uint, interval time.Duration, orders OrderCounter, wishlist WishlistCounter, stats *Stats) *Refresher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Refresher{
		userID:   userID,
		interval: interval,
		orders:   orders,
		wishlist: wishlist,
		stats:    stats,
	}
}

// Start refreshes once immediately, then keeps refreshing on the interval
// until Stop is called. Any previous loop is torn down first.
func (r *Refresher) Start(ctx context.Context) {
	r.Stop()

	r.mu.Lock()
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	stop, done := r.stop, r.done
	r.mu.Unlock()

	go func() {
		defer close(done)

		r.refresh(ctx)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.refresh(ctx)
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the loop and waits for it to exit. Safe to call twice or
// before Start.
func (r *Refresher) Stop() {
	r.mu.Lock()
	stop, done := r.stop, r.done
	r.stop, r.done = nil, nil
	r.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (r *Refresher) refresh(ctx context.Context) {
	total, pending, err := r.orders.CountForUser(ctx, r.userID)
	if err != nil {
		// Keep the last good values on a failed tick.
		logger.FromCtx(ctx).Warn("profile refresh failed",
			zap.Uint("userID", r.userID),
			zap.Error(err))
		return
	}

	r.stats.TotalOrders.Store(total)
	r.stats.PendingOrders.Store(pending)
	r.stats.WishlistItems.Store(int64(r.wishlist.Len()))
}

// Tracker owns one Stats and Refresher pair per user.
type Tracker struct {
	interval time.Duration
	orders   OrderCounter

	mu      sync.Mutex
	entries map[uint]*entry
}

type entry struct {
	stats     *Stats
	refresher *Refresher
}

func NewTracker(interval time.Duration, orders OrderCounter) *Tracker {
	return &Tracker{
		interval: interval,
		orders:   orders,
		entries:  make(map[uint]*entry),
	}
}

// Track ensures a refresh loop is running for the user and returns their
// stats. The first call for a user starts the loop.
func (t *Tracker) Track(ctx context.Context, userID uint, wishlist WishlistCounter) *Stats {
	t.mu.Lock()
	e, ok := t.entries[userID]
	if !ok {
		stats := &Stats{}
		e = &entry{
			stats:     stats,
			refresher: NewRefresher(userID, t.interval, t.orders, wishlist, stats),
		}
		t.entries[userID] = e
		e.refresher.Start(ctx)
	}
	t.mu.Unlock()
	return e.stats
}

// Stop tears down every running refresher.
func (t *Tracker) Stop() {
	t.mu.Lock()
	entries := make([]*entry, 0, len(t.entries))
	for _, e := range t.entries {
		entries = append(entries, e)
	}
	t.mu.Unlock()

	for _, e := range entries {
		e.refresher.Stop()
	}
}
