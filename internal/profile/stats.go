package profile

import "shoplite-be/internal/metrics"

// Stats carries the three numbers the account page shows. The gauges are
// overwritten wholesale on every refresh tick.
type Stats struct {
	TotalOrders   metrics.Gauge
	PendingOrders metrics.Gauge
	WishlistItems metrics.Gauge
}

// Snapshot is the read-side view handed to transport.
type Snapshot struct {
	TotalOrders   int64 `json:"total_orders"`
	PendingOrders int64 `json:"pending_orders"`
	WishlistItems int64 `json:"wishlist_items"`
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		TotalOrders:   s.TotalOrders.Load(),
		PendingOrders: s.PendingOrders.Load(),
		WishlistItems: s.WishlistItems.Load(),
	}
}
