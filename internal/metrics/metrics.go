package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Gauge holds a value that is overwritten on every refresh rather than
// accumulated.
type Gauge struct {
	value int64
}

func (g *Gauge) Store(n int64) {
	atomic.StoreInt64(&g.value, n)
}

func (g *Gauge) Load() int64 {
	return atomic.LoadInt64(&g.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
