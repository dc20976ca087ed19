package wishlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLedger_Toggle(t *testing.T) {
	t.Run("Toggle adds then removes", func(t *testing.T) {
		l := NewLedger()

		assert.True(t, l.Toggle("prod-1"))
		assert.True(t, l.Contains("prod-1"))
		assert.Equal(t, 1, l.Len())

		assert.False(t, l.Toggle("prod-1"))
		assert.False(t, l.Contains("prod-1"))
		assert.Equal(t, 0, l.Len())
	})

	t.Run("Double toggle restores original state", func(t *testing.T) {
		l := NewLedger()
		l.Toggle("prod-1")
		l.Toggle("prod-2")

		before := l.Items()
		l.Toggle("prod-3")
		l.Toggle("prod-3")

		assert.Equal(t, before, l.Items())
	})

	t.Run("Items keep insertion order across removals", func(t *testing.T) {
		l := NewLedger()
		l.Toggle("a")
		l.Toggle("b")
		l.Toggle("c")

		l.Toggle("b")
		assert.Equal(t, []string{"a", "c"}, l.Items())

		l.Toggle("b")
		assert.Equal(t, []string{"a", "c", "b"}, l.Items())
	})

	t.Run("Unknown product toggles in, never errors", func(t *testing.T) {
		l := NewLedger()
		assert.True(t, l.Toggle("never-seen"))
	})
}

func TestLedgers_ForUser(t *testing.T) {
	s := NewLedgers()

	s.ForUser(1).Toggle("prod-1")

	assert.True(t, s.ForUser(1).Contains("prod-1"))
	assert.False(t, s.ForUser(2).Contains("prod-1"))
	assert.Same(t, s.ForUser(1), s.ForUser(1))
}

func TestInbox(t *testing.T) {
	t.Run("Push and unread count", func(t *testing.T) {
		in := NewInbox()
		in.Push(Notification{ID: "n1", Title: "Order Shipped", Icon: "truck", Color: "blue"})
		in.Push(Notification{ID: "n2", Title: "Flash Sale", Icon: "tag", Color: "red"})

		assert.Equal(t, 2, in.UnreadCount())
		assert.Len(t, in.All(), 2)
	})

	t.Run("MarkAllRead clears the badge", func(t *testing.T) {
		in := NewInbox()
		in.Push(Notification{ID: "n1", Title: "Order Shipped"})
		in.Push(Notification{ID: "n2", Title: "Flash Sale", IsRead: true})

		in.MarkAllRead()
		assert.Equal(t, 0, in.UnreadCount())
		for _, n := range in.All() {
			assert.True(t, n.IsRead)
		}
	})

	t.Run("MarkAllRead on empty inbox is a no-op", func(t *testing.T) {
		in := NewInbox()
		in.MarkAllRead()
		assert.Equal(t, 0, in.UnreadCount())
		assert.Empty(t, in.All())
	})

	t.Run("Push stamps missing timestamps", func(t *testing.T) {
		in := NewInbox()
		in.Push(Notification{ID: "n1"})

		notes := in.All()
		assert.False(t, notes[0].Timestamp.IsZero())
		assert.WithinDuration(t, time.Now(), notes[0].Timestamp, time.Second)
	})

	t.Run("All returns copies", func(t *testing.T) {
		in := NewInbox()
		in.Push(Notification{ID: "n1"})

		notes := in.All()
		notes[0].IsRead = true
		assert.Equal(t, 1, in.UnreadCount())
	})
}
