package wishlist

import (
	"sync"
	"time"
)

// Notification mirrors what the storefront shows in its inbox.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}

// Inbox holds a user's notifications, newest last.
type Inbox struct {
	mu    sync.Mutex
	notes []*Notification
}

func NewInbox() *Inbox {
	return &Inbox{}
}

func (in *Inbox) Push(n Notification) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	in.notes = append(in.notes, &n)
}

// MarkAllRead flags every entry as read. No-op on an empty inbox.
func (in *Inbox) MarkAllRead() {
	in.mu.Lock()
	defer in.mu.Unlock()

	for _, n := range in.notes {
		n.IsRead = true
	}
}

func (in *Inbox) UnreadCount() int {
	in.mu.Lock()
	defer in.mu.Unlock()

	count := 0
	for _, n := range in.notes {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// All returns a copy of the inbox contents.
func (in *Inbox) All() []Notification {
	in.mu.Lock()
	defer in.mu.Unlock()

	out := make([]Notification, 0, len(in.notes))
	for _, n := range in.notes {
		out = append(out, *n)
	}
	return out
}

// Inboxes hands out one Inbox per user.
type Inboxes struct {
	mu      sync.Mutex
	inboxes map[uint]*Inbox
}

func NewInboxes() *Inboxes {
	return &Inboxes{inboxes: make(map[uint]*Inbox)}
}

func (s *Inboxes) ForUser(userID uint) *Inbox {
	s.mu.Lock()
	defer s.mu.Unlock()

	in, ok := s.inboxes[userID]
	if !ok {
		in = NewInbox()
		s.inboxes[userID] = in
	}
	return in
}
