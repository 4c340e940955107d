package notify

import (
	"sync"
	"time"
)

// DefaultCapacity bounds a [Toasts] queue created with a non-positive capacity.
const DefaultCapacity = 16

// Toasts is a bounded FIFO of notifications that expire after ttl.
// When full, the oldest notification is dropped to make room.
type Toasts struct {
	mu       sync.Mutex
	items    []Notification
	ttl      time.Duration
	capacity int
}

func NewToasts(ttl time.Duration, capacity int) *Toasts {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Toasts{
		items:    make([]Notification, 0, capacity),
		ttl:      ttl,
		capacity: capacity,
	}
}

// Notify implements [Notifier]. A zero CreatedAt is replaced with the
// current time.
func (t *Toasts) Notify(n Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.items) == t.capacity {
		t.items = append(t.items[:0], t.items[1:]...)
	}
	t.items = append(t.items, n)
}

// Active returns the notifications not yet expired at now, oldest first.
func (t *Toasts) Active(now time.Time) []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	active := make([]Notification, 0, len(t.items))
	for _, n := range t.items {
		if !t.expired(n, now) {
			active = append(active, n)
		}
	}

	return active
}

// Prune drops expired notifications and reports how many were removed.
func (t *Toasts) Prune(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.items[:0]
	for _, n := range t.items {
		if !t.expired(n, now) {
			kept = append(kept, n)
		}
	}
	removed := len(t.items) - len(kept)
	t.items = kept

	return removed
}

// Drain removes and returns every queued notification regardless of age.
func (t *Toasts) Drain() []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	drained := make([]Notification, len(t.items))
	copy(drained, t.items)
	t.items = t.items[:0]

	return drained
}

// Len returns the number of queued notifications, expired ones included.
func (t *Toasts) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

func (t *Toasts) expired(n Notification, now time.Time) bool {
	return t.ttl > 0 && !now.Before(n.CreatedAt.Add(t.ttl))
}
