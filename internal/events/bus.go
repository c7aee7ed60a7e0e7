package events

import (
	"sync"
	"time"
)

// Logical tables a subscriber can watch. These match the store schema,
// not Go package names.
const (
	TableUsers      = "users"
	TableTasks      = "tasks"
	TableReviews    = "reviews"
	TableAttendance = "attendance"
	TableMessages   = "messages"
)

type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change describes one durable row mutation. Services publish it after the
// write has committed, never before.
type Change struct {
	Table      string    `json:"table"`
	Op         Op        `json:"op"`
	RowID      uint      `json:"row_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type subscriber struct {
	tables map[string]struct{}
	ch     chan Change
}

// Bus is the in-process publish mechanism behind observable queries:
// a subscription delivers a Change every time a write touches one of the
// watched tables, until the caller unsubscribes. Slow consumers drop
// intermediate changes rather than block writers (latest-wins snapshots
// are recomputed by the consumer anyway).
type Bus struct {
	mu   sync.RWMutex
	subs map[int]*subscriber
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]*subscriber)}
}

// Subscribe watches the given tables. The returned cancel func is
// idempotent and closes the channel.
func (b *Bus) Subscribe(tables ...string) (<-chan Change, func()) {
	watched := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		watched[t] = struct{}{}
	}

	sub := &subscriber{
		tables: watched,
		ch:     make(chan Change, 16),
	}

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = sub
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

func (b *Bus) Publish(change Change) {
	if change.OccurredAt.IsZero() {
		change.OccurredAt = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if _, ok := sub.tables[change.Table]; !ok {
			continue
		}
		select {
		case sub.ch <- change:
		default:
			// Subscriber is behind; it will recompute from the next change.
		}
	}
}

// SubscriberCount reports live subscriptions, used by tests and the
// shutdown audit log.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
