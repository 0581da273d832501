package realtime

import (
	"sync"
)

// Tables that emit change notifications.
const (
	TableSystemState = "system_state"
	TableQueue       = "priority_queue"
	TableBookings    = "bookings"
	TableProfiles    = "profiles"
)

// Event is a wake-up signal: rows in Table changed. It carries no diff;
// subscribers re-fetch the snapshot and recompute.
type Event struct {
	Table string `json:"table"`
}

// Hub fans table-change events out to subscribers. Sends never block: a
// subscriber whose buffer is full misses the event, which is acceptable
// because events are only refresh hints.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
}

type Subscriber struct {
	ch chan Event
}

// C is the event stream. It is closed on Unsubscribe.
func (s *Subscriber) C() <-chan Event {
	return s.ch
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{ch: make(chan Event, 16)}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.ch)
	}
	h.mu.Unlock()
}

// Notify broadcasts that rows in table changed.
func (h *Hub) Notify(table string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		select {
		case sub.ch <- Event{Table: table}:
		default:
		}
	}
}

// Count reports the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
