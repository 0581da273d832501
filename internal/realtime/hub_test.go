package realtime

import (
	"testing"
)

func TestHubNotify(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	hub.Notify(TableBookings)

	select {
	case ev := <-sub.C():
		if ev.Table != TableBookings {
			t.Errorf("event table = %q, want %q", ev.Table, TableBookings)
		}
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHubFanout(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()
	defer hub.Unsubscribe(a)
	defer hub.Unsubscribe(b)

	if hub.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", hub.Count())
	}

	hub.Notify(TableQueue)

	for _, sub := range []*Subscriber{a, b} {
		select {
		case ev := <-sub.C():
			if ev.Table != TableQueue {
				t.Errorf("event table = %q, want %q", ev.Table, TableQueue)
			}
		default:
			t.Error("subscriber missed the event")
		}
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	hub.Unsubscribe(sub)

	if _, ok := <-sub.C(); ok {
		t.Error("channel should be closed after Unsubscribe")
	}
	if hub.Count() != 0 {
		t.Errorf("Count() = %d, want 0", hub.Count())
	}

	// Second Unsubscribe is a no-op, not a double close.
	hub.Unsubscribe(sub)
}

func TestHubSlowConsumerDropsEvents(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	// Overflow the buffer; Notify must never block.
	for i := 0; i < 100; i++ {
		hub.Notify(TableSystemState)
	}

	received := 0
	for {
		select {
		case <-sub.C():
			received++
			continue
		default:
		}
		break
	}

	if received == 0 || received > 100 {
		t.Errorf("received %d events, want between 1 and buffer size", received)
	}
}
