package court

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCanBook(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	user := uuid.New()
	other := uuid.New()

	startedAgo := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name    string
		state   *Window
		queue   []uuid.UUID
		userID  uuid.UUID
		owners  []uuid.UUID
		allowed bool
		reason  Reason
	}{
		{
			name:    "nil state",
			state:   nil,
			userID:  user,
			allowed: false,
			reason:  ReasonNoSession,
		},
		{
			name:    "nil user",
			state:   &Window{IsOpenForAll: true},
			userID:  uuid.Nil,
			allowed: false,
			reason:  ReasonNoSession,
		},
		{
			name:    "already booked wins over open for all",
			state:   &Window{IsOpenForAll: true},
			userID:  user,
			owners:  []uuid.UUID{other, user},
			allowed: false,
			reason:  ReasonAlreadyBooked,
		},
		{
			name:    "open for all",
			state:   &Window{IsOpenForAll: true},
			userID:  user,
			owners:  []uuid.UUID{other},
			allowed: true,
		},
		{
			name:    "priority mode, not in queue",
			state:   &Window{IsPriorityMode: true, TimerStartedAt: startedAgo(10 * time.Second), TimerDuration: 60},
			queue:   []uuid.UUID{other},
			userID:  user,
			allowed: false,
			reason:  ReasonNotInQueue,
		},
		{
			name:    "priority mode, timer never started",
			state:   &Window{IsPriorityMode: true, TimerDuration: 60},
			queue:   []uuid.UUID{user},
			userID:  user,
			allowed: false,
			reason:  ReasonWindowClosed,
		},
		{
			name:    "priority mode, window open",
			state:   &Window{IsPriorityMode: true, TimerStartedAt: startedAgo(30 * time.Second), TimerDuration: 60},
			queue:   []uuid.UUID{other, user},
			userID:  user,
			allowed: true,
		},
		{
			name:    "priority mode, exactly at the boundary",
			state:   &Window{IsPriorityMode: true, TimerStartedAt: startedAgo(60 * time.Second), TimerDuration: 60},
			queue:   []uuid.UUID{user},
			userID:  user,
			allowed: false,
			reason:  ReasonWindowClosed,
		},
		{
			name:    "priority mode, window expired",
			state:   &Window{IsPriorityMode: true, TimerStartedAt: startedAgo(90 * time.Second), TimerDuration: 60},
			queue:   []uuid.UUID{user},
			userID:  user,
			allowed: false,
			reason:  ReasonWindowClosed,
		},
		{
			name:    "neither mode active",
			state:   &Window{},
			userID:  user,
			allowed: false,
			reason:  ReasonSystemPaused,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanBook(tt.state, tt.queue, tt.userID, tt.owners, now)
			if got.Allowed != tt.allowed {
				t.Errorf("CanBook() allowed = %v, want %v", got.Allowed, tt.allowed)
			}
			if !tt.allowed && got.Reason != tt.reason {
				t.Errorf("CanBook() reason = %q, want %q", got.Reason, tt.reason)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	start := now.Add(-30 * time.Second)

	tests := []struct {
		name  string
		state *Window
		want  time.Duration
	}{
		{name: "nil state", state: nil, want: 0},
		{name: "no timer", state: &Window{TimerDuration: 60}, want: 0},
		{name: "mid window", state: &Window{TimerStartedAt: &start, TimerDuration: 60}, want: 30 * time.Second},
		{name: "expired", state: &Window{TimerStartedAt: &start, TimerDuration: 10}, want: 0},
		{name: "exactly elapsed", state: &Window{TimerStartedAt: &start, TimerDuration: 30}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remaining(tt.state, now); got != tt.want {
				t.Errorf("Remaining() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemainingTruncatesToWholeSeconds(t *testing.T) {
	start := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	state := &Window{TimerStartedAt: &start, TimerDuration: 60}

	// 59.5s elapsed floors to 59s, leaving one second on the clock.
	now := start.Add(59*time.Second + 500*time.Millisecond)
	if got := Remaining(state, now); got != 1*time.Second {
		t.Errorf("Remaining() = %v, want 1s", got)
	}
}

func TestReasonMessages(t *testing.T) {
	for _, r := range []Reason{ReasonNoSession, ReasonAlreadyBooked, ReasonSystemPaused, ReasonNotInQueue, ReasonWindowClosed} {
		if r.Message() == "" {
			t.Errorf("Reason(%q).Message() is empty", r)
		}
	}
	if ReasonOK.Message() != "" {
		t.Errorf("ReasonOK should have no message, got %q", ReasonOK.Message())
	}
}
