package court

import (
	"time"

	"github.com/google/uuid"
)

// Window is the booking-permission snapshot of the system state. TimerDuration
// is in seconds, matching the stored column.
type Window struct {
	IsPriorityMode bool
	IsOpenForAll   bool
	TimerStartedAt *time.Time
	TimerDuration  int
}

// Reason explains why a booking attempt was denied.
type Reason string

const (
	ReasonOK            Reason = ""
	ReasonNoSession     Reason = "no_session"
	ReasonAlreadyBooked Reason = "already_booked"
	ReasonSystemPaused  Reason = "system_paused"
	ReasonNotInQueue    Reason = "not_in_queue"
	ReasonWindowClosed  Reason = "window_closed"
)

// Message returns the user-facing text for a denial.
func (r Reason) Message() string {
	switch r {
	case ReasonNoSession:
		return "Sessão inválida"
	case ReasonAlreadyBooked:
		return "Você já possui uma marcação ativa"
	case ReasonSystemPaused:
		return "Sistema pausado - aguarde liberação do administrador"
	case ReasonNotInQueue:
		return "Você não está na fila de prioridade"
	case ReasonWindowClosed:
		return "Tempo esgotado para usuários prioritários"
	}
	return ""
}

// Eligibility is the outcome of a CanBook evaluation.
type Eligibility struct {
	Allowed   bool          `json:"allowed"`
	Reason    Reason        `json:"reason,omitempty"`
	Remaining time.Duration `json:"-"`
}

// CanBook decides whether userID may create a booking right now. It is a pure
// function of its inputs; because the priority window is time-dependent,
// callers re-evaluate it on every tick rather than caching the result.
//
// Rule order, first match wins:
//  1. missing state or user -> denied
//  2. user already holds an active booking -> denied
//  3. open-for-all -> allowed
//  4. priority mode: must be in the queue, timer must be started and the
//     window (duration - elapsed) must still be open
//  5. neither mode -> denied (system paused)
func CanBook(state *Window, queue []uuid.UUID, userID uuid.UUID, bookingOwners []uuid.UUID, now time.Time) Eligibility {
	if state == nil || userID == uuid.Nil {
		return Eligibility{Reason: ReasonNoSession}
	}

	for _, owner := range bookingOwners {
		if owner == userID {
			return Eligibility{Reason: ReasonAlreadyBooked}
		}
	}

	if state.IsOpenForAll {
		return Eligibility{Allowed: true}
	}

	if state.IsPriorityMode {
		inQueue := false
		for _, member := range queue {
			if member == userID {
				inQueue = true
				break
			}
		}
		if !inQueue {
			return Eligibility{Reason: ReasonNotInQueue}
		}

		remaining := Remaining(state, now)
		if remaining <= 0 {
			return Eligibility{Reason: ReasonWindowClosed}
		}
		return Eligibility{Allowed: true, Remaining: remaining}
	}

	return Eligibility{Reason: ReasonSystemPaused}
}

// Remaining computes how much of the priority window is left. Zero when the
// timer was never started or has run out. Elapsed time is truncated to whole
// seconds, so the boundary t == duration is already closed.
func Remaining(state *Window, now time.Time) time.Duration {
	if state == nil || state.TimerStartedAt == nil {
		return 0
	}
	elapsed := now.Sub(*state.TimerStartedAt) / time.Second
	left := time.Duration(state.TimerDuration) - elapsed
	if left <= 0 {
		return 0
	}
	return left * time.Second
}
