package models

import (
	"time"

	"github.com/google/uuid"
)

// SystemState is a singleton row controlling who may book. Reads create the
// default row if it does not exist yet; all mutations target that row.
type SystemState struct {
	ID                     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	IsPriorityMode         bool       `gorm:"default:false" json:"is_priority_mode"`
	IsOpenForAll           bool       `gorm:"default:false" json:"is_open_for_all"`
	PriorityTimerStartedAt *time.Time `json:"priority_timer_started_at"`
	PriorityTimerDuration  int        `gorm:"default:600" json:"priority_timer_duration"`
	UpdatedAt              time.Time  `json:"updated_at"`
}
