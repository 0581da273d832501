package models

import (
	"time"

	"github.com/google/uuid"
)

// QueueEntry is a user's slot in the priority queue. Positions are 1-based
// and kept dense: leaving the queue shifts everyone behind up one place.
type QueueEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	Profile   Profile   `gorm:"foreignKey:UserID;references:UserID" json:"profile"`
}
