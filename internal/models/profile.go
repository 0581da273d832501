package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the player-facing attributes of a registered user. Exactly
// one per user, created at sign-up, edited only by its owner.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     *string   `gorm:"size:255" json:"email,omitempty"`
	Phone     *string   `gorm:"size:32" json:"phone,omitempty"`
	Gender    string    `gorm:"size:20" json:"gender"`
	Level     string    `gorm:"size:20" json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
