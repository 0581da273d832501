package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking reserves a playing spot for its owner (player 1) and optionally a
// partner (player 2). The partial unique index on user_id enforces at most
// one live booking per user at the storage level; soft-deleted rows are
// excluded so a user can book again after cancelling.
type Booking struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_active_user,where:deleted_at IS NULL" json:"user_id"`
	Player1Name  string         `gorm:"size:255;not null" json:"player1_name"`
	Player1Level string         `gorm:"size:20" json:"player1_level"`
	Player1Team  string         `gorm:"size:20" json:"player1_team"`
	Player2Name  *string        `gorm:"size:255" json:"player2_name"`
	Player2Level *string        `gorm:"size:20" json:"player2_level"`
	Player2Team  *string        `gorm:"size:20" json:"player2_team"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Profile      Profile        `gorm:"foreignKey:UserID;references:UserID" json:"profile"`
}
