package dto

import "github.com/google/uuid"

type CreateBookingRequest struct {
	Player1Name  string `json:"player1_name"`
	Player1Level string `json:"player1_level"`
	Player1Team  string `json:"player1_team"`
	Player2Name  string `json:"player2_name"`
	Player2Level string `json:"player2_level"`
	Player2Team  string `json:"player2_team"`
}

// ManualBookingRequest creates a booking on behalf of a registered profile;
// player 1 attributes are copied from that profile.
type ManualBookingRequest struct {
	UserID       uuid.UUID `json:"user_id"`
	Player2Name  string    `json:"player2_name"`
	Player2Level string    `json:"player2_level"`
	Player2Team  string    `json:"player2_team"`
}

type EligibilityResponse struct {
	Allowed          bool   `json:"allowed"`
	Reason           string `json:"reason,omitempty"`
	Message          string `json:"message,omitempty"`
	RemainingSeconds int    `json:"remaining_seconds"`
}
