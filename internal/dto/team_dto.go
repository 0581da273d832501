package dto

import "github.com/yayazuqui-hub/court-priority-play/internal/court"

type GeneratedTeamsResponse struct {
	Teams        []court.Team `json:"teams"`
	TotalPlayers int          `json:"total_players"`
	Export       string       `json:"export"`
}
