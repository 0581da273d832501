package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yayazuqui-hub/court-priority-play/internal/dto"
	"github.com/yayazuqui-hub/court-priority-play/internal/services"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// Generate reshuffles the active bookings into balanced teams. The result is
// ephemeral; calling again produces a different grouping.
func (h *TeamHandler) Generate(c *fiber.Ctx) error {
	resp, err := h.teamService.Generate()
	if err != nil {
		if errors.Is(err, services.ErrNotEnoughBookings) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to generate teams",
		})
	}

	return c.JSON(resp)
}
