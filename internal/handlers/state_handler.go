package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yayazuqui-hub/court-priority-play/internal/court"
	"github.com/yayazuqui-hub/court-priority-play/internal/dto"
	"github.com/yayazuqui-hub/court-priority-play/internal/services"
)

type StateHandler struct {
	stateService *services.StateService
}

func NewStateHandler(stateService *services.StateService) *StateHandler {
	return &StateHandler{stateService: stateService}
}

func (h *StateHandler) Get(c *fiber.Ctx) error {
	state, err := h.stateService.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load system state",
		})
	}

	window := &court.Window{
		IsPriorityMode: state.IsPriorityMode,
		IsOpenForAll:   state.IsOpenForAll,
		TimerStartedAt: state.PriorityTimerStartedAt,
		TimerDuration:  state.PriorityTimerDuration,
	}

	return c.JSON(fiber.Map{
		"state":             state,
		"remaining_seconds": int(court.Remaining(window, time.Now()) / time.Second),
	})
}

func (h *StateHandler) SetMode(c *fiber.Ctx) error {
	var req dto.SetModeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	state, err := h.stateService.SetMode(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update system state",
		})
	}

	return c.JSON(state)
}

func (h *StateHandler) StartTimer(c *fiber.Ctx) error {
	var req dto.StartTimerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	state, err := h.stateService.StartTimer(req.DurationSeconds)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to start priority timer",
		})
	}

	return c.JSON(state)
}

func (h *StateHandler) ResetTimer(c *fiber.Ctx) error {
	state, err := h.stateService.ResetTimer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to reset priority timer",
		})
	}

	return c.JSON(state)
}
