package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yayazuqui-hub/court-priority-play/internal/dto"
	"github.com/yayazuqui-hub/court-priority-play/internal/middleware"
	"github.com/yayazuqui-hub/court-priority-play/internal/services"
)

type QueueHandler struct {
	queueService *services.QueueService
}

func NewQueueHandler(queueService *services.QueueService) *QueueHandler {
	return &QueueHandler{queueService: queueService}
}

func (h *QueueHandler) List(c *fiber.Ctx) error {
	entries, err := h.queueService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load priority queue",
		})
	}
	return c.JSON(entries)
}

func (h *QueueHandler) Join(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	entry, err := h.queueService.Join(userID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyInQueue) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to join the priority queue",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *QueueHandler) Leave(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.queueService.Leave(userID); err != nil {
		if errors.Is(err, services.ErrNotInQueue) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to leave the priority queue",
		})
	}

	return c.JSON(fiber.Map{"message": "Left the priority queue"})
}

// Clear empties the whole queue (admin).
func (h *QueueHandler) Clear(c *fiber.Ctx) error {
	if err := h.queueService.Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to clear the priority queue",
		})
	}
	return c.JSON(fiber.Map{"message": "Priority queue cleared"})
}
