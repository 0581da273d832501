package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/yayazuqui-hub/court-priority-play/internal/dto"
	"github.com/yayazuqui-hub/court-priority-play/internal/middleware"
	"github.com/yayazuqui-hub/court-priority-play/internal/services"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings, err := h.bookingService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load bookings",
		})
	}
	return c.JSON(bookings)
}

// Eligibility is polled by the booking form while a priority timer runs.
func (h *BookingHandler) Eligibility(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	elig, err := h.bookingService.Eligibility(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to evaluate eligibility",
		})
	}

	return c.JSON(dto.EligibilityResponse{
		Allowed:          elig.Allowed,
		Reason:           string(elig.Reason),
		Message:          elig.Reason.Message(),
		RemainingSeconds: int(elig.Remaining / time.Second),
	})
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	booking, err := h.bookingService.Create(userID, &req)
	if err != nil {
		var denied *services.NotAllowedError
		if errors.As(err, &denied) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: denied.Reason.Message(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// ManualCreate books on behalf of any registered profile (admin).
func (h *BookingHandler) ManualCreate(c *fiber.Ctx) error {
	var req dto.ManualBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.UserID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "user_id is required",
		})
	}

	booking, err := h.bookingService.ManualCreate(&req)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		}
		var denied *services.NotAllowedError
		if errors.As(err, &denied) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: denied.Reason.Message(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create booking",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// Delete removes a booking; mounted both on the user group (owner only) and
// the admin group (any booking).
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil && !middleware.IsAdmin(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid booking id",
		})
	}

	if err := h.bookingService.Delete(bookingID, userID, middleware.IsAdmin(c)); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Booking not found",
			})
		}
		if errors.Is(err, services.ErrNotBookingOwner) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete booking",
		})
	}

	return c.JSON(fiber.Map{"message": "Booking deleted"})
}
