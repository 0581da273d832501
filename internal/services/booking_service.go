package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yayazuqui-hub/court-priority-play/internal/court"
	"github.com/yayazuqui-hub/court-priority-play/internal/dto"
	"github.com/yayazuqui-hub/court-priority-play/internal/models"
	"github.com/yayazuqui-hub/court-priority-play/internal/realtime"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrNotBookingOwner   = errors.New("you can only delete your own bookings")
	ErrBookingNotAllowed = errors.New("booking not allowed right now")
)

// NotAllowedError carries the denial reason for the handler to surface.
type NotAllowedError struct {
	Reason court.Reason
}

func (e *NotAllowedError) Error() string {
	return "booking not allowed: " + string(e.Reason)
}

func (e *NotAllowedError) Is(target error) bool {
	return target == ErrBookingNotAllowed
}

type BookingService struct {
	db    *gorm.DB
	hub   *realtime.Hub
	state *StateService
	queue *QueueService
}

func NewBookingService(db *gorm.DB, hub *realtime.Hub, state *StateService, queue *QueueService) *BookingService {
	return &BookingService{db: db, hub: hub, state: state, queue: queue}
}

// List returns active bookings newest first, with owner profiles.
func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Preload("Profile").Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Eligibility evaluates whether userID may book right now against a fresh
// snapshot. Time-dependent: the UI polls this while a priority timer runs.
func (s *BookingService) Eligibility(userID uuid.UUID) (court.Eligibility, error) {
	window, err := s.state.Window()
	if err != nil {
		return court.Eligibility{}, err
	}

	queue, err := s.queue.MemberIDs()
	if err != nil {
		return court.Eligibility{}, err
	}

	var owners []uuid.UUID
	if err := s.db.Model(&models.Booking{}).Pluck("user_id", &owners).Error; err != nil {
		return court.Eligibility{}, err
	}

	return court.CanBook(window, queue, userID, owners, time.Now()), nil
}

// Create inserts a booking for userID after an eligibility check. The
// one-active-booking rule is guaranteed by the partial unique index on
// bookings(user_id): two racing requests can both pass the eligibility
// evaluation, but the second insert fails with a unique violation that
// maps to the already-booked denial. The in-transaction count is only a
// fast path for the common sequential case.
func (s *BookingService) Create(userID uuid.UUID, req *dto.CreateBookingRequest) (*models.Booking, error) {
	if req.Player1Name == "" {
		return nil, errors.New("player1_name is required")
	}

	elig, err := s.Eligibility(userID)
	if err != nil {
		return nil, err
	}
	if !elig.Allowed {
		return nil, &NotAllowedError{Reason: elig.Reason}
	}

	booking := models.Booking{
		ID:           uuid.New(),
		UserID:       userID,
		Player1Name:  req.Player1Name,
		Player1Level: string(court.NormalizeLevel(req.Player1Level)),
		Player1Team:  string(court.NormalizeGender(req.Player1Team)),
	}
	setPlayer2(&booking, req.Player2Name, req.Player2Level, req.Player2Team)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Booking{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &NotAllowedError{Reason: court.ReasonAlreadyBooked}
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, bookingConflict(err)
	}

	s.hub.Notify(realtime.TableBookings)
	return &booking, nil
}

// ManualCreate makes a booking on behalf of a registered profile (admin
// only). Player 1 attributes come from that profile; eligibility rules are
// bypassed except the one-active-booking invariant.
func (s *BookingService) ManualCreate(req *dto.ManualBookingRequest) (*models.Booking, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", req.UserID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	booking := models.Booking{
		ID:           uuid.New(),
		UserID:       profile.UserID,
		Player1Name:  profile.Name,
		Player1Level: string(court.NormalizeLevel(profile.Level)),
		Player1Team:  string(court.NormalizeGender(profile.Gender)),
	}
	setPlayer2(&booking, req.Player2Name, req.Player2Level, req.Player2Team)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Booking{}).Where("user_id = ?", profile.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &NotAllowedError{Reason: court.ReasonAlreadyBooked}
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, bookingConflict(err)
	}

	s.hub.Notify(realtime.TableBookings)
	return &booking, nil
}

// Delete removes a booking. Owners delete their own; admins delete any.
func (s *BookingService) Delete(bookingID uuid.UUID, requesterID uuid.UUID, isAdmin bool) error {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if !isAdmin && booking.UserID != requesterID {
		return ErrNotBookingOwner
	}

	if err := s.db.Delete(&booking).Error; err != nil {
		return err
	}

	s.hub.Notify(realtime.TableBookings)
	return nil
}

// bookingConflict translates a unique violation on the active-booking
// index into the already-booked denial, so a lost race reads the same as
// any other denied attempt.
func bookingConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &NotAllowedError{Reason: court.ReasonAlreadyBooked}
	}
	return err
}

func setPlayer2(booking *models.Booking, name, level, team string) {
	if name == "" {
		return
	}
	l := string(court.NormalizeLevel(level))
	t := string(court.NormalizeGender(team))
	booking.Player2Name = &name
	booking.Player2Level = &l
	booking.Player2Team = &t
}
