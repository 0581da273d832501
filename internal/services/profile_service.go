package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/yayazuqui-hub/court-priority-play/internal/court"
	"github.com/yayazuqui-hub/court-priority-play/internal/dto"
	"github.com/yayazuqui-hub/court-priority-play/internal/models"
	"github.com/yayazuqui-hub/court-priority-play/internal/realtime"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewProfileService(db *gorm.DB, hub *realtime.Hub) *ProfileService {
	return &ProfileService{db: db, hub: hub}
}

func (s *ProfileService) Get(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) Update(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Email != "" {
		profile.Email = &req.Email
	}
	if req.Phone != "" {
		profile.Phone = &req.Phone
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.Level != "" {
		profile.Level = string(court.NormalizeLevel(req.Level))
	}

	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}
	s.hub.Notify(realtime.TableProfiles)
	return profile, nil
}

// List returns all profiles ordered by name, for the admin manual-booking
// picker.
func (s *ProfileService) List() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.Order("name").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
