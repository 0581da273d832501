package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yayazuqui-hub/court-priority-play/internal/config"
	"github.com/yayazuqui-hub/court-priority-play/internal/court"
	"github.com/yayazuqui-hub/court-priority-play/internal/dto"
	"github.com/yayazuqui-hub/court-priority-play/internal/models"
	"github.com/yayazuqui-hub/court-priority-play/internal/realtime"
	"gorm.io/gorm"
)

type StateService struct {
	db  *gorm.DB
	cfg *config.Config
	hub *realtime.Hub
}

func NewStateService(db *gorm.DB, cfg *config.Config, hub *realtime.Hub) *StateService {
	return &StateService{db: db, cfg: cfg, hub: hub}
}

// Get returns the singleton state row, creating the default one on first
// read.
func (s *StateService) Get() (*models.SystemState, error) {
	var state models.SystemState
	err := s.db.Attrs(models.SystemState{
		ID:                    uuid.New(),
		PriorityTimerDuration: s.cfg.DefaultTimerDuration,
	}).FirstOrCreate(&state, models.SystemState{}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load system state: %w", err)
	}
	return &state, nil
}

// Window converts the stored row into the pure eligibility snapshot.
func (s *StateService) Window() (*court.Window, error) {
	state, err := s.Get()
	if err != nil {
		return nil, err
	}
	return &court.Window{
		IsPriorityMode: state.IsPriorityMode,
		IsOpenForAll:   state.IsOpenForAll,
		TimerStartedAt: state.PriorityTimerStartedAt,
		TimerDuration:  state.PriorityTimerDuration,
	}, nil
}

func (s *StateService) SetMode(req *dto.SetModeRequest) (*models.SystemState, error) {
	state, err := s.Get()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.IsPriorityMode != nil {
		updates["is_priority_mode"] = *req.IsPriorityMode
	}
	if req.IsOpenForAll != nil {
		updates["is_open_for_all"] = *req.IsOpenForAll
	}
	if len(updates) == 0 {
		return state, nil
	}

	if err := s.db.Model(state).Updates(updates).Error; err != nil {
		return nil, err
	}
	if req.IsPriorityMode != nil {
		state.IsPriorityMode = *req.IsPriorityMode
	}
	if req.IsOpenForAll != nil {
		state.IsOpenForAll = *req.IsOpenForAll
	}
	s.hub.Notify(realtime.TableSystemState)
	return state, nil
}

// StartTimer opens the priority window. A zero duration keeps the stored
// one.
func (s *StateService) StartTimer(durationSeconds int) (*models.SystemState, error) {
	state, err := s.Get()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"priority_timer_started_at": now,
	}
	if durationSeconds > 0 {
		updates["priority_timer_duration"] = durationSeconds
	}

	if err := s.db.Model(state).Updates(updates).Error; err != nil {
		return nil, err
	}
	state.PriorityTimerStartedAt = &now
	if durationSeconds > 0 {
		state.PriorityTimerDuration = durationSeconds
	}
	s.hub.Notify(realtime.TableSystemState)
	return state, nil
}

// ResetTimer clears the window; priority members can no longer book until
// the next start.
func (s *StateService) ResetTimer() (*models.SystemState, error) {
	state, err := s.Get()
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(state).Update("priority_timer_started_at", nil).Error; err != nil {
		return nil, err
	}
	state.PriorityTimerStartedAt = nil
	s.hub.Notify(realtime.TableSystemState)
	return state, nil
}
