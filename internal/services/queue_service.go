package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yayazuqui-hub/court-priority-play/internal/models"
	"github.com/yayazuqui-hub/court-priority-play/internal/realtime"
	"gorm.io/gorm"
)

var (
	ErrAlreadyInQueue = errors.New("already in the priority queue")
	ErrNotInQueue     = errors.New("not in the priority queue")
)

// Every queue write serializes on one transaction-scoped advisory lock.
// Positions are computed from a count, which under read committed lets two
// concurrent joins read the same tail; the lock makes join, leave
// compaction, and clear mutually exclusive. The xact variant releases with
// the transaction, so an aborted write never leaves the lock held.
const (
	queueLockSQL       = "SELECT pg_advisory_xact_lock(?)"
	queueLockID  int64 = 0x70716c6f636b // "pqlock"
)

func lockQueue(tx *gorm.DB) error {
	return tx.Exec(queueLockSQL, queueLockID).Error
}

type QueueService struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewQueueService(db *gorm.DB, hub *realtime.Hub) *QueueService {
	return &QueueService{db: db, hub: hub}
}

// List returns the queue ordered by position with each member's profile.
func (s *QueueService) List() ([]models.QueueEntry, error) {
	var entries []models.QueueEntry
	if err := s.db.Preload("Profile").Order("position").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Join appends the user at the tail of the queue. One entry per user.
func (s *QueueService) Join(userID uuid.UUID) (*models.QueueEntry, error) {
	var entry models.QueueEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockQueue(tx); err != nil {
			return err
		}

		var existing models.QueueEntry
		if err := tx.Where("user_id = ?", userID).First(&existing).Error; err == nil {
			return ErrAlreadyInQueue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var count int64
		if err := tx.Model(&models.QueueEntry{}).Count(&count).Error; err != nil {
			return err
		}

		entry = models.QueueEntry{
			ID:       uuid.New(),
			UserID:   userID,
			Position: int(count) + 1,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to join queue: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.hub.Notify(realtime.TableQueue)
	return &entry, nil
}

// Leave removes the user's entry and compacts positions behind it so the
// queue stays dense and 1-based.
func (s *QueueService) Leave(userID uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockQueue(tx); err != nil {
			return err
		}

		var entry models.QueueEntry
		if err := tx.Where("user_id = ?", userID).First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotInQueue
			}
			return err
		}

		if err := tx.Delete(&entry).Error; err != nil {
			return err
		}

		return tx.Model(&models.QueueEntry{}).
			Where("position > ?", entry.Position).
			Update("position", gorm.Expr("position - 1")).Error
	})
	if err != nil {
		return err
	}

	s.hub.Notify(realtime.TableQueue)
	return nil
}

// MemberIDs returns the user IDs currently in the queue, for eligibility
// checks.
func (s *QueueService) MemberIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := s.db.Model(&models.QueueEntry{}).Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Clear empties the queue (admin).
func (s *QueueService) Clear() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockQueue(tx); err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.QueueEntry{}).Error
	})
	if err != nil {
		return err
	}
	s.hub.Notify(realtime.TableQueue)
	return nil
}
