package logging

import (
	"log/slog"
	"time"

	"github.com/yayazuqui-hub/court-priority-play/internal/models"
	"gorm.io/gorm"
)

const fallbackRetentionDays = 30

// StartCleanup prunes old system_logs rows on a daily sweep. One sweep
// runs at startup so an instance that was down for a while does not carry
// stale rows for another day.
func StartCleanup(db *gorm.DB, retentionDays int, done chan struct{}) {
	go func() {
		sweepLogs(db, retentionDays)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweepLogs(db, retentionDays)
			case <-done:
				return
			}
		}
	}()
}

func sweepLogs(db *gorm.DB, retentionDays int) {
	cutoff := retentionCutoff(time.Now(), retentionDays)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed",
			"deleted", result.RowsAffected,
			"retention_days", retentionDays)
	}
}

func retentionCutoff(now time.Time, days int) time.Time {
	if days <= 0 {
		days = fallbackRetentionDays
	}
	return now.AddDate(0, 0, -days)
}
