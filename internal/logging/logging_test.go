package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

// recorder is a minimal slog.Handler that captures records at or above its
// level and can be made to fail.
type recorder struct {
	level   slog.Level
	records []slog.Record
	err     error
}

func (r *recorder) Enabled(_ context.Context, level slog.Level) bool {
	return level >= r.level
}

func (r *recorder) Handle(_ context.Context, record slog.Record) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, record)
	return nil
}

func (r *recorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recorder) WithGroup(string) slog.Handler      { return r }

func record(level slog.Level, msg string) slog.Record {
	return slog.NewRecord(time.Now(), level, msg, 0)
}

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	stdout := &recorder{level: slog.LevelInfo}
	db := &recorder{level: slog.LevelError}
	m := NewMultiHandler(stdout, db)

	if err := m.Handle(context.Background(), record(slog.LevelInfo, "startup")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if err := m.Handle(context.Background(), record(slog.LevelError, "boom")); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(stdout.records) != 2 {
		t.Errorf("stdout got %d records, want 2", len(stdout.records))
	}
	if len(db.records) != 1 || db.records[0].Message != "boom" {
		t.Errorf("error-level sink got %d records, want only the error", len(db.records))
	}
}

func TestMultiHandlerKeepsGoingOnSinkError(t *testing.T) {
	sinkErr := errors.New("insert failed")
	broken := &recorder{level: slog.LevelInfo, err: sinkErr}
	healthy := &recorder{level: slog.LevelInfo}
	m := NewMultiHandler(broken, healthy)

	err := m.Handle(context.Background(), record(slog.LevelError, "boom"))
	if !errors.Is(err, sinkErr) {
		t.Errorf("Handle error = %v, want to carry %v", err, sinkErr)
	}
	if len(healthy.records) != 1 {
		t.Error("record must still reach the healthy sink when another fails")
	}
}

func TestMultiHandlerEnabled(t *testing.T) {
	m := NewMultiHandler(&recorder{level: slog.LevelWarn})
	if m.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled when every sink wants warn+")
	}
	if !m.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled")
	}
}

func TestRetentionCutoff(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	if got := retentionCutoff(now, 7); !got.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("cutoff = %v, want 7 days back", got)
	}
	want := now.AddDate(0, 0, -fallbackRetentionDays)
	if got := retentionCutoff(now, 0); !got.Equal(want) {
		t.Errorf("non-positive retention should fall back to %d days, got %v", fallbackRetentionDays, got)
	}
}
