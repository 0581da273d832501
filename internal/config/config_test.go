package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ContactMode != ContactEmail {
		t.Errorf("ContactMode = %q, want %q", cfg.ContactMode, ContactEmail)
	}
	if cfg.PlayersPerTeam != 6 {
		t.Errorf("PlayersPerTeam = %d, want 6", cfg.PlayersPerTeam)
	}
	if cfg.MinBookingsForTeams != 12 {
		t.Errorf("MinBookingsForTeams = %d, want 12", cfg.MinBookingsForTeams)
	}
	if cfg.DefaultTimerDuration != 600 {
		t.Errorf("DefaultTimerDuration = %d, want 600", cfg.DefaultTimerDuration)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogRetentionDays != 30 {
		t.Errorf("LogRetentionDays = %d, want 30", cfg.LogRetentionDays)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestContactModeFromEnv(t *testing.T) {
	t.Setenv("CONTACT_MODE", "phone")
	if cfg := Load(); cfg.ContactMode != ContactPhone {
		t.Errorf("ContactMode = %q, want %q", cfg.ContactMode, ContactPhone)
	}

	t.Setenv("CONTACT_MODE", "carrier-pigeon")
	if cfg := Load(); cfg.ContactMode != ContactEmail {
		t.Errorf("unknown mode should fall back to email, got %q", cfg.ContactMode)
	}
}

func TestParseHelpers(t *testing.T) {
	if got := parseDuration("30s"); got != 30*time.Second {
		t.Errorf("parseDuration(30s) = %v", got)
	}
	if got := parseDuration("junk"); got != 15*time.Minute {
		t.Errorf("parseDuration fallback = %v, want 15m", got)
	}
	if got := parseInt("7", 6); got != 7 {
		t.Errorf("parseInt(7) = %d", got)
	}
	if got := parseInt("-2", 6); got != 6 {
		t.Errorf("parseInt should reject non-positive values, got %d", got)
	}
	if got := parseInt("junk", 6); got != 6 {
		t.Errorf("parseInt fallback = %d, want 6", got)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5433", DBUser: "court",
		DBPassword: "secret", DBName: "court_db", DBSSLMode: "require",
	}
	want := "host=db user=court password=secret dbname=court_db port=5433 sslmode=require TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
