package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Contact modes: which field identifies a user at sign-up/login.
const (
	ContactEmail = "email"
	ContactPhone = "phone"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Admin
	AdminContacts string
	AdminUserIDs  string
	AdminToken    string

	// Server
	Port        string
	CORSOrigins string

	// Logging
	LogLevel         slog.Level
	LogRetentionDays int

	// Court policy
	ContactMode          string
	PlayersPerTeam       int
	MinBookingsForTeams  int
	DefaultTimerDuration int // seconds
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "court_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		AdminContacts: getEnv("ADMIN_CONTACTS", ""),
		AdminUserIDs:  getEnv("ADMIN_USER_IDS", ""),
		AdminToken:    getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		LogLevel:         parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),

		ContactMode:          parseContactMode(getEnv("CONTACT_MODE", ContactEmail)),
		PlayersPerTeam:       parseInt(getEnv("PLAYERS_PER_TEAM", "6"), 6),
		MinBookingsForTeams:  parseInt(getEnv("MIN_BOOKINGS_FOR_TEAMS", "12"), 12),
		DefaultTimerDuration: parseInt(getEnv("PRIORITY_TIMER_SECONDS", "600"), 600),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseContactMode(s string) string {
	if s == ContactPhone {
		return ContactPhone
	}
	return ContactEmail
}
