package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// APP
	AppEnv string
	Port   string

	// Database
	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	JWTSecret string

	// Taiga
	TaigaBaseURL  string
	TaigaEmail    string
	TaigaPassword string

	// Admin login
	AdminUsername string
	AdminPassword string

	// Roster: the fixed set of Taiga user ids the dashboard tracks.
	// Everything assigned outside this list is ignored.
	AllowedUserIDs []int64

	// Tasks tracked as "pending" by id, bypassing the status/window
	// model. Kept as config so the list can change without a deploy.
	PendingTaskIDs []int64

	// Weekly completed-task goal shown on the tracker.
	WeeklyGoal int
}

func Load() (*Config, error) {
	cfg := &Config{
		// App
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8002"),

		// DB
		DBHost: getEnv("DB_HOST", "127.0.0.1"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: getEnv("DB_PASS", "postgres"),
		DBName: getEnv("DB_NAME", "taiga_tracker"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "secret123"),

		// Taiga
		TaigaBaseURL:  getEnv("TAIGA_BASE_URL", "https://tree.taiga.io"),
		TaigaEmail:    getEnv("TAIGA_EMAIL", ""),
		TaigaPassword: getEnv("TAIGA_PASSWORD", ""),

		// Admin login
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "tracker-2025"),

		// Team settings
		AllowedUserIDs: getEnvIDList("TAIGA_ALLOWED_USER_IDS",
			"185,193,186,188,194,187,189,182,180,181,178,179"),
		PendingTaskIDs: getEnvIDList("PENDING_TASK_IDS", ""),
		WeeklyGoal:     getEnvInt("WEEKLY_GOAL", 13),
	}

	return cfg, nil
}

// getEnv returns environment variable or default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns int from env or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvIDList parses a comma-separated list of int64 ids from env or
// the default. Blank entries and junk are dropped.
func getEnvIDList(key, defaultValue string) []int64 {
	raw := getEnv(key, defaultValue)
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
