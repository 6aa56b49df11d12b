package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken           string
	LogLevel           string
	PollTimeoutSeconds int
	DatabaseURL        string
	ModerationEnabled  bool
	AdminIDs           []int64
	DownloadFiles      bool
	DownloadPath       string
	SessionTTLMinutes  int
}

func Load() (Config, error) {
	// Optional .env files, real env vars still win.
	for _, name := range []string{".env", "config/.env"} {
		_ = godotenv.Load(name)
	}

	pollTimeout, err := getInt("POLL_TIMEOUT_SECONDS", 30)
	if err != nil {
		return Config{}, err
	}

	moderationEnabled, err := getBool("MODERATION_ENABLED", false)
	if err != nil {
		return Config{}, err
	}

	downloadFiles, err := getBool("DOWNLOAD_FILES", false)
	if err != nil {
		return Config{}, err
	}

	sessionTTL, err := getInt("SESSION_TTL_MINUTES", 30)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BotToken:           strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		LogLevel:           getString("LOG_LEVEL", "info"),
		PollTimeoutSeconds: pollTimeout,
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ModerationEnabled:  moderationEnabled,
		AdminIDs:           parseAdminIDs(os.Getenv("ADMIN_IDS")),
		DownloadFiles:      downloadFiles,
		DownloadPath:       getString("DOWNLOAD_PATH", "./downloads"),
		SessionTTLMinutes:  sessionTTL,
	}

	if cfg.PollTimeoutSeconds <= 0 {
		cfg.PollTimeoutSeconds = 30
	}
	if cfg.SessionTTLMinutes <= 0 {
		cfg.SessionTTLMinutes = 30
	}

	return cfg, nil
}

func (c Config) IsAdmin(tgID int64) bool {
	for _, id := range c.AdminIDs {
		if id == tgID {
			return true
		}
	}
	return false
}

// parseAdminIDs accepts a comma-separated list of telegram ids.
// Non-numeric entries are skipped instead of failing the whole config.
func parseAdminIDs(raw string) []int64 {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func getString(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}
