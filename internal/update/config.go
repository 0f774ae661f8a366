package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type BadgeMode string

const (
	BadgeModeTotal BadgeMode = "total"
	BadgeModeDaily BadgeMode = "daily"
)

type RuntimeConfig struct {
	DBPath               string
	LogDir               string
	Debug                bool
	DesktopNotifications bool
	SchedulerBuffer      int
	ActionBuffer         int
	BadgeMode            BadgeMode
	SummaryTime          string
	SummaryEnabled       bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:               "questlog.db",
		LogDir:               ".",
		Debug:                false,
		DesktopNotifications: true,
		SchedulerBuffer:      64,
		ActionBuffer:         16,
		BadgeMode:            BadgeModeTotal,
		SummaryTime:          "08:00",
		SummaryEnabled:       false,
	}
}

// LoadDotenv pulls a .env file into the process environment if one exists.
// A missing file is not an error.
func LoadDotenv() {
	_ = godotenv.Load()
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("QUESTLOG_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("QUESTLOG_LOG_DIR")); v != "" {
		cfg.LogDir = v
	}
	if v, ok := getEnvBool("QUESTLOG_DEBUG"); ok {
		cfg.Debug = v
	}
	if v, ok := getEnvBool("QUESTLOG_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("QUESTLOG_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v, ok := getEnvInt("QUESTLOG_ACTION_BUFFER"); ok && v > 0 {
		cfg.ActionBuffer = v
	}
	switch BadgeMode(strings.ToLower(strings.TrimSpace(os.Getenv("QUESTLOG_BADGE_MODE")))) {
	case BadgeModeTotal:
		cfg.BadgeMode = BadgeModeTotal
	case BadgeModeDaily:
		cfg.BadgeMode = BadgeModeDaily
	}
	if v := strings.TrimSpace(os.Getenv("QUESTLOG_SUMMARY_TIME")); v != "" {
		cfg.SummaryTime = v
		cfg.SummaryEnabled = true
	}
	if v, ok := getEnvBool("QUESTLOG_SUMMARY_ENABLED"); ok {
		cfg.SummaryEnabled = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
