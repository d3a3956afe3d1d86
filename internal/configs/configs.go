package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultDatabasePath  = "kanban.db"
	defaultBusyTimeoutMS = 5000
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxFiles   = 5
)

type Config struct {
	DatabasePath          string
	DatabaseBusyTimeoutMS int
	Logging               LoggingConfig
}

type LoggingConfig struct {
	Level     string
	Format    string
	File      string
	MaxSizeMB int
	MaxFiles  int
}

func Load() (Config, error) {
	busyTimeout, err := getEnvAsInt("DATABASE_BUSY_TIMEOUT_MS", defaultBusyTimeoutMS)
	if err != nil {
		return Config{}, err
	}
	maxSize, err := getEnvAsInt("LOG_MAX_SIZE_MB", defaultLogMaxSizeMB)
	if err != nil {
		return Config{}, err
	}
	maxFiles, err := getEnvAsInt("LOG_MAX_FILES", defaultLogMaxFiles)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DatabasePath:          getEnv("DATABASE_PATH", DefaultDatabasePath),
		DatabaseBusyTimeoutMS: busyTimeout,
		Logging: LoggingConfig{
			Level:     strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
			Format:    strings.ToLower(getEnv("LOG_FORMAT", defaultLogFormat)),
			File:      getEnv("LOG_FILE", ""),
			MaxSizeMB: maxSize,
			MaxFiles:  maxFiles,
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate is exported so flag overrides applied after Load can be
// checked again.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DatabasePath) == "" {
		return fmt.Errorf("DATABASE_PATH must not be empty")
	}
	if cfg.DatabaseBusyTimeoutMS <= 0 {
		return fmt.Errorf("DATABASE_BUSY_TIMEOUT_MS must be greater than 0")
	}
	if _, err := log.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.MaxSizeMB <= 0 {
		return fmt.Errorf("LOG_MAX_SIZE_MB must be greater than 0")
	}
	if cfg.Logging.MaxFiles <= 0 {
		return fmt.Errorf("LOG_MAX_FILES must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}
