package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "task-board.com/task-board/internal/errors"
)

const memoryPath = ":memory:"

const createTasksTable = `CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	document_id TEXT,
	priority TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	column_id TEXT NOT NULL,
	deadline TEXT
)`

// OpenConnection opens the task store at cfg.DatabasePath, creating the
// file and its directory when missing. The handle holds a single
// connection and must be released with CloseConnection.
func OpenConnection(ctx context.Context, cfg Config) (*gorm.DB, error) {
	path := cfg.DatabasePath
	if strings.TrimSpace(path) == "" {
		return nil, apperrors.ErrConnection.Wrap(fmt.Errorf("database path is required"))
	}

	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, apperrors.ErrConnection.Wrap(fmt.Errorf("create database directory: %w", err))
		}
	}

	dsn, err := dataSourceName(path, cfg.DatabaseBusyTimeoutMS)
	if err != nil {
		return nil, apperrors.ErrConnection.Wrap(err)
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		if db != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
		}
		return nil, apperrors.ErrConnection.Wrap(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperrors.ErrConnection.Wrap(err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Ping only opens the file; reading the header catches directories
	// and files that are not databases.
	var schemaVersion int64
	if err := db.WithContext(ctx).Raw("PRAGMA schema_version").Scan(&schemaVersion).Error; err != nil {
		_ = sqlDB.Close()
		return nil, apperrors.ErrConnection.Wrap(err)
	}

	log.WithField("path", path).Debug("task store opened")
	return db, nil
}

// EnsureSchema creates the tasks table if it does not exist. It is safe to
// call on every startup.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(createTasksTable).Error; err != nil {
		return apperrors.ErrSchema.Wrap(err)
	}
	return nil
}

func CloseConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return apperrors.ErrIO.Wrap(err)
	}
	if err := sqlDB.Close(); err != nil {
		return apperrors.ErrIO.Wrap(err)
	}
	return nil
}

// dataSourceName turns path into a file: URI so that characters such as
// '?' and '#' stay part of the file name instead of starting driver options.
func dataSourceName(path string, busyTimeoutMS int) (string, error) {
	query := fmt.Sprintf("_busy_timeout=%d", busyTimeoutMS)
	if path == memoryPath {
		return memoryPath + "?" + query, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve database path: %w", err)
	}

	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: query,
	}
	return u.String(), nil
}

func newGormLogger() logger.Interface {
	level := logger.Silent
	if log.IsLevelEnabled(log.DebugLevel) {
		level = logger.Info
	}

	return logger.New(log.StandardLogger(), logger.Config{
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
