package database

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the SQLite store, creating the file if it does not exist.
// The whole run shares the returned connection; the pipeline is a sequential
// batch job, so no concurrent writers are assumed.
func Connect(cfg Config) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=%d", cfg.Path, timeout*1000)

	// Suppress GORM logging; per-record outcomes are reported by the main
	// logger instead.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// Recreate deletes any existing database file and opens a fresh one. Each
// full import run starts from an empty store.
func Recreate(cfg Config) (*gorm.DB, error) {
	if err := os.Remove(cfg.Path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove existing database: %w", err)
	}
	return Connect(cfg)
}
