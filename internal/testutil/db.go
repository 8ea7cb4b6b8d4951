// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"photoshoot_backend/database"
	"photoshoot_backend/internal/config"

	"gorm.io/gorm"
)

// OpenTestDB opens a migrated SQLite database in a temp directory owned by t.
func OpenTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "file:" + filepath.Join(t.TempDir(), "photoshoot.db") + "?_foreign_keys=on"
	cfg.Database.LogLevel = "silent"
	cfg.Database.MaxOpenConns = 1

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
