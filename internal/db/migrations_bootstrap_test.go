package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLiteEnablesForeignKeys(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "huddle-pragma.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	defer sqlDB.Close()

	var enabled int64
	if err := database.Raw(`PRAGMA foreign_keys`).Scan(&enabled).Error; err != nil {
		t.Fatalf("read foreign_keys pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("foreign_keys pragma must be on, got %d", enabled)
	}
}

func TestOpenSQLiteAppliesMigrationsIdempotently(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "huddle-migrations.db")

	for attempt := 0; attempt < 2; attempt++ {
		database, err := OpenSQLite(databasePath)
		if err != nil {
			t.Fatalf("open attempt %d: %v", attempt, err)
		}

		for _, table := range []string{"users", "buckets", "task_definitions", "daily_logs", "assignments", "task_progress"} {
			var count int64
			if err := database.Raw(
				`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
			).Scan(&count).Error; err != nil {
				t.Fatalf("inspect table %s: %v", table, err)
			}
			if count != 1 {
				t.Fatalf("expected table %s after migrations", table)
			}
		}

		var applied int64
		if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
			t.Fatalf("count applied migrations: %v", err)
		}
		if applied == 0 {
			t.Fatalf("expected applied migrations recorded")
		}

		sqlDB, err := database.DB()
		if err != nil {
			t.Fatalf("unwrap sql db: %v", err)
		}
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	}
}
