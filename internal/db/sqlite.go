package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// The glebarez driver takes SQLite pragmas as _pragma=name(value) DSN
// parameters. foreign_keys must be switched on per connection; dangling
// references are rejected by the store only when this pragma is active.
const sqliteDSNOptions = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// OpenSQLite opens (creating if needed) the board database and brings the
// schema up to date.
func OpenSQLite(path string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?%s", path, sqliteDSNOptions)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: newStoreLogger()})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return database, nil
}

// newStoreLogger keeps routine query noise out of the log: warnings and slow
// queries only, and no record-not-found chatter since absence is a normal
// outcome for lookups here.
func newStoreLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
