package db

import (
	"testing"

	"github.com/sreeja24H51A66DH/lendahand1/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB creates a fresh in-memory SQLite database with the schema applied.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// A second connection to an in-memory database would see a separate,
	// empty database, so pin the pool to one connection.
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("getting sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&model.User{}, &model.Item{}, &model.Conversation{}, &model.Message{}); err != nil {
		t.Fatalf("migrating test database schema: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })

	return gdb
}
