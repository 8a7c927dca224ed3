package sqlite

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/osse101/craftboard/internal/logger"
)

// Open opens (or creates) the SQLite database at path and migrates its schema.
// An empty path opens an in-memory database.
func Open(ctx context.Context, path string) (*gorm.DB, error) {
	if path == "" {
		path = MemoryPath
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDB, err)
	}
	// :memory: databases are private to one connection
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgOpened, "path", path)
	return db, nil
}

// AutoMigrate creates or updates the tables used by the repositories
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SaveModel{}, &EventModel{}); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return nil
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetDB, err)
	}
	return sqlDB.Close()
}
