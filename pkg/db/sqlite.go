package db

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wizard-2006/CrimeLogix/internal/models"
)

// Init opens the SQLite database at dbPath, configures the connection pool
// and migrates the schema. The returned handle is passed explicitly to every
// repository and service; there is no package-level database singleton.
func Init(dbPath string) (*gorm.DB, error) {
	// Ensure the directory holding the database file exists.
	dbDir := filepath.Dir(dbPath)
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(dbDir, 0755); mkErr != nil {
			return nil, mkErr
		}
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	gormDB, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(gormDB); err != nil {
		return nil, err
	}

	log.Printf("Connected to database: %s", dbPath)
	return gormDB, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.Officer{},
		&models.Case{},
		&models.Victim{},
		&models.Suspect{},
		&models.Witness{},
		&models.Evidence{},
		&models.CaseRecord{},
	)
}

// Close closes the underlying sql.DB. Called on shutdown.
func Close(gormDB *gorm.DB) {
	if gormDB == nil {
		return
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB for closing: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
