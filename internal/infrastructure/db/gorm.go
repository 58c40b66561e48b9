package db

import (
	"fmt"
	"log"
	"time"

	"pawnledger/internal/config"
	"pawnledger/internal/domain/loan"
	"pawnledger/internal/domain/settings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open picks the dialector from config: a local SQLite file by default,
// MySQL for a shared deployment.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return OpenWithDialector(sqlite.Open(cfg.SQLitePath))
	case "mysql":
		return OpenWithDialector(mysql.Open(cfg.MySQLDSN()))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func OpenWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates the loans and settings tables if absent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&loan.Loan{}, &settings.Setting{})
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
