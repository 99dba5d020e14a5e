package config

import (
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database pool from the DB_URL environment variable.
// The handle is returned to the caller, which wires it into the controllers;
// there is no package-level connection.
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DB_URL")

	// References are by id only; bookings keep snapshotted data and must
	// survive catalog deletes, so no foreign key constraints are created.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Close drains the underlying pool at shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
