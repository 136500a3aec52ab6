package db

import (
	"log"
	"os"
	"parley/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the database from DATABASE_URL and runs migrations. The handle
// is returned to the caller and passed down explicitly; there is no
// package-level connection.
func Init() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=parley port=5432 sslmode=disable"
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	return gdb
}

// Migrate creates the users, discussions and comments tables.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Discussion{},
		&models.Comment{},
	)
}
