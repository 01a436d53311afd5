package database

import (
	"log"
	"os"

	"kala-hive/internal/domain/artworks"
	"kala-hive/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for gen_random_uuid()
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// identity
		&users.User{},
		&users.Profile{},
		&users.VerificationToken{},

		// artworks
		&artworks.Artwork{},
		&artworks.ArtworkLike{},
		&artworks.ArtworkView{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}
}
