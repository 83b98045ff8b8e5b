package storage

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/models"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/utils"
)

func OpenDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("failed migrate: ", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Attendance{},
		&models.Report{},
		&models.InviteToken{},
	)
}

// Seed creates a first admin and a demo checkpoint on an empty database so
// a fresh deployment is usable. Controlled by SEED_ON_START=true; no-op if
// any user already exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(envOr("SEED_ADMIN_PASSWORD", "admin123"))
	if err != nil {
		return err
	}

	tenYears := time.Now().AddDate(10, 0, 0)
	admin := models.User{
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: hash,
		ExpiryDate:   &tenYears,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	loc := models.Location{Name: "Main Entrance", Description: "Front gate checkpoint"}
	if err := db.Create(&loc).Error; err != nil {
		return err
	}

	log.Printf("seeded admin %s and location %q", admin.Email, loc.Name)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
