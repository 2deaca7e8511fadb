package database

import (
	"fmt"
	"log"
	"time"

	"databridge-api/internal/config"
	"databridge-api/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
)

// Connect opens Postgres, retrying while the database container comes up,
// then migrates the schema and seeds the bootstrap admin.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{TranslateError: true})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(retryBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxIdleTime(30 * time.Second)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	SeedAdmin(db, cfg)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Job{},
		&models.JobApplication{},
		&models.ContactQuery{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedAdmin creates the bootstrap admin from ADMIN_USERNAME/ADMIN_PASSWORD
// when both are set and no admin account exists yet.
func SeedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}

	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash bootstrap admin password: %v", err)
		return
	}

	admin := models.AdminUser{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Email:        cfg.AdminEmail,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to create bootstrap admin: %v", err)
		return
	}

	log.Printf("created bootstrap admin user: %s", admin.Username)
}
