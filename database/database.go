package database

import (
	"fmt"
	"log"

	"api/config"
	"api/models"
	"api/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DefaultOrganizerPassword = "organizer"

// Connect opens the database connection, migrates the models and seeds
// default values if needed. The handle is returned to the caller so the
// rest of the application receives it by injection.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=Europe/Rome",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := Populate(db); err != nil {
		return nil, fmt.Errorf("failed to populate database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Hackathon{},
		&models.Team{},
		&models.Problem{},
		&models.Document{},
		&models.Update{},
		&models.Comment{},
		&models.Evaluation{},
	)
}

// Populate seeds the database with a default organizer account when the
// users table is empty, so a fresh deployment can be administered.
func Populate(db *gorm.DB) error {
	var countUser int64
	if err := db.Model(&models.User{}).Count(&countUser).Error; err != nil {
		return err
	}
	if countUser > 0 {
		return nil
	}

	password := DefaultOrganizerPassword
	if config.DefaultPassword != "" {
		password = config.DefaultPassword
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	organizer := models.User{
		Email:     "organizer@hackarena.io",
		Firstname: "Default",
		Lastname:  "Organizer",
		Password:  hashed,
		Role:      models.RoleOrganizer,
	}
	if err := db.Create(&organizer).Error; err != nil {
		return err
	}
	log.Println("Default organizer account created")
	return nil
}
