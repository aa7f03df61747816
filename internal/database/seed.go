package database

import (
	"fmt"
	"log"

	"taskmanager/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	AdminEmail    = "hexlet@example.com"
	adminPassword = "qwerty"
)

var defaultStatusSlugs = []string{"draft", "to_review", "to_be_fixed", "to_publish", "published"}

var defaultLabelNames = []string{"feature", "bug"}

// Seed creates the admin user, the fixed task status set and the default
// labels. Safe to run repeatedly.
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedTaskStatuses(db); err != nil {
		return err
	}
	return seedLabels(db)
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", AdminEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Email:        AdminEmail,
		FirstName:    "Admin",
		LastName:     "Hexlet",
		PasswordHash: string(hashedPassword),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Admin user created with email: %s", AdminEmail)
	return nil
}

func seedTaskStatuses(db *gorm.DB) error {
	for _, slug := range defaultStatusSlugs {
		var count int64
		if err := db.Model(&models.TaskStatus{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check status %s: %w", slug, err)
		}
		if count > 0 {
			continue
		}

		status := models.TaskStatus{Name: slug, Slug: slug}
		if err := db.Create(&status).Error; err != nil {
			return fmt.Errorf("failed to create status %s: %w", slug, err)
		}
		log.Printf("Created status: %s", slug)
	}
	return nil
}

func seedLabels(db *gorm.DB) error {
	for _, name := range defaultLabelNames {
		var count int64
		if err := db.Model(&models.Label{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check label %s: %w", name, err)
		}
		if count > 0 {
			continue
		}

		label := models.Label{Name: name}
		if err := db.Create(&label).Error; err != nil {
			return fmt.Errorf("failed to create label %s: %w", name, err)
		}
		log.Printf("Created label: %s", name)
	}
	return nil
}
