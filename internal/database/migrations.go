package database

import (
	"gorm.io/gorm"

	"github.com/oakfieldhq/oakfield/internal/models"
)

// AutoMigrate creates or updates the database schema for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Property{},
		&models.CacheEntry{},
	)
}

// SeedData inserts a handful of sample listings so a fresh install serves a
// non-empty collection. Seeding is skipped once any property exists.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	listings := []models.Property{
		{
			Title:       "Modern Downtown Apartment",
			Description: "Two-bedroom apartment with floor-to-ceiling windows and city views.",
			Price:       325000.00,
			Location:    "Austin, TX",
		},
		{
			Title:       "Suburban Family Home",
			Description: "Four-bedroom house with a fenced garden and double garage.",
			Price:       489900.00,
			Location:    "Raleigh, NC",
		},
		{
			Title:       "Lakeside Cottage",
			Description: "Renovated cottage with private dock and wood-burning stove.",
			Price:       215500.00,
			Location:    "Coeur d'Alene, ID",
		},
	}

	return db.Create(&listings).Error
}
