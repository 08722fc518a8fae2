package database

import (
	"gorm.io/gorm"

	"github.com/pantryplan/backend/internal/logger"
	"github.com/pantryplan/backend/internal/models"
)

// RunMigrations brings the schema up to date for all entities.
func RunMigrations(db *gorm.DB) error {
	logger.Info("running migrations")
	return db.AutoMigrate(
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.MealSchedule{},
	)
}
