package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/pantryplan/backend/internal/models"
)

// MealScheduleService handles the weekly meal plan.
type MealScheduleService struct {
	db *gorm.DB
}

// NewMealScheduleService creates a new MealScheduleService instance
func NewMealScheduleService(db *gorm.DB) *MealScheduleService {
	return &MealScheduleService{db: db}
}

// ScheduleMealInput is the payload for scheduling a meal.
type ScheduleMealInput struct {
	MealName      string     `json:"meal_name" binding:"required"`
	DayOfWeek     string     `json:"day_of_week" binding:"required"`
	MealType      string     `json:"meal_type" binding:"required"`
	RecipeID      *uint      `json:"recipe_id"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Notes         string     `json:"notes"`
}

// UpdateScheduleInput is the payload for a partial schedule update.
type UpdateScheduleInput struct {
	MealName      *string    `json:"meal_name"`
	DayOfWeek     *string    `json:"day_of_week"`
	MealType      *string    `json:"meal_type"`
	RecipeID      *uint      `json:"recipe_id"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Notes         *string    `json:"notes"`
}

// WeeklySchedule returns every schedule entry ordered by day and meal type.
func (s *MealScheduleService) WeeklySchedule(ctx context.Context) ([]models.MealSchedule, error) {
	var schedules []models.MealSchedule
	if err := s.db.WithContext(ctx).Order("day_of_week, meal_type").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// SchedulesByDay returns all entries for one day of the week.
func (s *MealScheduleService) SchedulesByDay(ctx context.Context, day string) ([]models.MealSchedule, error) {
	if !models.IsValidDay(day) {
		return nil, validationErr("day", "invalid day, must be one of: %s", strings.Join(models.ValidDays, ", "))
	}

	var schedules []models.MealSchedule
	if err := s.db.WithContext(ctx).Where("day_of_week = ?", strings.ToUpper(day)).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// SchedulesByMealType returns all entries of one meal type.
func (s *MealScheduleService) SchedulesByMealType(ctx context.Context, mealType string) ([]models.MealSchedule, error) {
	if !models.IsValidMealType(mealType) {
		return nil, validationErr("type", "invalid meal type, must be one of: %s", strings.Join(models.ValidMealTypes, ", "))
	}

	var schedules []models.MealSchedule
	if err := s.db.WithContext(ctx).Where("meal_type = ?", strings.ToUpper(mealType)).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// GetSchedule retrieves a schedule entry by ID.
func (s *MealScheduleService) GetSchedule(ctx context.Context, id uint) (*models.MealSchedule, error) {
	var schedule models.MealSchedule
	if err := s.db.WithContext(ctx).First(&schedule, id).Error; err != nil {
		return nil, translateGormErr(err, "meal schedule", id)
	}
	return &schedule, nil
}

// ScheduleMeal creates a schedule entry. The (day, meal type) slot must be
// free; an optional recipe reference must point at an existing recipe.
func (s *MealScheduleService) ScheduleMeal(ctx context.Context, input ScheduleMealInput) (*models.MealSchedule, error) {
	mealName := strings.TrimSpace(input.MealName)
	if mealName == "" {
		return nil, validationErr("meal_name", "meal name cannot be empty")
	}
	if !models.IsValidDay(input.DayOfWeek) {
		return nil, validationErr("day_of_week", "invalid day, must be one of: %s", strings.Join(models.ValidDays, ", "))
	}
	if !models.IsValidMealType(input.MealType) {
		return nil, validationErr("meal_type", "invalid meal type, must be one of: %s", strings.Join(models.ValidMealTypes, ", "))
	}

	if input.RecipeID != nil {
		if _, err := NewRecipeService(s.db).GetRecipe(ctx, *input.RecipeID); err != nil {
			return nil, validationErr("recipe_id", "recipe with id %d not found", *input.RecipeID)
		}
	}

	day := strings.ToUpper(input.DayOfWeek)
	mealType := strings.ToUpper(input.MealType)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.MealSchedule{}).
		Where("day_of_week = ? AND meal_type = ?", day, mealType).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, validationErr("day_of_week",
			"a meal is already scheduled for %s %s, update or delete it first", day, mealType)
	}

	schedule := models.MealSchedule{
		MealName:      mealName,
		DayOfWeek:     day,
		MealType:      mealType,
		RecipeID:      input.RecipeID,
		ScheduledDate: input.ScheduledDate,
		Notes:         input.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

// UpdateSchedule applies a partial update to a schedule entry.
func (s *MealScheduleService) UpdateSchedule(ctx context.Context, id uint, input UpdateScheduleInput) (*models.MealSchedule, error) {
	schedule, err := s.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MealName != nil {
		mealName := strings.TrimSpace(*input.MealName)
		if mealName == "" {
			return nil, validationErr("meal_name", "meal name cannot be empty")
		}
		schedule.MealName = mealName
	}
	if input.DayOfWeek != nil {
		if !models.IsValidDay(*input.DayOfWeek) {
			return nil, validationErr("day_of_week", "invalid day, must be one of: %s", strings.Join(models.ValidDays, ", "))
		}
		schedule.DayOfWeek = strings.ToUpper(*input.DayOfWeek)
	}
	if input.MealType != nil {
		if !models.IsValidMealType(*input.MealType) {
			return nil, validationErr("meal_type", "invalid meal type, must be one of: %s", strings.Join(models.ValidMealTypes, ", "))
		}
		schedule.MealType = strings.ToUpper(*input.MealType)
	}
	if input.RecipeID != nil {
		if _, err := NewRecipeService(s.db).GetRecipe(ctx, *input.RecipeID); err != nil {
			return nil, validationErr("recipe_id", "recipe with id %d not found", *input.RecipeID)
		}
		schedule.RecipeID = input.RecipeID
	}
	if input.ScheduledDate != nil {
		schedule.ScheduledDate = input.ScheduledDate
	}
	if input.Notes != nil {
		schedule.Notes = *input.Notes
	}

	if err := s.db.WithContext(ctx).Save(schedule).Error; err != nil {
		return nil, err
	}
	return schedule, nil
}

// DeleteSchedule deletes a schedule entry by ID.
func (s *MealScheduleService) DeleteSchedule(ctx context.Context, id uint) error {
	if _, err := s.GetSchedule(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.MealSchedule{}, id).Error
}

// ClearDay removes every schedule entry for one day of the week.
func (s *MealScheduleService) ClearDay(ctx context.Context, day string) error {
	if !models.IsValidDay(day) {
		return validationErr("day", "invalid day, must be one of: %s", strings.Join(models.ValidDays, ", "))
	}
	return s.db.WithContext(ctx).Where("day_of_week = ?", strings.ToUpper(day)).
		Delete(&models.MealSchedule{}).Error
}
