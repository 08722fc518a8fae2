package models

import (
	"strings"
	"time"
)

// Days of the week accepted by the schedule, stored uppercase.
const (
	Monday    = "MONDAY"
	Tuesday   = "TUESDAY"
	Wednesday = "WEDNESDAY"
	Thursday  = "THURSDAY"
	Friday    = "FRIDAY"
	Saturday  = "SATURDAY"
	Sunday    = "SUNDAY"
)

// Meal types accepted by the schedule.
const (
	Breakfast = "BREAKFAST"
	Lunch     = "LUNCH"
	Dinner    = "DINNER"
)

// ValidDays lists the accepted day_of_week values in calendar order.
var ValidDays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ValidMealTypes lists the accepted meal_type values.
var ValidMealTypes = []string{Breakfast, Lunch, Dinner}

// IsValidDay reports whether day (case-insensitive) is a day of the week.
func IsValidDay(day string) bool {
	day = strings.ToUpper(day)
	for _, d := range ValidDays {
		if d == day {
			return true
		}
	}
	return false
}

// IsValidMealType reports whether mealType (case-insensitive) is a known
// meal type.
func IsValidMealType(mealType string) bool {
	mealType = strings.ToUpper(mealType)
	for _, t := range ValidMealTypes {
		if t == mealType {
			return true
		}
	}
	return false
}

// MealSchedule is one slot in the weekly plan. The recipe reference is
// optional; a slot can name a meal without linking a recipe.
type MealSchedule struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	MealName      string     `gorm:"size:200;not null" json:"meal_name"`
	DayOfWeek     string     `gorm:"size:10;not null" json:"day_of_week"`
	MealType      string     `gorm:"size:10;not null" json:"meal_type"`
	RecipeID      *uint      `json:"recipe_id,omitempty"`
	ScheduledDate *time.Time `gorm:"type:date" json:"scheduled_date,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`

	Recipe *Recipe `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
