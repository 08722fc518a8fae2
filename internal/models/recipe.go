package models

import "time"

// Recipe is a meal with optional preparation notes and an external link.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	MealName    string    `gorm:"size:200;not null" json:"meal_name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	WebLink     string    `gorm:"size:500" json:"web_link,omitempty"`

	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// RecipeIngredient joins a recipe to an ingredient with a free-text
// quantity ("2 pieces", "500g"). A recipe lists each ingredient at most
// once.
type RecipeIngredient struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RecipeID     uint   `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint   `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Quantity     string `gorm:"size:100;not null" json:"quantity"`

	Ingredient Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
