package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/pantryplan/backend/internal/models"
)

// RecipeService handles recipe operations, including the ingredient
// associations that carry a per-recipe quantity.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipeInput is the payload for creating a recipe.
type CreateRecipeInput struct {
	MealName    string `json:"meal_name" binding:"required"`
	Description string `json:"description"`
	WebLink     string `json:"web_link"`
}

// UpdateRecipeInput is the payload for a partial recipe update.
type UpdateRecipeInput struct {
	MealName    *string `json:"meal_name"`
	Description *string `json:"description"`
	WebLink     *string `json:"web_link"`
}

// RecipeIngredientDetail is one ingredient row in a recipe detail view.
type RecipeIngredientDetail struct {
	IngredientID   uint   `json:"ingredient_id"`
	IngredientName string `json:"ingredient_name"`
	Quantity       string `json:"quantity"`
	UnitType       string `json:"unit_type"`
}

// RecipeDetail is a recipe with its ingredient list embedded.
type RecipeDetail struct {
	ID          uint                     `json:"id"`
	MealName    string                   `json:"meal_name"`
	Description string                   `json:"description,omitempty"`
	WebLink     string                   `json:"web_link,omitempty"`
	Ingredients []RecipeIngredientDetail `json:"ingredients"`
}

// ListRecipes returns all recipes.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, translateGormErr(err, "recipe", id)
	}
	return &recipe, nil
}

// GetRecipeDetail retrieves a recipe with its ingredient rows resolved to
// ingredient names and unit types.
func (s *RecipeService) GetRecipeDetail(ctx context.Context, id uint) (*RecipeDetail, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	var rows []models.RecipeIngredient
	if err := s.db.WithContext(ctx).Preload("Ingredient").
		Where("recipe_id = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}

	detail := &RecipeDetail{
		ID:          recipe.ID,
		MealName:    recipe.MealName,
		Description: recipe.Description,
		WebLink:     recipe.WebLink,
		Ingredients: make([]RecipeIngredientDetail, 0, len(rows)),
	}
	for _, row := range rows {
		detail.Ingredients = append(detail.Ingredients, RecipeIngredientDetail{
			IngredientID:   row.IngredientID,
			IngredientName: row.Ingredient.Name,
			Quantity:       row.Quantity,
			UnitType:       row.Ingredient.UnitType,
		})
	}
	return detail, nil
}

// SearchRecipes returns recipes whose meal name contains the given
// substring, case-insensitively. An empty query returns everything.
func (s *RecipeService) SearchRecipes(ctx context.Context, mealName string) ([]models.Recipe, error) {
	mealName = strings.TrimSpace(mealName)
	if mealName == "" {
		return s.ListRecipes(ctx)
	}

	var recipes []models.Recipe
	like := "%" + strings.ToLower(mealName) + "%"
	if err := s.db.WithContext(ctx).Where("LOWER(meal_name) LIKE ?", like).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateRecipe creates a new recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, input CreateRecipeInput) (*models.Recipe, error) {
	mealName := strings.TrimSpace(input.MealName)
	if mealName == "" {
		return nil, validationErr("meal_name", "meal name cannot be empty")
	}

	recipe := models.Recipe{
		MealName:    mealName,
		Description: input.Description,
		WebLink:     input.WebLink,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe applies a partial update to a recipe.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, input UpdateRecipeInput) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MealName != nil {
		mealName := strings.TrimSpace(*input.MealName)
		if mealName == "" {
			return nil, validationErr("meal_name", "meal name cannot be empty")
		}
		recipe.MealName = mealName
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.WebLink != nil {
		recipe.WebLink = *input.WebLink
	}

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe deletes a recipe and its ingredient associations.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if _, err := s.GetRecipe(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

// AddIngredient attaches an ingredient to a recipe with a free-text
// quantity. Both the recipe and the ingredient must exist.
func (s *RecipeService) AddIngredient(ctx context.Context, recipeID, ingredientID uint, quantity string) (*models.RecipeIngredient, error) {
	if _, err := s.GetRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	if _, err := NewIngredientService(s.db).GetIngredient(ctx, ingredientID); err != nil {
		return nil, err
	}

	quantity = strings.TrimSpace(quantity)
	if quantity == "" {
		return nil, validationErr("quantity", "quantity cannot be empty")
	}

	row := models.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     quantity,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// RemoveAllIngredients clears a recipe's ingredient list.
func (s *RecipeService) RemoveAllIngredients(ctx context.Context, recipeID uint) error {
	if _, err := s.GetRecipe(ctx, recipeID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).
		Delete(&models.RecipeIngredient{}).Error
}
