package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/pantryplan/backend/internal/models"
)

// IngredientService handles ingredient operations
type IngredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// CreateIngredientInput is the payload for creating an ingredient.
type CreateIngredientInput struct {
	Name           string  `json:"name" binding:"required"`
	UnitsAvailable float64 `json:"units_available"`
	UnitType       string  `json:"unit_type"`
}

// UpdateIngredientInput is the payload for a partial ingredient update.
// Nil fields are left unchanged.
type UpdateIngredientInput struct {
	Name           *string  `json:"name"`
	UnitsAvailable *float64 `json:"units_available"`
	UnitType       *string  `json:"unit_type"`
}

// ListIngredients returns all ingredients.
func (s *IngredientService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// ListIngredientsInStock returns ingredients with units_available > 0.
func (s *IngredientService) ListIngredientsInStock(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Where("units_available > 0").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetIngredient retrieves an ingredient by ID.
func (s *IngredientService) GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		return nil, translateGormErr(err, "ingredient", id)
	}
	return &ingredient, nil
}

// SearchIngredients returns ingredients whose name contains the given
// substring, case-insensitively. An empty query returns everything.
func (s *IngredientService) SearchIngredients(ctx context.Context, name string) ([]models.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.ListIngredients(ctx)
	}

	var ingredients []models.Ingredient
	like := "%" + strings.ToLower(name) + "%"
	if err := s.db.WithContext(ctx).Where("LOWER(name) LIKE ?", like).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// CreateIngredient creates a new ingredient.
func (s *IngredientService) CreateIngredient(ctx context.Context, input CreateIngredientInput) (*models.Ingredient, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationErr("name", "ingredient name cannot be empty")
	}
	if input.UnitsAvailable < 0 {
		return nil, validationErr("units_available", "units available cannot be negative")
	}

	unitType := input.UnitType
	if unitType == "" {
		unitType = "pieces"
	}

	ingredient := models.Ingredient{
		Name:           name,
		UnitsAvailable: input.UnitsAvailable,
		UnitType:       unitType,
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// UpdateIngredient applies a partial update to an ingredient.
func (s *IngredientService) UpdateIngredient(ctx context.Context, id uint, input UpdateIngredientInput) (*models.Ingredient, error) {
	ingredient, err := s.GetIngredient(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, validationErr("name", "ingredient name cannot be empty")
		}
		ingredient.Name = name
	}
	if input.UnitsAvailable != nil {
		if *input.UnitsAvailable < 0 {
			return nil, validationErr("units_available", "units available cannot be negative")
		}
		ingredient.UnitsAvailable = *input.UnitsAvailable
	}
	if input.UnitType != nil {
		ingredient.UnitType = *input.UnitType
	}

	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// DeleteIngredient deletes an ingredient by ID.
func (s *IngredientService) DeleteIngredient(ctx context.Context, id uint) error {
	if _, err := s.GetIngredient(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Ingredient{}, id).Error
}

// AdjustStock adds delta (which may be negative) to an ingredient's
// stock level, rejecting adjustments that would drive it below zero.
func (s *IngredientService) AdjustStock(ctx context.Context, id uint, delta float64) (*models.Ingredient, error) {
	ingredient, err := s.GetIngredient(ctx, id)
	if err != nil {
		return nil, err
	}

	newQuantity := ingredient.UnitsAvailable + delta
	if newQuantity < 0 {
		return nil, validationErr("units_available",
			"insufficient stock: available %.2f, requested %.2f", ingredient.UnitsAvailable, -delta)
	}

	ingredient.UnitsAvailable = newQuantity
	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}
