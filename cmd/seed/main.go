// Seeds the database with a small starter pantry, a few recipes and a
// partial week of scheduled meals. Intended for development environments.
package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/pantryplan/backend/config"
	"github.com/pantryplan/backend/internal/database"
	"github.com/pantryplan/backend/internal/logger"
	"github.com/pantryplan/backend/internal/models"
	"github.com/pantryplan/backend/internal/service"
)

var ingredients = []service.CreateIngredientInput{
	{Name: "Tomato", UnitsAvailable: 6, UnitType: "pieces"},
	{Name: "Rice", UnitsAvailable: 2, UnitType: "kg"},
	{Name: "Chicken Breast", UnitsAvailable: 1.5, UnitType: "kg"},
	{Name: "Onion", UnitsAvailable: 4, UnitType: "pieces"},
	{Name: "Olive Oil", UnitsAvailable: 0.5, UnitType: "l"},
	{Name: "Pasta", UnitsAvailable: 1, UnitType: "kg"},
	{Name: "Eggs", UnitsAvailable: 12, UnitType: "pieces"},
}

var recipes = []service.CreateRecipeInput{
	{
		MealName:    "Chicken Curry",
		Description: "Brown the chicken, soften the onions, simmer in curry sauce and serve over rice.",
		WebLink:     "https://example.com/recipes/chicken-curry",
	},
	{
		MealName:    "Tomato Pasta",
		Description: "Cook the pasta, toss with a quick tomato and olive oil sauce.",
	},
	{
		MealName:    "Scrambled Eggs",
		Description: "Whisk, salt, cook low and slow.",
	},
}

func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	ingredientService := service.NewIngredientService(db)
	recipeService := service.NewRecipeService(db)
	scheduleService := service.NewMealScheduleService(db)

	created := make(map[string]uint)
	for _, input := range ingredients {
		ingredient, err := ingredientService.CreateIngredient(ctx, input)
		if err != nil {
			logger.Fatal("failed to seed ingredient", zap.String("name", input.Name), zap.Error(err))
		}
		created[ingredient.Name] = ingredient.ID
	}

	var recipeIDs []uint
	for _, input := range recipes {
		recipe, err := recipeService.CreateRecipe(ctx, input)
		if err != nil {
			logger.Fatal("failed to seed recipe", zap.String("meal_name", input.MealName), zap.Error(err))
		}
		recipeIDs = append(recipeIDs, recipe.ID)
	}

	attachments := []struct {
		recipe     uint
		ingredient string
		quantity   string
	}{
		{recipeIDs[0], "Chicken Breast", "500g"},
		{recipeIDs[0], "Onion", "2 pieces"},
		{recipeIDs[0], "Rice", "1 cup"},
		{recipeIDs[1], "Pasta", "250g"},
		{recipeIDs[1], "Tomato", "4 pieces"},
		{recipeIDs[1], "Olive Oil", "2 tbsp"},
		{recipeIDs[2], "Eggs", "3 pieces"},
	}
	for _, a := range attachments {
		if _, err := recipeService.AddIngredient(ctx, a.recipe, created[a.ingredient], a.quantity); err != nil {
			logger.Fatal("failed to attach ingredient", zap.String("ingredient", a.ingredient), zap.Error(err))
		}
	}

	schedule := []service.ScheduleMealInput{
		{MealName: "Chicken Curry", DayOfWeek: models.Monday, MealType: models.Dinner, RecipeID: &recipeIDs[0]},
		{MealName: "Tomato Pasta", DayOfWeek: models.Tuesday, MealType: models.Lunch, RecipeID: &recipeIDs[1]},
		{MealName: "Scrambled Eggs", DayOfWeek: models.Saturday, MealType: models.Breakfast, RecipeID: &recipeIDs[2], Notes: "Lazy weekend breakfast"},
	}
	for _, input := range schedule {
		if _, err := scheduleService.ScheduleMeal(ctx, input); err != nil {
			logger.Fatal("failed to seed schedule", zap.String("meal_name", input.MealName), zap.Error(err))
		}
	}

	logger.Info("seed complete",
		zap.Int("ingredients", len(ingredients)),
		zap.Int("recipes", len(recipes)),
		zap.Int("scheduled_meals", len(schedule)),
	)
}
