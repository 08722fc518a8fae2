package api

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetRecipe(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/recipes", map[string]interface{}{
		"meal_name":   "Chicken Curry",
		"description": "Simmer everything.",
		"web_link":    "https://example.com/curry",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	created := decodeBody(t, w)
	assert.Equal(t, "Chicken Curry", created["meal_name"])
	id := uint(created["id"].(float64))

	w = PerformRequest(router, "GET", fmt.Sprintf("/api/recipes/%d", id), nil)
	require.Equal(t, 200, w.Code)

	detail := decodeBody(t, w)
	assert.Equal(t, "Chicken Curry", detail["meal_name"])
	assert.Equal(t, "Simmer everything.", detail["description"])
	assert.Equal(t, "https://example.com/curry", detail["web_link"])
	// Detail always carries the (possibly empty) ingredient list.
	assert.Len(t, detail["ingredients"], 0)
}

func TestCreateRecipeValidation(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/recipes", map[string]interface{}{
		"description": "no name",
	})
	assert.Equal(t, 400, w.Code)

	w = PerformRequest(router, "POST", "/api/recipes", map[string]interface{}{
		"meal_name": "  ",
	})
	assert.Equal(t, 400, w.Code)
}

func TestSearchRecipes(t *testing.T) {
	router, _ := SetupTestRouter(t)

	for _, name := range []string{"Chicken Curry", "Thai Green Curry", "Pasta"} {
		w := PerformRequest(router, "POST", "/api/recipes", map[string]interface{}{"meal_name": name})
		require.Equal(t, 201, w.Code, w.Body.String())
	}

	w := PerformRequest(router, "GET", "/api/recipes/search?name=curry", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeList(t, w), 2)

	w = PerformRequest(router, "GET", "/api/recipes/search", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeList(t, w), 3)
}

func TestUpdateRecipePartial(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/recipes", map[string]interface{}{
		"meal_name":   "Chicken Curry",
		"description": "Original description",
	})
	require.Equal(t, 201, w.Code)
	id := uint(decodeBody(t, w)["id"].(float64))

	w = PerformRequest(router, "PUT", fmt.Sprintf("/api/recipes/%d", id), map[string]interface{}{
		"web_link": "https://example.com/updated",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	updated := decodeBody(t, w)
	assert.Equal(t, "Chicken Curry", updated["meal_name"])
	assert.Equal(t, "Original description", updated["description"])
	assert.Equal(t, "https://example.com/updated", updated["web_link"])

	w = PerformRequest(router, "PUT", "/api/recipes/9999", map[string]interface{}{
		"meal_name": "Ghost",
	})
	assert.Equal(t, 404, w.Code)
}

func TestDeleteRecipe(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/recipes", map[string]interface{}{"meal_name": "Pasta"})
	require.Equal(t, 201, w.Code)
	id := uint(decodeBody(t, w)["id"].(float64))

	w = PerformRequest(router, "DELETE", fmt.Sprintf("/api/recipes/%d", id), nil)
	assert.Equal(t, 200, w.Code)

	w = PerformRequest(router, "GET", fmt.Sprintf("/api/recipes/%d", id), nil)
	assert.Equal(t, 404, w.Code)

	w = PerformRequest(router, "DELETE", fmt.Sprintf("/api/recipes/%d", id), nil)
	assert.Equal(t, 404, w.Code)
}

func TestAddIngredientToRecipe(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/recipes", map[string]interface{}{"meal_name": "Chicken Curry"})
	require.Equal(t, 201, w.Code)
	recipeID := uint(decodeBody(t, w)["id"].(float64))

	w = PerformRequest(router, "POST", "/api/ingredients", map[string]interface{}{
		"name":      "Chicken Breast",
		"unit_type": "kg",
	})
	require.Equal(t, 201, w.Code)
	ingredientID := uint(decodeBody(t, w)["id"].(float64))

	w = PerformRequest(router, "POST", fmt.Sprintf("/api/recipes/%d/ingredients", recipeID), map[string]interface{}{
		"ingredient_id": ingredientID,
		"quantity":      "500g",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	attached := decodeBody(t, w)
	assert.Equal(t, float64(recipeID), attached["recipe_id"])
	assert.Equal(t, float64(ingredientID), attached["ingredient_id"])
	assert.Equal(t, "500g", attached["quantity"])

	// The attachment shows up in the recipe detail.
	w = PerformRequest(router, "GET", fmt.Sprintf("/api/recipes/%d", recipeID), nil)
	require.Equal(t, 200, w.Code)

	detail := decodeBody(t, w)
	rows := detail["ingredients"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, float64(ingredientID), row["ingredient_id"])
	assert.Equal(t, "Chicken Breast", row["ingredient_name"])
	assert.Equal(t, "500g", row["quantity"])
	assert.Equal(t, "kg", row["unit_type"])
}

func TestAddIngredientErrors(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/recipes", map[string]interface{}{"meal_name": "Pasta"})
	require.Equal(t, 201, w.Code)
	recipeID := uint(decodeBody(t, w)["id"].(float64))

	w = PerformRequest(router, "POST", "/api/ingredients", map[string]interface{}{"name": "Tomato"})
	require.Equal(t, 201, w.Code)
	ingredientID := uint(decodeBody(t, w)["id"].(float64))

	// Unknown recipe.
	w = PerformRequest(router, "POST", "/api/recipes/9999/ingredients", map[string]interface{}{
		"ingredient_id": ingredientID,
		"quantity":      "2 pieces",
	})
	assert.Equal(t, 404, w.Code)

	// Unknown ingredient.
	w = PerformRequest(router, "POST", fmt.Sprintf("/api/recipes/%d/ingredients", recipeID), map[string]interface{}{
		"ingredient_id": 9999,
		"quantity":      "2 pieces",
	})
	assert.Equal(t, 404, w.Code)

	// Blank quantity survives binding but fails validation.
	w = PerformRequest(router, "POST", fmt.Sprintf("/api/recipes/%d/ingredients", recipeID), map[string]interface{}{
		"ingredient_id": ingredientID,
		"quantity":      "   ",
	})
	assert.Equal(t, 400, w.Code)
}
