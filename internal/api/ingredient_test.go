package api

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetIngredient(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/ingredients", map[string]interface{}{
		"name":            "Tomato",
		"units_available": 5.0,
		"unit_type":       "kg",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	created := decodeBody(t, w)
	assert.Equal(t, "Tomato", created["name"])
	assert.Equal(t, 5.0, created["units_available"])
	assert.Equal(t, "kg", created["unit_type"])

	id := uint(created["id"].(float64))
	w = PerformRequest(router, "GET", fmt.Sprintf("/api/ingredients/%d", id), nil)
	require.Equal(t, 200, w.Code)

	fetched := decodeBody(t, w)
	assert.Equal(t, created["name"], fetched["name"])
	assert.Equal(t, created["units_available"], fetched["units_available"])
	assert.Equal(t, created["unit_type"], fetched["unit_type"])
}

func TestCreateIngredientDefaultsUnitType(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/ingredients", map[string]interface{}{
		"name": "Salt",
	})
	require.Equal(t, 201, w.Code, w.Body.String())
	assert.Equal(t, "pieces", decodeBody(t, w)["unit_type"])
}

func TestCreateIngredientValidation(t *testing.T) {
	router, _ := SetupTestRouter(t)

	// Missing name fails binding.
	w := PerformRequest(router, "POST", "/api/ingredients", map[string]interface{}{
		"units_available": 5.0,
	})
	assert.Equal(t, 400, w.Code)

	// Blank name fails service validation.
	w = PerformRequest(router, "POST", "/api/ingredients", map[string]interface{}{
		"name": "   ",
	})
	assert.Equal(t, 400, w.Code)

	// Negative stock is rejected.
	w = PerformRequest(router, "POST", "/api/ingredients", map[string]interface{}{
		"name":            "Tomato",
		"units_available": -1.0,
	})
	assert.Equal(t, 400, w.Code)
}

func TestListIngredientsInStockFilter(t *testing.T) {
	router, _ := SetupTestRouter(t)

	for _, ing := range []map[string]interface{}{
		{"name": "Rice", "units_available": 2.0},
		{"name": "Flour", "units_available": 0.0},
	} {
		w := PerformRequest(router, "POST", "/api/ingredients", ing)
		require.Equal(t, 201, w.Code, w.Body.String())
	}

	w := PerformRequest(router, "GET", "/api/ingredients", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeList(t, w), 2)

	w = PerformRequest(router, "GET", "/api/ingredients?in_stock=true", nil)
	require.Equal(t, 200, w.Code)
	stocked := decodeList(t, w)
	require.Len(t, stocked, 1)
	assert.Equal(t, "Rice", stocked[0]["name"])
}

func TestSearchIngredients(t *testing.T) {
	router, _ := SetupTestRouter(t)

	for _, name := range []string{"Tomato", "Cherry Tomato", "Rice"} {
		w := PerformRequest(router, "POST", "/api/ingredients", map[string]interface{}{"name": name})
		require.Equal(t, 201, w.Code, w.Body.String())
	}

	w := PerformRequest(router, "GET", "/api/ingredients/search?name=tomato", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeList(t, w), 2)

	// Empty query returns everything.
	w = PerformRequest(router, "GET", "/api/ingredients/search", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeList(t, w), 3)

	w = PerformRequest(router, "GET", "/api/ingredients/search?name=zucchini", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeList(t, w), 0)
}

func TestUpdateIngredientPartial(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/ingredients", map[string]interface{}{
		"name":            "Tomato",
		"units_available": 5.0,
		"unit_type":       "kg",
	})
	require.Equal(t, 201, w.Code, w.Body.String())
	id := uint(decodeBody(t, w)["id"].(float64))

	// Only stock changes; name and unit type stay.
	w = PerformRequest(router, "PUT", fmt.Sprintf("/api/ingredients/%d", id), map[string]interface{}{
		"units_available": 2.5,
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	updated := decodeBody(t, w)
	assert.Equal(t, "Tomato", updated["name"])
	assert.Equal(t, 2.5, updated["units_available"])
	assert.Equal(t, "kg", updated["unit_type"])
}

func TestUpdateIngredientErrors(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "PUT", "/api/ingredients/9999", map[string]interface{}{
		"name": "Ghost",
	})
	assert.Equal(t, 404, w.Code)

	w = PerformRequest(router, "POST", "/api/ingredients", map[string]interface{}{"name": "Tomato"})
	require.Equal(t, 201, w.Code)
	id := uint(decodeBody(t, w)["id"].(float64))

	w = PerformRequest(router, "PUT", fmt.Sprintf("/api/ingredients/%d", id), map[string]interface{}{
		"units_available": -3.0,
	})
	assert.Equal(t, 400, w.Code)
}

func TestDeleteIngredient(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/ingredients", map[string]interface{}{"name": "Tomato"})
	require.Equal(t, 201, w.Code)
	id := uint(decodeBody(t, w)["id"].(float64))

	w = PerformRequest(router, "DELETE", fmt.Sprintf("/api/ingredients/%d", id), nil)
	assert.Equal(t, 200, w.Code)

	w = PerformRequest(router, "GET", fmt.Sprintf("/api/ingredients/%d", id), nil)
	assert.Equal(t, 404, w.Code)

	w = PerformRequest(router, "DELETE", fmt.Sprintf("/api/ingredients/%d", id), nil)
	assert.Equal(t, 404, w.Code)
}

func TestGetIngredientBadID(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "GET", "/api/ingredients/abc", nil)
	assert.Equal(t, 400, w.Code)

	w = PerformRequest(router, "GET", "/api/ingredients/9999", nil)
	assert.Equal(t, 404, w.Code)
}
