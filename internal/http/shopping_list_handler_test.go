//go:build !integration

package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/mocks"
	"github.com/casaplan/meal-planner/internal/service"
)

func shoppingListRouter(svc service.ShoppingListService) *gin.Engine {
	router := gin.New()
	handler := NewShoppingListHandler(svc)
	router.POST("/api/shopping-list/generate", handler.GenerateShoppingList)
	router.POST("/api/shopping-list/from-recipes", handler.ShoppingListFromRecipes)
	return router
}

func TestShoppingListHandler_GenerateShoppingList(t *testing.T) {
	t.Run("returns the missing amounts", func(t *testing.T) {
		svc := new(mocks.MockShoppingListService)
		svc.On("FromRecipes", mock.Anything, "hh-1", []service.RecipeInput{
			{
				ID:   "r-pudding",
				Name: "Rice pudding",
				Ingredients: []service.RecipeIngredientInput{
					{IngredientID: "milk", Amount: 2},
					{IngredientID: "rice", Amount: 1},
				},
			},
		}).Return(service.ShoppingList{
			HouseholdID: "hh-1",
			Items: []model.ShoppingListItem{
				{IngredientID: "milk", MissingAmount: 1.5},
			},
		}, nil)

		w := postJSON(t, shoppingListRouter(svc), "/api/shopping-list/generate", map[string]interface{}{
			"household_id": "hh-1",
			"recipes": []map[string]interface{}{
				{
					"id":   "r-pudding",
					"name": "Rice pudding",
					"ingredients": []map[string]interface{}{
						{"ingredient_id": "milk", "amount": 2},
						{"ingredient_id": "rice", "amount": 1},
					},
				},
			},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "milk")
		assert.Contains(t, w.Body.String(), `"missing_amount":1.5`)
		svc.AssertExpectations(t)
	})

	t.Run("missing inventory maps to 404", func(t *testing.T) {
		svc := new(mocks.MockShoppingListService)
		svc.On("FromRecipes", mock.Anything, "hh-ghost", mock.Anything).
			Return(service.ShoppingList{}, model.ErrInventoryNotFound)

		w := postJSON(t, shoppingListRouter(svc), "/api/shopping-list/generate", map[string]interface{}{
			"household_id": "hh-ghost",
			"recipes": []map[string]interface{}{
				{
					"id":   "r-1",
					"name": "Toast",
					"ingredients": []map[string]interface{}{
						{"ingredient_id": "bread", "amount": 2},
					},
				},
			},
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("recipe without ingredients maps to 400", func(t *testing.T) {
		svc := new(mocks.MockShoppingListService)

		w := postJSON(t, shoppingListRouter(svc), "/api/shopping-list/generate", map[string]interface{}{
			"household_id": "hh-1",
			"recipes": []map[string]interface{}{
				{"id": "r-1", "name": "Air", "ingredients": []map[string]interface{}{}},
			},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "FromRecipes", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestShoppingListHandler_ShoppingListFromRecipes(t *testing.T) {
	t.Run("resolves catalog recipes", func(t *testing.T) {
		svc := new(mocks.MockShoppingListService)
		svc.On("FromRecipeIDs", mock.Anything, "hh-1", []string{"r-pudding", "r-omelette"}).
			Return(service.ShoppingList{
				HouseholdID: "hh-1",
				Items: []model.ShoppingListItem{
					{IngredientID: "eggs", MissingAmount: 3},
				},
			}, nil)

		w := postJSON(t, shoppingListRouter(svc), "/api/shopping-list/from-recipes", map[string]interface{}{
			"household_id": "hh-1",
			"recipe_ids":   []string{"r-pudding", "r-omelette"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "eggs")
		assert.Contains(t, w.Body.String(), `"missing_amount":3`)
	})

	t.Run("empty id list maps to 400", func(t *testing.T) {
		svc := new(mocks.MockShoppingListService)

		w := postJSON(t, shoppingListRouter(svc), "/api/shopping-list/from-recipes", map[string]interface{}{
			"household_id": "hh-1",
			"recipe_ids":   []string{},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "FromRecipeIDs", mock.Anything, mock.Anything, mock.Anything)
	})
}
