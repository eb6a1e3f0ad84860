package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casaplan/meal-planner/internal/domain/dto"
	"github.com/casaplan/meal-planner/internal/service"
)

// ShoppingListHandler provides HTTP handlers for shopping list routes.
type ShoppingListHandler struct {
	shoppingListService service.ShoppingListService
}

// NewShoppingListHandler creates a new ShoppingListHandler instance.
func NewShoppingListHandler(shoppingListService service.ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{shoppingListService: shoppingListService}
}

// GenerateShoppingList handles POST /api/shopping-list/generate requests.
//
// @Summary      Compute a shopping list from embedded recipes
// @Description  Accumulates the ingredient amounts of the given recipes and returns the amounts the household inventory cannot cover.
// @Tags         ShoppingList
// @Accept       json
// @Produce      json
// @Param        request body dto.ShoppingListRequest true "Recipes to cook"
// @Success      200 {object} dto.SuccessResponse "Missing ingredients"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - household has no inventory"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/shopping-list/generate [post]
func (h *ShoppingListHandler) GenerateShoppingList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	recipes := make([]service.RecipeInput, 0, len(req.Recipes))
	for _, r := range req.Recipes {
		ingredients := make([]service.RecipeIngredientInput, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			ingredients = append(ingredients, service.RecipeIngredientInput{
				IngredientID: ing.IngredientID,
				Amount:       ing.Amount,
			})
		}
		recipes = append(recipes, service.RecipeInput{ID: r.ID, Name: r.Name, Ingredients: ingredients})
	}

	list, err := h.shoppingListService.FromRecipes(c.Request.Context(), req.HouseholdID, recipes)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(list)
}

// ShoppingListFromRecipes handles POST /api/shopping-list/from-recipes requests.
//
// @Summary      Compute a shopping list from catalog recipes
// @Description  Resolves the given recipe ids from the household catalog and returns the ingredient amounts the inventory cannot cover. Unknown ids are ignored.
// @Tags         ShoppingList
// @Accept       json
// @Produce      json
// @Param        request body dto.ShoppingListFromIDsRequest true "Catalog recipe ids"
// @Success      200 {object} dto.SuccessResponse "Missing ingredients"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - household has no inventory"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/shopping-list/from-recipes [post]
func (h *ShoppingListHandler) ShoppingListFromRecipes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ShoppingListFromIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	list, err := h.shoppingListService.FromRecipeIDs(c.Request.Context(), req.HouseholdID, req.RecipeIDs)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(list)
}
