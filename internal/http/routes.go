package http

import (
	"github.com/gin-gonic/gin"

	"github.com/casaplan/meal-planner/internal/service"
)

// PlannerRoutes bundles the meal-planning handlers and their registration.
type PlannerRoutes struct {
	inventoryHandler    *InventoryHandler
	suggestionHandler   *SuggestionHandler
	planHandler         *PlanHandler
	shoppingListHandler *ShoppingListHandler
}

// NewPlannerRoutes creates a new PlannerRoutes instance.
func NewPlannerRoutes(
	inventoryService service.InventoryService,
	suggestionService service.SuggestionService,
	plannerService service.PlannerService,
	shoppingListService service.ShoppingListService,
) *PlannerRoutes {
	return &PlannerRoutes{
		inventoryHandler:    NewInventoryHandler(inventoryService),
		suggestionHandler:   NewSuggestionHandler(suggestionService),
		planHandler:         NewPlanHandler(plannerService),
		shoppingListHandler: NewShoppingListHandler(shoppingListService),
	}
}

// RegisterRoutes registers all meal-planning routes on the given group.
func (r *PlannerRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/inventory/update", r.inventoryHandler.UpdateInventory)
	rg.GET("/inventory/:householdId", r.inventoryHandler.GetInventory)

	rg.POST("/suggestions/generate", r.suggestionHandler.GenerateSuggestion)
	rg.GET("/suggestions", r.suggestionHandler.GetDailySuggestion)
	rg.POST("/suggestions/:id/accept", r.suggestionHandler.AcceptSuggestion)
	rg.POST("/suggestions/:id/modify", r.suggestionHandler.ModifySuggestion)

	rg.POST("/cooking-plan", r.planHandler.CookingPlan)

	rg.POST("/shopping-list/generate", r.shoppingListHandler.GenerateShoppingList)
	rg.POST("/shopping-list/from-recipes", r.shoppingListHandler.ShoppingListFromRecipes)
}
