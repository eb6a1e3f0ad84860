// Package app provides service initialization.
package app

import (
	"github.com/casaplan/meal-planner/config"
	"github.com/casaplan/meal-planner/internal/service"
)

// ServiceComponents holds business service instances.
type ServiceComponents struct {
	Inventory    service.InventoryService
	Suggestion   service.SuggestionService
	Planner      service.PlannerService
	ShoppingList service.ShoppingListService
}

// InitializeServices wires the business services over the database repositories.
func InitializeServices(db *DatabaseComponents, cfg config.PlannerConfig) *ServiceComponents {
	suggestionService := service.NewSuggestionService(
		db.InventoryRepo,
		db.RecipeRepo,
		db.SuggestionRepo,
		service.WithGenerationDefaults(cfg.MaxSuggestions, cfg.ExpiringDaysThreshold),
	)

	return &ServiceComponents{
		Inventory:    service.NewInventoryService(db.InventoryRepo),
		Suggestion:   suggestionService,
		Planner:      service.NewPlannerService(db.InventoryRepo, db.RecipeRepo, suggestionService),
		ShoppingList: service.NewShoppingListService(db.InventoryRepo, db.RecipeRepo),
	}
}
