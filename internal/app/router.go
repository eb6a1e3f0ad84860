// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/casaplan/meal-planner/config"
	"github.com/casaplan/meal-planner/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the HTTP router configuration and health handler.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if db.InventoryCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_inventories", db.InventoryCircuitBreaker)
	}
	if db.RecipeCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_recipes", db.RecipeCircuitBreaker)
	}
	if db.SuggestionCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_suggestions", db.SuggestionCircuitBreaker)
	}

	if db.DB != nil {
		mongoClient := db.DB.Client
		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return mongoClient.Ping(ctx, nil)
		}))
	}

	routerCfg := http.RouterConfig{
		RateLimit:           cfg.Server.RateLimit,
		RateWindow:          cfg.Server.RateWindow,
		EnableIdempotency:   true,
		CORSOrigins:         cfg.Server.CORSOrigins,
		SwaggerUser:         cfg.Server.SwaggerUser,
		SwaggerPass:         cfg.Server.SwaggerPass,
		InventoryService:    services.Inventory,
		SuggestionService:   services.Suggestion,
		PlannerService:      services.Planner,
		ShoppingListService: services.ShoppingList,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
