// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/casaplan/meal-planner/config"
	"github.com/casaplan/meal-planner/internal/circuitbreaker"
	"github.com/casaplan/meal-planner/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB *repository.MongoDB

	InventoryRepo  repository.InventoryRepositoryInterface
	RecipeRepo     repository.RecipeRepositoryInterface
	SuggestionRepo repository.SuggestionRepositoryInterface

	InventoryCircuitBreaker  *circuitbreaker.CircuitBreaker
	RecipeCircuitBreaker     *circuitbreaker.CircuitBreaker
	SuggestionCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the circuit-breaker
// protected repositories.
func InitializeDatabase(cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	newBreaker := func(name string) *circuitbreaker.CircuitBreaker {
		return circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.CircuitBreakerTimeout,
			Name:             name,
		})
	}

	inventoryCB := newBreaker("mongodb-inventories")
	recipeCB := newBreaker("mongodb-recipes")
	suggestionCB := newBreaker("mongodb-suggestions")

	inventoryRepo := repository.NewInventoryRepositoryWithCircuitBreaker(
		repository.NewInventoryRepository(db), inventoryCB)
	recipeRepo := repository.NewRecipeRepositoryWithCircuitBreaker(
		repository.NewRecipeRepository(db), recipeCB)
	suggestionRepo := repository.NewSuggestionRepositoryWithCircuitBreaker(
		repository.NewSuggestionRepository(db), suggestionCB)

	return &DatabaseComponents{
		DB:                       db,
		InventoryRepo:            inventoryRepo,
		RecipeRepo:               recipeRepo,
		SuggestionRepo:           suggestionRepo,
		InventoryCircuitBreaker:  inventoryCB,
		RecipeCircuitBreaker:     recipeCB,
		SuggestionCircuitBreaker: suggestionCB,
	}, nil
}
