// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/casaplan/meal-planner/internal/circuitbreaker"
	"github.com/casaplan/meal-planner/internal/domain/model"
)

// InventoryRepositoryWithCircuitBreaker wraps InventoryRepository with circuit breaker protection.
type InventoryRepositoryWithCircuitBreaker struct {
	repo           *InventoryRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewInventoryRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewInventoryRepositoryWithCircuitBreaker(repo *InventoryRepository, cb *circuitbreaker.CircuitBreaker) *InventoryRepositoryWithCircuitBreaker {
	return &InventoryRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetByHouseholdID loads the inventory with circuit breaker protection.
func (r *InventoryRepositoryWithCircuitBreaker) GetByHouseholdID(ctx context.Context, householdID string) (*model.Inventory, error) {
	var result *model.Inventory
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByHouseholdID(ctx, householdID)
		return cbErr
	})
	return result, err
}

// Save persists the inventory with circuit breaker protection.
func (r *InventoryRepositoryWithCircuitBreaker) Save(ctx context.Context, householdID string, inventory *model.Inventory) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, householdID, inventory)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *InventoryRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// RecipeRepositoryWithCircuitBreaker wraps RecipeRepository with circuit breaker protection.
type RecipeRepositoryWithCircuitBreaker struct {
	repo           *RecipeRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRecipeRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRecipeRepositoryWithCircuitBreaker(repo *RecipeRepository, cb *circuitbreaker.CircuitBreaker) *RecipeRepositoryWithCircuitBreaker {
	return &RecipeRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ListByHouseholdID lists the catalog with circuit breaker protection.
func (r *RecipeRepositoryWithCircuitBreaker) ListByHouseholdID(ctx context.Context, householdID string) ([]*model.Recipe, error) {
	var result []*model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByHouseholdID(ctx, householdID)
		return cbErr
	})
	return result, err
}

// GetByIDs resolves catalog recipes with circuit breaker protection.
func (r *RecipeRepositoryWithCircuitBreaker) GetByIDs(ctx context.Context, householdID string, recipeIDs []string) ([]*model.Recipe, error) {
	var result []*model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByIDs(ctx, householdID, recipeIDs)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RecipeRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// SuggestionRepositoryWithCircuitBreaker wraps SuggestionRepository with circuit breaker protection.
type SuggestionRepositoryWithCircuitBreaker struct {
	repo           *SuggestionRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSuggestionRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewSuggestionRepositoryWithCircuitBreaker(repo *SuggestionRepository, cb *circuitbreaker.CircuitBreaker) *SuggestionRepositoryWithCircuitBreaker {
	return &SuggestionRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// UpsertDailySuggestion upserts with circuit breaker protection.
func (r *SuggestionRepositoryWithCircuitBreaker) UpsertDailySuggestion(ctx context.Context, data SuggestionUpsert) (*SuggestionRecord, error) {
	var result *SuggestionRecord
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpsertDailySuggestion(ctx, data)
		return cbErr
	})
	return result, err
}

// GetDailySuggestion reads with circuit breaker protection.
func (r *SuggestionRepositoryWithCircuitBreaker) GetDailySuggestion(ctx context.Context, householdID, date string, slot model.MealSlot) (*SuggestionRecord, error) {
	var result *SuggestionRecord
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetDailySuggestion(ctx, householdID, date, slot)
		return cbErr
	})
	return result, err
}

// GetByID reads with circuit breaker protection.
func (r *SuggestionRepositoryWithCircuitBreaker) GetByID(ctx context.Context, suggestionID string) (*SuggestionRecord, error) {
	var result *SuggestionRecord
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, suggestionID)
		return cbErr
	})
	return result, err
}

// SetStatus updates with circuit breaker protection.
func (r *SuggestionRepositoryWithCircuitBreaker) SetStatus(ctx context.Context, suggestionID string, status model.SuggestionStatus) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SetStatus(ctx, suggestionID, status)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *SuggestionRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
