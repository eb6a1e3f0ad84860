// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/casaplan/meal-planner/internal/domain/model"
)

// InventoryRepositoryInterface defines the storage contract for household inventories.
// GetByHouseholdID returns (nil, nil) when the household has no inventory record.
type InventoryRepositoryInterface interface {
	GetByHouseholdID(ctx context.Context, householdID string) (*model.Inventory, error)
	// Save persists the aggregate wholesale, replacing the stored item list.
	Save(ctx context.Context, householdID string, inventory *model.Inventory) error
}

// RecipeRepositoryInterface defines the storage contract for recipe catalogs.
type RecipeRepositoryInterface interface {
	// ListByHouseholdID returns the household's recipes in catalog order.
	ListByHouseholdID(ctx context.Context, householdID string) ([]*model.Recipe, error)
	// GetByIDs returns the subset of recipes matching the given ids.
	// Unknown ids are silently dropped; callers needing strict resolution
	// must compare counts.
	GetByIDs(ctx context.Context, householdID string, recipeIDs []string) ([]*model.Recipe, error)
}

// SuggestionUpsert is the input for upserting a daily suggestion,
// keyed by household, date and slot.
type SuggestionUpsert struct {
	HouseholdID string
	Date        string
	Slot        model.MealSlot
	Status      model.SuggestionStatus
	Recipes     []model.SuggestionRecipe
}

// SuggestionRepositoryInterface defines the storage contract for persisted suggestions.
// Get operations return (nil, nil) when no suggestion matches.
type SuggestionRepositoryInterface interface {
	UpsertDailySuggestion(ctx context.Context, data SuggestionUpsert) (*SuggestionRecord, error)
	GetDailySuggestion(ctx context.Context, householdID, date string, slot model.MealSlot) (*SuggestionRecord, error)
	GetByID(ctx context.Context, suggestionID string) (*SuggestionRecord, error)
	// SetStatus updates the lifecycle status, failing with
	// model.ErrSuggestionNotFound for an unknown id.
	SetStatus(ctx context.Context, suggestionID string, status model.SuggestionStatus) error
}
