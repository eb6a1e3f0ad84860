package service

import (
	"context"
	"fmt"

	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/repository"
)

// PlanInput parameterizes a cooking plan request.
type PlanInput struct {
	HouseholdID    string
	Date           string // YYYY-MM-DD
	Slot           model.MealSlot
	MaxSuggestions int
}

// PlannerService decides what a household cooks today: a persisted suggestion
// when something is cookable, or the minimal shopping list that unlocks the
// closest recipe otherwise.
type PlannerService interface {
	CookingPlan(ctx context.Context, input PlanInput) (model.CookingPlan, error)
}

// PlannerServiceImpl implements PlannerService.
type PlannerServiceImpl struct {
	inventoryRepo repository.InventoryRepositoryInterface
	recipeRepo    repository.RecipeRepositoryInterface
	suggestions   SuggestionService
}

// NewPlannerService creates a new planner service.
func NewPlannerService(
	inventoryRepo repository.InventoryRepositoryInterface,
	recipeRepo repository.RecipeRepositoryInterface,
	suggestions SuggestionService,
) *PlannerServiceImpl {
	return &PlannerServiceImpl{
		inventoryRepo: inventoryRepo,
		recipeRepo:    recipeRepo,
		suggestions:   suggestions,
	}
}

// CookingPlan implements the top-level decision procedure.
func (s *PlannerServiceImpl) CookingPlan(ctx context.Context, input PlanInput) (model.CookingPlan, error) {
	inventory, err := s.inventoryRepo.GetByHouseholdID(ctx, input.HouseholdID)
	if err != nil {
		return model.CookingPlan{}, err
	}
	if inventory == nil {
		// A household without an inventory record plans against an empty one.
		inventory = model.NewInventory()
	}

	recipes, err := s.recipeRepo.ListByHouseholdID(ctx, input.HouseholdID)
	if err != nil {
		return model.CookingPlan{}, err
	}
	if len(recipes) == 0 {
		return model.CookingPlan{}, fmt.Errorf("%w: household %s", model.ErrNoRecipes, input.HouseholdID)
	}

	cookable := false
	for _, recipe := range recipes {
		if isCookable(recipe, inventory) {
			cookable = true
			break
		}
	}

	if cookable {
		record, err := s.suggestions.GenerateAndStore(ctx, GenerateSuggestionInput{
			HouseholdID:    input.HouseholdID,
			Date:           input.Date,
			Slot:           input.Slot,
			MaxSuggestions: input.MaxSuggestions,
		})
		if err != nil {
			return model.CookingPlan{}, err
		}

		return model.NewSuggestionPlan(input.HouseholdID, input.Date, input.Slot, model.PlanSuggestion{
			SuggestionID: record.ID,
			Status:       record.Status,
			Recipes:      record.Recipes,
		}), nil
	}

	best := bestCandidate(recipes, inventory)
	return model.NewShoppingPlan(input.HouseholdID, input.Date, input.Slot, model.PlanShopping{
		TargetRecipe: model.PlanRecipeRef{RecipeID: best.recipe.ID(), Name: best.recipe.Name()},
		Items:        best.missing,
	}), nil
}

// isCookable checks full quantity sufficiency for every required ingredient,
// unlike the suggestion generator's presence-only candidate filter.
func isCookable(recipe *model.Recipe, inventory *model.Inventory) bool {
	for _, ing := range recipe.Ingredients() {
		held := 0.0
		if item, ok := inventory.Item(ing.IngredientID); ok {
			held = item.Quantity().Value()
		}
		if held < ing.Amount.Value() {
			return false
		}
	}
	return true
}

// planCandidate is one almost-cookable recipe with what it lacks.
type planCandidate struct {
	recipe       *model.Recipe
	missing      []model.ShoppingListItem
	missingTotal float64
}

// bestCandidate scans the recipes in catalog order and keeps the one with the
// fewest distinct missing ingredients, breaking ties by smallest total missing
// amount. Remaining ties keep the earliest recipe; the scan is a stable
// linear pass, never a re-sort.
func bestCandidate(recipes []*model.Recipe, inventory *model.Inventory) planCandidate {
	var best planCandidate
	first := true

	for _, recipe := range recipes {
		var missing []model.ShoppingListItem
		total := 0.0

		for _, ing := range recipe.Ingredients() {
			held := 0.0
			if item, ok := inventory.Item(ing.IngredientID); ok {
				held = item.Quantity().Value()
			}
			need := ing.Amount.Value()
			if held < need {
				missing = append(missing, model.ShoppingListItem{
					IngredientID:  ing.IngredientID,
					MissingAmount: need - held,
				})
				total += need - held
			}
		}

		candidate := planCandidate{recipe: recipe, missing: missing, missingTotal: total}
		if first {
			best = candidate
			first = false
			continue
		}
		if len(candidate.missing) < len(best.missing) ||
			(len(candidate.missing) == len(best.missing) && candidate.missingTotal < best.missingTotal) {
			best = candidate
		}
	}

	return best
}
