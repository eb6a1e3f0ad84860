package service

import (
	"context"
	"fmt"

	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/repository"
)

// RecipeIngredientInput is one required ingredient of an embedded recipe.
type RecipeIngredientInput struct {
	IngredientID string
	Amount       float64
}

// RecipeInput is a recipe embedded directly in a shopping list request,
// bypassing the catalog.
type RecipeInput struct {
	ID          string
	Name        string
	Ingredients []RecipeIngredientInput
}

// ShoppingList is the computed list of missing ingredients for a household.
type ShoppingList struct {
	HouseholdID string                   `json:"household_id"`
	Items       []model.ShoppingListItem `json:"items"`
}

// ShoppingListService computes what a household must buy to cook a set of
// recipes, from either embedded recipes or catalog ids.
type ShoppingListService interface {
	FromRecipes(ctx context.Context, householdID string, recipes []RecipeInput) (ShoppingList, error)
	FromRecipeIDs(ctx context.Context, householdID string, recipeIDs []string) (ShoppingList, error)
}

// ShoppingListServiceImpl implements ShoppingListService.
type ShoppingListServiceImpl struct {
	inventoryRepo repository.InventoryRepositoryInterface
	recipeRepo    repository.RecipeRepositoryInterface
}

// NewShoppingListService creates a new shopping list service.
func NewShoppingListService(
	inventoryRepo repository.InventoryRepositoryInterface,
	recipeRepo repository.RecipeRepositoryInterface,
) *ShoppingListServiceImpl {
	return &ShoppingListServiceImpl{
		inventoryRepo: inventoryRepo,
		recipeRepo:    recipeRepo,
	}
}

// requiredAmounts accumulates per-ingredient totals preserving the order in
// which ingredients are first encountered, which fixes the output order.
type requiredAmounts struct {
	amounts map[string]float64
	order   []string
}

func newRequiredAmounts() *requiredAmounts {
	return &requiredAmounts{amounts: make(map[string]float64)}
}

func (r *requiredAmounts) add(ingredientID string, amount float64) {
	if _, ok := r.amounts[ingredientID]; !ok {
		r.order = append(r.order, ingredientID)
	}
	r.amounts[ingredientID] += amount
}

// FromRecipes diffs embedded recipes against the household inventory.
func (s *ShoppingListServiceImpl) FromRecipes(ctx context.Context, householdID string, recipes []RecipeInput) (ShoppingList, error) {
	inventory, err := s.loadInventory(ctx, householdID)
	if err != nil {
		return ShoppingList{}, err
	}

	required := newRequiredAmounts()
	for _, recipe := range recipes {
		for _, ing := range recipe.Ingredients {
			required.add(ing.IngredientID, ing.Amount)
		}
	}

	return ShoppingList{
		HouseholdID: householdID,
		Items:       missingItems(required, inventory),
	}, nil
}

// FromRecipeIDs resolves recipes from the catalog and diffs them against the
// household inventory. Unknown ids are dropped by the repository lookup.
func (s *ShoppingListServiceImpl) FromRecipeIDs(ctx context.Context, householdID string, recipeIDs []string) (ShoppingList, error) {
	inventory, err := s.loadInventory(ctx, householdID)
	if err != nil {
		return ShoppingList{}, err
	}

	recipes, err := s.recipeRepo.GetByIDs(ctx, householdID, recipeIDs)
	if err != nil {
		return ShoppingList{}, err
	}

	required := newRequiredAmounts()
	for _, recipe := range recipes {
		for _, ing := range recipe.Ingredients() {
			required.add(ing.IngredientID, ing.Amount.Value())
		}
	}

	return ShoppingList{
		HouseholdID: householdID,
		Items:       missingItems(required, inventory),
	}, nil
}

func (s *ShoppingListServiceImpl) loadInventory(ctx context.Context, householdID string) (*model.Inventory, error) {
	inventory, err := s.inventoryRepo.GetByHouseholdID(ctx, householdID)
	if err != nil {
		return nil, err
	}
	if inventory == nil {
		return nil, fmt.Errorf("%w: household %s", model.ErrInventoryNotFound, householdID)
	}
	return inventory, nil
}

// missingItems emits an entry per ingredient the inventory cannot cover,
// in first-encounter order.
func missingItems(required *requiredAmounts, inventory *model.Inventory) []model.ShoppingListItem {
	items := []model.ShoppingListItem{}
	for _, ingredientID := range required.order {
		need := required.amounts[ingredientID]
		held := 0.0
		if item, ok := inventory.Item(ingredientID); ok {
			held = item.Quantity().Value()
		}
		if held < need {
			items = append(items, model.ShoppingListItem{
				IngredientID:  ingredientID,
				MissingAmount: need - held,
			})
		}
	}
	return items
}
