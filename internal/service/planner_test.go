//go:build !integration

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/mocks"
	"github.com/casaplan/meal-planner/internal/repository"
	"github.com/casaplan/meal-planner/internal/service"
)

func plannerInput() service.PlanInput {
	return service.PlanInput{HouseholdID: "hh-1", Date: "2026-09-01", Slot: model.SlotDinner}
}

// TestPlannerService_CookingPlan_NoRecipes verifies the empty-catalog failure.
func TestPlannerService_CookingPlan_NoRecipes(t *testing.T) {
	inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
	recipeRepo := new(mocks.MockRecipeRepositoryInterface)
	suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

	inventoryRepo.On("GetByHouseholdID", mock.Anything, "hh-1").Return(model.NewInventory(), nil)
	recipeRepo.On("ListByHouseholdID", mock.Anything, "hh-1").Return([]*model.Recipe{}, nil)

	suggestions := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
	svc := service.NewPlannerService(inventoryRepo, recipeRepo, suggestions)

	_, err := svc.CookingPlan(context.Background(), plannerInput())
	assert.ErrorIs(t, err, model.ErrNoRecipes)
}

// TestPlannerService_CookingPlan_Suggestion verifies the cookable branch
// persists a suggestion and returns it.
func TestPlannerService_CookingPlan_Suggestion(t *testing.T) {
	inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
	recipeRepo := new(mocks.MockRecipeRepositoryInterface)
	suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

	inventory := model.NewInventory(
		mustItem(t, "rice", 5, nil),
		mustItem(t, "eggs", 6, nil),
	)
	recipes := []*model.Recipe{
		mustRecipe(t, "r-rice", "Fried Rice",
			model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(2)},
			model.RecipeIngredient{IngredientID: "eggs", Amount: model.MustQuantity(2)},
		),
	}

	inventoryRepo.On("GetByHouseholdID", mock.Anything, "hh-1").Return(inventory, nil)
	recipeRepo.On("ListByHouseholdID", mock.Anything, "hh-1").Return(recipes, nil)
	suggestionRepo.On("UpsertDailySuggestion", mock.Anything, mock.Anything).Return(&repository.SuggestionRecord{
		ID:          "sg-1",
		HouseholdID: "hh-1",
		Date:        "2026-09-01",
		Slot:        model.SlotDinner,
		Status:      model.StatusProposed,
		Recipes: []model.SuggestionRecipe{
			{RecipeID: "r-rice", Name: "Fried Rice", Position: 0},
		},
	}, nil)

	suggestions := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
	svc := service.NewPlannerService(inventoryRepo, recipeRepo, suggestions)

	plan, err := svc.CookingPlan(context.Background(), plannerInput())
	require.NoError(t, err)

	assert.Equal(t, model.PlanKindSuggestion, plan.Kind)
	require.NotNil(t, plan.Suggestion)
	assert.Equal(t, "sg-1", plan.Suggestion.SuggestionID)
	assert.Equal(t, model.StatusProposed, plan.Suggestion.Status)
	require.Len(t, plan.Suggestion.Recipes, 1)
	assert.Equal(t, "r-rice", plan.Suggestion.Recipes[0].RecipeID)
	assert.Nil(t, plan.Shopping)
}

// TestPlannerService_CookingPlan_Shopping verifies the best-candidate
// selection when nothing is cookable.
func TestPlannerService_CookingPlan_Shopping(t *testing.T) {
	tests := []struct {
		name             string
		inventory        *model.Inventory
		recipes          []*model.Recipe
		expectedRecipeID string
		expectedItems    []model.ShoppingListItem
	}{
		{
			name:      "fewest missing ingredients wins",
			inventory: model.NewInventory(mustItem(t, "rice", 1, nil)),
			recipes: []*model.Recipe{
				mustRecipe(t, "r-feast", "Feast",
					model.RecipeIngredient{IngredientID: "beef", Amount: model.MustQuantity(1)},
					model.RecipeIngredient{IngredientID: "wine", Amount: model.MustQuantity(1)},
				),
				mustRecipe(t, "r-pudding", "Rice Pudding",
					model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)},
					model.RecipeIngredient{IngredientID: "milk", Amount: model.MustQuantity(2)},
				),
			},
			expectedRecipeID: "r-pudding",
			expectedItems: []model.ShoppingListItem{
				{IngredientID: "milk", MissingAmount: 2},
			},
		},
		{
			name:      "equal missing count breaks tie on smaller total amount",
			inventory: model.NewInventory(),
			recipes: []*model.Recipe{
				mustRecipe(t, "r-big", "Big",
					model.RecipeIngredient{IngredientID: "flour", Amount: model.MustQuantity(5)},
				),
				mustRecipe(t, "r-small", "Small",
					model.RecipeIngredient{IngredientID: "eggs", Amount: model.MustQuantity(2)},
				),
			},
			expectedRecipeID: "r-small",
			expectedItems: []model.ShoppingListItem{
				{IngredientID: "eggs", MissingAmount: 2},
			},
		},
		{
			name:      "full tie keeps catalog order",
			inventory: model.NewInventory(),
			recipes: []*model.Recipe{
				mustRecipe(t, "r-first", "First",
					model.RecipeIngredient{IngredientID: "flour", Amount: model.MustQuantity(2)},
				),
				mustRecipe(t, "r-second", "Second",
					model.RecipeIngredient{IngredientID: "eggs", Amount: model.MustQuantity(2)},
				),
			},
			expectedRecipeID: "r-first",
			expectedItems: []model.ShoppingListItem{
				{IngredientID: "flour", MissingAmount: 2},
			},
		},
		{
			name:      "partial stock reduces the missing amount",
			inventory: model.NewInventory(mustItem(t, "milk", 0.5, nil)),
			recipes: []*model.Recipe{
				mustRecipe(t, "r-pudding", "Rice Pudding",
					model.RecipeIngredient{IngredientID: "milk", Amount: model.MustQuantity(2)},
				),
			},
			expectedRecipeID: "r-pudding",
			expectedItems: []model.ShoppingListItem{
				{IngredientID: "milk", MissingAmount: 1.5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
			recipeRepo := new(mocks.MockRecipeRepositoryInterface)
			suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

			inventoryRepo.On("GetByHouseholdID", mock.Anything, "hh-1").Return(tt.inventory, nil)
			recipeRepo.On("ListByHouseholdID", mock.Anything, "hh-1").Return(tt.recipes, nil)

			suggestions := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
			svc := service.NewPlannerService(inventoryRepo, recipeRepo, suggestions)

			plan, err := svc.CookingPlan(context.Background(), plannerInput())
			require.NoError(t, err)

			assert.Equal(t, model.PlanKindNeedsShopping, plan.Kind)
			require.NotNil(t, plan.Shopping)
			assert.Equal(t, tt.expectedRecipeID, plan.Shopping.TargetRecipe.RecipeID)
			assert.Equal(t, tt.expectedItems, plan.Shopping.Items)
			assert.Nil(t, plan.Suggestion)
			suggestionRepo.AssertNotCalled(t, "UpsertDailySuggestion", mock.Anything, mock.Anything)
		})
	}
}

// TestPlannerService_CookingPlan_NoInventoryRecord verifies a household
// without an inventory still gets a shopping plan.
func TestPlannerService_CookingPlan_NoInventoryRecord(t *testing.T) {
	inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
	recipeRepo := new(mocks.MockRecipeRepositoryInterface)
	suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

	inventoryRepo.On("GetByHouseholdID", mock.Anything, "hh-1").Return(nil, nil)
	recipeRepo.On("ListByHouseholdID", mock.Anything, "hh-1").Return([]*model.Recipe{
		mustRecipe(t, "r-toast", "Toast",
			model.RecipeIngredient{IngredientID: "bread", Amount: model.MustQuantity(2)},
		),
	}, nil)

	suggestions := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
	svc := service.NewPlannerService(inventoryRepo, recipeRepo, suggestions)

	plan, err := svc.CookingPlan(context.Background(), plannerInput())
	require.NoError(t, err)

	assert.Equal(t, model.PlanKindNeedsShopping, plan.Kind)
	require.NotNil(t, plan.Shopping)
	assert.Equal(t, "r-toast", plan.Shopping.TargetRecipe.RecipeID)
	assert.Equal(t, []model.ShoppingListItem{{IngredientID: "bread", MissingAmount: 2}}, plan.Shopping.Items)
}
