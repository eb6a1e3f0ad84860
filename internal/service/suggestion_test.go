//go:build !integration

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/mocks"
	"github.com/casaplan/meal-planner/internal/repository"
	"github.com/casaplan/meal-planner/internal/service"
)

func mustItem(t *testing.T, id string, quantity float64, expiration *time.Time) *model.InventoryItem {
	t.Helper()
	item, err := model.NewInventoryItem(id, model.MustQuantity(quantity), expiration)
	require.NoError(t, err)
	return item
}

func mustRecipe(t *testing.T, id, name string, ingredients ...model.RecipeIngredient) *model.Recipe {
	t.Helper()
	recipe, err := model.NewRecipe(id, name, ingredients)
	require.NoError(t, err)
	return recipe
}

func dateAfter(base string, days int) *time.Time {
	parsed, _ := time.Parse("2006-01-02", base)
	d := parsed.AddDate(0, 0, days)
	return &d
}

// TestSuggestionService_Generate covers the scoring and ranking behavior.
func TestSuggestionService_Generate(t *testing.T) {
	const today = "2026-09-01"

	tests := []struct {
		name              string
		inventory         *model.Inventory
		recipes           []*model.Recipe
		input             service.GenerateSuggestionInput
		expectedRecipeIDs []string
		expectedExpiring  []string
		expectedTotal     int
	}{
		{
			name: "recipe using expiring milk ranks first",
			inventory: model.NewInventory(
				mustItem(t, "milk", 2, dateAfter(today, 1)),
				mustItem(t, "rice", 5, nil),
				mustItem(t, "eggs", 6, nil),
			),
			recipes: []*model.Recipe{
				mustRecipe(t, "r-rice", "Fried Rice",
					model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(2)},
					model.RecipeIngredient{IngredientID: "eggs", Amount: model.MustQuantity(2)},
				),
				mustRecipe(t, "r-pudding", "Rice Pudding",
					model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)},
					model.RecipeIngredient{IngredientID: "milk", Amount: model.MustQuantity(1)},
				),
			},
			input:             service.GenerateSuggestionInput{HouseholdID: "hh-1", Date: today, Slot: model.SlotDinner},
			expectedRecipeIDs: []string{"r-pudding", "r-rice"},
			expectedExpiring:  []string{"milk"},
			expectedTotal:     2,
		},
		{
			name: "recipes missing ingredients are not candidates",
			inventory: model.NewInventory(
				mustItem(t, "rice", 5, nil),
			),
			recipes: []*model.Recipe{
				mustRecipe(t, "r-pudding", "Rice Pudding",
					model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)},
					model.RecipeIngredient{IngredientID: "milk", Amount: model.MustQuantity(1)},
				),
			},
			input:             service.GenerateSuggestionInput{HouseholdID: "hh-1", Date: today, Slot: model.SlotLunch},
			expectedRecipeIDs: []string{},
			expectedExpiring:  []string{},
			expectedTotal:     0,
		},
		{
			name: "presence beats quantity: low stock still qualifies",
			inventory: model.NewInventory(
				mustItem(t, "rice", 0.5, nil),
			),
			recipes: []*model.Recipe{
				mustRecipe(t, "r-plain", "Plain Rice",
					model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(3)},
				),
			},
			input:             service.GenerateSuggestionInput{HouseholdID: "hh-1", Date: today, Slot: model.SlotDinner},
			expectedRecipeIDs: []string{"r-plain"},
			expectedExpiring:  []string{},
			expectedTotal:     1,
		},
		{
			name: "max suggestions caps the list but not the candidate total",
			inventory: model.NewInventory(
				mustItem(t, "rice", 5, nil),
			),
			recipes: []*model.Recipe{
				mustRecipe(t, "r-1", "One", model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)}),
				mustRecipe(t, "r-2", "Two", model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)}),
				mustRecipe(t, "r-3", "Three", model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)}),
			},
			input: service.GenerateSuggestionInput{
				HouseholdID:    "hh-1",
				Date:           today,
				Slot:           model.SlotDinner,
				MaxSuggestions: 2,
			},
			expectedRecipeIDs: []string{"r-1", "r-2"},
			expectedExpiring:  []string{},
			expectedTotal:     3,
		},
		{
			name: "equal scores keep catalog order",
			inventory: model.NewInventory(
				mustItem(t, "rice", 5, nil),
				mustItem(t, "eggs", 6, nil),
			),
			recipes: []*model.Recipe{
				mustRecipe(t, "r-a", "A", model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)}),
				mustRecipe(t, "r-b", "B", model.RecipeIngredient{IngredientID: "eggs", Amount: model.MustQuantity(1)}),
			},
			input:             service.GenerateSuggestionInput{HouseholdID: "hh-1", Date: today, Slot: model.SlotBreakfast},
			expectedRecipeIDs: []string{"r-a", "r-b"},
			expectedExpiring:  []string{},
			expectedTotal:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
			recipeRepo := new(mocks.MockRecipeRepositoryInterface)
			suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

			inventoryRepo.On("GetByHouseholdID", mock.Anything, tt.input.HouseholdID).Return(tt.inventory, nil)
			recipeRepo.On("ListByHouseholdID", mock.Anything, tt.input.HouseholdID).Return(tt.recipes, nil)

			svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
			result, err := svc.Generate(context.Background(), tt.input)
			require.NoError(t, err)

			gotIDs := make([]string, 0, len(result.Recipes))
			for _, r := range result.Recipes {
				gotIDs = append(gotIDs, r.RecipeID)
			}
			assert.Equal(t, tt.expectedRecipeIDs, gotIDs)
			assert.Equal(t, tt.expectedExpiring, result.Reasoning.UsedExpiringIngredients)
			assert.Equal(t, tt.expectedTotal, result.Reasoning.TotalCandidateRecipes)
			inventoryRepo.AssertExpectations(t)
		})
	}
}

// TestSuggestionService_Generate_NoInventory verifies the empty result for a
// household without an inventory record.
func TestSuggestionService_Generate_NoInventory(t *testing.T) {
	inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
	recipeRepo := new(mocks.MockRecipeRepositoryInterface)
	suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

	inventoryRepo.On("GetByHouseholdID", mock.Anything, "hh-empty").Return(nil, nil)

	svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
	result, err := svc.Generate(context.Background(), service.GenerateSuggestionInput{
		HouseholdID: "hh-empty",
		Date:        "2026-09-01",
		Slot:        model.SlotDinner,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Recipes)
	assert.Empty(t, result.Reasoning.UsedExpiringIngredients)
	assert.Equal(t, 0, result.Reasoning.TotalCandidateRecipes)
	recipeRepo.AssertNotCalled(t, "ListByHouseholdID", mock.Anything, mock.Anything)
}

// TestSuggestionService_GenerateAndStore verifies positions follow rank order
// and the record is upserted as PROPOSED.
func TestSuggestionService_GenerateAndStore(t *testing.T) {
	const today = "2026-09-01"

	inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
	recipeRepo := new(mocks.MockRecipeRepositoryInterface)
	suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

	inventoryRepo.On("GetByHouseholdID", mock.Anything, "hh-1").Return(model.NewInventory(
		mustItem(t, "milk", 2, dateAfter(today, 1)),
		mustItem(t, "rice", 5, nil),
	), nil)
	recipeRepo.On("ListByHouseholdID", mock.Anything, "hh-1").Return([]*model.Recipe{
		mustRecipe(t, "r-plain", "Plain Rice", model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)}),
		mustRecipe(t, "r-pudding", "Rice Pudding",
			model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)},
			model.RecipeIngredient{IngredientID: "milk", Amount: model.MustQuantity(1)},
		),
	}, nil)

	var captured repository.SuggestionUpsert
	suggestionRepo.On("UpsertDailySuggestion", mock.Anything, mock.MatchedBy(func(data repository.SuggestionUpsert) bool {
		captured = data
		return true
	})).Return(&repository.SuggestionRecord{ID: "sg-1", Status: model.StatusProposed}, nil)

	svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
	record, err := svc.GenerateAndStore(context.Background(), service.GenerateSuggestionInput{
		HouseholdID: "hh-1",
		Date:        today,
		Slot:        model.SlotDinner,
	})

	require.NoError(t, err)
	assert.Equal(t, "sg-1", record.ID)
	assert.Equal(t, model.StatusProposed, captured.Status)
	require.Len(t, captured.Recipes, 2)
	assert.Equal(t, "r-pudding", captured.Recipes[0].RecipeID)
	assert.Equal(t, 0, captured.Recipes[0].Position)
	assert.Equal(t, "r-plain", captured.Recipes[1].RecipeID)
	assert.Equal(t, 1, captured.Recipes[1].Position)
}

// TestSuggestionService_Accept covers the consume-then-persist workflow.
func TestSuggestionService_Accept(t *testing.T) {
	record := &repository.SuggestionRecord{
		ID:          "sg-1",
		HouseholdID: "hh-1",
		Date:        "2026-09-01",
		Slot:        model.SlotDinner,
		Status:      model.StatusProposed,
		Recipes: []model.SuggestionRecipe{
			{RecipeID: "r-pudding", Name: "Rice Pudding", Position: 0},
		},
	}
	pudding := mustRecipe(t, "r-pudding", "Rice Pudding",
		model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)},
		model.RecipeIngredient{IngredientID: "milk", Amount: model.MustQuantity(1)},
	)

	t.Run("consumes ingredients and saves before marking accepted", func(t *testing.T) {
		inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
		recipeRepo := new(mocks.MockRecipeRepositoryInterface)
		suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

		inventory := model.NewInventory(
			mustItem(t, "milk", 2, nil),
			mustItem(t, "rice", 1, nil),
		)

		suggestionRepo.On("GetByID", mock.Anything, "sg-1").Return(record, nil)
		inventoryRepo.On("GetByHouseholdID", mock.Anything, "hh-1").Return(inventory, nil)
		recipeRepo.On("GetByIDs", mock.Anything, "hh-1", []string{"r-pudding"}).Return([]*model.Recipe{pudding}, nil)
		inventoryRepo.On("Save", mock.Anything, "hh-1", inventory).Return(nil)
		suggestionRepo.On("SetStatus", mock.Anything, "sg-1", model.StatusAccepted).Return(nil)

		svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
		transition, err := svc.Accept(context.Background(), "sg-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusAccepted, transition.Status)

		milk, ok := inventory.Item("milk")
		require.True(t, ok)
		assert.InDelta(t, 1.0, milk.Quantity().Value(), 1e-9)
		_, ok = inventory.Item("rice")
		assert.False(t, ok, "fully consumed rice should be removed")

		inventoryRepo.AssertExpectations(t)
		suggestionRepo.AssertExpectations(t)
	})

	t.Run("accepting an accepted suggestion is a no-op success", func(t *testing.T) {
		inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
		recipeRepo := new(mocks.MockRecipeRepositoryInterface)
		suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

		accepted := *record
		accepted.Status = model.StatusAccepted
		suggestionRepo.On("GetByID", mock.Anything, "sg-1").Return(&accepted, nil)

		svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
		transition, err := svc.Accept(context.Background(), "sg-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusAccepted, transition.Status)
		inventoryRepo.AssertNotCalled(t, "GetByHouseholdID", mock.Anything, mock.Anything)
		inventoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		suggestionRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("insufficient quantity aborts without saving", func(t *testing.T) {
		inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
		recipeRepo := new(mocks.MockRecipeRepositoryInterface)
		suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

		inventory := model.NewInventory(
			mustItem(t, "milk", 0.5, nil),
			mustItem(t, "rice", 1, nil),
		)

		suggestionRepo.On("GetByID", mock.Anything, "sg-1").Return(record, nil)
		inventoryRepo.On("GetByHouseholdID", mock.Anything, "hh-1").Return(inventory, nil)
		recipeRepo.On("GetByIDs", mock.Anything, "hh-1", []string{"r-pudding"}).Return([]*model.Recipe{pudding}, nil)

		svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
		_, err := svc.Accept(context.Background(), "sg-1")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInsufficientQuantity)
		inventoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		suggestionRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown suggestion", func(t *testing.T) {
		inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
		recipeRepo := new(mocks.MockRecipeRepositoryInterface)
		suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

		suggestionRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
		_, err := svc.Accept(context.Background(), "missing")

		assert.ErrorIs(t, err, model.ErrSuggestionNotFound)
	})

	t.Run("missing inventory", func(t *testing.T) {
		inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
		recipeRepo := new(mocks.MockRecipeRepositoryInterface)
		suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

		suggestionRepo.On("GetByID", mock.Anything, "sg-1").Return(record, nil)
		inventoryRepo.On("GetByHouseholdID", mock.Anything, "hh-1").Return(nil, nil)

		svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
		_, err := svc.Accept(context.Background(), "sg-1")

		assert.ErrorIs(t, err, model.ErrInventoryNotFound)
	})
}

// TestSuggestionService_Modify covers the replace-recipes workflow.
func TestSuggestionService_Modify(t *testing.T) {
	proposed := &repository.SuggestionRecord{
		ID:          "sg-1",
		HouseholdID: "hh-1",
		Date:        "2026-09-01",
		Slot:        model.SlotDinner,
		Status:      model.StatusProposed,
	}

	t.Run("replaces recipes in caller order", func(t *testing.T) {
		inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
		recipeRepo := new(mocks.MockRecipeRepositoryInterface)
		suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

		suggestionRepo.On("GetByID", mock.Anything, "sg-1").Return(proposed, nil)
		// Catalog order differs from caller order.
		recipeRepo.On("GetByIDs", mock.Anything, "hh-1", []string{"r-b", "r-a"}).Return([]*model.Recipe{
			mustRecipe(t, "r-a", "A", model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)}),
			mustRecipe(t, "r-b", "B", model.RecipeIngredient{IngredientID: "eggs", Amount: model.MustQuantity(1)}),
		}, nil)

		var captured repository.SuggestionUpsert
		suggestionRepo.On("UpsertDailySuggestion", mock.Anything, mock.MatchedBy(func(data repository.SuggestionUpsert) bool {
			captured = data
			return true
		})).Return(&repository.SuggestionRecord{ID: "sg-1", Status: model.StatusModified}, nil)

		svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
		transition, err := svc.Modify(context.Background(), "sg-1", []string{"r-b", "r-a"})

		require.NoError(t, err)
		assert.Equal(t, model.StatusModified, transition.Status)
		assert.Equal(t, model.StatusModified, captured.Status)
		require.Len(t, captured.Recipes, 2)
		assert.Equal(t, "r-b", captured.Recipes[0].RecipeID)
		assert.Equal(t, 0, captured.Recipes[0].Position)
		assert.Equal(t, "r-a", captured.Recipes[1].RecipeID)
		assert.Equal(t, 1, captured.Recipes[1].Position)
	})

	t.Run("accepted suggestions are immutable", func(t *testing.T) {
		inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
		recipeRepo := new(mocks.MockRecipeRepositoryInterface)
		suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

		accepted := *proposed
		accepted.Status = model.StatusAccepted
		suggestionRepo.On("GetByID", mock.Anything, "sg-1").Return(&accepted, nil)

		svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
		_, err := svc.Modify(context.Background(), "sg-1", []string{"r-a"})

		assert.ErrorIs(t, err, model.ErrSuggestionAccepted)
		recipeRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unresolved recipe ids fail strictly", func(t *testing.T) {
		inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
		recipeRepo := new(mocks.MockRecipeRepositoryInterface)
		suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

		suggestionRepo.On("GetByID", mock.Anything, "sg-1").Return(proposed, nil)
		recipeRepo.On("GetByIDs", mock.Anything, "hh-1", []string{"r-a", "r-ghost"}).Return([]*model.Recipe{
			mustRecipe(t, "r-a", "A", model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)}),
		}, nil)

		svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
		_, err := svc.Modify(context.Background(), "sg-1", []string{"r-a", "r-ghost"})

		assert.ErrorIs(t, err, model.ErrRecipesNotFound)
		suggestionRepo.AssertNotCalled(t, "UpsertDailySuggestion", mock.Anything, mock.Anything)
	})

	t.Run("unknown suggestion", func(t *testing.T) {
		inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
		recipeRepo := new(mocks.MockRecipeRepositoryInterface)
		suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

		suggestionRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
		_, err := svc.Modify(context.Background(), "missing", []string{"r-a"})

		assert.ErrorIs(t, err, model.ErrSuggestionNotFound)
	})

	t.Run("modified suggestions can be modified again", func(t *testing.T) {
		inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
		recipeRepo := new(mocks.MockRecipeRepositoryInterface)
		suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

		modified := *proposed
		modified.Status = model.StatusModified
		suggestionRepo.On("GetByID", mock.Anything, "sg-1").Return(&modified, nil)
		recipeRepo.On("GetByIDs", mock.Anything, "hh-1", []string{"r-a"}).Return([]*model.Recipe{
			mustRecipe(t, "r-a", "A", model.RecipeIngredient{IngredientID: "rice", Amount: model.MustQuantity(1)}),
		}, nil)
		suggestionRepo.On("UpsertDailySuggestion", mock.Anything, mock.Anything).
			Return(&repository.SuggestionRecord{ID: "sg-1", Status: model.StatusModified}, nil)

		svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
		transition, err := svc.Modify(context.Background(), "sg-1", []string{"r-a"})

		require.NoError(t, err)
		assert.Equal(t, model.StatusModified, transition.Status)
	})
}

// TestSuggestionService_RepositoryErrors verifies failures propagate.
func TestSuggestionService_RepositoryErrors(t *testing.T) {
	repoErr := errors.New("connection reset")

	inventoryRepo := new(mocks.MockInventoryRepositoryInterface)
	recipeRepo := new(mocks.MockRecipeRepositoryInterface)
	suggestionRepo := new(mocks.MockSuggestionRepositoryInterface)

	inventoryRepo.On("GetByHouseholdID", mock.Anything, "hh-1").Return(nil, repoErr)

	svc := service.NewSuggestionService(inventoryRepo, recipeRepo, suggestionRepo)
	_, err := svc.Generate(context.Background(), service.GenerateSuggestionInput{
		HouseholdID: "hh-1",
		Date:        "2026-09-01",
		Slot:        model.SlotDinner,
	})

	assert.ErrorIs(t, err, repoErr)
}
