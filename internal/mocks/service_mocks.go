// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/repository"
	"github.com/casaplan/meal-planner/internal/service"
)

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Update(ctx context.Context, householdID string, operations []service.InventoryOperation) (service.InventoryView, error) {
	args := m.Called(ctx, householdID, operations)
	return args.Get(0).(service.InventoryView), args.Error(1)
}

func (m *MockInventoryService) Get(ctx context.Context, householdID string) (service.InventoryView, error) {
	args := m.Called(ctx, householdID)
	return args.Get(0).(service.InventoryView), args.Error(1)
}

type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) Generate(ctx context.Context, input service.GenerateSuggestionInput) (model.DailySuggestion, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(model.DailySuggestion), args.Error(1)
}

func (m *MockSuggestionService) GenerateAndStore(ctx context.Context, input service.GenerateSuggestionInput) (*repository.SuggestionRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SuggestionRecord), args.Error(1)
}

func (m *MockSuggestionService) Accept(ctx context.Context, suggestionID string) (service.SuggestionTransition, error) {
	args := m.Called(ctx, suggestionID)
	return args.Get(0).(service.SuggestionTransition), args.Error(1)
}

func (m *MockSuggestionService) Modify(ctx context.Context, suggestionID string, recipeIDs []string) (service.SuggestionTransition, error) {
	args := m.Called(ctx, suggestionID, recipeIDs)
	return args.Get(0).(service.SuggestionTransition), args.Error(1)
}

func (m *MockSuggestionService) GetDaily(ctx context.Context, householdID, date string, slot model.MealSlot) (*repository.SuggestionRecord, error) {
	args := m.Called(ctx, householdID, date, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SuggestionRecord), args.Error(1)
}

type MockPlannerService struct {
	mock.Mock
}

func (m *MockPlannerService) CookingPlan(ctx context.Context, input service.PlanInput) (model.CookingPlan, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(model.CookingPlan), args.Error(1)
}

type MockShoppingListService struct {
	mock.Mock
}

func (m *MockShoppingListService) FromRecipes(ctx context.Context, householdID string, recipes []service.RecipeInput) (service.ShoppingList, error) {
	args := m.Called(ctx, householdID, recipes)
	return args.Get(0).(service.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) FromRecipeIDs(ctx context.Context, householdID string, recipeIDs []string) (service.ShoppingList, error) {
	args := m.Called(ctx, householdID, recipeIDs)
	return args.Get(0).(service.ShoppingList), args.Error(1)
}
