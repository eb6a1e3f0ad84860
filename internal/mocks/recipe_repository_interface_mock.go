// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casaplan/meal-planner/internal/domain/model"
)

type MockRecipeRepositoryInterface struct {
	mock.Mock
}

func (m *MockRecipeRepositoryInterface) ListByHouseholdID(ctx context.Context, householdID string) ([]*model.Recipe, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Recipe), args.Error(1)
}

func (m *MockRecipeRepositoryInterface) GetByIDs(ctx context.Context, householdID string, recipeIDs []string) ([]*model.Recipe, error) {
	args := m.Called(ctx, householdID, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Recipe), args.Error(1)
}
