// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casaplan/meal-planner/internal/domain/model"
)

type MockInventoryRepositoryInterface struct {
	mock.Mock
}

func (m *MockInventoryRepositoryInterface) GetByHouseholdID(ctx context.Context, householdID string) (*model.Inventory, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inventory), args.Error(1)
}

func (m *MockInventoryRepositoryInterface) Save(ctx context.Context, householdID string, inventory *model.Inventory) error {
	args := m.Called(ctx, householdID, inventory)
	return args.Error(0)
}
