// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/repository"
)

type MockSuggestionRepositoryInterface struct {
	mock.Mock
}

func (m *MockSuggestionRepositoryInterface) UpsertDailySuggestion(ctx context.Context, data repository.SuggestionUpsert) (*repository.SuggestionRecord, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SuggestionRecord), args.Error(1)
}

func (m *MockSuggestionRepositoryInterface) GetDailySuggestion(ctx context.Context, householdID, date string, slot model.MealSlot) (*repository.SuggestionRecord, error) {
	args := m.Called(ctx, householdID, date, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SuggestionRecord), args.Error(1)
}

func (m *MockSuggestionRepositoryInterface) GetByID(ctx context.Context, suggestionID string) (*repository.SuggestionRecord, error) {
	args := m.Called(ctx, suggestionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SuggestionRecord), args.Error(1)
}

func (m *MockSuggestionRepositoryInterface) SetStatus(ctx context.Context, suggestionID string, status model.SuggestionStatus) error {
	args := m.Called(ctx, suggestionID, status)
	return args.Error(0)
}
