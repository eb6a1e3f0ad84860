// Package repository provides data access for persisted daily suggestions.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/casaplan/meal-planner/internal/domain/model"
)

// SuggestionRecord is the stored shape of a daily suggestion.
// (household_id, date, slot) is the unique upsert key.
type SuggestionRecord struct {
	ID          string                   `bson:"_id" json:"id"`
	HouseholdID string                   `bson:"household_id" json:"household_id"`
	Date        string                   `bson:"date" json:"date"` // YYYY-MM-DD
	Slot        model.MealSlot           `bson:"slot" json:"slot"`
	Status      model.SuggestionStatus   `bson:"status" json:"status"`
	Recipes     []model.SuggestionRecipe `bson:"recipes" json:"recipes"`
	CreatedAt   time.Time                `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time                `bson:"updated_at" json:"updated_at"`
}

// SuggestionRepository provides MongoDB-backed suggestion storage.
type SuggestionRepository struct {
	collection *mongo.Collection
}

// NewSuggestionRepository creates a new suggestion repository.
func NewSuggestionRepository(db *MongoDB) *SuggestionRepository {
	return &SuggestionRepository{
		collection: db.Suggestions,
	}
}

// UpsertDailySuggestion inserts or replaces the suggestion for the
// (household, date, slot) key. The recipe list is replaced wholesale.
func (r *SuggestionRepository) UpsertDailySuggestion(ctx context.Context, data SuggestionUpsert) (*SuggestionRecord, error) {
	now := time.Now().UTC()
	recipes := data.Recipes
	if recipes == nil {
		recipes = []model.SuggestionRecipe{}
	}

	filter := bson.M{
		"household_id": data.HouseholdID,
		"date":         data.Date,
		"slot":         data.Slot,
	}
	update := bson.M{
		"$set": bson.M{
			"status":     data.Status,
			"recipes":    recipes,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":        uuid.New().String(),
			"created_at": now,
		},
	}

	var record SuggestionRecord
	err := r.collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&record)
	if err != nil {
		return nil, fmt.Errorf("upsert daily suggestion: %w", err)
	}

	return &record, nil
}

// GetDailySuggestion returns the suggestion for the given key, or (nil, nil).
func (r *SuggestionRepository) GetDailySuggestion(ctx context.Context, householdID, date string, slot model.MealSlot) (*SuggestionRecord, error) {
	filter := bson.M{
		"household_id": householdID,
		"date":         date,
		"slot":         slot,
	}

	var record SuggestionRecord
	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByID returns the suggestion with the given id, or (nil, nil).
func (r *SuggestionRepository) GetByID(ctx context.Context, suggestionID string) (*SuggestionRecord, error) {
	var record SuggestionRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": suggestionID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// SetStatus updates the lifecycle status of a stored suggestion.
// Fails with model.ErrSuggestionNotFound for an unknown id.
func (r *SuggestionRepository) SetStatus(ctx context.Context, suggestionID string, status model.SuggestionStatus) error {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": suggestionID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", model.ErrSuggestionNotFound, suggestionID)
	}
	return nil
}
