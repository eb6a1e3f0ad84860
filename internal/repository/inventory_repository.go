// Package repository provides data access for household inventories.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/casaplan/meal-planner/internal/domain/model"
)

// InventoryItemDocument is one embedded item of an inventory document.
type InventoryItemDocument struct {
	IngredientID   string     `bson:"ingredient_id" json:"ingredient_id"`
	Quantity       float64    `bson:"quantity" json:"quantity"`
	ExpirationDate *time.Time `bson:"expiration_date,omitempty" json:"expiration_date,omitempty"`
}

// InventoryDocument is the stored shape of a household inventory.
type InventoryDocument struct {
	HouseholdID string                  `bson:"household_id" json:"household_id"`
	Items       []InventoryItemDocument `bson:"items" json:"items"`
	UpdatedAt   time.Time               `bson:"updated_at" json:"updated_at"`
}

// InventoryRepository provides MongoDB-backed inventory storage.
type InventoryRepository struct {
	collection *mongo.Collection
}

// NewInventoryRepository creates a new inventory repository.
func NewInventoryRepository(db *MongoDB) *InventoryRepository {
	return &InventoryRepository{
		collection: db.Inventories,
	}
}

// GetByHouseholdID loads and hydrates a household's inventory.
// Returns (nil, nil) when the household has no inventory record.
func (r *InventoryRepository) GetByHouseholdID(ctx context.Context, householdID string) (*model.Inventory, error) {
	var doc InventoryDocument
	err := r.collection.FindOne(ctx, bson.M{"household_id": householdID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return hydrateInventory(doc)
}

// Save persists the aggregate wholesale: the stored item list is replaced by
// the aggregate's current items, mirroring the in-memory state exactly.
func (r *InventoryRepository) Save(ctx context.Context, householdID string, inventory *model.Inventory) error {
	items := inventory.Items()
	doc := InventoryDocument{
		HouseholdID: householdID,
		Items:       make([]InventoryItemDocument, 0, len(items)),
		UpdatedAt:   time.Now().UTC(),
	}
	for _, item := range items {
		doc.Items = append(doc.Items, InventoryItemDocument{
			IngredientID:   item.IngredientID(),
			Quantity:       item.Quantity().Value(),
			ExpirationDate: item.Expiration(),
		})
	}

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"household_id": householdID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

// hydrateInventory rebuilds the aggregate from its stored shape, re-applying
// the domain invariants (merge-on-duplicate, non-negative quantities).
func hydrateInventory(doc InventoryDocument) (*model.Inventory, error) {
	items := make([]*model.InventoryItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		qty, err := model.NewQuantity(it.Quantity)
		if err != nil {
			return nil, err
		}
		item, err := model.NewInventoryItem(it.IngredientID, qty, it.ExpirationDate)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return model.NewInventory(items...), nil
}
