package service

import (
	"context"
	"fmt"
	"time"

	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/repository"
)

// OperationType discriminates inventory update operations.
type OperationType string

const (
	// OpAdd adds quantity to an ingredient, creating the item if needed.
	OpAdd OperationType = "ADD"
	// OpConsume subtracts quantity, deleting the item when it reaches zero.
	OpConsume OperationType = "CONSUME"
)

// InventoryOperation is one step of an inventory update.
type InventoryOperation struct {
	Type           OperationType
	IngredientID   string
	Amount         float64
	ExpirationDate string // YYYY-MM-DD, only meaningful for ADD
}

// InventoryItemView is the read shape of one held ingredient.
type InventoryItemView struct {
	IngredientID   string  `json:"ingredient_id"`
	Quantity       float64 `json:"quantity"`
	ExpirationDate *string `json:"expiration_date,omitempty"`
}

// InventoryView is the read shape of a household inventory.
type InventoryView struct {
	HouseholdID string              `json:"household_id"`
	Items       []InventoryItemView `json:"items"`
}

// InventoryService applies update operations to a household inventory and
// reads it back.
type InventoryService interface {
	Update(ctx context.Context, householdID string, operations []InventoryOperation) (InventoryView, error)
	Get(ctx context.Context, householdID string) (InventoryView, error)
}

// InventoryServiceImpl implements InventoryService.
type InventoryServiceImpl struct {
	inventoryRepo repository.InventoryRepositoryInterface
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(inventoryRepo repository.InventoryRepositoryInterface) *InventoryServiceImpl {
	return &InventoryServiceImpl{inventoryRepo: inventoryRepo}
}

// Update loads (or starts) the aggregate, applies the operations in order and
// saves it wholesale. Any failing operation aborts the update unsaved.
func (s *InventoryServiceImpl) Update(ctx context.Context, householdID string, operations []InventoryOperation) (InventoryView, error) {
	inventory, err := s.inventoryRepo.GetByHouseholdID(ctx, householdID)
	if err != nil {
		return InventoryView{}, err
	}
	if inventory == nil {
		inventory = model.NewInventory()
	}

	for _, op := range operations {
		amount, err := model.NewQuantity(op.Amount)
		if err != nil {
			return InventoryView{}, fmt.Errorf("operation on %q: %w", op.IngredientID, err)
		}

		switch op.Type {
		case OpAdd:
			var expiration *time.Time
			if op.ExpirationDate != "" {
				parsed, err := time.Parse(dateLayout, op.ExpirationDate)
				if err != nil {
					return InventoryView{}, fmt.Errorf("parse expiration date %q: %w", op.ExpirationDate, err)
				}
				expiration = &parsed
			}
			if err := inventory.AddIngredient(op.IngredientID, amount, expiration); err != nil {
				return InventoryView{}, err
			}
		case OpConsume:
			if err := inventory.ConsumeIngredient(op.IngredientID, amount); err != nil {
				return InventoryView{}, err
			}
		default:
			return InventoryView{}, fmt.Errorf("unknown operation type %q", op.Type)
		}
	}

	if err := s.inventoryRepo.Save(ctx, householdID, inventory); err != nil {
		return InventoryView{}, err
	}

	return viewOf(householdID, inventory), nil
}

// Get returns the inventory view; a household without an inventory record
// reads as empty.
func (s *InventoryServiceImpl) Get(ctx context.Context, householdID string) (InventoryView, error) {
	inventory, err := s.inventoryRepo.GetByHouseholdID(ctx, householdID)
	if err != nil {
		return InventoryView{}, err
	}
	if inventory == nil {
		return InventoryView{HouseholdID: householdID, Items: []InventoryItemView{}}, nil
	}
	return viewOf(householdID, inventory), nil
}

func viewOf(householdID string, inventory *model.Inventory) InventoryView {
	items := inventory.Items()
	view := InventoryView{
		HouseholdID: householdID,
		Items:       make([]InventoryItemView, 0, len(items)),
	}
	for _, item := range items {
		var expiration *string
		if exp := item.Expiration(); exp != nil {
			formatted := exp.Format(dateLayout)
			expiration = &formatted
		}
		view.Items = append(view.Items, InventoryItemView{
			IngredientID:   item.IngredientID(),
			Quantity:       item.Quantity().Value(),
			ExpirationDate: expiration,
		})
	}
	return view
}
