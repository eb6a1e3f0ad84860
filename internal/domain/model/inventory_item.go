package model

import (
	"fmt"
	"time"
)

const hoursPerDay = 24

// InventoryItem is one ingredient held by a household: its quantity and,
// optionally, a single expiration date. Batches with independent expiration
// dates are not modeled; an item carries at most one date.
type InventoryItem struct {
	ingredientID string
	quantity     Quantity
	expiration   *time.Time
}

// NewInventoryItem creates an item for the given ingredient.
// The ingredient id is required.
func NewInventoryItem(ingredientID string, quantity Quantity, expiration *time.Time) (*InventoryItem, error) {
	if ingredientID == "" {
		return nil, fmt.Errorf("inventory item: ingredient id is required")
	}
	return &InventoryItem{
		ingredientID: ingredientID,
		quantity:     quantity,
		expiration:   expiration,
	}, nil
}

// IngredientID returns the ingredient identifier.
func (i *InventoryItem) IngredientID() string {
	return i.ingredientID
}

// Quantity returns the held quantity.
func (i *InventoryItem) Quantity() Quantity {
	return i.quantity
}

// Expiration returns the expiration date, or nil when the item has none.
func (i *InventoryItem) Expiration() *time.Time {
	return i.expiration
}

// Consume subtracts the given amount from the held quantity.
// Fails with ErrInsufficientQuantity when the amount exceeds what is held.
func (i *InventoryItem) Consume(amount Quantity) error {
	remaining, err := i.quantity.Subtract(amount)
	if err != nil {
		return fmt.Errorf("%w: ingredient %q holds %v, requested %v",
			ErrInsufficientQuantity, i.ingredientID, i.quantity.Value(), amount.Value())
	}
	i.quantity = remaining
	return nil
}

// Add increases the held quantity.
func (i *InventoryItem) Add(amount Quantity) {
	i.quantity = i.quantity.Add(amount)
}

// IsExpiringSoon reports whether the item expires within thresholdDays of the
// reference date. The comparison is inclusive and covers items that already
// expired. Items without an expiration date never expire soon.
func (i *InventoryItem) IsExpiringSoon(reference time.Time, thresholdDays int) bool {
	if i.expiration == nil {
		return false
	}
	diffDays := i.expiration.Sub(reference).Hours() / hoursPerDay
	return diffDays <= float64(thresholdDays)
}

// adoptExpiration sets the expiration date only when the item has none yet.
// One date per item: the first recorded date wins until lot tracking exists.
func (i *InventoryItem) adoptExpiration(expiration *time.Time) {
	if i.expiration == nil && expiration != nil {
		i.expiration = expiration
	}
}
