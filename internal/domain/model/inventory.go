package model

import (
	"fmt"
	"time"
)

// Inventory is the aggregate of everything a household holds, keyed by
// ingredient id with at most one item per ingredient. Each Inventory
// exclusively owns its items; callers must not share items across aggregates.
type Inventory struct {
	items map[string]*InventoryItem
	order []string
}

// NewInventory builds an inventory from an optional seed list, merging
// duplicate ingredient ids the same way AddIngredient does. Used by
// persistence hydration.
func NewInventory(items ...*InventoryItem) *Inventory {
	inv := &Inventory{items: make(map[string]*InventoryItem)}
	for _, item := range items {
		existing, ok := inv.items[item.IngredientID()]
		if !ok {
			inv.put(item)
			continue
		}
		existing.Add(item.Quantity())
		existing.adoptExpiration(item.Expiration())
	}
	return inv
}

// Items returns the items in insertion order.
func (inv *Inventory) Items() []*InventoryItem {
	out := make([]*InventoryItem, 0, len(inv.order))
	for _, id := range inv.order {
		out = append(out, inv.items[id])
	}
	return out
}

// Item returns the item for an ingredient id, if present.
func (inv *Inventory) Item(ingredientID string) (*InventoryItem, bool) {
	item, ok := inv.items[ingredientID]
	return item, ok
}

// Len returns the number of distinct ingredients held.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// AddIngredient creates a new item or merges into the existing one.
// Merging sums quantities; the expiration date is adopted only when the
// existing item has none (first date wins, no lot tracking).
func (inv *Inventory) AddIngredient(ingredientID string, amount Quantity, expiration *time.Time) error {
	existing, ok := inv.items[ingredientID]
	if !ok {
		item, err := NewInventoryItem(ingredientID, amount, expiration)
		if err != nil {
			return err
		}
		inv.put(item)
		return nil
	}

	existing.Add(amount)
	existing.adoptExpiration(expiration)
	return nil
}

// ConsumeIngredient subtracts the amount from an ingredient's item and removes
// the item entirely when the remaining quantity is exactly zero.
func (inv *Inventory) ConsumeIngredient(ingredientID string, amount Quantity) error {
	existing, ok := inv.items[ingredientID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrIngredientNotFound, ingredientID)
	}

	if err := existing.Consume(amount); err != nil {
		return err
	}

	if existing.Quantity().IsZero() {
		inv.remove(ingredientID)
	}
	return nil
}

// ExpiringSoon returns the items expiring within thresholdDays of the
// reference date, including already-expired ones.
func (inv *Inventory) ExpiringSoon(reference time.Time, thresholdDays int) []*InventoryItem {
	var out []*InventoryItem
	for _, item := range inv.Items() {
		if item.IsExpiringSoon(reference, thresholdDays) {
			out = append(out, item)
		}
	}
	return out
}

func (inv *Inventory) put(item *InventoryItem) {
	inv.items[item.IngredientID()] = item
	inv.order = append(inv.order, item.IngredientID())
}

func (inv *Inventory) remove(ingredientID string) {
	delete(inv.items, ingredientID)
	for i, id := range inv.order {
		if id == ingredientID {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
}
