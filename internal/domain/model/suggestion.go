package model

import "fmt"

// SuggestionStatus is the lifecycle state of a persisted daily suggestion.
type SuggestionStatus string

const (
	// StatusProposed is the initial state set by suggestion generation.
	StatusProposed SuggestionStatus = "PROPOSED"
	// StatusAccepted is terminal; acceptance consumes the inventory.
	StatusAccepted SuggestionStatus = "ACCEPTED"
	// StatusModified marks a suggestion whose recipes were replaced by the user.
	StatusModified SuggestionStatus = "MODIFIED"
)

// Valid reports whether the status is a known lifecycle state.
func (s SuggestionStatus) Valid() bool {
	switch s {
	case StatusProposed, StatusAccepted, StatusModified:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition to next is legal.
// PROPOSED and MODIFIED may move to ACCEPTED or MODIFIED; ACCEPTED is final.
func (s SuggestionStatus) CanTransitionTo(next SuggestionStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == StatusAccepted {
		return false
	}
	return next == StatusAccepted || next == StatusModified
}

// MealSlot is the meal period a suggestion belongs to.
type MealSlot string

const (
	// SlotBreakfast is the first meal of the day.
	SlotBreakfast MealSlot = "BREAKFAST"
	// SlotLunch is the midday meal.
	SlotLunch MealSlot = "LUNCH"
	// SlotDinner is the evening meal.
	SlotDinner MealSlot = "DINNER"
)

// Valid reports whether the slot is a known meal period.
func (s MealSlot) Valid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner:
		return true
	}
	return false
}

// ParseMealSlot validates a raw slot value.
func ParseMealSlot(raw string) (MealSlot, error) {
	slot := MealSlot(raw)
	if !slot.Valid() {
		return "", fmt.Errorf("unknown meal slot %q", raw)
	}
	return slot, nil
}

// SuggestedRecipe is a recipe reference inside a generated suggestion.
type SuggestedRecipe struct {
	RecipeID string `json:"recipe_id"`
	Name     string `json:"name"`
}

// SuggestionRecipe is an ordered recipe entry of a persisted suggestion.
type SuggestionRecipe struct {
	RecipeID string `bson:"recipe_id" json:"recipe_id"`
	Name     string `bson:"recipe_name" json:"name"`
	Position int    `bson:"position" json:"position"`
}

// SuggestionReasoning explains why the generated recipes were chosen.
type SuggestionReasoning struct {
	// UsedExpiringIngredients is the union of expiring ingredient ids actually
	// used across the chosen recipes, in first-encounter order.
	UsedExpiringIngredients []string `json:"used_expiring_ingredients"`
	// TotalCandidateRecipes counts recipes that passed the presence filter,
	// before the max-suggestions cut.
	TotalCandidateRecipes int `json:"total_candidate_recipes"`
}

// DailySuggestion is the output of suggestion generation for one
// household, day and meal slot.
type DailySuggestion struct {
	HouseholdID string              `json:"household_id"`
	Date        string              `json:"date"`
	Slot        MealSlot            `json:"slot"`
	Recipes     []SuggestedRecipe   `json:"recipes"`
	Reasoning   SuggestionReasoning `json:"reasoning"`
}
