package model

// PlanKind discriminates the two outcomes of a cooking plan request.
type PlanKind string

const (
	// PlanKindSuggestion means at least one recipe is fully cookable and a
	// suggestion was generated and persisted.
	PlanKindSuggestion PlanKind = "SUGGESTION"
	// PlanKindNeedsShopping means nothing is cookable; the plan carries the
	// best almost-cookable recipe and its minimal shopping list.
	PlanKindNeedsShopping PlanKind = "NEEDS_SHOPPING"
)

// ShoppingListItem is one missing ingredient and the amount to buy.
type ShoppingListItem struct {
	IngredientID  string  `json:"ingredient_id"`
	MissingAmount float64 `json:"missing_amount"`
}

// PlanRecipeRef identifies a recipe in a plan result.
type PlanRecipeRef struct {
	RecipeID string `json:"recipe_id"`
	Name     string `json:"name"`
}

// PlanSuggestion is the SUGGESTION branch payload.
type PlanSuggestion struct {
	SuggestionID string             `json:"suggestion_id"`
	Status       SuggestionStatus   `json:"status"`
	Recipes      []SuggestionRecipe `json:"recipes"`
}

// PlanShopping is the NEEDS_SHOPPING branch payload.
type PlanShopping struct {
	TargetRecipe PlanRecipeRef      `json:"target_recipe"`
	Items        []ShoppingListItem `json:"items"`
}

// CookingPlan is the tagged result of the cooking plan orchestrator.
// Exactly one of Suggestion and Shopping is set, according to Kind.
type CookingPlan struct {
	Kind        PlanKind        `json:"kind"`
	HouseholdID string          `json:"household_id"`
	Date        string          `json:"date"`
	Slot        MealSlot        `json:"slot"`
	Suggestion  *PlanSuggestion `json:"suggestion,omitempty"`
	Shopping    *PlanShopping   `json:"shopping,omitempty"`
}

// NewSuggestionPlan builds the SUGGESTION outcome.
func NewSuggestionPlan(householdID, date string, slot MealSlot, suggestion PlanSuggestion) CookingPlan {
	return CookingPlan{
		Kind:        PlanKindSuggestion,
		HouseholdID: householdID,
		Date:        date,
		Slot:        slot,
		Suggestion:  &suggestion,
	}
}

// NewShoppingPlan builds the NEEDS_SHOPPING outcome.
func NewShoppingPlan(householdID, date string, slot MealSlot, shopping PlanShopping) CookingPlan {
	return CookingPlan{
		Kind:        PlanKindNeedsShopping,
		HouseholdID: householdID,
		Date:        date,
		Slot:        slot,
		Shopping:    &shopping,
	}
}
