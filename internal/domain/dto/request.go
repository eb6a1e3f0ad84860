// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "time"

const dateLayout = "2006-01-02"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidHouseholdID is returned when household_id is missing.
	ErrInvalidHouseholdID = &ValidationError{
		Field:   "household_id",
		Message: "must not be empty",
	}
	// ErrInvalidDate is returned when date is not a YYYY-MM-DD value.
	ErrInvalidDate = &ValidationError{
		Field:   "date",
		Message: "must be a YYYY-MM-DD date",
	}
	// ErrInvalidSlot is returned when slot is not a known meal slot.
	ErrInvalidSlot = &ValidationError{
		Field:   "slot",
		Message: "must be one of BREAKFAST, LUNCH, DINNER",
	}
	// ErrNoOperations is returned when an update carries no operations.
	ErrNoOperations = &ValidationError{
		Field:   "operations",
		Message: "must contain at least one operation",
	}
	// ErrNoRecipeIDs is returned when a recipe id list is empty.
	ErrNoRecipeIDs = &ValidationError{
		Field:   "recipe_ids",
		Message: "must contain at least one recipe id",
	}
)

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

func validSlot(slot string) bool {
	switch slot {
	case "BREAKFAST", "LUNCH", "DINNER":
		return true
	default:
		return false
	}
}

// InventoryOperationRequest is one step of an inventory update.
//
// @Description A single ADD or CONSUME operation on an ingredient
type InventoryOperationRequest struct {
	// Type is the operation kind: ADD or CONSUME.
	Type string `json:"type" binding:"required,oneof=ADD CONSUME" example:"ADD"`
	// IngredientID identifies the ingredient the operation applies to.
	IngredientID string `json:"ingredient_id" binding:"required" example:"milk"`
	// Amount is the quantity to add or consume. Must not be negative.
	Amount float64 `json:"amount" binding:"gte=0" example:"2"`
	// ExpirationDate is an optional YYYY-MM-DD date, only meaningful for ADD.
	ExpirationDate string `json:"expiration_date,omitempty" example:"2026-09-03"`
} // @name InventoryOperationRequest

// UpdateInventoryRequest represents the JSON request body for the inventory
// update endpoint.
//
// @Description Request to apply a list of operations to a household inventory
type UpdateInventoryRequest struct {
	HouseholdID string                      `json:"household_id" binding:"required" example:"hh-1"`
	Operations  []InventoryOperationRequest `json:"operations" binding:"required,min=1,dive"`
} // @name UpdateInventoryRequest

// Validate performs custom validation on the request.
func (r *UpdateInventoryRequest) Validate() error {
	if r.HouseholdID == "" {
		return ErrInvalidHouseholdID
	}
	if len(r.Operations) == 0 {
		return ErrNoOperations
	}
	for _, op := range r.Operations {
		if op.ExpirationDate != "" && !validDate(op.ExpirationDate) {
			return &ValidationError{Field: "expiration_date", Message: "must be a YYYY-MM-DD date"}
		}
	}
	return nil
}

// GenerateSuggestionRequest represents the JSON request body for the
// suggestion generation endpoint.
//
// @Description Request to generate a daily meal suggestion
type GenerateSuggestionRequest struct {
	HouseholdID string `json:"household_id" binding:"required" example:"hh-1"`
	// Date is the suggestion day in YYYY-MM-DD format.
	Date string `json:"date" binding:"required" example:"2026-09-01"`
	// Slot is the meal slot: BREAKFAST, LUNCH or DINNER.
	Slot string `json:"slot" binding:"required,oneof=BREAKFAST LUNCH DINNER" example:"DINNER"`
	// MaxSuggestions caps the number of suggested recipes. Defaults to 3.
	MaxSuggestions int `json:"max_suggestions,omitempty" example:"3" minimum:"1"`
	// ExpiringDaysThreshold is the expiring-soon window in days. Defaults to 3.
	ExpiringDaysThreshold int `json:"expiring_days_threshold,omitempty" example:"3" minimum:"1"`
} // @name GenerateSuggestionRequest

// Validate performs custom validation on the request.
func (r *GenerateSuggestionRequest) Validate() error {
	if r.HouseholdID == "" {
		return ErrInvalidHouseholdID
	}
	if !validDate(r.Date) {
		return ErrInvalidDate
	}
	if !validSlot(r.Slot) {
		return ErrInvalidSlot
	}
	return nil
}

// ModifySuggestionRequest represents the JSON request body for replacing a
// suggestion's recipes.
//
// @Description Request to replace the recipes of an existing suggestion
type ModifySuggestionRequest struct {
	// RecipeIDs is the replacement recipe list, in the desired order.
	RecipeIDs []string `json:"recipe_ids" binding:"required,min=1"`
} // @name ModifySuggestionRequest

// Validate performs custom validation on the request.
func (r *ModifySuggestionRequest) Validate() error {
	if len(r.RecipeIDs) == 0 {
		return ErrNoRecipeIDs
	}
	for _, id := range r.RecipeIDs {
		if id == "" {
			return &ValidationError{Field: "recipe_ids", Message: "ids must not be empty"}
		}
	}
	return nil
}

// CookingPlanRequest represents the JSON request body for the cooking plan
// endpoint.
//
// @Description Request to decide what a household cooks for a meal
type CookingPlanRequest struct {
	HouseholdID string `json:"household_id" binding:"required" example:"hh-1"`
	Date        string `json:"date" binding:"required" example:"2026-09-01"`
	Slot        string `json:"slot" binding:"required,oneof=BREAKFAST LUNCH DINNER" example:"DINNER"`
	// MaxSuggestions caps the suggestion size when the plan is cookable.
	MaxSuggestions int `json:"max_suggestions,omitempty" example:"3" minimum:"1"`
} // @name CookingPlanRequest

// Validate performs custom validation on the request.
func (r *CookingPlanRequest) Validate() error {
	if r.HouseholdID == "" {
		return ErrInvalidHouseholdID
	}
	if !validDate(r.Date) {
		return ErrInvalidDate
	}
	if !validSlot(r.Slot) {
		return ErrInvalidSlot
	}
	return nil
}

// ShoppingRecipeIngredient is one required ingredient of an embedded recipe.
type ShoppingRecipeIngredient struct {
	IngredientID string  `json:"ingredient_id" binding:"required" example:"milk"`
	Amount       float64 `json:"amount" binding:"gte=0" example:"2"`
} // @name ShoppingRecipeIngredient

// ShoppingRecipe is a recipe embedded directly in a shopping list request.
type ShoppingRecipe struct {
	ID          string                     `json:"id" binding:"required" example:"r-pudding"`
	Name        string                     `json:"name" binding:"required" example:"Rice Pudding"`
	Ingredients []ShoppingRecipeIngredient `json:"ingredients" binding:"required,min=1,dive"`
} // @name ShoppingRecipe

// ShoppingListRequest represents the JSON request body for computing a
// shopping list from embedded recipes.
//
// @Description Request to compute the missing ingredients for a set of recipes
type ShoppingListRequest struct {
	HouseholdID string           `json:"household_id" binding:"required" example:"hh-1"`
	Recipes     []ShoppingRecipe `json:"recipes" binding:"required,min=1,dive"`
} // @name ShoppingListRequest

// Validate performs custom validation on the request.
func (r *ShoppingListRequest) Validate() error {
	if r.HouseholdID == "" {
		return ErrInvalidHouseholdID
	}
	if len(r.Recipes) == 0 {
		return &ValidationError{Field: "recipes", Message: "must contain at least one recipe"}
	}
	return nil
}

// ShoppingListFromIDsRequest represents the JSON request body for computing a
// shopping list from catalog recipe ids.
//
// @Description Request to compute the missing ingredients for catalog recipes
type ShoppingListFromIDsRequest struct {
	HouseholdID string   `json:"household_id" binding:"required" example:"hh-1"`
	RecipeIDs   []string `json:"recipe_ids" binding:"required,min=1"`
} // @name ShoppingListFromIDsRequest

// Validate performs custom validation on the request.
func (r *ShoppingListFromIDsRequest) Validate() error {
	if r.HouseholdID == "" {
		return ErrInvalidHouseholdID
	}
	if len(r.RecipeIDs) == 0 {
		return ErrNoRecipeIDs
	}
	return nil
}
