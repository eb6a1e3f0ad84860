package model

import "errors"

var (
	// ErrInvalidQuantity indicates a negative quantity on creation or subtraction.
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
	// ErrIngredientNotFound indicates a consume targeting an ingredient absent from inventory.
	ErrIngredientNotFound = errors.New("ingredient not found in inventory")
	// ErrInsufficientQuantity indicates a consume amount exceeding the held quantity.
	ErrInsufficientQuantity = errors.New("insufficient quantity in inventory")
	// ErrInventoryNotFound indicates the household has no inventory record.
	ErrInventoryNotFound = errors.New("inventory not found")
	// ErrRecipeValidation indicates a recipe constructed with missing id, name or ingredients.
	ErrRecipeValidation = errors.New("invalid recipe")
	// ErrNoRecipes indicates the household has no recipes to plan with.
	ErrNoRecipes = errors.New("no recipes available")
	// ErrSuggestionNotFound indicates an unknown suggestion id.
	ErrSuggestionNotFound = errors.New("suggestion not found")
	// ErrSuggestionAccepted indicates a modification attempt on an accepted suggestion.
	ErrSuggestionAccepted = errors.New("suggestion already accepted")
	// ErrRecipesNotFound indicates that not all requested recipe ids resolved.
	ErrRecipesNotFound = errors.New("some recipes were not found")
)
