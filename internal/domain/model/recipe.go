package model

import "fmt"

// RecipeIngredient is one required ingredient of a recipe.
type RecipeIngredient struct {
	IngredientID string
	Amount       Quantity
}

// Recipe is an immutable named list of required ingredients.
type Recipe struct {
	id          string
	name        string
	ingredients []RecipeIngredient
}

// NewRecipe validates and creates a recipe. Id, name and at least one
// ingredient are required; violations fail with ErrRecipeValidation.
func NewRecipe(id, name string, ingredients []RecipeIngredient) (*Recipe, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrRecipeValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrRecipeValidation)
	}
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", ErrRecipeValidation)
	}

	copied := make([]RecipeIngredient, len(ingredients))
	copy(copied, ingredients)

	return &Recipe{id: id, name: name, ingredients: copied}, nil
}

// ID returns the recipe identifier.
func (r *Recipe) ID() string {
	return r.id
}

// Name returns the recipe name.
func (r *Recipe) Name() string {
	return r.name
}

// Ingredients returns the required ingredients in recipe order.
func (r *Recipe) Ingredients() []RecipeIngredient {
	return r.ingredients
}
