package http

import (
	"errors"
	"net/http"

	"github.com/casaplan/meal-planner/internal/domain/model"
)

// statusFromError maps domain errors onto HTTP status codes.
// Unknown errors map to 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrSuggestionNotFound),
		errors.Is(err, model.ErrInventoryNotFound),
		errors.Is(err, model.ErrIngredientNotFound),
		errors.Is(err, model.ErrRecipesNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrSuggestionAccepted),
		errors.Is(err, model.ErrInsufficientQuantity):
		return http.StatusConflict
	case errors.Is(err, model.ErrNoRecipes):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrInvalidQuantity),
		errors.Is(err, model.ErrRecipeValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError sends the mapped error response with the domain error message.
func respondError(builder *ResponseBuilder, err error) {
	builder.Error(statusFromError(err), err.Error(), err)
}
