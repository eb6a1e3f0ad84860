package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/casaplan/meal-planner/internal/domain/dto"
	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/metrics"
	"github.com/casaplan/meal-planner/internal/service"
)

// SuggestionHandler provides HTTP handlers for suggestion routes.
type SuggestionHandler struct {
	suggestionService service.SuggestionService
}

// NewSuggestionHandler creates a new SuggestionHandler instance.
func NewSuggestionHandler(suggestionService service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

// GenerateSuggestion handles POST /api/suggestions/generate requests.
//
// @Summary      Generate a meal suggestion
// @Description  Scores the household's candidate recipes against the inventory, preferring recipes that use soon-to-expire ingredients, and stores the result as a PROPOSED suggestion for the given day and slot.
// @Tags         Suggestions
// @Accept       json
// @Produce      json
// @Param        request body dto.GenerateSuggestionRequest true "Generation parameters"
// @Success      200 {object} dto.SuccessResponse "Stored suggestion"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/suggestions/generate [post]
func (h *SuggestionHandler) GenerateSuggestion(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.GenerateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	slot, err := model.ParseMealSlot(req.Slot)
	if err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	start := time.Now()
	record, err := h.suggestionService.GenerateAndStore(c.Request.Context(), service.GenerateSuggestionInput{
		HouseholdID:           req.HouseholdID,
		Date:                  req.Date,
		Slot:                  slot,
		MaxSuggestions:        req.MaxSuggestions,
		ExpiringDaysThreshold: req.ExpiringDaysThreshold,
	})
	if err != nil {
		metrics.RecordSuggestionGeneration(time.Since(start), "error")
		respondError(builder, err)
		return
	}
	metrics.RecordSuggestionGeneration(time.Since(start), "success")

	builder.SuccessOK(record)
}

// GetDailySuggestion handles GET /api/suggestions requests.
//
// @Summary      Get the stored suggestion for a day and slot
// @Description  Looks up the persisted suggestion for a household, date and meal slot.
// @Tags         Suggestions
// @Produce      json
// @Param        household_id query string true "Household identifier"
// @Param        date query string true "Day in YYYY-MM-DD format"
// @Param        slot query string true "Meal slot: BREAKFAST, LUNCH or DINNER"
// @Success      200 {object} dto.SuccessResponse "Stored suggestion"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - no suggestion for the key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/suggestions [get]
func (h *SuggestionHandler) GetDailySuggestion(c *gin.Context) {
	builder := NewResponseBuilder(c)

	householdID := c.Query("household_id")
	date := c.Query("date")
	if householdID == "" || date == "" {
		builder.Error(http.StatusBadRequest, "household_id and date are required", nil)
		return
	}
	slot, err := model.ParseMealSlot(c.Query("slot"))
	if err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	record, err := h.suggestionService.GetDaily(c.Request.Context(), householdID, date, slot)
	if err != nil {
		respondError(builder, err)
		return
	}
	if record == nil {
		builder.Error(http.StatusNotFound, "no suggestion for the given day and slot", nil)
		return
	}

	builder.SuccessOK(record)
}

// AcceptSuggestion handles POST /api/suggestions/:id/accept requests.
//
// @Summary      Accept a suggestion
// @Description  Consumes the suggestion's recipe ingredients from the household inventory and marks the suggestion ACCEPTED. Accepting an already accepted suggestion is a no-op success.
// @Tags         Suggestions
// @Produce      json
// @Param        id path string true "Suggestion identifier"
// @Success      200 {object} dto.SuccessResponse "Resulting status"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown suggestion or inventory"
// @Failure      409 {object} dto.ErrorResponse "Conflict - insufficient inventory"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/suggestions/{id}/accept [post]
func (h *SuggestionHandler) AcceptSuggestion(c *gin.Context) {
	builder := NewResponseBuilder(c)

	transition, err := h.suggestionService.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(builder, err)
		return
	}
	metrics.RecordSuggestionTransition(string(transition.Status))

	builder.SuccessOK(transition)
}

// ModifySuggestion handles POST /api/suggestions/:id/modify requests.
//
// @Summary      Modify a suggestion
// @Description  Replaces the suggestion's recipes with the given catalog recipes, in the given order, and marks the suggestion MODIFIED. Accepted suggestions are immutable.
// @Tags         Suggestions
// @Accept       json
// @Produce      json
// @Param        id path string true "Suggestion identifier"
// @Param        request body dto.ModifySuggestionRequest true "Replacement recipe ids"
// @Success      200 {object} dto.SuccessResponse "Resulting status"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown suggestion or recipes"
// @Failure      409 {object} dto.ErrorResponse "Conflict - suggestion already accepted"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/suggestions/{id}/modify [post]
func (h *SuggestionHandler) ModifySuggestion(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ModifySuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	transition, err := h.suggestionService.Modify(c.Request.Context(), c.Param("id"), req.RecipeIDs)
	if err != nil {
		respondError(builder, err)
		return
	}
	metrics.RecordSuggestionTransition(string(transition.Status))

	builder.SuccessOK(transition)
}
