package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casaplan/meal-planner/internal/domain/dto"
	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/metrics"
	"github.com/casaplan/meal-planner/internal/service"
)

// PlanHandler provides HTTP handlers for cooking plan routes.
type PlanHandler struct {
	plannerService service.PlannerService
}

// NewPlanHandler creates a new PlanHandler instance.
func NewPlanHandler(plannerService service.PlannerService) *PlanHandler {
	return &PlanHandler{plannerService: plannerService}
}

// CookingPlan handles POST /api/cooking-plan requests.
//
// @Summary      Decide what to cook
// @Description  Returns a stored meal suggestion when at least one recipe is fully cookable from the household inventory, or a shopping plan targeting the recipe with the fewest missing ingredients otherwise.
// @Tags         Plan
// @Accept       json
// @Produce      json
// @Param        request body dto.CookingPlanRequest true "Planning parameters"
// @Success      200 {object} dto.SuccessResponse "Cooking plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - household has no recipes"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cooking-plan [post]
func (h *PlanHandler) CookingPlan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CookingPlanRequest
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

	plan, err := h.plannerService.CookingPlan(c.Request.Context(), service.PlanInput{
		HouseholdID:    req.HouseholdID,
		Date:           req.Date,
		Slot:           slot,
		MaxSuggestions: req.MaxSuggestions,
	})
	if err != nil {
		respondError(builder, err)
		return
	}
	metrics.RecordCookingPlan(string(plan.Kind))

	builder.SuccessOK(plan)
}
