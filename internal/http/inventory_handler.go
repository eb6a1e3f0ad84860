// Package http provides the HTTP handlers and router for the meal planner API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casaplan/meal-planner/internal/domain/dto"
	"github.com/casaplan/meal-planner/internal/metrics"
	"github.com/casaplan/meal-planner/internal/service"
)

// InventoryHandler provides HTTP handlers for inventory routes.
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler instance.
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// UpdateInventory handles POST /api/inventory/update requests.
//
// @Summary      Update household inventory
// @Description  Applies a list of ADD and CONSUME operations to a household inventory in order. A failing operation aborts the whole update unsaved.
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateInventoryRequest true "Operations to apply"
// @Success      200 {object} dto.SuccessResponse "Updated inventory"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown ingredient consumed"
// @Failure      409 {object} dto.ErrorResponse "Conflict - insufficient quantity"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/inventory/update [post]
func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	operations := make([]service.InventoryOperation, 0, len(req.Operations))
	for _, op := range req.Operations {
		operations = append(operations, service.InventoryOperation{
			Type:           service.OperationType(op.Type),
			IngredientID:   op.IngredientID,
			Amount:         op.Amount,
			ExpirationDate: op.ExpirationDate,
		})
		metrics.RecordInventoryOperations(op.Type, 1)
	}

	view, err := h.inventoryService.Update(c.Request.Context(), req.HouseholdID, operations)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(view)
}

// GetInventory handles GET /api/inventory/:householdId requests.
//
// @Summary      Get household inventory
// @Description  Returns the current inventory of a household. A household without an inventory record reads as empty.
// @Tags         Inventory
// @Produce      json
// @Param        householdId path string true "Household identifier"
// @Success      200 {object} dto.SuccessResponse "Current inventory"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/inventory/{householdId} [get]
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	householdID := c.Param("householdId")
	if householdID == "" {
		builder.Error(http.StatusBadRequest, "household id is required", nil)
		return
	}

	view, err := h.inventoryService.Get(c.Request.Context(), householdID)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(view)
}
