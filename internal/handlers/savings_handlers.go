package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sainaa19/StockWise/internal/analytics"
	"github.com/sainaa19/StockWise/internal/models"
	"github.com/sainaa19/StockWise/internal/services"
)

// SavingsHandler handles the savings projection endpoint
type SavingsHandler struct {
	savingsSvc *services.SavingsService
}

// NewSavingsHandler creates a new SavingsHandler
func NewSavingsHandler(savingsSvc *services.SavingsService) *SavingsHandler {
	return &SavingsHandler{savingsSvc: savingsSvc}
}

// CreatePlan handles POST /savings/plan
// @Summary Savings goal projection
// @Description Required monthly contribution, full schedule, and fallback plans when unaffordable
// @Tags savings
// @Accept json
// @Produce json
// @Param request body models.SavingsPlanRequest true "Plan parameters"
// @Success 200 {object} models.SavingsPlan
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /savings/plan [post]
func (h *SavingsHandler) CreatePlan(c *gin.Context) {
	var req models.SavingsPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	plan, err := h.savingsSvc.Project(&req)
	if err != nil {
		var invalid *analytics.InvalidInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_input",
				Message: fmt.Sprintf("%s is out of range", invalid.Field),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, plan)
}
