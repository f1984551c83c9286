package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sainaa19/StockWise/internal/middleware"
	"github.com/sainaa19/StockWise/internal/models"
	"github.com/sainaa19/StockWise/internal/services"
)

// RecommendationHandler handles the recommendations endpoint
type RecommendationHandler struct {
	portfolioSvc *services.PortfolioService
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(portfolioSvc *services.PortfolioService) *RecommendationHandler {
	return &RecommendationHandler{portfolioSvc: portfolioSvc}
}

// List handles GET /recommendations
// @Summary Ranked recommendations
// @Description Buy/hold/sell suggestions for every holding, ranked by importance
// @Tags recommendations
// @Produce json
// @Param X-User-ID header int true "User ID"
// @Param limit query int false "Maximum results (default and cap 10)"
// @Success 200 {object} models.RecommendationsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /recommendations [get]
func (h *RecommendationHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: "limit must be an integer",
			})
			return
		}
		limit = parsed
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	recs, err := h.portfolioSvc.GetRecommendations(ctx, userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.RecommendationsResponse{
		Count:           len(recs),
		Recommendations: recs,
		Warnings:        wc.GetWarnings(),
	})
}
