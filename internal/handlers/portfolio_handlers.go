package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sainaa19/StockWise/internal/analytics"
	"github.com/sainaa19/StockWise/internal/middleware"
	"github.com/sainaa19/StockWise/internal/models"
	"github.com/sainaa19/StockWise/internal/services"
)

// PortfolioHandler handles the dashboard and holding upload endpoints
type PortfolioHandler struct {
	portfolioSvc *services.PortfolioService
	pricingSvc   *services.PricingService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioSvc *services.PortfolioService, pricingSvc *services.PricingService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioSvc: portfolioSvc,
		pricingSvc:   pricingSvc,
	}
}

// GetDashboard handles GET /portfolio
// @Summary Portfolio dashboard
// @Description Totals, normalized holdings with allocation, and a compact recommendation summary
// @Tags portfolio
// @Produce json
// @Param X-User-ID header int true "User ID"
// @Success 200 {object} models.DashboardResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /portfolio [get]
func (h *PortfolioHandler) GetDashboard(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	ctx, wc := services.NewWarningContext(c.Request.Context())
	dashboard, err := h.portfolioSvc.GetDashboard(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	dashboard.Warnings = wc.GetWarnings()
	c.JSON(http.StatusOK, dashboard)
}

// ReplaceHoldings handles PUT /portfolio/holdings
// @Summary Replace raw holding records
// @Description Replaces the user's stored records with a JSON array of loosely-typed objects
// @Tags portfolio
// @Accept json
// @Produce json
// @Param X-User-ID header int true "User ID"
// @Success 200 {object} models.ReplaceHoldingsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /portfolio/holdings [put]
func (h *PortfolioHandler) ReplaceHoldings(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	records, err := analytics.DecodeRecords(body)
	if err != nil {
		var parseErr *analytics.ParseError
		if errors.As(err, &parseErr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "parse_error",
				Message: parseErr.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	h.storeRecords(c, userID, records)
}

// UploadHoldings handles POST /portfolio/holdings/upload
// @Summary Upload holdings CSV
// @Description Parses a CSV file into raw holding records and stores them
// @Tags portfolio
// @Accept multipart/form-data
// @Produce json
// @Param X-User-ID header int true "User ID"
// @Param file formData file true "Holdings CSV"
// @Success 200 {object} models.ReplaceHoldingsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /portfolio/holdings/upload [post]
func (h *PortfolioHandler) UploadHoldings(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "missing file upload",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	defer file.Close()

	records, err := ParseHoldingsCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "parse_error",
			Message: err.Error(),
		})
		return
	}

	h.storeRecords(c, userID, records)
}

// RefreshPrices handles POST /portfolio/refresh-prices
// @Summary Refresh current prices
// @Description Rewrites current_price on stored records from the quote table
// @Tags portfolio
// @Produce json
// @Param X-User-ID header int true "User ID"
// @Success 200 {object} models.RefreshPricesResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /portfolio/refresh-prices [post]
func (h *PortfolioHandler) RefreshPrices(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	ctx, wc := services.NewWarningContext(c.Request.Context())
	updated, err := h.pricingSvc.RefreshUserPrices(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.RefreshPricesResponse{
		Updated:  updated,
		Warnings: wc.GetWarnings(),
	})
}

func (h *PortfolioHandler) storeRecords(c *gin.Context, userID int64, records []any) {
	ctx, wc := services.NewWarningContext(c.Request.Context())
	count, err := h.portfolioSvc.ReplaceHoldings(ctx, userID, records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ReplaceHoldingsResponse{
		Count:    count,
		Warnings: wc.GetWarnings(),
	})
}
