package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kumbara/internal/format"
	"kumbara/internal/models"
	"kumbara/internal/services"
)

// AnalyticsHandler handles cross-month analytics requests.
type AnalyticsHandler struct {
	analytics services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// OverviewResponse holds totals over every month.
type OverviewResponse struct {
	Overview  models.Overview `json:"overview"`
	Formatted struct {
		TotalIncome   string `json:"totalIncome"`
		TotalExpenses string `json:"totalExpenses"`
		Balance       string `json:"balance"`
	} `json:"formatted"`
}

// CategoryTotalsResponse lists expense totals per category, largest first.
type CategoryTotalsResponse struct {
	Categories []models.CategoryTotal `json:"categories"`
}

// TrendResponse lists per-month totals, oldest first.
type TrendResponse struct {
	Trend []models.MonthTrend `json:"trend"`
}

// GetOverview returns totals over every month
// @Summary     Get overview
// @Description Total income, expenses and balance with month and transaction counts
// @Tags        analytics
// @Produce     json
// @Success     200 {object} OverviewResponse "Overview"
// @Router      /analytics/overview [get]
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	var resp OverviewResponse
	resp.Overview = h.analytics.GetOverview()
	resp.Formatted.TotalIncome = format.FormatCurrency(resp.Overview.TotalIncome)
	resp.Formatted.TotalExpenses = format.FormatCurrency(resp.Overview.TotalExpenses)
	resp.Formatted.Balance = format.FormatCurrency(resp.Overview.Balance)
	c.JSON(http.StatusOK, resp)
}

// GetCategoryTotals returns expense totals per category
// @Summary     Get spending by category
// @Description Expense totals per category across all months, largest first. Uncategorized expenses are skipped.
// @Tags        analytics
// @Produce     json
// @Success     200 {object} CategoryTotalsResponse "Category totals"
// @Router      /analytics/categories [get]
func (h *AnalyticsHandler) GetCategoryTotals(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryTotalsResponse{Categories: h.analytics.GetCategoryTotals()})
}

// GetTrend returns per-month totals
// @Summary     Get monthly trend
// @Description Income, expenses and balance per month, oldest first
// @Tags        analytics
// @Produce     json
// @Success     200 {object} TrendResponse "Trend"
// @Router      /analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	c.JSON(http.StatusOK, TrendResponse{Trend: h.analytics.GetTrend()})
}
