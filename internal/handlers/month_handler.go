package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kumbara/internal/format"
	"kumbara/internal/models"
	"kumbara/internal/pagination"
	"kumbara/internal/services"
)

// MonthHandler handles per-month requests.
type MonthHandler struct {
	store services.TransactionStorer
}

// NewMonthHandler creates a new MonthHandler.
func NewMonthHandler(store services.TransactionStorer) *MonthHandler {
	return &MonthHandler{store: store}
}

// MonthSummary names a month that has transactions.
type MonthSummary struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// MonthListResponse lists months, most recent first.
type MonthListResponse struct {
	Months []MonthSummary `json:"months"`
}

// FormattedStats holds the monthly aggregates rendered as Turkish lira.
type FormattedStats struct {
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	RemainingDebt string `json:"remainingDebt"`
	Balance       string `json:"balance"`
}

// MonthStatsResponse holds a month's aggregates.
type MonthStatsResponse struct {
	Month     string              `json:"month"`
	Name      string              `json:"name"`
	Stats     models.MonthlyStats `json:"stats"`
	Formatted FormattedStats      `json:"formatted"`
}

// ListMonths returns every month with transactions
// @Summary     List months
// @Description List month keys that have transactions, most recent first, with Turkish display names
// @Tags        months
// @Produce     json
// @Success     200 {object} MonthListResponse "Months"
// @Router      /months [get]
func (h *MonthHandler) ListMonths(c *gin.Context) {
	keys := h.store.GetAllMonths()
	months := make([]MonthSummary, len(keys))
	for i, key := range keys {
		months[i] = MonthSummary{Key: key, Name: format.MonthName(key)}
	}
	c.JSON(http.StatusOK, MonthListResponse{Months: months})
}

// GetMonthTransactions returns a page of a month's transactions
// @Summary     List a month's transactions
// @Description Paginated transactions of one month in insertion order. Months without transactions return an empty page.
// @Tags        months
// @Produce     json
// @Param       month     path  string true  "Month key (YYYY-MM)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid month or pagination"
// @Router      /months/{month}/transactions [get]
func (h *MonthHandler) GetMonthTransactions(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	c.JSON(http.StatusOK, pagination.Slice(h.store.GetMonthData(month), page))
}

// GetMonthStats returns a month's aggregates
// @Summary     Get monthly statistics
// @Description Income, expenses, remaining debt, balance and spending ratio of one month. Absent months yield zeros.
// @Tags        months
// @Produce     json
// @Param       month path string true "Month key (YYYY-MM)"
// @Success     200 {object} MonthStatsResponse "Statistics"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Router      /months/{month}/stats [get]
func (h *MonthHandler) GetMonthStats(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	stats := h.store.GetMonthlyStats(month)
	c.JSON(http.StatusOK, MonthStatsResponse{
		Month: month,
		Name:  format.MonthName(month),
		Stats: stats,
		Formatted: FormattedStats{
			TotalIncome:   format.FormatCurrency(stats.TotalIncome),
			TotalExpenses: format.FormatCurrency(stats.TotalExpenses),
			RemainingDebt: format.FormatCurrency(stats.RemainingDebt),
			Balance:       format.FormatCurrency(stats.Balance),
		},
	})
}
