package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"kumbara/internal/categories"
	"kumbara/internal/format"
	"kumbara/internal/models"
)

// analyticsService derives cross-month aggregates from a TransactionStorer.
type analyticsService struct {
	store       TransactionStorer
	categorizer *categories.Categorizer
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(store TransactionStorer, categorizer *categories.Categorizer) AnalyticsServicer {
	return &analyticsService{store: store, categorizer: categorizer}
}

// GetOverview sums the monthly stats of every recorded month.
func (s *analyticsService) GetOverview() models.Overview {
	months := s.store.GetAllMonths()
	overview := models.Overview{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalMonths:   len(months),
	}
	for _, month := range months {
		stats := s.store.GetMonthlyStats(month)
		overview.TotalIncome = overview.TotalIncome.Add(stats.TotalIncome)
		overview.TotalExpenses = overview.TotalExpenses.Add(stats.TotalExpenses)
		overview.TotalTransactions += stats.TransactionCount
	}
	overview.Balance = overview.TotalIncome.Sub(overview.TotalExpenses)
	return overview
}

// GetCategoryTotals returns the expense total of each category, largest first.
// Expenses without a category are not counted.
func (s *analyticsService) GetCategoryTotals() []models.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, txs := range s.store.MonthlyTransactions() {
		for _, tx := range txs {
			if tx.Type != models.TransactionTypeExpense || tx.Category == "" {
				continue
			}
			totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		}
	}

	result := make([]models.CategoryTotal, 0, len(totals))
	for name, amount := range totals {
		result = append(result, models.CategoryTotal{
			Category: name,
			Amount:   amount,
			Color:    s.categorizer.ColorOf(name),
			Icon:     s.categorizer.IconOf(name),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].Amount.Cmp(result[j].Amount); c != 0 {
			return c > 0
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// GetTrend returns per-month income, expenses and balance, oldest first.
func (s *analyticsService) GetTrend() []models.MonthTrend {
	months := s.store.GetAllMonths()
	trend := make([]models.MonthTrend, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		stats := s.store.GetMonthlyStats(months[i])
		trend = append(trend, models.MonthTrend{
			Month:      months[i],
			Label:      format.MonthName(months[i]),
			ShortLabel: format.ShortMonthName(months[i]),
			Income:     stats.TotalIncome,
			Expenses:   stats.TotalExpenses,
			Balance:    stats.Balance,
		})
	}
	return trend
}
