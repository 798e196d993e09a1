package services

import "kumbara/internal/models"

// TransactionStorer defines the contract of the month-bucketed transaction store.
type TransactionStorer interface {
	AddTransaction(draft models.TransactionDraft) models.Transaction
	DeleteTransaction(id string) bool
	UpdatePaymentStatus(id string, isPaid bool) (models.Transaction, bool)
	RecategorizeAll() int
	MarkAllAsPending() int
	GetMonthData(month string) []models.Transaction
	GetAllMonths() []string
	GetMonthlyStats(month string) models.MonthlyStats
	MonthlyTransactions() models.MonthlyData
}

// AnalyticsServicer defines the contract for cross-month aggregates.
type AnalyticsServicer interface {
	GetOverview() models.Overview
	GetCategoryTotals() []models.CategoryTotal
	GetTrend() []models.MonthTrend
}
