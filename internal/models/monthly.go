package models

import "github.com/shopspring/decimal"

// MonthlyData maps a YYYY-MM month key to the transactions recorded in that month,
// in insertion order.
type MonthlyData map[string][]Transaction

// Clone returns a deep copy that shares no slices with m.
func (m MonthlyData) Clone() MonthlyData {
	out := make(MonthlyData, len(m))
	for month, txs := range m {
		out[month] = append([]Transaction(nil), txs...)
	}
	return out
}

// MonthlyStats contains the aggregates of a single month.
type MonthlyStats struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	RemainingDebt    decimal.Decimal `json:"remainingDebt"`
	Balance          decimal.Decimal `json:"balance"`
	SpendingRatio    decimal.Decimal `json:"spendingRatio"`
	TransactionCount int             `json:"transactionCount"`
}

// Overview aggregates statistics across every recorded month.
type Overview struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	Balance           decimal.Decimal `json:"balance"`
	TotalMonths       int             `json:"totalMonths"`
	TotalTransactions int             `json:"totalTransactions"`
}

// CategoryTotal is the expense total of one category across all months.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Color    string          `json:"color"`
	Icon     string          `json:"icon"`
}

// MonthTrend is one point of the chronological income/expense series.
type MonthTrend struct {
	Month      string          `json:"month"`
	Label      string          `json:"label"`
	ShortLabel string          `json:"shortLabel"`
	Income     decimal.Decimal `json:"income"`
	Expenses   decimal.Decimal `json:"expenses"`
	Balance    decimal.Decimal `json:"balance"`
}
