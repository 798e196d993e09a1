package models

import "github.com/shopspring/decimal"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the supported transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense entry.
// Category is empty for records created before categorization existed.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Category    string          `json:"category,omitempty"`
	IsPaid      bool            `json:"isPaid"`
}

// IsDebt reports whether the transaction is an expense that is still outstanding.
func (t Transaction) IsDebt() bool {
	return t.Type == TransactionTypeExpense && !t.IsPaid
}

// Month returns the YYYY-MM bucket the transaction belongs to.
func (t Transaction) Month() string {
	return MonthOf(t.Date)
}

// TransactionDraft is a transaction that has not been assigned an ID yet.
// A nil IsPaid means the transaction is settled.
type TransactionDraft struct {
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Date        string
	Category    string
	IsPaid      *bool
}

// MonthOf derives the month key from an ISO-8601 date string.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
