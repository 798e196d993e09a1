package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"kumbara/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Amount parses a decimal literal, failing the test on malformed input.
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// DateIn returns an ISO-8601 timestamp inside the given YYYY-MM month.
func DateIn(month string, day int) string {
	return fmt.Sprintf("%s-%02dT10:30:00.000Z", month, day)
}

// IncomeDraft creates a settled income draft dated in month.
func IncomeDraft(t *testing.T, month, amount, description string) models.TransactionDraft {
	t.Helper()
	return models.TransactionDraft{
		Type:        models.TransactionTypeIncome,
		Amount:      Amount(t, amount),
		Description: description,
		Date:        DateIn(month, 1),
	}
}

// ExpenseDraft creates a settled expense draft dated in month.
func ExpenseDraft(t *testing.T, month, amount, description string) models.TransactionDraft {
	t.Helper()
	return models.TransactionDraft{
		Type:        models.TransactionTypeExpense,
		Amount:      Amount(t, amount),
		Description: description,
		Date:        DateIn(month, 2),
	}
}

// UnpaidExpenseDraft creates an outstanding expense draft dated in month.
func UnpaidExpenseDraft(t *testing.T, month, amount, description string) models.TransactionDraft {
	t.Helper()
	d := ExpenseDraft(t, month, amount, description)
	unpaid := false
	d.IsPaid = &unpaid
	return d
}

// UniqueDescription returns a description that no other fixture shares.
func UniqueDescription(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, nextID())
}
