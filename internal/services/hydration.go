package services

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"kumbara/internal/models"
)

const (
	// CurrentStorageKey holds the month-bucketed mapping.
	CurrentStorageKey = "monthlyBudgetData"
	// LegacyStorageKey holds the pre-bucketing flat list. It is read once and removed.
	LegacyStorageKey = "transactions"
)

// persistedRecord is a transaction as found in storage, in either format.
type persistedRecord interface {
	// toTransaction converts the record to its canonical shape and reports
	// whether a missing field had to be filled in.
	toTransaction() (models.Transaction, bool, error)
}

// currentRecord is the on-disk shape under CurrentStorageKey. Records written
// before payment tracking existed carry no isPaid.
type currentRecord struct {
	ID          string                 `json:"id"`
	Type        models.TransactionType `json:"type"`
	Amount      json.Number            `json:"amount"`
	Description string                 `json:"description"`
	Date        string                 `json:"date"`
	Category    string                 `json:"category,omitempty"`
	IsPaid      *bool                  `json:"isPaid,omitempty"`
}

func (r currentRecord) toTransaction() (models.Transaction, bool, error) {
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return models.Transaction{}, false, fmt.Errorf("transaction %q: invalid amount %q: %w", r.ID, r.Amount, err)
	}
	tx := models.Transaction{
		ID:          r.ID,
		Type:        r.Type,
		Amount:      amount,
		Description: r.Description,
		Date:        r.Date,
		Category:    r.Category,
		IsPaid:      true,
	}
	if r.IsPaid == nil {
		return tx, true, nil
	}
	tx.IsPaid = *r.IsPaid
	return tx, false, nil
}

// legacyRecord is the on-disk shape under LegacyStorageKey. Every legacy
// record is treated as settled.
type legacyRecord struct {
	ID          string                 `json:"id"`
	Type        models.TransactionType `json:"type"`
	Amount      json.Number            `json:"amount"`
	Description string                 `json:"description"`
	Date        string                 `json:"date"`
	Category    string                 `json:"category,omitempty"`
}

func (r legacyRecord) toTransaction() (models.Transaction, bool, error) {
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return models.Transaction{}, false, fmt.Errorf("legacy transaction %q: invalid amount %q: %w", r.ID, r.Amount, err)
	}
	return models.Transaction{
		ID:          r.ID,
		Type:        r.Type,
		Amount:      amount,
		Description: r.Description,
		Date:        r.Date,
		Category:    r.Category,
		IsPaid:      true,
	}, true, nil
}

func recordFromTransaction(tx models.Transaction) currentRecord {
	isPaid := tx.IsPaid
	return currentRecord{
		ID:          tx.ID,
		Type:        tx.Type,
		Amount:      json.Number(tx.Amount.String()),
		Description: tx.Description,
		Date:        tx.Date,
		Category:    tx.Category,
		IsPaid:      &isPaid,
	}
}

// decodeCurrent parses the current-format payload. Months whose lists are
// empty are dropped; changed reports whether anything was backfilled or dropped.
func decodeCurrent(payload string) (months models.MonthlyData, changed bool, err error) {
	var raw map[string][]currentRecord
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", CurrentStorageKey, err)
	}

	months = make(models.MonthlyData, len(raw))
	for month, records := range raw {
		if len(records) == 0 {
			changed = true
			continue
		}
		txs, backfilled, err := convertRecords(records)
		if err != nil {
			return nil, false, fmt.Errorf("decode %s month %s: %w", CurrentStorageKey, month, err)
		}
		changed = changed || backfilled
		months[month] = txs
	}
	return months, changed, nil
}

// decodeLegacy parses the flat legacy list and buckets every record under month.
func decodeLegacy(payload, month string) (models.MonthlyData, error) {
	var records []legacyRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", LegacyStorageKey, err)
	}

	months := make(models.MonthlyData)
	if len(records) == 0 {
		return months, nil
	}
	txs, _, err := convertRecords(records)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", LegacyStorageKey, err)
	}
	months[month] = txs
	return months, nil
}

func convertRecords[R persistedRecord](records []R) ([]models.Transaction, bool, error) {
	txs := make([]models.Transaction, 0, len(records))
	anyBackfilled := false
	for _, r := range records {
		tx, backfilled, err := r.toTransaction()
		if err != nil {
			return nil, false, err
		}
		anyBackfilled = anyBackfilled || backfilled
		txs = append(txs, tx)
	}
	return txs, anyBackfilled, nil
}

func encodeMonths(months models.MonthlyData) (string, error) {
	out := make(map[string][]currentRecord, len(months))
	for month, txs := range months {
		records := make([]currentRecord, len(txs))
		for i, tx := range txs {
			records[i] = recordFromTransaction(tx)
		}
		out[month] = records
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", CurrentStorageKey, err)
	}
	return string(b), nil
}
