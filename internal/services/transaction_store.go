package services

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"kumbara/internal/categories"
	"kumbara/internal/logger"
	"kumbara/internal/models"
	"kumbara/internal/storage"
	"kumbara/internal/uuid"
)

// draftDateLayout is the timestamp layout given to drafts without a date.
const draftDateLayout = "2006-01-02T15:04:05.000Z"

var hundred = decimal.NewFromInt(100)

// transactionStore owns the month-bucketed transactions and mirrors every
// change to a KeyValueStore as a full snapshot.
type transactionStore struct {
	mu          sync.RWMutex
	kv          storage.KeyValueStore
	categorizer *categories.Categorizer
	months      models.MonthlyData
	now         func() time.Time
	newID       func() string
	log         *zap.SugaredLogger
}

// StoreOption customizes a transaction store at construction.
type StoreOption func(*transactionStore)

// WithClock sets the clock used for default draft dates and for the month
// legacy records are migrated into.
func WithClock(now func() time.Time) StoreOption {
	return func(s *transactionStore) { s.now = now }
}

// WithIDGenerator sets the function producing new transaction ids.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *transactionStore) { s.newID = newID }
}

// NewTransactionStore creates a TransactionStorer and hydrates it from kv.
// Hydration never fails: unreadable data is logged and the store starts empty.
func NewTransactionStore(kv storage.KeyValueStore, categorizer *categories.Categorizer, opts ...StoreOption) TransactionStorer {
	s := &transactionStore{
		kv:          kv,
		categorizer: categorizer,
		months:      make(models.MonthlyData),
		now:         time.Now,
		newID:       uuid.New,
		log:         logger.Named("transaction_store"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate()
	return s
}

func (s *transactionStore) hydrate() {
	payload, ok, err := s.kv.Get(CurrentStorageKey)
	if err != nil {
		s.log.Errorw("Failed to read transactions, starting empty", "key", CurrentStorageKey, "error", err)
		return
	}
	if ok {
		months, changed, err := decodeCurrent(payload)
		if err != nil {
			s.log.Errorw("Failed to parse transactions, starting empty", "key", CurrentStorageKey, "error", err)
			return
		}
		s.months = months
		if changed {
			s.log.Infow("Backfilled stored transactions", "months", len(months))
			s.persist()
		}
		return
	}

	s.migrateLegacy()
}

// migrateLegacy moves the flat legacy list under the current month. The
// legacy key is only removed once the current key has been written, so a
// failed write retries the migration on the next start.
func (s *transactionStore) migrateLegacy() {
	payload, ok, err := s.kv.Get(LegacyStorageKey)
	if err != nil {
		s.log.Errorw("Failed to read legacy transactions, starting empty", "key", LegacyStorageKey, "error", err)
		return
	}
	if !ok {
		return
	}

	month := s.now().UTC().Format("2006-01")
	months, err := decodeLegacy(payload, month)
	if err != nil {
		s.log.Errorw("Failed to parse legacy transactions, starting empty", "key", LegacyStorageKey, "error", err)
		return
	}
	s.months = months

	if !s.persist() {
		return
	}
	if err := s.kv.Remove(LegacyStorageKey); err != nil {
		s.log.Errorw("Failed to remove legacy transactions", "key", LegacyStorageKey, "error", err)
		return
	}
	s.log.Infow("Migrated legacy transactions", "month", month, "count", len(months[month]))
}

// persist writes the full mapping. Failures are logged and the in-memory
// state is kept; the next successful write supersedes the stale snapshot.
// Callers must hold the write lock.
func (s *transactionStore) persist() bool {
	payload, err := encodeMonths(s.months)
	if err != nil {
		s.log.Errorw("Failed to encode transactions", "error", err)
		return false
	}
	if err := s.kv.Set(CurrentStorageKey, payload); err != nil {
		s.log.Errorw("Failed to persist transactions", "key", CurrentStorageKey, "error", err)
		return false
	}
	return true
}

// AddTransaction assigns an id to draft, appends it to its month and persists.
// A draft without a date is dated now; a draft without IsPaid is settled.
func (s *transactionStore) AddTransaction(draft models.TransactionDraft) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := draft.Date
	if date == "" {
		date = s.now().UTC().Format(draftDateLayout)
	}
	isPaid := true
	if draft.IsPaid != nil {
		isPaid = *draft.IsPaid
	}

	tx := models.Transaction{
		ID:          s.newID(),
		Type:        draft.Type,
		Amount:      draft.Amount,
		Description: draft.Description,
		Date:        date,
		Category:    draft.Category,
		IsPaid:      isPaid,
	}

	month := tx.Month()
	s.months[month] = append(s.months[month], tx)
	s.persist()
	return tx
}

// DeleteTransaction removes every transaction with the given id. Months left
// empty are dropped. It reports whether anything was removed.
func (s *transactionStore) DeleteTransaction(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	for month, txs := range s.months {
		kept := make([]models.Transaction, 0, len(txs))
		for _, tx := range txs {
			if tx.ID == id {
				removed = true
				continue
			}
			kept = append(kept, tx)
		}
		if len(kept) == len(txs) {
			continue
		}
		if len(kept) == 0 {
			delete(s.months, month)
		} else {
			s.months[month] = kept
		}
	}

	if removed {
		s.persist()
	}
	return removed
}

// UpdatePaymentStatus sets isPaid on the transaction with the given id.
func (s *transactionStore) UpdatePaymentStatus(id string, isPaid bool) (models.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		updated models.Transaction
		found   bool
		changed bool
	)
	for _, txs := range s.months {
		for i := range txs {
			if txs[i].ID != id {
				continue
			}
			if txs[i].IsPaid != isPaid {
				txs[i].IsPaid = isPaid
				changed = true
			}
			updated, found = txs[i], true
		}
	}

	if changed {
		s.persist()
	}
	return updated, found
}

// RecategorizeAll re-runs the categorizer over every description and returns
// how many transactions changed category.
func (s *transactionStore) RecategorizeAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, txs := range s.months {
		for i := range txs {
			category := s.categorizer.Categorize(txs[i].Description)
			if txs[i].Category != category {
				txs[i].Category = category
				count++
			}
		}
	}

	if count > 0 {
		s.persist()
	}
	return count
}

// MarkAllAsPending flags every settled expense as unpaid and returns how many
// transactions changed.
func (s *transactionStore) MarkAllAsPending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, txs := range s.months {
		for i := range txs {
			if txs[i].Type == models.TransactionTypeExpense && txs[i].IsPaid {
				txs[i].IsPaid = false
				count++
			}
		}
	}

	if count > 0 {
		s.persist()
	}
	return count
}

// GetMonthData returns a copy of the month's transactions in insertion order.
func (s *transactionStore) GetMonthData(month string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Transaction{}, s.months[month]...)
}

// GetAllMonths returns every month key, most recent first.
func (s *transactionStore) GetAllMonths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	months := make([]string, 0, len(s.months))
	for month := range s.months {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// GetMonthlyStats aggregates the month's transactions. An absent month
// yields zero stats.
func (s *transactionStore) GetMonthlyStats(month string) models.MonthlyStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return computeStats(s.months[month])
}

// MonthlyTransactions returns a deep copy of the whole mapping.
func (s *transactionStore) MonthlyTransactions() models.MonthlyData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.months.Clone()
}

func computeStats(txs []models.Transaction) models.MonthlyStats {
	stats := models.MonthlyStats{
		TotalIncome:      decimal.Zero,
		TotalExpenses:    decimal.Zero,
		RemainingDebt:    decimal.Zero,
		TransactionCount: len(txs),
	}
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			stats.TotalIncome = stats.TotalIncome.Add(tx.Amount)
		case models.TransactionTypeExpense:
			stats.TotalExpenses = stats.TotalExpenses.Add(tx.Amount)
		}
		if tx.IsDebt() {
			stats.RemainingDebt = stats.RemainingDebt.Add(tx.Amount)
		}
	}

	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpenses)
	stats.SpendingRatio = decimal.Zero
	if stats.TotalIncome.IsPositive() {
		stats.SpendingRatio = stats.TotalExpenses.Div(stats.TotalIncome).Mul(hundred)
	}
	return stats
}
