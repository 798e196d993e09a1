package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"kumbara/internal/categories"
	"kumbara/internal/middleware"
	"kumbara/internal/models"
	"kumbara/internal/testutil"
)

func setupTransactionRouter(store *mockTransactionStore) *gin.Engine {
	handler := NewTransactionHandler(store, categories.Default(), time.UTC)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/transactions", handler.GetTransactions)
	r.POST("/transactions", handler.CreateTransaction)
	r.POST("/transactions/recategorize", handler.RecategorizeAll)
	r.POST("/transactions/mark-pending", handler.MarkAllAsPending)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	r.PATCH("/transactions/:id/payment", handler.UpdatePaymentStatus)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got models.TransactionDraft
		store := &mockTransactionStore{
			addTransactionFn: func(draft models.TransactionDraft) models.Transaction {
				got = draft
				return models.Transaction{
					ID:          "tx-1",
					Type:        draft.Type,
					Amount:      draft.Amount,
					Description: draft.Description,
					Date:        draft.Date,
					Category:    draft.Category,
					IsPaid:      true,
				}
			},
		}
		r := setupTransactionRouter(store)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","amount":1200.50,"description":"  market  ","date":"2024-03-05T09:15:00.000Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.Amount.Equal(decimal.RequireFromString("1200.50")) {
			t.Errorf("expected amount 1200.50, got %s", got.Amount)
		}
		if got.Description != "market" {
			t.Errorf("expected trimmed description, got %q", got.Description)
		}
		if got.Category != "Gıda & Market" {
			t.Errorf("expected derived category, got %q", got.Category)
		}
		if got.IsPaid != nil {
			t.Errorf("expected IsPaid left unset, got %v", *got.IsPaid)
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["id"] != "tx-1" || tx["category"] != "Gıda & Market" {
			t.Errorf("unexpected transaction: %v", tx)
		}
		if got := parseJSON(t, rec)["formattedDate"]; got != "05.03.2024 09:15" {
			t.Errorf("expected formattedDate 05.03.2024 09:15, got %v", got)
		}
	})

	t.Run("formats date in configured zone", func(t *testing.T) {
		store := &mockTransactionStore{
			addTransactionFn: func(draft models.TransactionDraft) models.Transaction {
				return models.Transaction{ID: "tx-1", Type: draft.Type, Amount: draft.Amount, Date: draft.Date}
			},
		}
		handler := NewTransactionHandler(store, categories.Default(), time.FixedZone("TRT", 3*60*60))
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.POST("/transactions", handler.CreateTransaction)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"income","amount":10,"description":"Maaş","date":"2024-03-31T22:30:00.000Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := parseJSON(t, rec)["formattedDate"]; got != "01.04.2024 01:30" {
			t.Errorf("expected formattedDate 01.04.2024 01:30, got %v", got)
		}
	})

	t.Run("keeps explicit category and payment status", func(t *testing.T) {
		var got models.TransactionDraft
		store := &mockTransactionStore{
			addTransactionFn: func(draft models.TransactionDraft) models.Transaction {
				got = draft
				return models.Transaction{ID: "tx-1"}
			},
		}
		r := setupTransactionRouter(store)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","amount":"80","description":"market","category":"Diğer","isPaid":false}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Category != "Diğer" {
			t.Errorf("expected explicit category, got %q", got.Category)
		}
		if got.IsPaid == nil || *got.IsPaid {
			t.Error("expected isPaid=false to be forwarded")
		}
		if got.Date != "" {
			t.Errorf("expected empty date for the store to default, got %q", got.Date)
		}
	})

	invalid := []struct {
		name string
		body string
		code string
	}{
		{"missing type", `{"amount":10,"description":"x"}`, "INVALID_INPUT"},
		{"invalid type", `{"type":"transfer","amount":10,"description":"x"}`, "INVALID_INPUT"},
		{"zero amount", `{"type":"expense","amount":0,"description":"x"}`, "INVALID_INPUT"},
		{"negative amount", `{"type":"expense","amount":-5,"description":"x"}`, "INVALID_INPUT"},
		{"blank description", `{"type":"expense","amount":5,"description":"   "}`, "INVALID_INPUT"},
		{"malformed date", `{"type":"expense","amount":5,"description":"x","date":"dün"}`, "INVALID_INPUT"},
		{"unknown category", `{"type":"expense","amount":5,"description":"x","category":"Tatil"}`, "UNKNOWN_CATEGORY"},
	}
	for _, tt := range invalid {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			called := false
			store := &mockTransactionStore{
				addTransactionFn: func(models.TransactionDraft) models.Transaction {
					called = true
					return models.Transaction{}
				},
			}
			r := setupTransactionRouter(store)

			rec := doRequest(r, "POST", "/transactions", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), tt.code)
			if called {
				t.Error("store must not be called for invalid drafts")
			}
		})
	}
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	store := &mockTransactionStore{
		monthlyTransactionsFn: func() models.MonthlyData {
			return models.MonthlyData{
				"2024-03": {{ID: "a", Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(5000), IsPaid: true}},
			}
		},
	}
	r := setupTransactionRouter(store)

	rec := doRequest(r, "GET", "/transactions", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	months := parseJSON(t, rec)["transactions"].(map[string]interface{})
	list := months["2024-03"].([]interface{})
	if len(list) != 1 || list[0].(map[string]interface{})["id"] != "a" {
		t.Errorf("unexpected snapshot: %v", months)
	}
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	tests := []struct {
		name    string
		deleted bool
	}{
		{"existing", true},
		{"unknown id is not an error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			store := &mockTransactionStore{
				deleteTransactionFn: func(id string) bool {
					gotID = id
					return tt.deleted
				},
			}
			r := setupTransactionRouter(store)

			rec := doRequest(r, "DELETE", "/transactions/0190a6f2-abc", "")

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if gotID != "0190a6f2-abc" {
				t.Errorf("expected id forwarded, got %q", gotID)
			}
			if parseJSON(t, rec)["deleted"] != tt.deleted {
				t.Errorf("expected deleted=%v", tt.deleted)
			}
		})
	}
}

func TestTransactionHandler_UpdatePaymentStatus(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		store := &mockTransactionStore{
			updatePaymentStatusFn: func(id string, isPaid bool) (models.Transaction, bool) {
				return models.Transaction{ID: id, IsPaid: isPaid}, true
			},
		}
		r := setupTransactionRouter(store)

		rec := doRequest(r, "PATCH", "/transactions/tx-1/payment", `{"isPaid":false}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["isPaid"] != false {
			t.Errorf("expected isPaid false, got %v", tx["isPaid"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		r := setupTransactionRouter(&mockTransactionStore{})

		rec := doRequest(r, "PATCH", "/transactions/missing/payment", `{"isPaid":true}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})

	t.Run("attaches error to context without writing", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionStore{}, categories.Default(), nil)
		var attached []error
		var written bool
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Next()
			written = c.Writer.Written()
			for _, e := range c.Errors {
				attached = append(attached, e.Err)
			}
		})
		r.PATCH("/transactions/:id/payment", handler.UpdatePaymentStatus)

		doRequest(r, "PATCH", "/transactions/missing/payment", `{"isPaid":true}`)

		if written {
			t.Error("expected handler to leave the response to the error middleware")
		}
		if len(attached) != 1 {
			t.Fatalf("expected 1 attached error, got %d", len(attached))
		}
		testutil.AssertAppError(t, attached[0], "TRANSACTION_NOT_FOUND")
	})

	t.Run("returns 400 without isPaid", func(t *testing.T) {
		r := setupTransactionRouter(&mockTransactionStore{})

		rec := doRequest(r, "PATCH", "/transactions/tx-1/payment", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestTransactionHandler_BulkOperations(t *testing.T) {
	store := &mockTransactionStore{
		recategorizeAllFn:  func() int { return 3 },
		markAllAsPendingFn: func() int { return 7 },
	}
	r := setupTransactionRouter(store)

	rec := doRequest(r, "POST", "/transactions/recategorize", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if parseJSON(t, rec)["updated"] != float64(3) {
		t.Errorf("expected 3 updated, got %s", rec.Body.String())
	}

	rec = doRequest(r, "POST", "/transactions/mark-pending", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if parseJSON(t, rec)["updated"] != float64(7) {
		t.Errorf("expected 7 updated, got %s", rec.Body.String())
	}
}
