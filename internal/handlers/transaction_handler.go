package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"kumbara/internal/categories"
	apperrors "kumbara/internal/errors"
	"kumbara/internal/format"
	"kumbara/internal/models"
	"kumbara/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	store       services.TransactionStorer
	categorizer *categories.Categorizer
	loc         *time.Location
}

// NewTransactionHandler creates a new TransactionHandler. Dates in responses
// are formatted in loc; nil means UTC.
func NewTransactionHandler(store services.TransactionStorer, categorizer *categories.Categorizer, loc *time.Location) *TransactionHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &TransactionHandler{store: store, categorizer: categorizer, loc: loc}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// A missing category is assigned from the description; a missing date means now.
type CreateTransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      json.Number            `json:"amount" binding:"required,positive_amount" swaggertype:"number"`
	Description string                 `json:"description" binding:"required,not_blank,max=500"`
	Date        string                 `json:"date"`
	Category    string                 `json:"category" binding:"omitempty,category_name"`
	IsPaid      *bool                  `json:"isPaid"`
}

// UpdatePaymentStatusRequest represents the request payload for changing payment status.
type UpdatePaymentStatusRequest struct {
	IsPaid *bool `json:"isPaid" binding:"required"`
}

// TransactionResponse wraps a single transaction with its display date.
type TransactionResponse struct {
	Transaction   models.Transaction `json:"transaction"`
	FormattedDate string             `json:"formattedDate" example:"15.03.2024 13:30"`
}

// SnapshotResponse holds every transaction grouped by month.
type SnapshotResponse struct {
	Transactions models.MonthlyData `json:"transactions"`
}

// DeleteResponse reports whether a transaction was removed.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// BulkUpdateResponse reports how many transactions a bulk operation changed.
type BulkUpdateResponse struct {
	Updated int `json:"updated"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. The category is derived from the description when omitted.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown category"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a number"))
		return
	}

	date, err := normalizeDate(req.Date)
	if err != nil {
		_ = c.Error(err)
		return
	}

	description := strings.TrimSpace(req.Description)
	category := req.Category
	if category == "" {
		category = h.categorizer.Categorize(description)
	}

	tx := h.store.AddTransaction(models.TransactionDraft{
		Type:        req.Type,
		Amount:      amount,
		Description: description,
		Date:        date,
		Category:    category,
		IsPaid:      req.IsPaid,
	})

	c.JSON(http.StatusCreated, h.response(tx))
}

// GetTransactions returns every transaction grouped by month
// @Summary     Get all transactions
// @Description Read-only snapshot of every month's transactions
// @Tags        transactions
// @Produce     json
// @Success     200 {object} SnapshotResponse "Transactions by month"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotResponse{Transactions: h.store.MonthlyTransactions()})
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Description Remove a transaction by ID. Deleting an unknown ID succeeds with deleted=false.
// @Tags        transactions
// @Produce     json
// @Security    APIKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} DeleteResponse "Deletion result"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	deleted := h.store.DeleteTransaction(c.Param("id"))
	c.JSON(http.StatusOK, DeleteResponse{Deleted: deleted})
}

// UpdatePaymentStatus marks a transaction as paid or pending
// @Summary     Update payment status
// @Description Set whether a transaction has been paid
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       id path string true "Transaction ID"
// @Param       request body UpdatePaymentStatusRequest true "Payment status"
// @Success     200 {object} TransactionResponse "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id}/payment [patch]
func (h *TransactionHandler) UpdatePaymentStatus(c *gin.Context) {
	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	tx, found := h.store.UpdatePaymentStatus(c.Param("id"), *req.IsPaid)
	if !found {
		_ = c.Error(apperrors.ErrTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, h.response(tx))
}

// RecategorizeAll re-assigns categories from descriptions
// @Summary     Recategorize all transactions
// @Description Re-run categorization over every transaction and store changed categories
// @Tags        transactions
// @Produce     json
// @Security    APIKeyAuth
// @Success     200 {object} BulkUpdateResponse "Number of changed transactions"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /transactions/recategorize [post]
func (h *TransactionHandler) RecategorizeAll(c *gin.Context) {
	c.JSON(http.StatusOK, BulkUpdateResponse{Updated: h.store.RecategorizeAll()})
}

// MarkAllAsPending flags every expense as unpaid
// @Summary     Mark all expenses pending
// @Description Set isPaid=false on every expense that is not already pending
// @Tags        transactions
// @Produce     json
// @Security    APIKeyAuth
// @Success     200 {object} BulkUpdateResponse "Number of changed transactions"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /transactions/mark-pending [post]
func (h *TransactionHandler) MarkAllAsPending(c *gin.Context) {
	c.JSON(http.StatusOK, BulkUpdateResponse{Updated: h.store.MarkAllAsPending()})
}

func (h *TransactionHandler) response(tx models.Transaction) TransactionResponse {
	return TransactionResponse{Transaction: tx, FormattedDate: format.FormatDate(tx.Date, h.loc)}
}
