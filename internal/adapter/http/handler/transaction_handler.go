package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bfb/corebank/internal/adapter/http/dto"
	"github.com/bfb/corebank/internal/domain"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	GetTransactionByID(ctx context.Context, id int) (*domain.Transaction, error)
	GetTransactionsByAccountID(ctx context.Context, accountID int) ([]*domain.Transaction, error)
	GetTransactionsByDateRange(ctx context.Context, accountID int, start, end time.Time) ([]*domain.Transaction, error)
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

// TransactionHandler handles transaction HTTP requests.
type TransactionHandler struct {
	transactions TransactionService
	errors       *ErrorRenderer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactions TransactionService, errors *ErrorRenderer) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, errors: errors}
}

// Get retrieves a transaction by ID.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	tx, err := h.transactions.GetTransactionByID(r.Context(), id)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// ListByAccount lists the transactions of one account.
func (h *TransactionHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseIntParam(r, "accountId")
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	txs, err := h.transactions.GetTransactionsByAccountID(r.Context(), accountID)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txs))
}

// ListByDateRange lists an account's transactions inside a date range.
func (h *TransactionHandler) ListByDateRange(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseIntParam(r, "accountId")
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	dateRange, err := parseDateRange(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	txs, err := h.transactions.GetTransactionsByDateRange(r.Context(), accountID, dateRange.Start, dateRange.End)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txs))
}

// Create records a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.RenderValidation(w, r, "invalid request body", []string{err.Error()})
		return
	}

	created, err := h.transactions.CreateTransaction(r.Context(), req.ToDomain())
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(created))
}
