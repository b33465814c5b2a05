package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bfb/corebank/internal/adapter/http/dto"
	"github.com/bfb/corebank/internal/domain"
)

// BankAccountService defines the behavior needed by BankAccountHandler.
type BankAccountService interface {
	GetAllBankAccounts(ctx context.Context) ([]*domain.BankAccount, error)
	GetBankAccountByID(ctx context.Context, id int) (*domain.BankAccount, error)
	CreateBankAccount(ctx context.Context, account *domain.BankAccount) (*domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, id int, account *domain.BankAccount) error
	DeleteBankAccount(ctx context.Context, id int) error
}

// BankAccountHandler handles bank account HTTP requests.
type BankAccountHandler struct {
	accounts BankAccountService
	errors   *ErrorRenderer
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(accounts BankAccountService, errors *ErrorRenderer) *BankAccountHandler {
	return &BankAccountHandler{accounts: accounts, errors: errors}
}

// List lists all bank accounts.
func (h *BankAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.GetAllBankAccounts(r.Context())
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountsFromDomain(accounts))
}

// Get retrieves a bank account by ID.
func (h *BankAccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	account, err := h.accounts.GetBankAccountByID(r.Context(), id)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountFromDomain(account))
}

// Create creates a new bank account.
func (h *BankAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.RenderValidation(w, r, "invalid request body", []string{err.Error()})
		return
	}

	account, err := req.ToDomain()
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	created, err := h.accounts.CreateBankAccount(r.Context(), account)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.BankAccountFromDomain(created))
}

// Update fully replaces a bank account.
func (h *BankAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	var req dto.BankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.RenderValidation(w, r, "invalid request body", []string{err.Error()})
		return
	}

	account, err := req.ToDomain()
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	if err := h.accounts.UpdateBankAccount(r.Context(), id, account); err != nil {
		h.errors.Render(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a bank account.
func (h *BankAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	if err := h.accounts.DeleteBankAccount(r.Context(), id); err != nil {
		h.errors.Render(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
