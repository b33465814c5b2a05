package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bfb/corebank/internal/adapter/http/dto"
	"github.com/bfb/corebank/internal/domain"
)

// CustomerAccountService defines the behavior needed by
// CustomerAccountHandler.
type CustomerAccountService interface {
	GetAllAccounts(ctx context.Context) ([]*domain.CustomerAccount, error)
	GetAccountByID(ctx context.Context, id int) (*domain.CustomerAccount, error)
	GetAccountsByCustomerID(ctx context.Context, customerID int) ([]*domain.CustomerAccount, error)
	CreateAccount(ctx context.Context, account *domain.CustomerAccount) (*domain.CustomerAccount, error)
	UpdateAccount(ctx context.Context, id int, account *domain.CustomerAccount) error
	DeleteAccount(ctx context.Context, id int) error
}

// CustomerAccountHandler handles customer account HTTP requests.
type CustomerAccountHandler struct {
	accounts CustomerAccountService
	errors   *ErrorRenderer
}

// NewCustomerAccountHandler creates a new CustomerAccountHandler.
func NewCustomerAccountHandler(accounts CustomerAccountService, errors *ErrorRenderer) *CustomerAccountHandler {
	return &CustomerAccountHandler{accounts: accounts, errors: errors}
}

// List lists all customer accounts.
func (h *CustomerAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.GetAllAccounts(r.Context())
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerAccountsFromDomain(accounts))
}

// Get retrieves a customer account by ID.
func (h *CustomerAccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	account, err := h.accounts.GetAccountByID(r.Context(), id)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerAccountFromDomain(account))
}

// ListByCustomer lists the accounts of one customer.
func (h *CustomerAccountHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseIntParam(r, "customerId")
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	accounts, err := h.accounts.GetAccountsByCustomerID(r.Context(), customerID)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerAccountsFromDomain(accounts))
}

// Create creates a new customer account.
func (h *CustomerAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CustomerAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.RenderValidation(w, r, "invalid request body", []string{err.Error()})
		return
	}

	account, err := req.ToDomain()
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	created, err := h.accounts.CreateAccount(r.Context(), account)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CustomerAccountFromDomain(created))
}

// Update fully replaces a customer account.
func (h *CustomerAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	var req dto.CustomerAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.RenderValidation(w, r, "invalid request body", []string{err.Error()})
		return
	}

	account, err := req.ToDomain()
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	if err := h.accounts.UpdateAccount(r.Context(), id, account); err != nil {
		h.errors.Render(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a customer account.
func (h *CustomerAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	if err := h.accounts.DeleteAccount(r.Context(), id); err != nil {
		h.errors.Render(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
