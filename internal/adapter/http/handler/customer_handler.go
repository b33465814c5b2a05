package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bfb/corebank/internal/adapter/http/dto"
	"github.com/bfb/corebank/internal/domain"
)

// CustomerService defines the behavior needed by CustomerHandler.
type CustomerService interface {
	GetAllCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetCustomerByID(ctx context.Context, id int) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int) error
}

// CustomerHandler handles customer HTTP requests.
type CustomerHandler struct {
	customers CustomerService
	errors    *ErrorRenderer
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customers CustomerService, errors *ErrorRenderer) *CustomerHandler {
	return &CustomerHandler{customers: customers, errors: errors}
}

// List lists all customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.GetAllCustomers(r.Context())
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomersFromDomain(customers))
}

// Get retrieves a customer by ID.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	customer, err := h.customers.GetCustomerByID(r.Context(), id)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerFromDomain(customer))
}

// Create creates a new customer.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.RenderValidation(w, r, "invalid request body", []string{err.Error()})
		return
	}

	created, err := h.customers.CreateCustomer(r.Context(), req.ToDomain())
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CustomerFromDomain(created))
}

// Update fully replaces a customer.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	var req dto.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.RenderValidation(w, r, "invalid request body", []string{err.Error()})
		return
	}

	if err := h.customers.UpdateCustomer(r.Context(), id, req.ToDomain()); err != nil {
		h.errors.Render(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a customer.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	if err := h.customers.DeleteCustomer(r.Context(), id); err != nil {
		h.errors.Render(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
