package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bfb/corebank/internal/adapter/http/dto"
	"github.com/bfb/corebank/internal/domain"
)

// BankBranchService defines the behavior needed by BankBranchHandler.
type BankBranchService interface {
	GetAllBranches(ctx context.Context) ([]*domain.BankBranch, error)
	GetBranchByID(ctx context.Context, id int) (*domain.BankBranch, error)
	GetBranchesByBankID(ctx context.Context, bankID int) ([]*domain.BankBranch, error)
	CreateBranch(ctx context.Context, branch *domain.BankBranch) (*domain.BankBranch, error)
	UpdateBranch(ctx context.Context, id int, branch *domain.BankBranch) error
	DeleteBranch(ctx context.Context, id int) error
}

// BankBranchHandler handles branch HTTP requests.
type BankBranchHandler struct {
	branches BankBranchService
	errors   *ErrorRenderer
}

// NewBankBranchHandler creates a new BankBranchHandler.
func NewBankBranchHandler(branches BankBranchService, errors *ErrorRenderer) *BankBranchHandler {
	return &BankBranchHandler{branches: branches, errors: errors}
}

// List lists all branches.
func (h *BankBranchHandler) List(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branches.GetAllBranches(r.Context())
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BankBranchesFromDomain(branches))
}

// Get retrieves a branch by ID.
func (h *BankBranchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	branch, err := h.branches.GetBranchByID(r.Context(), id)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BankBranchFromDomain(branch))
}

// ListByBank lists the branches of one bank.
func (h *BankBranchHandler) ListByBank(w http.ResponseWriter, r *http.Request) {
	bankID, err := parseIntParam(r, "bankId")
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	branches, err := h.branches.GetBranchesByBankID(r.Context(), bankID)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BankBranchesFromDomain(branches))
}

// Create creates a new branch.
func (h *BankBranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BankBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.RenderValidation(w, r, "invalid request body", []string{err.Error()})
		return
	}

	created, err := h.branches.CreateBranch(r.Context(), req.ToDomain())
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.BankBranchFromDomain(created))
}

// Update fully replaces a branch.
func (h *BankBranchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	var req dto.BankBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.RenderValidation(w, r, "invalid request body", []string{err.Error()})
		return
	}

	if err := h.branches.UpdateBranch(r.Context(), id, req.ToDomain()); err != nil {
		h.errors.Render(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a branch.
func (h *BankBranchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	if err := h.branches.DeleteBranch(r.Context(), id); err != nil {
		h.errors.Render(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
