package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/domain"
)

// BankBranchService handles bank branch business logic.
type BankBranchService struct {
	branches BankBranchRepository
	logger   zerolog.Logger
}

// NewBankBranchService creates a new BankBranchService.
func NewBankBranchService(branches BankBranchRepository, logger zerolog.Logger) *BankBranchService {
	return &BankBranchService{branches: branches, logger: logger}
}

// GetAllBranches lists all branches.
func (s *BankBranchService) GetAllBranches(ctx context.Context) ([]*domain.BankBranch, error) {
	return s.branches.GetAll(ctx)
}

// GetBranchByID retrieves a branch by ID.
func (s *BankBranchService) GetBranchByID(ctx context.Context, id int) (*domain.BankBranch, error) {
	return s.branches.GetByID(ctx, id)
}

// GetBranchesByBankID lists the branches of one bank.
func (s *BankBranchService) GetBranchesByBankID(ctx context.Context, bankID int) ([]*domain.BankBranch, error) {
	if bankID <= 0 {
		return nil, domain.ValidationError("bank ID is required")
	}

	return s.branches.GetByBankID(ctx, bankID)
}

// CreateBranch validates and persists a new branch.
func (s *BankBranchService) CreateBranch(ctx context.Context, branch *domain.BankBranch) (*domain.BankBranch, error) {
	if err := validateBranch(branch); err != nil {
		return nil, err
	}

	branch.CreatedDate = time.Now().UTC()
	branch.IsActive = true

	created, err := s.branches.Create(ctx, branch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("branch_id", created.ID).
		Int("bank_id", created.BankID).
		Msg("branch created")

	return created, nil
}

// UpdateBranch validates and fully replaces a branch.
func (s *BankBranchService) UpdateBranch(ctx context.Context, id int, branch *domain.BankBranch) error {
	if err := validateBranch(branch); err != nil {
		return err
	}

	existing, err := s.branches.GetByID(ctx, id)
	if err != nil {
		return err
	}

	branch.CreatedDate = existing.CreatedDate

	return s.branches.Update(ctx, id, branch)
}

// DeleteBranch removes a branch.
func (s *BankBranchService) DeleteBranch(ctx context.Context, id int) error {
	return s.branches.Delete(ctx, id)
}

func validateBranch(branch *domain.BankBranch) error {
	if strings.TrimSpace(branch.BranchName) == "" {
		return domain.ValidationError("branch name cannot be empty")
	}
	if branch.BankID <= 0 {
		return domain.ValidationError("bank ID is required")
	}
	return nil
}
