package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/domain"
)

// BankAccountService handles bank account business logic, including the
// cross-store enrichment of accounts with their branch's bank identifier.
type BankAccountService struct {
	accounts BankAccountRepository
	branches BankBranchRepository
	logger   zerolog.Logger
}

// NewBankAccountService creates a new BankAccountService.
func NewBankAccountService(
	accounts BankAccountRepository,
	branches BankBranchRepository,
	logger zerolog.Logger,
) *BankAccountService {
	return &BankAccountService{
		accounts: accounts,
		branches: branches,
		logger:   logger,
	}
}

// GetAllBankAccounts lists all bank accounts, enriched with branch data.
func (s *BankAccountService) GetAllBankAccounts(ctx context.Context) ([]*domain.BankAccount, error) {
	accounts, err := s.accounts.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, account := range accounts {
		s.enrichWithBranch(ctx, account)
	}

	return accounts, nil
}

// GetBankAccountByID retrieves one bank account, enriched with branch data.
func (s *BankAccountService) GetBankAccountByID(ctx context.Context, id int) (*domain.BankAccount, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.enrichWithBranch(ctx, account)

	return account, nil
}

// CreateBankAccount validates and persists a new bank account. When a
// branch is referenced it must exist, and the account's bank identifier
// is stamped from the branch.
func (s *BankAccountService) CreateBankAccount(ctx context.Context, account *domain.BankAccount) (*domain.BankAccount, error) {
	if err := validateBankAccount(account); err != nil {
		return nil, err
	}
	if account.Balance.IsNegative() {
		return nil, domain.ValidationError("initial balance cannot be negative")
	}

	if account.BranchID > 0 {
		branch, err := s.branches.GetByID(ctx, account.BranchID)
		if err != nil {
			return nil, err
		}
		account.BankID = branch.BankID
	}

	account.CreatedDate = time.Now().UTC()
	account.IsActive = true

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.enrichWithBranch(ctx, created)

	s.logger.Info().
		Int("account_id", created.ID).
		Str("account_number", created.AccountNumber).
		Msg("bank account created")

	return created, nil
}

// UpdateBankAccount validates and fully replaces a bank account. A
// changed branch reference is re-validated and the bank identifier is
// stamped from the new branch.
func (s *BankAccountService) UpdateBankAccount(ctx context.Context, id int, account *domain.BankAccount) error {
	if err := validateBankAccount(account); err != nil {
		return err
	}

	existing, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if account.BranchID > 0 && account.BranchID != existing.BranchID {
		branch, err := s.branches.GetByID(ctx, account.BranchID)
		if err != nil {
			return err
		}
		account.BankID = branch.BankID
	}

	account.CreatedDate = existing.CreatedDate

	return s.accounts.Update(ctx, id, account)
}

// DeleteBankAccount removes a bank account.
func (s *BankAccountService) DeleteBankAccount(ctx context.Context, id int) error {
	return s.accounts.Delete(ctx, id)
}

// enrichWithBranch reconciles the account's bank identifier with its
// branch. A mismatched reference is healed, not rejected; enrichment
// failures are logged and never fail the read.
func (s *BankAccountService) enrichWithBranch(ctx context.Context, account *domain.BankAccount) {
	if account.BranchID <= 0 {
		return
	}

	branch, err := s.branches.GetByID(ctx, account.BranchID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn().
				Int("account_id", account.ID).
				Int("branch_id", account.BranchID).
				Msg("referenced branch not found during enrichment")
		} else {
			s.logger.Error().
				Err(err).
				Int("account_id", account.ID).
				Int("branch_id", account.BranchID).
				Msg("failed to load branch during enrichment")
		}
		return
	}

	if account.BankID != branch.BankID {
		s.logger.Warn().
			Int("account_id", account.ID).
			Int("account_bank_id", account.BankID).
			Int("branch_bank_id", branch.BankID).
			Msg("bank ID mismatch, healing from branch")

		account.BankID = branch.BankID
	}
}

func validateBankAccount(account *domain.BankAccount) error {
	if strings.TrimSpace(account.AccountNumber) == "" {
		return domain.ValidationError("account number cannot be empty")
	}
	if strings.TrimSpace(account.OwnerName) == "" {
		return domain.ValidationError("owner name cannot be empty")
	}
	return nil
}
