package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/domain"
)

// TransactionService handles transaction business logic. Transactions
// live behind the remote transactions API while account balances live in
// the bank account store, so transaction creation is a two-step,
// non-transactional write: persist the transaction, then update the
// balance. A crash between the two leaves a transaction that is not
// reflected in the balance. This window is accepted and documented, not
// silently repaired.
type TransactionService struct {
	transactions TransactionRepository
	accounts     BankAccountRepository
	logger       zerolog.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	transactions TransactionRepository,
	accounts BankAccountRepository,
	logger zerolog.Logger,
) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		accounts:     accounts,
		logger:       logger,
	}
}

// GetTransactionByID retrieves one transaction.
func (s *TransactionService) GetTransactionByID(ctx context.Context, id int) (*domain.Transaction, error) {
	return s.transactions.GetByID(ctx, id)
}

// GetTransactionsByAccountID lists the transactions of one account. The
// account must exist.
func (s *TransactionService) GetTransactionsByAccountID(ctx context.Context, accountID int) ([]*domain.Transaction, error) {
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	return s.transactions.GetByAccountID(ctx, accountID)
}

// GetTransactionsByDateRange lists an account's transactions within an
// inclusive date range.
func (s *TransactionService) GetTransactionsByDateRange(ctx context.Context, accountID int, start, end time.Time) ([]*domain.Transaction, error) {
	if start.After(end) {
		return nil, domain.ValidationError("start date must be before or equal to end date")
	}

	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	return s.transactions.GetByDateRange(ctx, accountID, start, end)
}

// CreateTransaction validates a transaction, rejects insufficient-funds
// withdrawals and transfers before any write, persists it, and then
// applies the amount to the account balance.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if tx.AccountID <= 0 {
		return nil, domain.ValidationError("account ID is required")
	}
	if tx.Amount.IsZero() {
		return nil, domain.ValidationError("transaction amount cannot be zero")
	}
	if strings.TrimSpace(tx.TransactionType) == "" {
		return nil, domain.ValidationError("transaction type is required")
	}

	account, err := s.accounts.GetByID(ctx, tx.AccountID)
	if err != nil {
		return nil, err
	}

	if tx.DebitsBalance() && tx.Amount.IsNegative() && tx.Amount.Abs().GreaterThan(account.Balance) {
		s.logger.Warn().
			Int("account_id", tx.AccountID).
			Str("balance", account.Balance.String()).
			Str("amount", tx.Amount.String()).
			Msg("insufficient funds for transaction")

		return nil, domain.ValidationError("insufficient funds for this transaction")
	}

	tx.Timestamp = time.Now().UTC()
	tx.BalanceAfterTransaction = account.Balance.Add(tx.Amount)
	if tx.Reference == "" {
		tx.Reference = uuid.NewString()
	}

	created, err := s.transactions.Create(ctx, tx)
	if err != nil {
		return nil, err
	}

	// Second write of the non-atomic pair, applied to a copy so the
	// fetched account is never mutated in place. If it fails the
	// transaction is already persisted remotely and the stored
	// balance is stale.
	updated := *account
	updated.Balance = updated.Balance.Add(tx.Amount)
	if err := s.accounts.Update(ctx, updated.ID, &updated); err != nil {
		s.logger.Error().
			Err(err).
			Int("account_id", updated.ID).
			Int("transaction_id", created.ID).
			Msg("transaction persisted but balance update failed")

		return nil, err
	}

	s.logger.Info().
		Int("transaction_id", created.ID).
		Int("account_id", created.AccountID).
		Str("type", created.TransactionType).
		Str("amount", created.Amount.String()).
		Msg("transaction created")

	return created, nil
}
