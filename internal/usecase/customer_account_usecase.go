package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/domain"
)

// CustomerAccountService handles customer account business logic.
type CustomerAccountService struct {
	accounts  CustomerAccountRepository
	customers CustomerRepository
	logger    zerolog.Logger
}

// NewCustomerAccountService creates a new CustomerAccountService.
func NewCustomerAccountService(
	accounts CustomerAccountRepository,
	customers CustomerRepository,
	logger zerolog.Logger,
) *CustomerAccountService {
	return &CustomerAccountService{
		accounts:  accounts,
		customers: customers,
		logger:    logger,
	}
}

// GetAllAccounts lists all customer accounts.
func (s *CustomerAccountService) GetAllAccounts(ctx context.Context) ([]*domain.CustomerAccount, error) {
	return s.accounts.GetAll(ctx)
}

// GetAccountByID retrieves a customer account by ID.
func (s *CustomerAccountService) GetAccountByID(ctx context.Context, id int) (*domain.CustomerAccount, error) {
	return s.accounts.GetByID(ctx, id)
}

// GetAccountsByCustomerID lists the accounts of one customer. The
// customer must exist.
func (s *CustomerAccountService) GetAccountsByCustomerID(ctx context.Context, customerID int) ([]*domain.CustomerAccount, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	return s.accounts.GetByCustomerID(ctx, customerID)
}

// CreateAccount validates and persists a new customer account.
func (s *CustomerAccountService) CreateAccount(ctx context.Context, account *domain.CustomerAccount) (*domain.CustomerAccount, error) {
	if err := validateCustomerAccount(account); err != nil {
		return nil, err
	}
	if account.Balance.IsNegative() {
		return nil, domain.ValidationError("initial balance cannot be negative")
	}

	if _, err := s.customers.GetByID(ctx, account.CustomerID); err != nil {
		return nil, err
	}

	account.CreatedDate = time.Now().UTC()
	account.IsActive = true

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("account_id", created.ID).
		Int("customer_id", created.CustomerID).
		Msg("customer account created")

	return created, nil
}

// UpdateAccount validates and fully replaces a customer account.
func (s *CustomerAccountService) UpdateAccount(ctx context.Context, id int, account *domain.CustomerAccount) error {
	if err := validateCustomerAccount(account); err != nil {
		return err
	}

	existing, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	account.CreatedDate = existing.CreatedDate

	return s.accounts.Update(ctx, id, account)
}

// DeleteAccount removes a customer account.
func (s *CustomerAccountService) DeleteAccount(ctx context.Context, id int) error {
	return s.accounts.Delete(ctx, id)
}

func validateCustomerAccount(account *domain.CustomerAccount) error {
	if strings.TrimSpace(account.AccountNumber) == "" {
		return domain.ValidationError("account number cannot be empty")
	}
	if account.CustomerID <= 0 {
		return domain.ValidationError("customer ID is required")
	}
	return nil
}
