package usecase

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks -exclude_interfaces CustomerAccountRepository,BankAccountRepository -mock_names CustomerRepository=MockCustomerRepositoryGM,BankBranchRepository=MockBankBranchRepositoryGM,TransactionRepository=MockTransactionRepositoryGM,IdempotencyStore=MockIdempotencyStore

import (
	"context"
	"time"

	"github.com/bfb/corebank/internal/domain"
)

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]*domain.Customer, error)
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, id int, customer *domain.Customer) error
	Delete(ctx context.Context, id int) error
}

// CustomerAccountRepository defines data access for customer accounts.
type CustomerAccountRepository interface {
	GetAll(ctx context.Context) ([]*domain.CustomerAccount, error)
	GetByID(ctx context.Context, id int) (*domain.CustomerAccount, error)
	GetByCustomerID(ctx context.Context, customerID int) ([]*domain.CustomerAccount, error)
	Create(ctx context.Context, account *domain.CustomerAccount) (*domain.CustomerAccount, error)
	Update(ctx context.Context, id int, account *domain.CustomerAccount) error
	Delete(ctx context.Context, id int) error
}

// BankAccountRepository defines data access for bank accounts. Reads
// return caller-owned values: implementations must not hand out
// pointers shared with a cache, and callers may mutate results freely.
type BankAccountRepository interface {
	GetAll(ctx context.Context) ([]*domain.BankAccount, error)
	GetByID(ctx context.Context, id int) (*domain.BankAccount, error)
	Create(ctx context.Context, account *domain.BankAccount) (*domain.BankAccount, error)
	Update(ctx context.Context, id int, account *domain.BankAccount) error
	Delete(ctx context.Context, id int) error
}

// BankBranchRepository defines data access for bank branches.
type BankBranchRepository interface {
	GetAll(ctx context.Context) ([]*domain.BankBranch, error)
	GetByID(ctx context.Context, id int) (*domain.BankBranch, error)
	GetByBankID(ctx context.Context, bankID int) ([]*domain.BankBranch, error)
	Create(ctx context.Context, branch *domain.BankBranch) (*domain.BankBranch, error)
	Update(ctx context.Context, id int, branch *domain.BankBranch) error
	Delete(ctx context.Context, id int) error
}

// TransactionRepository defines data access for transactions held by the
// remote transactions API.
type TransactionRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Transaction, error)
	GetByAccountID(ctx context.Context, accountID int) ([]*domain.Transaction, error)
	GetByDateRange(ctx context.Context, accountID int, start, end time.Time) ([]*domain.Transaction, error)
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

// IdempotencyStore stores responses for replayed mutating requests.
type IdempotencyStore interface {
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
