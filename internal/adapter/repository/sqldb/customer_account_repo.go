package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bfb/corebank/internal/adapter/repository/retry"
	"github.com/bfb/corebank/internal/cache"
	"github.com/bfb/corebank/internal/domain"
)

const (
	keyCustomerAccountPrefix = "customeraccounts:"
	keyCustomerAccountAll    = "customeraccounts:all"
)

func keyCustomerAccountID(id int) string {
	return keyCustomerAccountPrefix + "id:" + strconv.Itoa(id)
}

func keyCustomerAccountsByCustomer(customerID int) string {
	return keyCustomerAccountPrefix + "customer:" + strconv.Itoa(customerID)
}

// CustomerAccountRepository implements usecase.CustomerAccountRepository.
type CustomerAccountRepository struct {
	db    *sql.DB
	cache *cache.Cache
	retry *retry.Policy
}

// NewCustomerAccountRepository creates a new CustomerAccountRepository.
func NewCustomerAccountRepository(db *sql.DB, c *cache.Cache, p *retry.Policy) *CustomerAccountRepository {
	return &CustomerAccountRepository{db: db, cache: c, retry: p}
}

const customerAccountColumns = `id, customer_id, account_number, balance, account_type, is_active, created_date`

// GetAll lists all customer accounts.
func (r *CustomerAccountRepository) GetAll(ctx context.Context) ([]*domain.CustomerAccount, error) {
	if cached, ok := r.cache.Get(keyCustomerAccountAll); ok {
		return cached.([]*domain.CustomerAccount), nil
	}

	accounts, err := r.queryAccounts(ctx, "GetAllCustomerAccounts",
		`SELECT `+customerAccountColumns+` FROM customer_accounts ORDER BY id`)
	if err != nil {
		return nil, err
	}

	r.cache.Set(keyCustomerAccountAll, accounts)

	return accounts, nil
}

// GetByID retrieves a customer account by ID.
func (r *CustomerAccountRepository) GetByID(ctx context.Context, id int) (*domain.CustomerAccount, error) {
	key := keyCustomerAccountID(id)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(*domain.CustomerAccount), nil
	}

	var account *domain.CustomerAccount
	err := r.retry.Do(ctx, "GetCustomerAccountByID", func() error {
		row := r.db.QueryRowContext(ctx,
			`SELECT `+customerAccountColumns+` FROM customer_accounts WHERE id = $1`, id)

		var scanErr error
		account, scanErr = scanCustomerAccount(row)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return domain.NotFoundError("customer account", id)
		}

		return scanErr
	})
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, account)

	return account, nil
}

// GetByCustomerID lists the accounts belonging to one customer.
func (r *CustomerAccountRepository) GetByCustomerID(ctx context.Context, customerID int) ([]*domain.CustomerAccount, error) {
	key := keyCustomerAccountsByCustomer(customerID)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]*domain.CustomerAccount), nil
	}

	accounts, err := r.queryAccounts(ctx, "GetCustomerAccountsByCustomerID",
		`SELECT `+customerAccountColumns+` FROM customer_accounts WHERE customer_id = $1 ORDER BY id`,
		customerID)
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, accounts)

	return accounts, nil
}

// Create inserts a customer account and returns it with the
// store-assigned ID.
func (r *CustomerAccountRepository) Create(ctx context.Context, account *domain.CustomerAccount) (*domain.CustomerAccount, error) {
	created := *account

	err := r.retry.Do(ctx, "CreateCustomerAccount", func() error {
		return r.db.QueryRowContext(ctx,
			`INSERT INTO customer_accounts
			   (customer_id, account_number, balance, account_type, is_active, created_date)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			account.CustomerID,
			account.AccountNumber,
			account.Balance.String(),
			int(account.Type),
			account.IsActive,
			account.CreatedDate,
		).Scan(&created.ID)
	})
	if err != nil {
		return nil, err
	}

	r.cache.InvalidatePrefix(keyCustomerAccountPrefix)

	return &created, nil
}

// Update fully replaces a customer account.
func (r *CustomerAccountRepository) Update(ctx context.Context, id int, account *domain.CustomerAccount) error {
	err := r.retry.Do(ctx, "UpdateCustomerAccount", func() error {
		result, err := r.db.ExecContext(ctx,
			`UPDATE customer_accounts
			 SET customer_id = $1, account_number = $2, balance = $3,
			     account_type = $4, is_active = $5, created_date = $6
			 WHERE id = $7`,
			account.CustomerID,
			account.AccountNumber,
			account.Balance.String(),
			int(account.Type),
			account.IsActive,
			account.CreatedDate,
			id,
		)
		if err != nil {
			return err
		}

		return requireRowsAffected(result, "customer account", id)
	})
	if err != nil {
		return err
	}

	r.cache.InvalidatePrefix(keyCustomerAccountPrefix)

	return nil
}

// Delete removes a customer account.
func (r *CustomerAccountRepository) Delete(ctx context.Context, id int) error {
	err := r.retry.Do(ctx, "DeleteCustomerAccount", func() error {
		result, err := r.db.ExecContext(ctx, `DELETE FROM customer_accounts WHERE id = $1`, id)
		if err != nil {
			return err
		}

		return requireRowsAffected(result, "customer account", id)
	})
	if err != nil {
		return err
	}

	r.cache.InvalidatePrefix(keyCustomerAccountPrefix)

	return nil
}

func (r *CustomerAccountRepository) queryAccounts(ctx context.Context, operation, query string, args ...any) ([]*domain.CustomerAccount, error) {
	var accounts []*domain.CustomerAccount
	err := r.retry.Do(ctx, operation, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		accounts = accounts[:0]
		for rows.Next() {
			account, err := scanCustomerAccount(rows)
			if err != nil {
				return err
			}
			accounts = append(accounts, account)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

func scanCustomerAccount(row scanner) (*domain.CustomerAccount, error) {
	var (
		account     domain.CustomerAccount
		balance     string
		accountType int
	)

	err := row.Scan(
		&account.ID,
		&account.CustomerID,
		&account.AccountNumber,
		&balance,
		&accountType,
		&account.IsActive,
		&account.CreatedDate,
	)
	if err != nil {
		return nil, err
	}

	account.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, err
	}

	// An out-of-range stored type code is data corruption, not a
	// transient failure; retrying cannot fix it.
	typ, err := domain.AccountTypeFromCode(accountType)
	if err != nil {
		return nil, retry.Permanent(err)
	}
	account.Type = typ

	return &account, nil
}
