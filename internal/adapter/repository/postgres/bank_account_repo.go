// Package postgres persists bank accounts in PostgreSQL via pgx. Reads
// go through the lookaside cache, writes invalidate the whole
// bank-account key space before returning.
package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bfb/corebank/internal/adapter/repository/retry"
	"github.com/bfb/corebank/internal/cache"
	"github.com/bfb/corebank/internal/domain"
)

const (
	keyBankAccountPrefix = "bankaccounts:"
	keyBankAccountAll    = "bankaccounts:all"
)

func keyBankAccountID(id int) string {
	return keyBankAccountPrefix + "id:" + strconv.Itoa(id)
}

// BankAccountRepository implements usecase.BankAccountRepository.
type BankAccountRepository struct {
	pool  *pgxpool.Pool
	cache *cache.Cache
	retry *retry.Policy
}

// NewBankAccountRepository creates a new BankAccountRepository.
func NewBankAccountRepository(pool *pgxpool.Pool, c *cache.Cache, p *retry.Policy) *BankAccountRepository {
	return &BankAccountRepository{pool: pool, cache: c, retry: p}
}

const bankAccountColumns = `id, account_number, owner_name, balance, account_type, bank_id, branch_id, is_active, created_date`

// GetAll lists all bank accounts, newest first.
func (r *BankAccountRepository) GetAll(ctx context.Context) ([]*domain.BankAccount, error) {
	if cached, ok := r.cache.Get(keyBankAccountAll); ok {
		return cloneBankAccounts(cached.([]*domain.BankAccount)), nil
	}

	var accounts []*domain.BankAccount
	err := r.retry.Do(ctx, "GetAllBankAccounts", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT `+bankAccountColumns+` FROM bank_accounts ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		accounts = accounts[:0]
		for rows.Next() {
			account, err := scanBankAccount(rows)
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

	r.cache.Set(keyBankAccountAll, cloneBankAccounts(accounts))

	return accounts, nil
}

// GetByID retrieves a bank account by ID.
func (r *BankAccountRepository) GetByID(ctx context.Context, id int) (*domain.BankAccount, error) {
	key := keyBankAccountID(id)
	if cached, ok := r.cache.Get(key); ok {
		return cloneBankAccount(cached.(*domain.BankAccount)), nil
	}

	var account *domain.BankAccount
	err := r.retry.Do(ctx, "GetBankAccountByID", func() error {
		row := r.pool.QueryRow(ctx,
			`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE id = $1`, id)

		var scanErr error
		account, scanErr = scanBankAccount(row)
		if errors.Is(scanErr, pgx.ErrNoRows) {
			return domain.NotFoundError("bank account", id)
		}

		return scanErr
	})
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, cloneBankAccount(account))

	return account, nil
}

// Create inserts a bank account and returns it with the store-assigned ID.
func (r *BankAccountRepository) Create(ctx context.Context, account *domain.BankAccount) (*domain.BankAccount, error) {
	created := *account

	err := r.retry.Do(ctx, "CreateBankAccount", func() error {
		return r.pool.QueryRow(ctx,
			`INSERT INTO bank_accounts
			   (account_number, owner_name, balance, account_type, bank_id, branch_id, is_active, created_date)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			account.AccountNumber,
			account.OwnerName,
			decimalToNumeric(account.Balance),
			int(account.Type),
			account.BankID,
			account.BranchID,
			account.IsActive,
			timeToTimestamptz(account.CreatedDate),
		).Scan(&created.ID)
	})
	if err != nil {
		return nil, err
	}

	r.cache.InvalidatePrefix(keyBankAccountPrefix)

	return &created, nil
}

// Update fully replaces a bank account.
func (r *BankAccountRepository) Update(ctx context.Context, id int, account *domain.BankAccount) error {
	err := r.retry.Do(ctx, "UpdateBankAccount", func() error {
		tag, err := r.pool.Exec(ctx,
			`UPDATE bank_accounts
			 SET account_number = $1, owner_name = $2, balance = $3, account_type = $4,
			     bank_id = $5, branch_id = $6, is_active = $7, created_date = $8
			 WHERE id = $9`,
			account.AccountNumber,
			account.OwnerName,
			decimalToNumeric(account.Balance),
			int(account.Type),
			account.BankID,
			account.BranchID,
			account.IsActive,
			timeToTimestamptz(account.CreatedDate),
			id,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.NotFoundError("bank account", id)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.cache.InvalidatePrefix(keyBankAccountPrefix)

	return nil
}

// Delete removes a bank account.
func (r *BankAccountRepository) Delete(ctx context.Context, id int) error {
	err := r.retry.Do(ctx, "DeleteBankAccount", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.NotFoundError("bank account", id)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.cache.InvalidatePrefix(keyBankAccountPrefix)

	return nil
}

// Cached accounts are shared across requests, so cache reads and
// writes exchange copies. Callers own what they get back and may
// mutate it without touching the cached value.
func cloneBankAccount(a *domain.BankAccount) *domain.BankAccount {
	copied := *a
	return &copied
}

func cloneBankAccounts(accounts []*domain.BankAccount) []*domain.BankAccount {
	out := make([]*domain.BankAccount, len(accounts))
	for i, a := range accounts {
		out[i] = cloneBankAccount(a)
	}

	return out
}

func scanBankAccount(row pgx.Row) (*domain.BankAccount, error) {
	var (
		account     domain.BankAccount
		balance     pgtype.Numeric
		accountType int
		createdDate pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.AccountNumber,
		&account.OwnerName,
		&balance,
		&accountType,
		&account.BankID,
		&account.BranchID,
		&account.IsActive,
		&createdDate,
	)
	if err != nil {
		return nil, err
	}

	account.Balance = numericToDecimal(balance)
	account.CreatedDate = createdDate.Time

	// An out-of-range stored type code is data corruption, not a
	// transient failure; retrying cannot fix it.
	typ, err := domain.AccountTypeFromCode(accountType)
	if err != nil {
		return nil, retry.Permanent(err)
	}
	account.Type = typ

	return &account, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
