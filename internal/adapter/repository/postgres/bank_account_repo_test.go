package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bfb/corebank/internal/adapter/repository/retry"
	"github.com/bfb/corebank/internal/cache"
	"github.com/bfb/corebank/internal/domain"
)

func newCachedRepository(c *cache.Cache) *BankAccountRepository {
	// A nil pool is fine for cache-hit paths: they never reach the
	// database.
	return NewBankAccountRepository(nil, c, retry.NewPolicy(3, time.Millisecond, zerolog.Nop()))
}

func seedCachedAccount(c *cache.Cache, id int, balance int64) {
	c.Set(keyBankAccountID(id), &domain.BankAccount{
		ID:            id,
		AccountNumber: "ACC-1",
		OwnerName:     "Jane",
		Balance:       decimal.NewFromInt(balance),
		Type:          domain.Checking,
		IsActive:      true,
	})
}

func TestGetByID_CacheHitReturnsCopy(t *testing.T) {
	c := cache.New(time.Minute)
	seedCachedAccount(c, 1, 100)

	repo := newCachedRepository(c)

	first, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A caller mutating its result must not be visible to later reads.
	first.Balance = first.Balance.Add(decimal.NewFromInt(50))
	first.BankID = 42

	second, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct account values per read")
	}
	if !second.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected cached balance 100, got %s", second.Balance)
	}
	if second.BankID != 0 {
		t.Errorf("expected cached bank ID untouched, got %d", second.BankID)
	}
}

func TestGetAll_CacheHitCopiesEntries(t *testing.T) {
	c := cache.New(time.Minute)
	c.Set(keyBankAccountAll, []*domain.BankAccount{
		{ID: 1, AccountNumber: "ACC-1", OwnerName: "Jane", Balance: decimal.NewFromInt(100)},
		{ID: 2, AccountNumber: "ACC-2", OwnerName: "John", Balance: decimal.NewFromInt(200)},
	})

	repo := newCachedRepository(c)

	first, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first[0].BankID = 42

	second, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second[0].BankID != 0 {
		t.Errorf("expected cached listing untouched by caller mutation, got bank ID %d", second[0].BankID)
	}
}

// unknownTypeRow scans a row whose stored account type code has no
// domain counterpart.
type unknownTypeRow struct{}

func (unknownTypeRow) Scan(dest ...any) error {
	*(dest[4].(*int)) = 99
	return nil
}

func TestScanUnknownAccountTypeFailsFast(t *testing.T) {
	p := retry.NewPolicy(3, time.Millisecond, zerolog.Nop())

	attempts := 0
	err := p.Do(context.Background(), "GetBankAccountByID", func() error {
		attempts++
		_, scanErr := scanBankAccount(unknownTypeRow{})
		return scanErr
	})

	if err == nil {
		t.Fatal("expected error for unknown account type code")
	}
	if attempts != 1 {
		t.Fatalf("expected a single attempt, got %d", attempts)
	}
	if errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("unknown type code must not surface as storage failure, got %v", err)
	}
}
