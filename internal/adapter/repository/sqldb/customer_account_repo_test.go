package sqldb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/adapter/repository/retry"
	"github.com/bfb/corebank/internal/domain"
)

// unknownTypeRow scans a row whose stored account type code has no
// domain counterpart.
type unknownTypeRow struct{}

func (unknownTypeRow) Scan(dest ...any) error {
	*(dest[3].(*string)) = "10.00"
	*(dest[4].(*int)) = 99
	return nil
}

func TestScanUnknownAccountTypeFailsFast(t *testing.T) {
	p := retry.NewPolicy(3, time.Millisecond, zerolog.Nop())

	attempts := 0
	err := p.Do(context.Background(), "GetCustomerAccountByID", func() error {
		attempts++
		_, scanErr := scanCustomerAccount(unknownTypeRow{})
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
