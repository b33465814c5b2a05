package domain

import (
	"errors"
	"testing"
)

func TestAccountTypeFromCode(t *testing.T) {
	tests := []struct {
		code    int
		want    AccountType
		wantErr bool
	}{
		{code: 0, want: Checking},
		{code: 1, want: Savings},
		{code: 2, want: Investment},
		{code: 3, want: Loan},
		{code: 4, want: CreditCard},
		{code: 5, wantErr: true},
		{code: -1, wantErr: true},
	}

	for _, tt := range tests {
		got, err := AccountTypeFromCode(tt.code)
		if tt.wantErr {
			if err == nil {
				t.Errorf("code %d: expected error, got %v", tt.code, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("code %d: unexpected error: %v", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("code %d: expected %v, got %v", tt.code, tt.want, got)
		}
	}
}

func TestParseAccountType(t *testing.T) {
	got, err := ParseAccountType("Savings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Savings {
		t.Fatalf("expected Savings, got %v", got)
	}

	_, err = ParseAccountType("Bitcoin")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NotFoundError("Branch", 999), CodeNotFound},
		{ValidationError("account number cannot be empty"), CodeValidation},
		{StorageError("GetAllBankAccounts", errors.New("connection refused")), CodeStorageUnavailable},
		{errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		if got := ErrorCode(tt.err); got != tt.want {
			t.Errorf("ErrorCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestTransactionDebitsBalance(t *testing.T) {
	tests := []struct {
		txType string
		want   bool
	}{
		{"Withdrawal", true},
		{"withdrawal", true},
		{"Transfer", true},
		{"Deposit", false},
		{"Payment", false},
	}

	for _, tt := range tests {
		tx := &Transaction{TransactionType: tt.txType}
		if got := tx.DebitsBalance(); got != tt.want {
			t.Errorf("DebitsBalance(%q) = %v, want %v", tt.txType, got, tt.want)
		}
	}
}
