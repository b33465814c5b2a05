package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType enumerates the supported account kinds. The numeric codes
// are the storage representation and must not be reordered.
type AccountType int

const (
	Checking AccountType = iota
	Savings
	Investment
	Loan
	CreditCard
)

var accountTypeNames = map[AccountType]string{
	Checking:   "Checking",
	Savings:    "Savings",
	Investment: "Investment",
	Loan:       "Loan",
	CreditCard: "CreditCard",
}

var accountTypeValues = map[string]AccountType{
	"Checking":   Checking,
	"Savings":    Savings,
	"Investment": Investment,
	"Loan":       Loan,
	"CreditCard": CreditCard,
}

func (t AccountType) String() string {
	if name, ok := accountTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AccountType(%d)", int(t))
}

// AccountTypeFromCode maps a stored numeric code to an AccountType.
// An out-of-range code indicates corrupted data and fails fast.
func AccountTypeFromCode(code int) (AccountType, error) {
	t := AccountType(code)
	if _, ok := accountTypeNames[t]; !ok {
		return 0, fmt.Errorf("unknown account type code %d", code)
	}
	return t, nil
}

// ParseAccountType maps an API-level type name to an AccountType.
func ParseAccountType(name string) (AccountType, error) {
	t, ok := accountTypeValues[name]
	if !ok {
		return 0, ValidationError("unknown account type %q", name)
	}
	return t, nil
}

// CustomerAccount is an account owned by a customer. Stored in the
// customer relational store.
type CustomerAccount struct {
	ID            int
	CustomerID    int
	AccountNumber string
	Balance       decimal.Decimal
	Type          AccountType
	CreatedDate   time.Time
	IsActive      bool
}

// BankAccount is a bank-owned account. BankID must match the bank of the
// referenced branch; the business service enforces this at write time and
// heals it on read.
type BankAccount struct {
	ID            int
	AccountNumber string
	OwnerName     string
	Balance       decimal.Decimal
	Type          AccountType
	CreatedDate   time.Time
	IsActive      bool
	BankID        int
	BranchID      int
}
