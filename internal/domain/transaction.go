package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Well-known transaction types. TransactionType is free text; these are
// the values the business rules care about.
const (
	TransactionDeposit    = "Deposit"
	TransactionWithdrawal = "Withdrawal"
	TransactionPayment    = "Payment"
	TransactionTransfer   = "Transfer"
)

// Transaction is a ledger entry for a bank account, held by the remote
// transactions API. BalanceAfterTransaction is a snapshot taken when the
// transaction was created, not recomputed afterwards.
type Transaction struct {
	ID                      int
	AccountID               int
	TransactionType         string
	Amount                  decimal.Decimal
	Description             string
	Timestamp               time.Time
	BalanceAfterTransaction decimal.Decimal
	Reference               string
}

// DebitsBalance reports whether the transaction type is one that must be
// covered by the account balance when the amount is negative.
func (t *Transaction) DebitsBalance() bool {
	return strings.EqualFold(t.TransactionType, TransactionWithdrawal) ||
		strings.EqualFold(t.TransactionType, TransactionTransfer)
}
