package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bfb/corebank/internal/domain"
)

// ErrorResponse is the error envelope returned by every failing request.
type ErrorResponse struct {
	Status    int      `json:"status"`
	Title     string   `json:"title"`
	Detail    string   `json:"detail"`
	ErrorCode string   `json:"errorCode"`
	Path      string   `json:"path"`
	Timestamp string   `json:"timestamp"`
	RequestID string   `json:"requestId"`
	Errors    []string `json:"errors,omitempty"`
}

// CustomerResponse is the wire shape of a customer.
type CustomerResponse struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zipCode"`
	IsActive    bool      `json:"isActive"`
	CreatedDate time.Time `json:"createdDate"`
}

// CustomerFromDomain builds a CustomerResponse.
func CustomerFromDomain(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		ZipCode:     c.ZipCode,
		IsActive:    c.IsActive,
		CreatedDate: c.CreatedDate,
	}
}

// CustomersFromDomain builds a slice of CustomerResponse.
func CustomersFromDomain(customers []*domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerFromDomain(c))
	}

	return out
}

// CustomerAccountResponse is the wire shape of a customer account.
type CustomerAccountResponse struct {
	ID            int             `json:"id"`
	CustomerID    int             `json:"customerId"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	AccountType   string          `json:"accountType"`
	IsActive      bool            `json:"isActive"`
	CreatedDate   time.Time       `json:"createdDate"`
}

// CustomerAccountFromDomain builds a CustomerAccountResponse.
func CustomerAccountFromDomain(a *domain.CustomerAccount) CustomerAccountResponse {
	return CustomerAccountResponse{
		ID:            a.ID,
		CustomerID:    a.CustomerID,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		AccountType:   a.Type.String(),
		IsActive:      a.IsActive,
		CreatedDate:   a.CreatedDate,
	}
}

// CustomerAccountsFromDomain builds a slice of CustomerAccountResponse.
func CustomerAccountsFromDomain(accounts []*domain.CustomerAccount) []CustomerAccountResponse {
	out := make([]CustomerAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, CustomerAccountFromDomain(a))
	}

	return out
}

// BankAccountResponse is the wire shape of a bank account.
type BankAccountResponse struct {
	ID            int             `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	OwnerName     string          `json:"ownerName"`
	Balance       decimal.Decimal `json:"balance"`
	AccountType   string          `json:"accountType"`
	BankID        int             `json:"bankId"`
	BranchID      int             `json:"branchId"`
	IsActive      bool            `json:"isActive"`
	CreatedDate   time.Time       `json:"createdDate"`
}

// BankAccountFromDomain builds a BankAccountResponse.
func BankAccountFromDomain(a *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		OwnerName:     a.OwnerName,
		Balance:       a.Balance,
		AccountType:   a.Type.String(),
		BankID:        a.BankID,
		BranchID:      a.BranchID,
		IsActive:      a.IsActive,
		CreatedDate:   a.CreatedDate,
	}
}

// BankAccountsFromDomain builds a slice of BankAccountResponse.
func BankAccountsFromDomain(accounts []*domain.BankAccount) []BankAccountResponse {
	out := make([]BankAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, BankAccountFromDomain(a))
	}

	return out
}

// BankBranchResponse is the wire shape of a branch.
type BankBranchResponse struct {
	ID          int       `json:"id"`
	BankID      int       `json:"bankId"`
	BranchName  string    `json:"branchName"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zipCode"`
	PhoneNumber string    `json:"phoneNumber"`
	IsActive    bool      `json:"isActive"`
	CreatedDate time.Time `json:"createdDate"`
}

// BankBranchFromDomain builds a BankBranchResponse.
func BankBranchFromDomain(b *domain.BankBranch) BankBranchResponse {
	return BankBranchResponse{
		ID:          b.ID,
		BankID:      b.BankID,
		BranchName:  b.BranchName,
		Address:     b.Address,
		City:        b.City,
		State:       b.State,
		ZipCode:     b.ZipCode,
		PhoneNumber: b.PhoneNumber,
		IsActive:    b.IsActive,
		CreatedDate: b.CreatedDate,
	}
}

// BankBranchesFromDomain builds a slice of BankBranchResponse.
func BankBranchesFromDomain(branches []*domain.BankBranch) []BankBranchResponse {
	out := make([]BankBranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, BankBranchFromDomain(b))
	}

	return out
}

// TransactionResponse is the wire shape of a transaction.
type TransactionResponse struct {
	ID                      int             `json:"id"`
	AccountID               int             `json:"accountId"`
	TransactionType         string          `json:"transactionType"`
	Amount                  decimal.Decimal `json:"amount"`
	Description             string          `json:"description"`
	Timestamp               time.Time       `json:"timestamp"`
	BalanceAfterTransaction decimal.Decimal `json:"balanceAfterTransaction"`
	Reference               string          `json:"reference"`
}

// TransactionFromDomain builds a TransactionResponse.
func TransactionFromDomain(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                      tx.ID,
		AccountID:               tx.AccountID,
		TransactionType:         tx.TransactionType,
		Amount:                  tx.Amount,
		Description:             tx.Description,
		Timestamp:               tx.Timestamp,
		BalanceAfterTransaction: tx.BalanceAfterTransaction,
		Reference:               tx.Reference,
	}
}

// TransactionsFromDomain builds a slice of TransactionResponse.
func TransactionsFromDomain(txs []*domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionFromDomain(tx))
	}

	return out
}
