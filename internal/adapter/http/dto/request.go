// Package dto defines the JSON shapes of the HTTP API. Requests convert
// into domain values at the boundary; responses are built from domain
// values so the wire format never leaks into the services.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bfb/corebank/internal/domain"
)

// CustomerRequest is the request body for creating or updating a customer.
type CustomerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// ToDomain converts the request into a domain customer.
func (r CustomerRequest) ToDomain() *domain.Customer {
	customer := &domain.Customer{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		ZipCode:     r.ZipCode,
		IsActive:    true,
	}
	if r.IsActive != nil {
		customer.IsActive = *r.IsActive
	}

	return customer
}

// CustomerAccountRequest is the request body for creating or updating a
// customer account.
type CustomerAccountRequest struct {
	CustomerID    int             `json:"customerId"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	AccountType   string          `json:"accountType"`
	IsActive      *bool           `json:"isActive,omitempty"`
}

// ToDomain converts the request into a domain customer account.
func (r CustomerAccountRequest) ToDomain() (*domain.CustomerAccount, error) {
	accountType, err := domain.ParseAccountType(r.AccountType)
	if err != nil {
		return nil, err
	}

	account := &domain.CustomerAccount{
		CustomerID:    r.CustomerID,
		AccountNumber: r.AccountNumber,
		Balance:       r.Balance,
		Type:          accountType,
		IsActive:      true,
	}
	if r.IsActive != nil {
		account.IsActive = *r.IsActive
	}

	return account, nil
}

// BankAccountRequest is the request body for creating or updating a bank
// account.
type BankAccountRequest struct {
	AccountNumber string          `json:"accountNumber"`
	OwnerName     string          `json:"ownerName"`
	Balance       decimal.Decimal `json:"balance"`
	AccountType   string          `json:"accountType"`
	BankID        int             `json:"bankId"`
	BranchID      int             `json:"branchId"`
	IsActive      *bool           `json:"isActive,omitempty"`
}

// ToDomain converts the request into a domain bank account.
func (r BankAccountRequest) ToDomain() (*domain.BankAccount, error) {
	accountType, err := domain.ParseAccountType(r.AccountType)
	if err != nil {
		return nil, err
	}

	account := &domain.BankAccount{
		AccountNumber: r.AccountNumber,
		OwnerName:     r.OwnerName,
		Balance:       r.Balance,
		Type:          accountType,
		BankID:        r.BankID,
		BranchID:      r.BranchID,
		IsActive:      true,
	}
	if r.IsActive != nil {
		account.IsActive = *r.IsActive
	}

	return account, nil
}

// BankBranchRequest is the request body for creating or updating a branch.
type BankBranchRequest struct {
	BankID      int    `json:"bankId"`
	BranchName  string `json:"branchName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	PhoneNumber string `json:"phoneNumber"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// ToDomain converts the request into a domain branch.
func (r BankBranchRequest) ToDomain() *domain.BankBranch {
	branch := &domain.BankBranch{
		BankID:      r.BankID,
		BranchName:  r.BranchName,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		ZipCode:     r.ZipCode,
		PhoneNumber: r.PhoneNumber,
		IsActive:    true,
	}
	if r.IsActive != nil {
		branch.IsActive = *r.IsActive
	}

	return branch
}

// TransactionRequest is the request body for recording a transaction.
type TransactionRequest struct {
	AccountID       int             `json:"accountId"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}

// ToDomain converts the request into a domain transaction.
func (r TransactionRequest) ToDomain() *domain.Transaction {
	return &domain.Transaction{
		AccountID:       r.AccountID,
		TransactionType: r.TransactionType,
		Amount:          r.Amount,
		Description:     r.Description,
	}
}

// DateRangeQuery holds the parsed date-range query parameters.
type DateRangeQuery struct {
	Start time.Time
	End   time.Time
}
