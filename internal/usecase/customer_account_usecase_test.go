package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bfb/corebank/internal/domain"
	"github.com/bfb/corebank/internal/usecase"
	"github.com/bfb/corebank/internal/usecase/mocks"
)

func newCustomerAccountService(t *testing.T) (*usecase.CustomerAccountService, *mocks.MockCustomerAccountRepository, *mocks.MockCustomerRepository) {
	t.Helper()
	accounts := mocks.NewMockCustomerAccountRepository()
	customers := mocks.NewMockCustomerRepository()
	svc := usecase.NewCustomerAccountService(accounts, customers, zerolog.Nop())
	return svc, accounts, customers
}

func TestCreateCustomerAccount(t *testing.T) {
	svc, _, customers := newCustomerAccountService(t)
	customers.Seed(&domain.Customer{ID: 1, FirstName: "John", LastName: "Doe", Email: "j@x.com"})

	created, err := svc.CreateAccount(context.Background(), &domain.CustomerAccount{
		CustomerID:    1,
		AccountNumber: "CA-100",
		Balance:       decimal.NewFromInt(250),
		Type:          domain.Savings,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected store-assigned ID")
	}
	if !created.IsActive {
		t.Error("expected new account to be active")
	}
	if created.CreatedDate.IsZero() {
		t.Error("expected creation date to be set")
	}
}

func TestCreateCustomerAccount_NegativeBalanceRejected(t *testing.T) {
	svc, accounts, customers := newCustomerAccountService(t)
	customers.Seed(&domain.Customer{ID: 1, FirstName: "John", LastName: "Doe", Email: "j@x.com"})

	_, err := svc.CreateAccount(context.Background(), &domain.CustomerAccount{
		CustomerID:    1,
		AccountNumber: "CA-100",
		Balance:       decimal.NewFromInt(-1),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if accounts.Count() != 0 {
		t.Error("expected nothing persisted on validation failure")
	}
}

func TestCreateCustomerAccount_UnknownCustomerRejected(t *testing.T) {
	svc, _, _ := newCustomerAccountService(t)

	_, err := svc.CreateAccount(context.Background(), &domain.CustomerAccount{
		CustomerID:    404,
		AccountNumber: "CA-100",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found for unknown customer, got %v", err)
	}
}

func TestCreateCustomerAccount_Validation(t *testing.T) {
	tests := []struct {
		name    string
		account *domain.CustomerAccount
	}{
		{"blank account number", &domain.CustomerAccount{CustomerID: 1, AccountNumber: "  "}},
		{"missing customer ID", &domain.CustomerAccount{AccountNumber: "CA-100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, customers := newCustomerAccountService(t)
			customers.Seed(&domain.Customer{ID: 1, FirstName: "John", LastName: "Doe", Email: "j@x.com"})

			_, err := svc.CreateAccount(context.Background(), tt.account)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestGetAccountsByCustomerID_CustomerMustExist(t *testing.T) {
	svc, _, _ := newCustomerAccountService(t)

	_, err := svc.GetAccountsByCustomerID(context.Background(), 9)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found for absent customer, got %v", err)
	}
}
