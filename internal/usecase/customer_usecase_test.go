package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/domain"
	"github.com/bfb/corebank/internal/usecase"
	"github.com/bfb/corebank/internal/usecase/mocks"
)

func TestCreateCustomer_SetsDefaults(t *testing.T) {
	repo := mocks.NewMockCustomerRepository()
	svc := usecase.NewCustomerService(repo, zerolog.Nop())

	before := time.Now().UTC()
	created, err := svc.CreateCustomer(context.Background(), &domain.Customer{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "j@x.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected store-assigned ID")
	}
	if !created.IsActive {
		t.Error("expected new customer to be active")
	}
	if created.CreatedDate.Before(before) || created.CreatedDate.After(time.Now().UTC()) {
		t.Errorf("expected creation date near now, got %v", created.CreatedDate)
	}

	// create then getById returns the created value.
	fetched, err := svc.GetCustomerByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.FirstName != "John" || fetched.LastName != "Doe" || fetched.Email != "j@x.com" {
		t.Errorf("roundtrip mismatch: %+v", fetched)
	}
}

func TestCreateCustomer_Validation(t *testing.T) {
	tests := []struct {
		name     string
		customer *domain.Customer
	}{
		{"blank first name", &domain.Customer{LastName: "Doe", Email: "j@x.com"}},
		{"blank last name", &domain.Customer{FirstName: "John", Email: "j@x.com"}},
		{"blank email", &domain.Customer{FirstName: "John", LastName: "Doe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCustomerRepository()
			svc := usecase.NewCustomerService(repo, zerolog.Nop())

			_, err := svc.CreateCustomer(context.Background(), tt.customer)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	repo := mocks.NewMockCustomerRepository()
	svc := usecase.NewCustomerService(repo, zerolog.Nop())

	err := svc.UpdateCustomer(context.Background(), 42, &domain.Customer{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "j@x.com",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	repo := mocks.NewMockCustomerRepository()
	svc := usecase.NewCustomerService(repo, zerolog.Nop())

	err := svc.DeleteCustomer(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
