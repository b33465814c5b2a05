package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/domain"
)

// CustomerService handles customer business logic.
type CustomerService struct {
	customers CustomerRepository
	logger    zerolog.Logger
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customers CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

// GetAllCustomers lists all customers.
func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.customers.GetAll(ctx)
}

// GetCustomerByID retrieves a customer by ID.
func (s *CustomerService) GetCustomerByID(ctx context.Context, id int) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// CreateCustomer validates and persists a new customer. The store
// assigns the identifier; creation date and active flag are set here.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	customer.CreatedDate = time.Now().UTC()
	customer.IsActive = true

	created, err := s.customers.Create(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("customer_id", created.ID).Msg("customer created")

	return created, nil
}

// UpdateCustomer validates and fully replaces a customer. The creation
// date of the existing record is preserved.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}

	existing, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return err
	}

	customer.CreatedDate = existing.CreatedDate

	return s.customers.Update(ctx, id, customer)
}

// DeleteCustomer removes a customer. Hard delete, no tombstone.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	return s.customers.Delete(ctx, id)
}

func validateCustomer(customer *domain.Customer) error {
	if strings.TrimSpace(customer.FirstName) == "" {
		return domain.ValidationError("first name cannot be empty")
	}
	if strings.TrimSpace(customer.LastName) == "" {
		return domain.ValidationError("last name cannot be empty")
	}
	if strings.TrimSpace(customer.Email) == "" {
		return domain.ValidationError("email cannot be empty")
	}
	return nil
}
