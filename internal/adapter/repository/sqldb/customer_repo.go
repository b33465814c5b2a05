// Package sqldb persists customers and customer accounts through
// database/sql with the lib/pq driver. It is the plain-SQL counterpart
// to the pgx-based bank account store: same cache-aside and retry
// conventions, different driver surface.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/bfb/corebank/internal/adapter/repository/retry"
	"github.com/bfb/corebank/internal/cache"
	"github.com/bfb/corebank/internal/domain"
)

const (
	keyCustomerPrefix = "customers:"
	keyCustomerAll    = "customers:all"
)

func keyCustomerID(id int) string {
	return keyCustomerPrefix + "id:" + strconv.Itoa(id)
}

// CustomerRepository implements usecase.CustomerRepository.
type CustomerRepository struct {
	db    *sql.DB
	cache *cache.Cache
	retry *retry.Policy
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(db *sql.DB, c *cache.Cache, p *retry.Policy) *CustomerRepository {
	return &CustomerRepository{db: db, cache: c, retry: p}
}

const customerColumns = `id, first_name, last_name, email, phone_number, address, city, state, zip_code, is_active, created_date`

// GetAll lists all customers.
func (r *CustomerRepository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	if cached, ok := r.cache.Get(keyCustomerAll); ok {
		return cached.([]*domain.Customer), nil
	}

	var customers []*domain.Customer
	err := r.retry.Do(ctx, "GetAllCustomers", func() error {
		rows, err := r.db.QueryContext(ctx,
			`SELECT `+customerColumns+` FROM customers ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		customers = customers[:0]
		for rows.Next() {
			customer, err := scanCustomer(rows)
			if err != nil {
				return err
			}
			customers = append(customers, customer)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	r.cache.Set(keyCustomerAll, customers)

	return customers, nil
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	key := keyCustomerID(id)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(*domain.Customer), nil
	}

	var customer *domain.Customer
	err := r.retry.Do(ctx, "GetCustomerByID", func() error {
		row := r.db.QueryRowContext(ctx,
			`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)

		var scanErr error
		customer, scanErr = scanCustomer(row)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return domain.NotFoundError("customer", id)
		}

		return scanErr
	})
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, customer)

	return customer, nil
}

// Create inserts a customer and returns it with the store-assigned ID.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	created := *customer

	err := r.retry.Do(ctx, "CreateCustomer", func() error {
		return r.db.QueryRowContext(ctx,
			`INSERT INTO customers
			   (first_name, last_name, email, phone_number, address, city, state, zip_code, is_active, created_date)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 RETURNING id`,
			customer.FirstName,
			customer.LastName,
			customer.Email,
			customer.PhoneNumber,
			customer.Address,
			customer.City,
			customer.State,
			customer.ZipCode,
			customer.IsActive,
			customer.CreatedDate,
		).Scan(&created.ID)
	})
	if err != nil {
		return nil, err
	}

	r.cache.InvalidatePrefix(keyCustomerPrefix)

	return &created, nil
}

// Update fully replaces a customer.
func (r *CustomerRepository) Update(ctx context.Context, id int, customer *domain.Customer) error {
	err := r.retry.Do(ctx, "UpdateCustomer", func() error {
		result, err := r.db.ExecContext(ctx,
			`UPDATE customers
			 SET first_name = $1, last_name = $2, email = $3, phone_number = $4,
			     address = $5, city = $6, state = $7, zip_code = $8,
			     is_active = $9, created_date = $10
			 WHERE id = $11`,
			customer.FirstName,
			customer.LastName,
			customer.Email,
			customer.PhoneNumber,
			customer.Address,
			customer.City,
			customer.State,
			customer.ZipCode,
			customer.IsActive,
			customer.CreatedDate,
			id,
		)
		if err != nil {
			return err
		}

		return requireRowsAffected(result, "customer", id)
	})
	if err != nil {
		return err
	}

	r.cache.InvalidatePrefix(keyCustomerPrefix)

	return nil
}

// Delete removes a customer.
func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	err := r.retry.Do(ctx, "DeleteCustomer", func() error {
		result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
		if err != nil {
			return err
		}

		return requireRowsAffected(result, "customer", id)
	})
	if err != nil {
		return err
	}

	r.cache.InvalidatePrefix(keyCustomerPrefix)

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row scanner) (*domain.Customer, error) {
	var customer domain.Customer

	err := row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.PhoneNumber,
		&customer.Address,
		&customer.City,
		&customer.State,
		&customer.ZipCode,
		&customer.IsActive,
		&customer.CreatedDate,
	)
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func requireRowsAffected(result sql.Result, resource string, id int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError(resource, id)
	}

	return nil
}
