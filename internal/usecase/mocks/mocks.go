// Package mocks provides test doubles for the repository interfaces.
// The hand-written mocks are map-backed fakes whose behavior can be
// overridden per-method with the *Func fields; mock_interfaces.go holds
// mockgen-generated gomock mocks for expectation-style tests.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/bfb/corebank/internal/domain"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[int]*domain.Customer
	nextID    int

	GetAllFunc  func(ctx context.Context) ([]*domain.Customer, error)
	GetByIDFunc func(ctx context.Context, id int) (*domain.Customer, error)
	CreateFunc  func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	UpdateFunc  func(ctx context.Context, id int, customer *domain.Customer) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{customers: make(map[int]*domain.Customer), nextID: 1}
}

// Seed inserts a customer directly, bypassing ID assignment.
func (m *MockCustomerRepository) Seed(customer *domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *customer
	m.customers[copied.ID] = &copied
	if copied.ID >= m.nextID {
		m.nextID = copied.ID + 1
	}
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	return out, nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, domain.NotFoundError("Customer", id)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *customer
	created.ID = m.nextID
	m.nextID++
	m.customers[created.ID] = &created
	return &created, nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, id int, customer *domain.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return domain.NotFoundError("Customer", id)
	}
	updated := *customer
	updated.ID = id
	m.customers[id] = &updated
	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return domain.NotFoundError("Customer", id)
	}
	delete(m.customers, id)
	return nil
}

// MockCustomerAccountRepository is a mock implementation of
// CustomerAccountRepository.
type MockCustomerAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int]*domain.CustomerAccount
	nextID   int

	GetAllFunc          func(ctx context.Context) ([]*domain.CustomerAccount, error)
	GetByIDFunc         func(ctx context.Context, id int) (*domain.CustomerAccount, error)
	GetByCustomerIDFunc func(ctx context.Context, customerID int) ([]*domain.CustomerAccount, error)
	CreateFunc          func(ctx context.Context, account *domain.CustomerAccount) (*domain.CustomerAccount, error)
	UpdateFunc          func(ctx context.Context, id int, account *domain.CustomerAccount) error
	DeleteFunc          func(ctx context.Context, id int) error
}

func NewMockCustomerAccountRepository() *MockCustomerAccountRepository {
	return &MockCustomerAccountRepository{accounts: make(map[int]*domain.CustomerAccount), nextID: 1}
}

// Count reports the number of stored accounts.
func (m *MockCustomerAccountRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.accounts)
}

func (m *MockCustomerAccountRepository) GetAll(ctx context.Context) ([]*domain.CustomerAccount, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.CustomerAccount, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (m *MockCustomerAccountRepository) GetByID(ctx context.Context, id int) (*domain.CustomerAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, domain.NotFoundError("Customer Account", id)
}

func (m *MockCustomerAccountRepository) GetByCustomerID(ctx context.Context, customerID int) ([]*domain.CustomerAccount, error) {
	if m.GetByCustomerIDFunc != nil {
		return m.GetByCustomerIDFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.CustomerAccount
	for _, a := range m.accounts {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockCustomerAccountRepository) Create(ctx context.Context, account *domain.CustomerAccount) (*domain.CustomerAccount, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *account
	created.ID = m.nextID
	m.nextID++
	m.accounts[created.ID] = &created
	return &created, nil
}

func (m *MockCustomerAccountRepository) Update(ctx context.Context, id int, account *domain.CustomerAccount) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return domain.NotFoundError("Customer Account", id)
	}
	updated := *account
	updated.ID = id
	m.accounts[id] = &updated
	return nil
}

func (m *MockCustomerAccountRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return domain.NotFoundError("Customer Account", id)
	}
	delete(m.accounts, id)
	return nil
}

// MockBankAccountRepository is a mock implementation of
// BankAccountRepository.
type MockBankAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int]*domain.BankAccount
	nextID   int

	GetAllFunc  func(ctx context.Context) ([]*domain.BankAccount, error)
	GetByIDFunc func(ctx context.Context, id int) (*domain.BankAccount, error)
	CreateFunc  func(ctx context.Context, account *domain.BankAccount) (*domain.BankAccount, error)
	UpdateFunc  func(ctx context.Context, id int, account *domain.BankAccount) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func NewMockBankAccountRepository() *MockBankAccountRepository {
	return &MockBankAccountRepository{accounts: make(map[int]*domain.BankAccount), nextID: 1}
}

// Seed inserts an account directly, bypassing ID assignment.
func (m *MockBankAccountRepository) Seed(account *domain.BankAccount) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *account
	m.accounts[copied.ID] = &copied
	if copied.ID >= m.nextID {
		m.nextID = copied.ID + 1
	}
}

// Stored returns the stored account without going through GetByIDFunc.
func (m *MockBankAccountRepository) Stored(id int) *domain.BankAccount {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accounts[id]
}

func (m *MockBankAccountRepository) GetAll(ctx context.Context) ([]*domain.BankAccount, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.BankAccount, 0, len(m.accounts))
	for _, a := range m.accounts {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (m *MockBankAccountRepository) GetByID(ctx context.Context, id int) (*domain.BankAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, domain.NotFoundError("Bank Account", id)
}

func (m *MockBankAccountRepository) Create(ctx context.Context, account *domain.BankAccount) (*domain.BankAccount, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *account
	created.ID = m.nextID
	m.nextID++
	m.accounts[created.ID] = &created
	return &created, nil
}

func (m *MockBankAccountRepository) Update(ctx context.Context, id int, account *domain.BankAccount) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return domain.NotFoundError("Bank Account", id)
	}
	updated := *account
	updated.ID = id
	m.accounts[id] = &updated
	return nil
}

func (m *MockBankAccountRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return domain.NotFoundError("Bank Account", id)
	}
	delete(m.accounts, id)
	return nil
}

// MockBankBranchRepository is a mock implementation of
// BankBranchRepository.
type MockBankBranchRepository struct {
	mu       sync.RWMutex
	branches map[int]*domain.BankBranch
	nextID   int

	GetAllFunc      func(ctx context.Context) ([]*domain.BankBranch, error)
	GetByIDFunc     func(ctx context.Context, id int) (*domain.BankBranch, error)
	GetByBankIDFunc func(ctx context.Context, bankID int) ([]*domain.BankBranch, error)
	CreateFunc      func(ctx context.Context, branch *domain.BankBranch) (*domain.BankBranch, error)
	UpdateFunc      func(ctx context.Context, id int, branch *domain.BankBranch) error
	DeleteFunc      func(ctx context.Context, id int) error
}

func NewMockBankBranchRepository() *MockBankBranchRepository {
	return &MockBankBranchRepository{branches: make(map[int]*domain.BankBranch), nextID: 1}
}

// Seed inserts a branch directly, bypassing ID assignment.
func (m *MockBankBranchRepository) Seed(branch *domain.BankBranch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *branch
	m.branches[copied.ID] = &copied
	if copied.ID >= m.nextID {
		m.nextID = copied.ID + 1
	}
}

func (m *MockBankBranchRepository) GetAll(ctx context.Context) ([]*domain.BankBranch, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.BankBranch, 0, len(m.branches))
	for _, b := range m.branches {
		out = append(out, b)
	}
	return out, nil
}

func (m *MockBankBranchRepository) GetByID(ctx context.Context, id int) (*domain.BankBranch, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.branches[id]; ok {
		return b, nil
	}
	return nil, domain.NotFoundError("Branch", id)
}

func (m *MockBankBranchRepository) GetByBankID(ctx context.Context, bankID int) ([]*domain.BankBranch, error) {
	if m.GetByBankIDFunc != nil {
		return m.GetByBankIDFunc(ctx, bankID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.BankBranch
	for _, b := range m.branches {
		if b.BankID == bankID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MockBankBranchRepository) Create(ctx context.Context, branch *domain.BankBranch) (*domain.BankBranch, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, branch)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *branch
	created.ID = m.nextID
	m.nextID++
	m.branches[created.ID] = &created
	return &created, nil
}

func (m *MockBankBranchRepository) Update(ctx context.Context, id int, branch *domain.BankBranch) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, branch)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.branches[id]; !ok {
		return domain.NotFoundError("Branch", id)
	}
	updated := *branch
	updated.ID = id
	m.branches[id] = &updated
	return nil
}

func (m *MockBankBranchRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.branches[id]; !ok {
		return domain.NotFoundError("Branch", id)
	}
	delete(m.branches, id)
	return nil
}

// MockTransactionRepository is a mock implementation of
// TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[int]*domain.Transaction
	nextID       int

	GetByIDFunc        func(ctx context.Context, id int) (*domain.Transaction, error)
	GetByAccountIDFunc func(ctx context.Context, accountID int) ([]*domain.Transaction, error)
	GetByDateRangeFunc func(ctx context.Context, accountID int, start, end time.Time) ([]*domain.Transaction, error)
	CreateFunc         func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{transactions: make(map[int]*domain.Transaction), nextID: 1}
}

// Count reports the number of stored transactions.
func (m *MockTransactionRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transactions)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id int) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tx, ok := m.transactions[id]; ok {
		return tx, nil
	}
	return nil, domain.NotFoundError("Transaction", id)
}

func (m *MockTransactionRepository) GetByAccountID(ctx context.Context, accountID int) ([]*domain.Transaction, error) {
	if m.GetByAccountIDFunc != nil {
		return m.GetByAccountIDFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, tx := range m.transactions {
		if tx.AccountID == accountID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (m *MockTransactionRepository) GetByDateRange(ctx context.Context, accountID int, start, end time.Time) ([]*domain.Transaction, error) {
	if m.GetByDateRangeFunc != nil {
		return m.GetByDateRangeFunc(ctx, accountID, start, end)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, tx := range m.transactions {
		if tx.AccountID == accountID && !tx.Timestamp.Before(start) && !tx.Timestamp.After(end) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *tx
	created.ID = m.nextID
	m.nextID++
	m.transactions[created.ID] = &created
	return &created, nil
}
