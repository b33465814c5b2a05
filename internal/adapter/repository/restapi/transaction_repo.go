// Package restapi backs the transaction repository with a remote HTTP
// service. Transactions are append-only upstream: the remote API only
// supports reads and creates, never updates or deletes.
//
// Transport failures, 429 and 5xx responses are retried under the
// shared retry policy; every call also runs under an overall deadline
// so a flapping remote cannot hold a request open indefinitely.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bfb/corebank/internal/adapter/repository/retry"
	"github.com/bfb/corebank/internal/cache"
	"github.com/bfb/corebank/internal/domain"
)

const (
	keyTransactionPrefix = "transactions:"

	apiKeyHeader = "X-Api-Key"
)

func keyTransactionID(id int) string {
	return keyTransactionPrefix + "id:" + strconv.Itoa(id)
}

func keyTransactionsByAccount(accountID int) string {
	return keyTransactionPrefix + "account:" + strconv.Itoa(accountID)
}

// transactionDTO is the remote API's wire shape.
type transactionDTO struct {
	ID                      int             `json:"id"`
	AccountID               int             `json:"accountId"`
	TransactionType         string          `json:"transactionType"`
	Amount                  decimal.Decimal `json:"amount"`
	Description             string          `json:"description"`
	Timestamp               time.Time       `json:"timestamp"`
	BalanceAfterTransaction decimal.Decimal `json:"balanceAfterTransaction"`
	Reference               string          `json:"reference"`
}

// Options configures the remote transaction store.
type Options struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration // overall budget per call, retries included
	CacheTTL time.Duration
}

// TransactionRepository implements usecase.TransactionRepository against
// the remote transaction service.
type TransactionRepository struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	timeout  time.Duration
	cacheTTL time.Duration
	cache    *cache.Cache
	retry    *retry.Policy
}

// NewTransactionRepository creates a new TransactionRepository. The
// http.Client is shared across calls; per-call deadlines come from the
// configured timeout, not from the client.
func NewTransactionRepository(client *http.Client, opts Options, c *cache.Cache, p *retry.Policy) *TransactionRepository {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}

	return &TransactionRepository{
		client:   client,
		baseURL:  opts.BaseURL,
		apiKey:   opts.APIKey,
		timeout:  opts.Timeout,
		cacheTTL: opts.CacheTTL,
		cache:    c,
		retry:    p,
	}
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id int) (*domain.Transaction, error) {
	key := keyTransactionID(id)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(*domain.Transaction), nil
	}

	var dto transactionDTO
	err := r.call(ctx, "GetTransactionByID", http.MethodGet,
		"/transactions/"+strconv.Itoa(id), nil, &dto,
		domain.NotFoundError("transaction", id))
	if err != nil {
		return nil, err
	}

	tx := dtoToTransaction(dto)
	r.cache.SetTTL(key, tx, r.cacheTTL)

	return tx, nil
}

// GetByAccountID lists the transactions of one account.
func (r *TransactionRepository) GetByAccountID(ctx context.Context, accountID int) ([]*domain.Transaction, error) {
	key := keyTransactionsByAccount(accountID)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]*domain.Transaction), nil
	}

	var dtos []transactionDTO
	err := r.call(ctx, "GetTransactionsByAccountID", http.MethodGet,
		"/transactions/account/"+strconv.Itoa(accountID), nil, &dtos,
		domain.NotFoundError("bank account", accountID))
	if err != nil {
		return nil, err
	}

	txs := dtosToTransactions(dtos)
	r.cache.SetTTL(key, txs, r.cacheTTL)

	return txs, nil
}

// GetByDateRange lists an account's transactions inside [start, end].
// Range queries are never cached: the key space over arbitrary date
// pairs is unbounded and hit rates would be negligible.
func (r *TransactionRepository) GetByDateRange(ctx context.Context, accountID int, start, end time.Time) ([]*domain.Transaction, error) {
	query := url.Values{}
	query.Set("start", start.UTC().Format(time.RFC3339))
	query.Set("end", end.UTC().Format(time.RFC3339))

	var dtos []transactionDTO
	err := r.call(ctx, "GetTransactionsByDateRange", http.MethodGet,
		"/transactions/account/"+strconv.Itoa(accountID)+"?"+query.Encode(), nil, &dtos,
		domain.NotFoundError("bank account", accountID))
	if err != nil {
		return nil, err
	}

	return dtosToTransactions(dtos), nil
}

// Create posts a transaction to the remote service and returns the
// stored version with its assigned ID.
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	var dto transactionDTO
	err := r.call(ctx, "CreateTransaction", http.MethodPost,
		"/transactions", transactionToDTO(tx), &dto, nil)
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(keyTransactionsByAccount(tx.AccountID))

	return dtoToTransaction(dto), nil
}

// call performs one remote operation under the overall timeout, with
// retries. notFound is returned verbatim on a 404; a nil notFound turns
// a 404 into a fatal unexpected-status error.
func (r *TransactionRepository) call(ctx context.Context, operation, method, path string, body, out any, notFound error) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return retry.Permanent(fmt.Errorf("encode request: %w", err))
		}
	}

	return r.retry.Do(ctx, operation, func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
		if err != nil {
			return retry.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if r.apiKey != "" {
			req.Header.Set(apiKeyHeader, r.apiKey)
		}

		resp, err := r.client.Do(req)
		if err != nil {
			return err // network failures are retryable
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			if out == nil {
				return nil
			}

			return json.NewDecoder(resp.Body).Decode(out)

		case resp.StatusCode == http.StatusNotFound:
			if notFound != nil {
				return notFound
			}

			return retry.Permanent(fmt.Errorf("transaction api: %s %s returned 404", method, path))

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("transaction api: %s %s returned %d", method, path, resp.StatusCode)

		default:
			return retry.Permanent(fmt.Errorf("transaction api: %s %s returned %d", method, path, resp.StatusCode))
		}
	})
}

func dtoToTransaction(dto transactionDTO) *domain.Transaction {
	return &domain.Transaction{
		ID:                      dto.ID,
		AccountID:               dto.AccountID,
		TransactionType:         dto.TransactionType,
		Amount:                  dto.Amount,
		Description:             dto.Description,
		Timestamp:               dto.Timestamp,
		BalanceAfterTransaction: dto.BalanceAfterTransaction,
		Reference:               dto.Reference,
	}
}

func transactionToDTO(tx *domain.Transaction) transactionDTO {
	return transactionDTO{
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

func dtosToTransactions(dtos []transactionDTO) []*domain.Transaction {
	txs := make([]*domain.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		txs = append(txs, dtoToTransaction(dto))
	}

	return txs
}
