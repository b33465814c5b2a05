package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bfb/corebank/internal/adapter/repository/retry"
	"github.com/bfb/corebank/internal/cache"
	"github.com/bfb/corebank/internal/domain"
)

func newTestRepository(t *testing.T, handler http.Handler) (*TransactionRepository, *cache.Cache) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := cache.New(time.Minute)
	policy := retry.NewPolicy(3, time.Millisecond, zerolog.Nop())

	repo := NewTransactionRepository(server.Client(), Options{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, c, policy)

	return repo, c
}

func sampleDTO(id, accountID int) transactionDTO {
	return transactionDTO{
		ID:              id,
		AccountID:       accountID,
		TransactionType: "Deposit",
		Amount:          decimal.NewFromInt(50),
		Description:     "payday",
		Timestamp:       time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		Reference:       "ref-1",
	}
}

func TestGetByID(t *testing.T) {
	var calls atomic.Int32
	repo, _ := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/transactions/7", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		json.NewEncoder(w).Encode(sampleDTO(7, 1))
	}))

	tx, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, tx.ID)
	assert.Equal(t, "Deposit", tx.TransactionType)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(50)))

	// Second read is served from the cache.
	_, err = repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetByID_NotFound(t *testing.T) {
	var calls atomic.Int32
	repo, _ := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int32(1), calls.Load(), "404 must not be retried")
}

func TestGetByID_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	repo, _ := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(sampleDTO(7, 1))
	}))

	tx, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, tx.ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetByID_ExhaustionWrapsStorageError(t *testing.T) {
	var calls atomic.Int32
	repo, _ := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetByID_ClientErrorIsFatal(t *testing.T) {
	var calls atomic.Int32
	repo, _ := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))

	_, err := repo.GetByID(context.Background(), 7)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Equal(t, int32(1), calls.Load(), "4xx other than 404/429 must not be retried")
}

func TestGetByDateRange_NotCached(t *testing.T) {
	var calls atomic.Int32
	repo, c := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/transactions/account/1", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("start"))
		assert.NotEmpty(t, r.URL.Query().Get("end"))
		json.NewEncoder(w).Encode([]transactionDTO{sampleDTO(7, 1)})
	}))

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		txs, err := repo.GetByDateRange(context.Background(), 1, start, end)
		require.NoError(t, err)
		assert.Len(t, txs, 1)
	}

	assert.Equal(t, int32(2), calls.Load(), "range queries bypass the cache")
	assert.Equal(t, 0, c.Len())
}

func TestCreate_InvalidatesAccountListing(t *testing.T) {
	var calls atomic.Int32
	repo, _ := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			calls.Add(1)
			json.NewEncoder(w).Encode([]transactionDTO{sampleDTO(7, 1)})
		case http.MethodPost:
			var dto transactionDTO
			require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
			dto.ID = 8
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(dto)
		}
	}))

	_, err := repo.GetByAccountID(context.Background(), 1)
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), &domain.Transaction{
		AccountID:       1,
		TransactionType: "Deposit",
		Amount:          decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)

	// The account listing was invalidated, so this refetches.
	_, err = repo.GetByAccountID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}
