package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bfb/corebank/internal/adapter/http/dto"
	"github.com/bfb/corebank/internal/domain"
)

type transactionServiceStub struct {
	getFn         func(ctx context.Context, id int) (*domain.Transaction, error)
	listFn        func(ctx context.Context, accountID int) ([]*domain.Transaction, error)
	listByRangeFn func(ctx context.Context, accountID int, start, end time.Time) ([]*domain.Transaction, error)
	createFn      func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

func (s *transactionServiceStub) GetTransactionByID(ctx context.Context, id int) (*domain.Transaction, error) {
	return s.getFn(ctx, id)
}

func (s *transactionServiceStub) GetTransactionsByAccountID(ctx context.Context, accountID int) ([]*domain.Transaction, error) {
	return s.listFn(ctx, accountID)
}

func (s *transactionServiceStub) GetTransactionsByDateRange(ctx context.Context, accountID int, start, end time.Time) ([]*domain.Transaction, error) {
	return s.listByRangeFn(ctx, accountID, start, end)
}

func (s *transactionServiceStub) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	return s.createFn(ctx, tx)
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
			created := *tx
			created.ID = 7
			created.Reference = "ref-1"
			return &created, nil
		},
	}, testRenderer())

	body, _ := json.Marshal(dto.TransactionRequest{
		AccountID:       1,
		TransactionType: "Deposit",
		Amount:          decimal.NewFromInt(50),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != 7 || resp.Reference != "ref-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTransactionHandler_Create_InsufficientFundsEnvelope(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
			return nil, domain.ValidationError("insufficient funds for withdrawal")
		},
	}, testRenderer())

	body, _ := json.Marshal(dto.TransactionRequest{
		AccountID:       1,
		TransactionType: "Withdrawal",
		Amount:          decimal.NewFromInt(-9999),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var envelope dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.ErrorCode != domain.CodeValidation {
		t.Fatalf("expected %s, got %s", domain.CodeValidation, envelope.ErrorCode)
	}
}

func TestTransactionHandler_ListByDateRange(t *testing.T) {
	var gotStart, gotEnd time.Time
	h := NewTransactionHandler(&transactionServiceStub{
		listByRangeFn: func(ctx context.Context, accountID int, start, end time.Time) ([]*domain.Transaction, error) {
			gotStart, gotEnd = start, end
			return []*domain.Transaction{{ID: 1, AccountID: accountID}}, nil
		},
	}, testRenderer())

	req := withURLParam(httptest.NewRequest(http.MethodGet,
		"/api/transactions/account/1/date-range?startDate=2025-03-01&endDate=2025-03-31", nil),
		"accountId", "1")
	rec := httptest.NewRecorder()

	h.ListByDateRange(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotStart.IsZero() || gotEnd.IsZero() {
		t.Fatal("expected parsed dates to reach the service")
	}
	if !gotEnd.After(gotStart) {
		t.Fatalf("expected end after start, got %v..%v", gotStart, gotEnd)
	}
}

func TestTransactionHandler_ListByDateRange_ShortParamAliases(t *testing.T) {
	var gotStart, gotEnd time.Time
	h := NewTransactionHandler(&transactionServiceStub{
		listByRangeFn: func(ctx context.Context, accountID int, start, end time.Time) ([]*domain.Transaction, error) {
			gotStart, gotEnd = start, end
			return nil, nil
		},
	}, testRenderer())

	req := withURLParam(httptest.NewRequest(http.MethodGet,
		"/api/transactions/account/1/date-range?start=2025-03-01&end=2025-03-31", nil),
		"accountId", "1")
	rec := httptest.NewRecorder()

	h.ListByDateRange(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotStart.IsZero() || gotEnd.IsZero() {
		t.Fatal("expected aliased params to parse")
	}
}

func TestTransactionHandler_ListByDateRange_MissingParams(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		listByRangeFn: func(ctx context.Context, accountID int, start, end time.Time) ([]*domain.Transaction, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}, testRenderer())

	req := withURLParam(httptest.NewRequest(http.MethodGet,
		"/api/transactions/account/1/date-range", nil),
		"accountId", "1")
	rec := httptest.NewRecorder()

	h.ListByDateRange(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Get_StorageUnavailable(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		getFn: func(ctx context.Context, id int) (*domain.Transaction, error) {
			return nil, domain.StorageError("GetTransactionByID", errors.New("connection refused"))
		},
	}, testRenderer())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/transactions/7", nil), "id", "7")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var envelope dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.ErrorCode != domain.CodeStorageUnavailable {
		t.Fatalf("expected %s, got %s", domain.CodeStorageUnavailable, envelope.ErrorCode)
	}
}
