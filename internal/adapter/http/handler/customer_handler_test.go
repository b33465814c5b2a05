package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/adapter/http/dto"
	"github.com/bfb/corebank/internal/domain"
)

type customerServiceStub struct {
	getAllFn  func(ctx context.Context) ([]*domain.Customer, error)
	getByIDFn func(ctx context.Context, id int) (*domain.Customer, error)
	createFn  func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	updateFn  func(ctx context.Context, id int, customer *domain.Customer) error
	deleteFn  func(ctx context.Context, id int) error
}

func (s *customerServiceStub) GetAllCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.getAllFn(ctx)
}

func (s *customerServiceStub) GetCustomerByID(ctx context.Context, id int) (*domain.Customer, error) {
	return s.getByIDFn(ctx, id)
}

func (s *customerServiceStub) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	return s.createFn(ctx, customer)
}

func (s *customerServiceStub) UpdateCustomer(ctx context.Context, id int, customer *domain.Customer) error {
	return s.updateFn(ctx, id, customer)
}

func (s *customerServiceStub) DeleteCustomer(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func testRenderer() *ErrorRenderer {
	return &ErrorRenderer{Development: true, Logger: zerolog.Nop()}
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	var captured *domain.Customer
	h := NewCustomerHandler(&customerServiceStub{
		createFn: func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
			captured = customer
			created := *customer
			created.ID = 1
			return &created, nil
		},
	}, testRenderer())

	body, _ := json.Marshal(dto.CustomerRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "j@x.com",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if captured.FirstName != "John" || captured.Email != "j@x.com" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.CustomerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != 1 {
		t.Fatalf("expected customer ID 1, got %d", resp.ID)
	}
}

func TestCustomerHandler_Create_InvalidBody(t *testing.T) {
	h := NewCustomerHandler(&customerServiceStub{
		createFn: func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
			t.Fatal("CreateCustomer should not be called")
			return nil, nil
		},
	}, testRenderer())

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader([]byte("{not json")))
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
	if len(envelope.Errors) == 0 {
		t.Fatal("expected field errors in envelope")
	}
}

func TestCustomerHandler_Get_NotFoundEnvelope(t *testing.T) {
	h := NewCustomerHandler(&customerServiceStub{
		getByIDFn: func(ctx context.Context, id int) (*domain.Customer, error) {
			return nil, domain.NotFoundError("customer", id)
		},
	}, testRenderer())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/customers/999", nil), "id", "999")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var envelope dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Status != http.StatusNotFound || envelope.ErrorCode != domain.CodeNotFound {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if envelope.Path != "/api/customers/999" {
		t.Fatalf("expected request path in envelope, got %s", envelope.Path)
	}
	if envelope.Timestamp == "" {
		t.Fatal("expected timestamp in envelope")
	}
}

func TestCustomerHandler_Get_NonNumericID(t *testing.T) {
	h := NewCustomerHandler(&customerServiceStub{
		getByIDFn: func(ctx context.Context, id int) (*domain.Customer, error) {
			t.Fatal("GetCustomerByID should not be called")
			return nil, nil
		},
	}, testRenderer())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/customers/abc", nil), "id", "abc")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCustomerHandler_Delete_NoContent(t *testing.T) {
	h := NewCustomerHandler(&customerServiceStub{
		deleteFn: func(ctx context.Context, id int) error { return nil },
	}, testRenderer())

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/customers/1", nil), "id", "1")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
