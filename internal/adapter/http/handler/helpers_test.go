package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/adapter/http/dto"
	"github.com/bfb/corebank/internal/domain"
)

func TestErrorRenderer_ProductionHidesInternalDetail(t *testing.T) {
	renderer := &ErrorRenderer{Development: false, Logger: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rec := httptest.NewRecorder()

	renderer.Render(rec, req, errors.New("pq: password authentication failed for user"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var envelope dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Detail != "an unexpected error occurred" {
		t.Fatalf("expected generic detail in production, got %q", envelope.Detail)
	}
	if envelope.ErrorCode != domain.CodeInternal {
		t.Fatalf("expected %s, got %s", domain.CodeInternal, envelope.ErrorCode)
	}
}

func TestErrorRenderer_DevelopmentKeepsDetail(t *testing.T) {
	renderer := &ErrorRenderer{Development: true, Logger: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rec := httptest.NewRecorder()

	renderer.Render(rec, req, errors.New("boom"))

	var envelope dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Detail != "boom" {
		t.Fatalf("expected original detail in development, got %q", envelope.Detail)
	}
}

func TestErrorRenderer_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", domain.NotFoundError("customer", 1), http.StatusNotFound},
		{"validation", domain.ValidationError("bad input"), http.StatusBadRequest},
		{"storage", domain.StorageError("op", errors.New("down")), http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := &ErrorRenderer{Development: true, Logger: zerolog.Nop()}
			rec := httptest.NewRecorder()

			renderer.Render(rec, httptest.NewRequest(http.MethodGet, "/api/test", nil), tt.err)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}
