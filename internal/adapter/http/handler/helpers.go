package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/adapter/http/dto"
	"github.com/bfb/corebank/internal/adapter/http/middleware"
	"github.com/bfb/corebank/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// ErrorRenderer maps domain errors to the error envelope. In development
// mode the detail carries the underlying error text for every status; in
// production, unexpected errors get a generic detail so internals never
// leak to clients.
type ErrorRenderer struct {
	Development bool
	Logger      zerolog.Logger
}

// Render writes the error envelope for err.
func (e *ErrorRenderer) Render(w http.ResponseWriter, r *http.Request, err error) {
	status, title := classify(err)

	detail := err.Error()
	if status >= 500 {
		e.Logger.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("request failed")

		if !e.Development {
			detail = "an unexpected error occurred"
		}
	}

	writeJSON(w, status, dto.ErrorResponse{
		Status:    status,
		Title:     title,
		Detail:    detail,
		ErrorCode: domain.ErrorCode(err),
		Path:      r.URL.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: middleware.RequestIDFromContext(r.Context()),
	})
}

// RenderValidation writes a validation envelope carrying per-field
// messages from request decoding.
func (e *ErrorRenderer) RenderValidation(w http.ResponseWriter, r *http.Request, detail string, fieldErrors []string) {
	writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Status:    http.StatusBadRequest,
		Title:     "Validation Failed",
		Detail:    detail,
		ErrorCode: domain.CodeValidation,
		Path:      r.URL.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: middleware.RequestIDFromContext(r.Context()),
		Errors:    fieldErrors,
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Resource Not Found"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "Validation Failed"
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "Storage Unavailable"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

// urlParamID parses the {id} route parameter.
func urlParamID(r *http.Request) (int, error) {
	return parseIntParam(r, "id")
}

func parseIntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationError("%s must be an integer, got %q", name, raw)
	}

	return id, nil
}

// parseDateRange parses the startDate/endDate query parameters,
// accepting both RFC 3339 timestamps and bare dates. The short
// start/end names are kept as aliases for older clients.
func parseDateRange(r *http.Request) (dto.DateRangeQuery, error) {
	start, err := parseDateParam(r, "startDate", "start")
	if err != nil {
		return dto.DateRangeQuery{}, err
	}

	end, err := parseDateParam(r, "endDate", "end")
	if err != nil {
		return dto.DateRangeQuery{}, err
	}

	return dto.DateRangeQuery{Start: start, End: end}, nil
}

func parseDateParam(r *http.Request, name, alias string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" && alias != "" {
		raw = r.URL.Query().Get(alias)
	}
	if raw == "" {
		return time.Time{}, domain.ValidationError("%s query parameter is required", name)
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}

	return time.Time{}, domain.ValidationError("%s must be an RFC 3339 timestamp or YYYY-MM-DD date, got %q", name, raw)
}
