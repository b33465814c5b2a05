// Package http assembles the REST surface: routing, middleware order
// and the mapping from endpoints to handlers.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/adapter/http/handler"
	"github.com/bfb/corebank/internal/adapter/http/middleware"
	"github.com/bfb/corebank/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CustomerHandler        *handler.CustomerHandler
	CustomerAccountHandler *handler.CustomerAccountHandler
	BankAccountHandler     *handler.BankAccountHandler
	BankBranchHandler      *handler.BankBranchHandler
	TransactionHandler     *handler.TransactionHandler
	HealthHandler          *handler.HealthHandler

	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration

	Logger zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotency := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Logger)
			r.Use(idempotency.Wrap)
		}

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", cfg.CustomerHandler.List)
			r.Post("/", cfg.CustomerHandler.Create)
			r.Get("/{id}", cfg.CustomerHandler.Get)
			r.Put("/{id}", cfg.CustomerHandler.Update)
			r.Delete("/{id}", cfg.CustomerHandler.Delete)
		})

		r.Route("/customeraccounts", func(r chi.Router) {
			r.Get("/", cfg.CustomerAccountHandler.List)
			r.Post("/", cfg.CustomerAccountHandler.Create)
			r.Get("/{id}", cfg.CustomerAccountHandler.Get)
			r.Put("/{id}", cfg.CustomerAccountHandler.Update)
			r.Delete("/{id}", cfg.CustomerAccountHandler.Delete)
			r.Get("/customer/{customerId}", cfg.CustomerAccountHandler.ListByCustomer)
		})

		r.Route("/bankaccounts", func(r chi.Router) {
			r.Get("/", cfg.BankAccountHandler.List)
			r.Post("/", cfg.BankAccountHandler.Create)
			r.Get("/{id}", cfg.BankAccountHandler.Get)
			r.Put("/{id}", cfg.BankAccountHandler.Update)
			r.Delete("/{id}", cfg.BankAccountHandler.Delete)
		})

		r.Route("/bankbranches", func(r chi.Router) {
			r.Get("/", cfg.BankBranchHandler.List)
			r.Post("/", cfg.BankBranchHandler.Create)
			r.Get("/{id}", cfg.BankBranchHandler.Get)
			r.Put("/{id}", cfg.BankBranchHandler.Update)
			r.Delete("/{id}", cfg.BankBranchHandler.Delete)
			r.Get("/bank/{bankId}", cfg.BankBranchHandler.ListByBank)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/{id}", cfg.TransactionHandler.Get)
			r.Get("/account/{accountId}", cfg.TransactionHandler.ListByAccount)
			r.Get("/account/{accountId}/date-range", cfg.TransactionHandler.ListByDateRange)
		})
	})

	return r
}
