package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/bfb/corebank/internal/adapter/http"
	"github.com/bfb/corebank/internal/adapter/http/handler"
	mongoRepo "github.com/bfb/corebank/internal/adapter/repository/mongo"
	postgresRepo "github.com/bfb/corebank/internal/adapter/repository/postgres"
	redisRepo "github.com/bfb/corebank/internal/adapter/repository/redis"
	restapiRepo "github.com/bfb/corebank/internal/adapter/repository/restapi"
	"github.com/bfb/corebank/internal/adapter/repository/retry"
	sqldbRepo "github.com/bfb/corebank/internal/adapter/repository/sqldb"
	"github.com/bfb/corebank/internal/cache"
	"github.com/bfb/corebank/internal/infrastructure/config"
	"github.com/bfb/corebank/internal/infrastructure/logger"
	infraMongo "github.com/bfb/corebank/internal/infrastructure/mongo"
	"github.com/bfb/corebank/internal/infrastructure/postgres"
	infraRedis "github.com/bfb/corebank/internal/infrastructure/redis"
	infraSQL "github.com/bfb/corebank/internal/infrastructure/sqldb"
	"github.com/bfb/corebank/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Backing stores
	pool, err := postgres.NewPool(ctx, cfg.AccountsDatabaseURL, cfg.AccountsDatabaseMaxConns, cfg.AccountsDatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to accounts database")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to accounts database")

	customersDB, err := infraSQL.Open(ctx, cfg.CustomersDatabaseURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to customers database")
	}
	defer customersDB.Close()
	appLogger.Info().Msg("connected to customers database")

	mongoClient, err := infraMongo.NewClient(ctx, cfg.MongoURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer mongoClient.Disconnect(context.Background())
	appLogger.Info().Msg("connected to mongodb")

	redisClient, err := infraRedis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	// Shared cross-cutting pieces
	entityCache := cache.New(cfg.CacheEntityTTL)
	retryPolicy := retry.NewPolicy(cfg.RetryMaxAttempts, cfg.RetryBaseDelay, appLogger)

	// Repositories
	bankAccountRepo := postgresRepo.NewBankAccountRepository(pool, entityCache, retryPolicy)
	customerRepo := sqldbRepo.NewCustomerRepository(customersDB, entityCache, retryPolicy)
	customerAccountRepo := sqldbRepo.NewCustomerAccountRepository(customersDB, entityCache, retryPolicy)
	branchRepo := mongoRepo.NewBankBranchRepository(mongoClient.Database(cfg.MongoDatabase), entityCache, retryPolicy)
	transactionRepo := restapiRepo.NewTransactionRepository(&http.Client{}, restapiRepo.Options{
		BaseURL:  cfg.TransactionAPIURL,
		APIKey:   cfg.TransactionAPIKey,
		Timeout:  cfg.TransactionAPITimeout,
		CacheTTL: cfg.CacheTransactionTTL,
	}, entityCache, retryPolicy)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Services
	customerSvc := usecase.NewCustomerService(customerRepo, appLogger)
	customerAccountSvc := usecase.NewCustomerAccountService(customerAccountRepo, customerRepo, appLogger)
	bankAccountSvc := usecase.NewBankAccountService(bankAccountRepo, branchRepo, appLogger)
	branchSvc := usecase.NewBankBranchService(branchRepo, appLogger)
	transactionSvc := usecase.NewTransactionService(transactionRepo, bankAccountRepo, appLogger)

	// HTTP surface
	errorRenderer := &handler.ErrorRenderer{
		Development: cfg.IsDevelopment(),
		Logger:      appLogger,
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CustomerHandler:        handler.NewCustomerHandler(customerSvc, errorRenderer),
		CustomerAccountHandler: handler.NewCustomerAccountHandler(customerAccountSvc, errorRenderer),
		BankAccountHandler:     handler.NewBankAccountHandler(bankAccountSvc, errorRenderer),
		BankBranchHandler:      handler.NewBankBranchHandler(branchSvc, errorRenderer),
		TransactionHandler:     handler.NewTransactionHandler(transactionSvc, errorRenderer),
		HealthHandler:          handler.NewHealthHandler(pool, customersDB, mongoClient, redisClient),
		IdempotencyStore:       idempotencyStore,
		IdempotencyTTL:         cfg.IdempotencyTTL,
		Logger:                 appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
