package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fuel-ledger/internal/config"
	"fuel-ledger/internal/database"
	"fuel-ledger/internal/handlers"
	"fuel-ledger/internal/middleware"
	"fuel-ledger/internal/repositories"
	"fuel-ledger/internal/router"
	"fuel-ledger/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	slog.SetDefault(newLogger(cfg))

	db, err := database.Initialize(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	customerRepo := repositories.NewCustomerRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	bankAccountRepo := repositories.NewBankAccountRepository(db)
	tankRepo := repositories.NewTankRepository(db)
	billRepo := repositories.NewBillRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	metrics := services.NewPrometheusMetrics()
	ledgerService := services.NewLedgerService(services.LedgerRepositories{
		Customers:        customerRepo,
		Suppliers:        supplierRepo,
		BankAccounts:     bankAccountRepo,
		Tanks:            tankRepo,
		Bills:            billRepo,
		Payments:         paymentRepo,
		Purchases:        repositories.NewPurchaseRepository(db),
		FuelPurchases:    repositories.NewFuelPurchaseRepository(db),
		BankTransactions: repositories.NewBankTransactionRepository(db),
		StockMovements:   repositories.NewStockMovementRepository(db),
	}, &cfg.Ledger, metrics)
	exportService := services.NewExportService(metrics)
	tokenService := services.NewTokenService(&cfg.JWT)

	h := router.Handlers{
		Health:  handlers.NewHealthCheckHandler(db),
		Ledger:  handlers.NewLedgerHandler(ledgerService, exportService, &cfg.Ledger),
		Account: handlers.NewAccountHandler(customerRepo, supplierRepo, bankAccountRepo, tankRepo),
	}
	if cfg.IsDevelopment() {
		h.Dev = handlers.NewDevHandler(customerRepo, billRepo, paymentRepo,
			services.NewRecordGenerator(cfg.Ledger.Location), cfg.Ledger.Location)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewVisitorLimiterFromConfig(cfg.Security)
	go limiter.Run(ctx)

	e := router.New(cfg, h, router.Dependencies{
		TokenService: tokenService,
		Metrics:      metrics,
		Limiter:      limiter,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("ledger server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"timezone", cfg.Ledger.Location.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
