package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fuel-ledger/internal/config"
	"fuel-ledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the gorm handle shared by the repositories
type DB struct {
	*gorm.DB
}

// ledgerIndexes back the per-owner, date-ordered scans every ledger performs
var ledgerIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_customers_name_lower ON customers(LOWER(name))",
	"CREATE INDEX IF NOT EXISTS idx_suppliers_name_lower ON suppliers(LOWER(name))",
	"CREATE INDEX IF NOT EXISTS idx_bills_customer_date ON bills(customer_id, bill_date)",
	"CREATE INDEX IF NOT EXISTS idx_payments_party_date ON payments(party_type, party_id, payment_date)",
	"CREATE INDEX IF NOT EXISTS idx_purchases_supplier_date ON purchases(supplier_id, purchase_date)",
	"CREATE INDEX IF NOT EXISTS idx_fuel_purchases_supplier_date ON fuel_purchases(supplier_id, purchase_date)",
	"CREATE INDEX IF NOT EXISTS idx_fuel_purchases_tank_date ON fuel_purchases(tank_id, purchase_date)",
	"CREATE INDEX IF NOT EXISTS idx_bank_transactions_account_date ON bank_transactions(bank_account_id, transaction_date)",
	"CREATE INDEX IF NOT EXISTS idx_stock_movements_tank_date ON stock_movements(tank_id, movement_date)",
}

// ledgerModels lists every table AutoMigrate manages, accounts first
var ledgerModels = []any{
	&models.Customer{},
	&models.Supplier{},
	&models.BankAccount{},
	&models.Tank{},
	&models.Bill{},
	&models.Payment{},
	&models.Purchase{},
	&models.FuelPurchase{},
	&models.BankTransaction{},
	&models.StockMovement{},
}

// Open connects to PostgreSQL and applies the pool settings
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: gdb}, nil
}

// AutoMigrate creates or updates the ledger tables from the gorm models
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(ledgerModels...)
}

// CreateIndexes creates the ledger scan indexes. A failing statement is
// logged and skipped; the count of created indexes is returned.
func (db *DB) CreateIndexes() int {
	created := 0
	for _, statement := range ledgerIndexes {
		if err := db.Exec(statement).Error; err != nil {
			slog.Warn("failed to create index", "statement", statement, "error", err)
			continue
		}
		created++
	}
	return created
}

// Initialize opens the database and brings the schema up to date. SQL
// migrations run first when enabled; GORM AutoMigrate is the fallback.
func Initialize(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(ctx, sqlDB, cfg.Database.AutoMigrate, cfg.Database.SeedDatabase); err != nil {
		slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	created := db.CreateIndexes()
	slog.Info("database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name, "indexes", created)

	return db.DB, nil
}
