package database

import (
	"fmt"
	"testing"

	"fuel-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// cleanupTables lists tables in dependency order for CleanupTestDB
var cleanupTables = []string{
	"stock_movements",
	"bank_transactions",
	"fuel_purchases",
	"purchases",
	"payments",
	"bills",
	"tanks",
	"bank_accounts",
	"suppliers",
	"customers",
}

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every :memory: connection is its own database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{DB: db}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestCustomer(t *testing.T, db *DB, name string, openingBalance decimal.Decimal) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		Name:           name,
		Phone:          "03001234567",
		OpeningBalance: openingBalance,
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

func CreateTestSupplier(t *testing.T, db *DB, name string, openingBalance decimal.Decimal) *models.Supplier {
	t.Helper()

	supplier := &models.Supplier{
		Name:           name,
		OpeningBalance: openingBalance,
	}

	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("failed to create test supplier: %v", err)
	}

	return supplier
}

func CreateTestBankAccount(t *testing.T, db *DB, number string, openingBalance decimal.Decimal) *models.BankAccount {
	t.Helper()

	account := &models.BankAccount{
		BankName:       "Test Bank",
		AccountNumber:  number,
		OpeningBalance: openingBalance,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test bank account: %v", err)
	}

	return account
}

func CreateTestTank(t *testing.T, db *DB, name string, openingStock decimal.Decimal) *models.Tank {
	t.Helper()

	tank := &models.Tank{
		Name:         name,
		FuelType:     models.FuelTypeDiesel,
		Capacity:     decimal.NewFromInt(25000),
		OpeningStock: openingStock,
	}

	if err := db.Create(tank).Error; err != nil {
		t.Fatalf("failed to create test tank: %v", err)
	}

	return tank
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range cleanupTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
