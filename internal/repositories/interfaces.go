package repositories

import (
	"fuel-ledger/internal/models"

	"github.com/google/uuid"
)

// CustomerRepositoryInterface defines the contract for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id uuid.UUID) (*models.Customer, error)
	List(offset, limit int) ([]models.Customer, int64, error)
}

// SupplierRepositoryInterface defines the contract for supplier repository operations
type SupplierRepositoryInterface interface {
	Create(supplier *models.Supplier) error
	GetByID(id uuid.UUID) (*models.Supplier, error)
	List(offset, limit int) ([]models.Supplier, int64, error)
}

// BankAccountRepositoryInterface defines the contract for bank account repository operations
type BankAccountRepositoryInterface interface {
	Create(account *models.BankAccount) error
	GetByID(id uuid.UUID) (*models.BankAccount, error)
	List(offset, limit int) ([]models.BankAccount, int64, error)
}

// TankRepositoryInterface defines the contract for tank repository operations
type TankRepositoryInterface interface {
	Create(tank *models.Tank) error
	GetByID(id uuid.UUID) (*models.Tank, error)
	List(offset, limit int) ([]models.Tank, int64, error)
}

// The record repositories below return an owner's full history ordered by
// date. Ledgers are computed over everything, never a page.

// BillRepositoryInterface defines the contract for bill repository operations
type BillRepositoryInterface interface {
	Create(bill *models.Bill) error
	GetByCustomerID(customerID uuid.UUID) ([]models.Bill, error)
}

// PaymentRepositoryInterface defines the contract for payment repository operations
type PaymentRepositoryInterface interface {
	Create(payment *models.Payment) error
	GetByParty(partyType string, partyID uuid.UUID) ([]models.Payment, error)
}

// PurchaseRepositoryInterface defines the contract for purchase repository operations
type PurchaseRepositoryInterface interface {
	Create(purchase *models.Purchase) error
	GetBySupplierID(supplierID uuid.UUID) ([]models.Purchase, error)
}

// FuelPurchaseRepositoryInterface defines the contract for fuel purchase repository operations
type FuelPurchaseRepositoryInterface interface {
	Create(purchase *models.FuelPurchase) error
	GetBySupplierID(supplierID uuid.UUID) ([]models.FuelPurchase, error)
	GetByTankID(tankID uuid.UUID) ([]models.FuelPurchase, error)
}

// BankTransactionRepositoryInterface defines the contract for bank transaction repository operations
type BankTransactionRepositoryInterface interface {
	Create(transaction *models.BankTransaction) error
	GetByBankAccountID(bankAccountID uuid.UUID) ([]models.BankTransaction, error)
}

// StockMovementRepositoryInterface defines the contract for stock movement repository operations
type StockMovementRepositoryInterface interface {
	Create(movement *models.StockMovement) error
	GetByTankID(tankID uuid.UUID) ([]models.StockMovement, error)
}
