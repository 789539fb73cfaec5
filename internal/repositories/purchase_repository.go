package repositories

import (
	"fmt"

	"fuel-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// purchaseRepository implements PurchaseRepositoryInterface
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) PurchaseRepositoryInterface {
	return &purchaseRepository{db: db}
}

// Create creates a new purchase
func (r *purchaseRepository) Create(purchase *models.Purchase) error {
	if err := r.db.Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// GetBySupplierID retrieves every non-fuel purchase from a supplier, oldest first
func (r *purchaseRepository) GetBySupplierID(supplierID uuid.UUID) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.Where("supplier_id = ?", supplierID).
		Order("purchase_date ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to get purchases for supplier: %w", err)
	}
	return purchases, nil
}

// fuelPurchaseRepository implements FuelPurchaseRepositoryInterface
type fuelPurchaseRepository struct {
	db *gorm.DB
}

// NewFuelPurchaseRepository creates a new fuel purchase repository
func NewFuelPurchaseRepository(db *gorm.DB) FuelPurchaseRepositoryInterface {
	return &fuelPurchaseRepository{db: db}
}

// Create creates a new fuel purchase
func (r *fuelPurchaseRepository) Create(purchase *models.FuelPurchase) error {
	if err := r.db.Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to create fuel purchase: %w", err)
	}
	return nil
}

// GetBySupplierID retrieves every fuel delivery from a supplier, oldest first
func (r *fuelPurchaseRepository) GetBySupplierID(supplierID uuid.UUID) ([]models.FuelPurchase, error) {
	return r.findOrdered("supplier_id = ?", supplierID)
}

// GetByTankID retrieves every fuel delivery into a tank, oldest first
func (r *fuelPurchaseRepository) GetByTankID(tankID uuid.UUID) ([]models.FuelPurchase, error) {
	return r.findOrdered("tank_id = ?", tankID)
}

func (r *fuelPurchaseRepository) findOrdered(query string, id uuid.UUID) ([]models.FuelPurchase, error) {
	var purchases []models.FuelPurchase
	if err := r.db.Where(query, id).
		Order("purchase_date ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to get fuel purchases: %w", err)
	}
	return purchases, nil
}
