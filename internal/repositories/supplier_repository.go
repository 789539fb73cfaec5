package repositories

import (
	"errors"
	"fmt"

	"fuel-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSupplierNotFound = errors.New("supplier not found")
)

// supplierRepository implements SupplierRepositoryInterface
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) SupplierRepositoryInterface {
	return &supplierRepository{
		db: db,
	}
}

// Create creates a new supplier
func (r *supplierRepository) Create(supplier *models.Supplier) error {
	if err := r.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// GetByID retrieves a supplier by ID
func (r *supplierRepository) GetByID(id uuid.UUID) (*models.Supplier, error) {
	supplier := &models.Supplier{ID: id}
	if err := r.db.First(supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return supplier, nil
}

// List retrieves suppliers ordered by name with pagination
func (r *supplierRepository) List(offset, limit int) ([]models.Supplier, int64, error) {
	var suppliers []models.Supplier
	var total int64

	if err := r.db.Model(&models.Supplier{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	if err := r.db.Order("name ASC").Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&suppliers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}

	return suppliers, total, nil
}
