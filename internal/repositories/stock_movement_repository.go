package repositories

import (
	"fmt"

	"fuel-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// stockMovementRepository implements StockMovementRepositoryInterface
type stockMovementRepository struct {
	db *gorm.DB
}

// NewStockMovementRepository creates a new stock movement repository
func NewStockMovementRepository(db *gorm.DB) StockMovementRepositoryInterface {
	return &stockMovementRepository{db: db}
}

// Create creates a new stock movement
func (r *stockMovementRepository) Create(movement *models.StockMovement) error {
	if err := r.db.Create(movement).Error; err != nil {
		return fmt.Errorf("failed to create stock movement: %w", err)
	}
	return nil
}

// GetByTankID retrieves every stock movement for a tank, oldest first
func (r *stockMovementRepository) GetByTankID(tankID uuid.UUID) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	if err := r.db.Where("tank_id = ?", tankID).
		Order("movement_date ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&movements).Error; err != nil {
		return nil, fmt.Errorf("failed to get stock movements: %w", err)
	}
	return movements, nil
}
