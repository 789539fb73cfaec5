package repositories

import (
	"errors"
	"fmt"

	"fuel-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTankNotFound = errors.New("tank not found")
)

// tankRepository implements TankRepositoryInterface
type tankRepository struct {
	db *gorm.DB
}

// NewTankRepository creates a new tank repository
func NewTankRepository(db *gorm.DB) TankRepositoryInterface {
	return &tankRepository{db: db}
}

// Create creates a new tank
func (r *tankRepository) Create(tank *models.Tank) error {
	if err := r.db.Create(tank).Error; err != nil {
		return fmt.Errorf("failed to create tank: %w", err)
	}
	return nil
}

// GetByID retrieves a tank by ID
func (r *tankRepository) GetByID(id uuid.UUID) (*models.Tank, error) {
	tank := &models.Tank{ID: id}
	if err := r.db.First(tank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTankNotFound
		}
		return nil, fmt.Errorf("failed to get tank: %w", err)
	}
	return tank, nil
}

// List retrieves tanks grouped by fuel type with pagination
func (r *tankRepository) List(offset, limit int) ([]models.Tank, int64, error) {
	var tanks []models.Tank
	var total int64

	if err := r.db.Model(&models.Tank{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tanks: %w", err)
	}

	if err := r.db.Order("fuel_type ASC").Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&tanks).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tanks: %w", err)
	}

	return tanks, total, nil
}
