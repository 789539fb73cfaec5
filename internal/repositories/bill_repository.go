package repositories

import (
	"fmt"

	"fuel-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// billRepository implements BillRepositoryInterface
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) BillRepositoryInterface {
	return &billRepository{db: db}
}

// Create creates a new bill
func (r *billRepository) Create(bill *models.Bill) error {
	if err := r.db.Create(bill).Error; err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

// GetByCustomerID retrieves every bill for a customer, oldest first
func (r *billRepository) GetByCustomerID(customerID uuid.UUID) ([]models.Bill, error) {
	var bills []models.Bill
	if err := r.db.Where("customer_id = ?", customerID).
		Order("bill_date ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("failed to get bills for customer: %w", err)
	}
	return bills, nil
}
