package repositories

import (
	"fmt"

	"fuel-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// paymentRepository implements PaymentRepositoryInterface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepositoryInterface {
	return &paymentRepository{db: db}
}

// Create creates a new payment
func (r *paymentRepository) Create(payment *models.Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByParty retrieves every payment for a customer or supplier, oldest first
func (r *paymentRepository) GetByParty(partyType string, partyID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Where("party_type = ? AND party_id = ?", partyType, partyID).
		Order("payment_date ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get payments for %s: %w", partyType, err)
	}
	return payments, nil
}
