package repositories

import (
	"fmt"

	"fuel-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// bankTransactionRepository implements BankTransactionRepositoryInterface
type bankTransactionRepository struct {
	db *gorm.DB
}

// NewBankTransactionRepository creates a new bank transaction repository
func NewBankTransactionRepository(db *gorm.DB) BankTransactionRepositoryInterface {
	return &bankTransactionRepository{db: db}
}

// Create creates a new bank transaction
func (r *bankTransactionRepository) Create(transaction *models.BankTransaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create bank transaction: %w", err)
	}
	return nil
}

// GetByBankAccountID retrieves every transaction on a bank account, oldest first
func (r *bankTransactionRepository) GetByBankAccountID(bankAccountID uuid.UUID) ([]models.BankTransaction, error) {
	var transactions []models.BankTransaction
	if err := r.db.Where("bank_account_id = ?", bankAccountID).
		Order("transaction_date ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get bank transactions: %w", err)
	}
	return transactions, nil
}
