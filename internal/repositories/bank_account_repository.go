package repositories

import (
	"errors"
	"fmt"

	"fuel-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBankAccountNotFound = errors.New("bank account not found")
	ErrAccountNumberExists = errors.New("account number already exists")
)

// bankAccountRepository implements BankAccountRepositoryInterface
type bankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository creates a new bank account repository
func NewBankAccountRepository(db *gorm.DB) BankAccountRepositoryInterface {
	return &bankAccountRepository{db: db}
}

// Create creates a new bank account
func (r *bankAccountRepository) Create(account *models.BankAccount) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountNumberExists
		}
		return fmt.Errorf("failed to create bank account: %w", err)
	}
	return nil
}

// GetByID retrieves a bank account by ID
func (r *bankAccountRepository) GetByID(id uuid.UUID) (*models.BankAccount, error) {
	account := &models.BankAccount{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankAccountNotFound
		}
		return nil, fmt.Errorf("failed to get bank account: %w", err)
	}
	return account, nil
}

// List retrieves bank accounts with pagination
func (r *bankAccountRepository) List(offset, limit int) ([]models.BankAccount, int64, error) {
	var accounts []models.BankAccount
	var total int64

	if err := r.db.Model(&models.BankAccount{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bank accounts: %w", err)
	}

	if err := r.db.Order("bank_name ASC").Order("account_number ASC").
		Offset(offset).
		Limit(limit).
		Find(&accounts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bank accounts: %w", err)
	}

	return accounts, total, nil
}
