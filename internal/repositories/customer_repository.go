package repositories

import (
	"errors"
	"fmt"

	"fuel-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// customerRepository implements CustomerRepositoryInterface
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &customerRepository{
		db: db,
	}
}

// Create creates a new customer
func (r *customerRepository) Create(customer *models.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by ID
func (r *customerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	customer := &models.Customer{ID: id}
	if err := r.db.First(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// List retrieves customers ordered by name with pagination
func (r *customerRepository) List(offset, limit int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	if err := r.db.Model(&models.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	if err := r.db.Order("name ASC").Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&customers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, total, nil
}
