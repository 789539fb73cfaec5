package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBankNameRequired      = errors.New("bank name is required")
	ErrAccountNumberRequired = errors.New("account number is required")
)

// BankAccount is one of the station's own bank accounts. The balance is the
// funds held at the bank.
type BankAccount struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BankName       string          `gorm:"type:varchar(255);not null" json:"bank_name"`
	AccountTitle   string          `gorm:"type:varchar(255)" json:"account_title,omitempty"`
	AccountNumber  string          `gorm:"type:varchar(34);uniqueIndex;not null" json:"account_number"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"opening_balance"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	Transactions []BankTransaction `gorm:"foreignKey:BankAccountID" json:"-"`
}

// BeforeCreate hook for BankAccount
func (b *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	stampCreate(&b.CreatedAt, &b.UpdatedAt)
	return b.Validate()
}

// Validate validates the bank account fields
func (b *BankAccount) Validate() error {
	if strings.TrimSpace(b.BankName) == "" {
		return ErrBankNameRequired
	}
	if strings.TrimSpace(b.AccountNumber) == "" {
		return ErrAccountNumberRequired
	}
	return nil
}

// DisplayName is the bank name followed by the last four digits of the
// account number.
func (b *BankAccount) DisplayName() string {
	number := b.AccountNumber
	if len(number) > 4 {
		number = number[len(number)-4:]
	}
	return b.BankName + " ****" + number
}

// TableName returns the table name for BankAccount
func (b *BankAccount) TableName() string {
	return "bank_accounts"
}
