package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DateLayout is the only date format accepted for statement windows.
const DateLayout = "2006-01-02"

// Export formats accepted by the export endpoint
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// Account kinds as they appear in URL paths
const (
	KindCustomers    = "customers"
	KindSuppliers    = "suppliers"
	KindBankAccounts = "bank-accounts"
	KindTanks        = "tanks"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("ledger_date", validateLedgerDate)
	_ = v.RegisterValidation("export_format", validateExportFormat)
	_ = v.RegisterValidation("account_kind", validateAccountKind)
	_ = v.RegisterValidation("entity_id", validateEntityID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Custom validation functions

// validateLedgerDate validates a calendar date in YYYY-MM-DD format
func validateLedgerDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

// validateExportFormat validates that the export format is csv, xlsx or pdf
func validateExportFormat(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case FormatCSV, FormatXLSX, FormatPDF:
		return true
	default:
		return false
	}
}

// validateAccountKind validates the account kind path segment
func validateAccountKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case KindCustomers, KindSuppliers, KindBankAccounts, KindTanks:
		return true
	default:
		return false
	}
}

// validateEntityID validates that an ID is a UUID
func validateEntityID(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}
