package services

import (
	"time"

	"fuel-ledger/internal/ledger"
	"fuel-ledger/internal/models"

	"github.com/google/uuid"
)

// LedgerServiceInterface computes account statements from stored records
type LedgerServiceInterface interface {
	// ResolveWindow fills in missing bounds and enforces the configured limits
	ResolveWindow(from, to *time.Time) (ledger.Window, error)

	CustomerLedger(customerID uuid.UUID, window ledger.Window) (*models.LedgerStatement, error)
	SupplierLedger(supplierID uuid.UUID, window ledger.Window) (*models.LedgerStatement, error)
	BankAccountLedger(bankAccountID uuid.UUID, window ledger.Window) (*models.LedgerStatement, error)
	TankLedger(tankID uuid.UUID, window ledger.Window) (*models.LedgerStatement, error)
}

// ExportServiceInterface renders a statement as a downloadable file
type ExportServiceInterface interface {
	Export(statement *models.LedgerStatement, format string) (*ExportFile, error)
}

// TokenServiceInterface defines the contract for JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(staffID uuid.UUID, role string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.StaffClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// RecordGeneratorInterface generates realistic forecourt records for development data
type RecordGeneratorInterface interface {
	GenerateCustomerHistory(customerID uuid.UUID, from, to time.Time, count int) []GeneratedBill
}
