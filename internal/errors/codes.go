package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound  ErrorCode = "CUSTOMER_001"
	CustomerInvalidID ErrorCode = "CUSTOMER_004"
)

// Supplier error codes (SUPPLIER_*)
const (
	SupplierNotFound  ErrorCode = "SUPPLIER_001"
	SupplierInvalidID ErrorCode = "SUPPLIER_002"
)

// Bank account error codes (BANK_*)
const (
	BankAccountNotFound  ErrorCode = "BANK_001"
	BankAccountInvalidID ErrorCode = "BANK_002"
)

// Tank error codes (TANK_*)
const (
	TankNotFound  ErrorCode = "TANK_001"
	TankInvalidID ErrorCode = "TANK_002"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerInvalidWindow    ErrorCode = "LEDGER_001"
	LedgerWindowTooLarge   ErrorCode = "LEDGER_002"
	LedgerFutureWindow     ErrorCode = "LEDGER_003"
	LedgerUnsupportedKind  ErrorCode = "LEDGER_004"
	LedgerUnknownAccount   ErrorCode = "LEDGER_005"
	LedgerComputationError ErrorCode = "LEDGER_006"
)

// Export error codes (EXPORT_*)
const (
	ExportUnsupportedFormat ErrorCode = "EXPORT_001"
	ExportFailed            ErrorCode = "EXPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

type codeInfo struct {
	status  int
	message string
}

// registry holds the HTTP status and default message of every code
var registry = map[ErrorCode]codeInfo{
	AuthMissingToken:           {http.StatusUnauthorized, "Authorization token is required"},
	AuthExpiredToken:           {http.StatusUnauthorized, "Authorization token has expired"},
	AuthInvalidTokenFormat:     {http.StatusUnauthorized, "Invalid authorization token format"},
	AuthInsufficientPermission: {http.StatusForbidden, "Insufficient permissions to access this resource"},

	ValidationGeneral:       {http.StatusBadRequest, "Validation failed"},
	ValidationRequiredField: {http.StatusBadRequest, "Required field is missing"},
	ValidationInvalidFormat: {http.StatusBadRequest, "Invalid field format"},
	ValidationOutOfRange:    {http.StatusBadRequest, "Field value is out of allowed range"},
	ValidationInvalidDate:   {http.StatusBadRequest, "Invalid date format or range"},

	CustomerNotFound:     {http.StatusNotFound, "Customer not found"},
	CustomerInvalidID:    {http.StatusBadRequest, "Invalid customer ID format"},
	SupplierNotFound:     {http.StatusNotFound, "Supplier not found"},
	SupplierInvalidID:    {http.StatusBadRequest, "Invalid supplier ID format"},
	BankAccountNotFound:  {http.StatusNotFound, "Bank account not found"},
	BankAccountInvalidID: {http.StatusBadRequest, "Invalid bank account ID format"},
	TankNotFound:         {http.StatusNotFound, "Tank not found"},
	TankInvalidID:        {http.StatusBadRequest, "Invalid tank ID format"},

	LedgerInvalidWindow:    {http.StatusBadRequest, "Invalid statement window: from date must not be after to date"},
	LedgerWindowTooLarge:   {http.StatusBadRequest, "Statement window exceeds the maximum allowed range"},
	LedgerFutureWindow:     {http.StatusBadRequest, "Statement window starts in the future"},
	LedgerUnsupportedKind:  {http.StatusUnprocessableEntity, "Record type is not supported for this account type"},
	LedgerUnknownAccount:   {http.StatusNotFound, "Unknown ledger account type"},
	LedgerComputationError: {http.StatusInternalServerError, "Ledger could not be computed"},

	ExportUnsupportedFormat: {http.StatusBadRequest, "Unsupported export format. Use csv, xlsx or pdf"},
	ExportFailed:            {http.StatusInternalServerError, "Statement export failed"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemDatabaseError:      {http.StatusInternalServerError, "Database connection error"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemConfigurationError: {http.StatusInternalServerError, "System configuration error"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
	SystemRouteNotFound:      {http.StatusNotFound, "The requested resource does not exist"},
}

// GetErrorMessage returns the default message for a code, or a generic one
// for codes that are not registered
func GetErrorMessage(code ErrorCode) string {
	if info, ok := registry[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the response status for a code. Unregistered codes
// are server errors.
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := registry[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// IsValidErrorCode checks if the provided error code is registered
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := registry[code]
	return ok
}
