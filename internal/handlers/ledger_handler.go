package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fuel-ledger/internal/config"
	"fuel-ledger/internal/dto"
	apierrors "fuel-ledger/internal/errors"
	"fuel-ledger/internal/ledger"
	"fuel-ledger/internal/models"
	"fuel-ledger/internal/services"
	"fuel-ledger/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// accountRoute binds a URL account kind to its statement and error codes
type accountRoute struct {
	notFound  apierrors.ErrorCode
	invalidID apierrors.ErrorCode
	statement func(services.LedgerServiceInterface, uuid.UUID, ledger.Window) (*models.LedgerStatement, error)
}

var accountRoutes = map[string]accountRoute{
	validation.KindCustomers: {
		notFound:  apierrors.CustomerNotFound,
		invalidID: apierrors.CustomerInvalidID,
		statement: services.LedgerServiceInterface.CustomerLedger,
	},
	validation.KindSuppliers: {
		notFound:  apierrors.SupplierNotFound,
		invalidID: apierrors.SupplierInvalidID,
		statement: services.LedgerServiceInterface.SupplierLedger,
	},
	validation.KindBankAccounts: {
		notFound:  apierrors.BankAccountNotFound,
		invalidID: apierrors.BankAccountInvalidID,
		statement: services.LedgerServiceInterface.BankAccountLedger,
	},
	validation.KindTanks: {
		notFound:  apierrors.TankNotFound,
		invalidID: apierrors.TankInvalidID,
		statement: services.LedgerServiceInterface.TankLedger,
	},
}

type LedgerHandler struct {
	ledgerService services.LedgerServiceInterface
	exportService services.ExportServiceInterface
	location      *time.Location
}

func NewLedgerHandler(
	ledgerService services.LedgerServiceInterface,
	exportService services.ExportServiceInterface,
	cfg *config.LedgerConfig,
) *LedgerHandler {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	return &LedgerHandler{
		ledgerService: ledgerService,
		exportService: exportService,
		location:      location,
	}
}

// GetLedger computes the statement of one account for a window
//
// Method: GET /api/v1/:kind/:id/ledger
// Authentication: Required (JWT)
//
// Path parameters:
//   - kind: customers, suppliers, bank-accounts or tanks
//   - id: UUID of the account
//
// Query parameters:
//   - from: YYYY-MM-DD (optional, defaults to the start of the default window)
//   - to: YYYY-MM-DD (optional, defaults to today)
//
// Success Response: 200 OK
//   - data: statement with entries, display rows, before/within/to-date
//     summaries, counts and warnings
//   - meta: timezone, warning_count, row_count
//
// Error Responses:
//   - 400: Invalid id, date format or window (LEDGER_001, LEDGER_002, LEDGER_003)
//   - 401: Unauthorized (missing JWT)
//   - 404: Unknown account kind or account not found
//   - 422: A stored record type is not valid for the account (LEDGER_004)
//   - 500: Internal server error
func (h *LedgerHandler) GetLedger(c echo.Context) error {
	var req dto.LedgerQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return h.handleValidationError(c, req.Kind, err)
	}

	route := accountRoutes[req.Kind]
	statement, err := h.computeStatement(route, req)
	if err != nil {
		return h.handleServiceError(c, route, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: statement,
		Meta: dto.LedgerMeta{
			Timezone:     h.location.String(),
			WarningCount: len(statement.Warnings),
			RowCount:     len(statement.Rows),
		},
	})
}

// ExportLedger renders the statement of one account as a file download
//
// Method: GET /api/v1/:kind/:id/ledger/export
// Authentication: Required (JWT, admin, manager or accountant)
//
// Path parameters:
//   - kind: customers, suppliers, bank-accounts or tanks
//   - id: UUID of the account
//
// Query parameters:
//   - format: csv, xlsx or pdf (optional, defaults to csv)
//   - from, to: YYYY-MM-DD (optional, as for GetLedger)
//
// Success Response: 200 OK with Content-Disposition: attachment
//
// Error Responses:
//   - 400: Invalid parameters or unsupported format (EXPORT_001)
//   - 401: Unauthorized (missing JWT)
//   - 403: Forbidden (role may not export)
//   - 404: Unknown account kind or account not found
//   - 500: Internal server error or rendering failure (EXPORT_002)
func (h *LedgerHandler) ExportLedger(c echo.Context) error {
	var req dto.ExportQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return h.handleValidationError(c, req.Kind, err)
	}

	format := req.Format
	if format == "" {
		format = services.ExportFormatCSV
	}

	route := accountRoutes[req.Kind]
	statement, err := h.computeStatement(route, req.LedgerQuery)
	if err != nil {
		return h.handleServiceError(c, route, err)
	}

	file, err := h.exportService.Export(statement, format)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return SendError(c, apierrors.ExportUnsupportedFormat)
		}
		slog.Error("ledger export failed",
			"trace_id", getTraceID(c),
			"kind", req.Kind,
			"account_id", req.ID,
			"format", format,
			"error", err)
		return SendError(c, apierrors.ExportFailed)
	}

	staffID, _ := getStaffIDFromContext(c)
	slog.Info("ledger export served",
		"trace_id", getTraceID(c),
		"staff_id", staffID,
		"role", getRoleFromContext(c),
		"kind", req.Kind,
		"format", format,
		"filename", file.Filename)

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Blob(http.StatusOK, file.ContentType, file.Content)
}

func (h *LedgerHandler) computeStatement(route accountRoute, req dto.LedgerQuery) (*models.LedgerStatement, error) {
	accountID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, err
	}

	from, err := h.parseDate(req.From)
	if err != nil {
		return nil, err
	}
	to, err := h.parseDate(req.To)
	if err != nil {
		return nil, err
	}

	window, err := h.ledgerService.ResolveWindow(from, to)
	if err != nil {
		return nil, err
	}

	return route.statement(h.ledgerService, accountID, window)
}

// parseDate reads a calendar day in the station timezone. Empty means unset.
func (h *LedgerHandler) parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(validation.DateLayout, value, h.location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// handleValidationError maps the first failing field to its error code
func (h *LedgerHandler) handleValidationError(c echo.Context, kind string, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Field() {
	case "kind":
		return SendError(c, apierrors.LedgerUnknownAccount, apierrors.WithDetails(fmt.Sprintf("unknown account kind %q", kind)))
	case "id":
		if route, ok := accountRoutes[kind]; ok {
			return SendError(c, route.invalidID)
		}
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	case "from", "to":
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(fieldErr.Field()+" must be formatted as YYYY-MM-DD"))
	case "format":
		return SendError(c, apierrors.ExportUnsupportedFormat)
	default:
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
}

func (h *LedgerHandler) handleServiceError(c echo.Context, route accountRoute, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return SendError(c, route.notFound)
	}

	if errors.Is(err, services.ErrInvalidWindow) {
		return SendError(c, apierrors.LedgerInvalidWindow)
	}

	if errors.Is(err, services.ErrWindowTooLarge) {
		return SendError(c, apierrors.LedgerWindowTooLarge, apierrors.WithDetails(err.Error()))
	}

	if errors.Is(err, services.ErrFutureWindow) {
		return SendError(c, apierrors.LedgerFutureWindow)
	}

	if errors.Is(err, services.ErrUnsupportedKind) {
		return SendError(c, apierrors.LedgerUnsupportedKind, apierrors.WithDetails(err.Error()))
	}

	return SendSystemError(c, err)
}
