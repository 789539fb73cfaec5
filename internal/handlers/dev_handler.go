package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fuel-ledger/internal/dto"
	apierrors "fuel-ledger/internal/errors"
	"fuel-ledger/internal/repositories"
	"fuel-ledger/internal/services"
	"fuel-ledger/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	customerRepo repositories.CustomerRepositoryInterface
	billRepo     repositories.BillRepositoryInterface
	paymentRepo  repositories.PaymentRepositoryInterface
	generator    services.RecordGeneratorInterface
	location     *time.Location
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	customerRepo repositories.CustomerRepositoryInterface,
	billRepo repositories.BillRepositoryInterface,
	paymentRepo repositories.PaymentRepositoryInterface,
	generator services.RecordGeneratorInterface,
	location *time.Location,
) *DevHandler {
	if location == nil {
		location = time.UTC
	}
	return &DevHandler{
		customerRepo: customerRepo,
		billRepo:     billRepo,
		paymentRepo:  paymentRepo,
		generator:    generator,
		location:     location,
	}
}

// GenerateCustomerRecords seeds a customer with realistic bills and payments
//
// Method: POST /api/v1/dev/customers/:id/generate-test-data
// Authentication: Required (JWT, admin)
// Environment: Development only
//
// Path parameters:
//   - id: Customer UUID
//
// Query parameters:
//   - count: Number of bills to generate (default: 100, max: 1000)
//   - days: Number of days of history ending today (default: 30, max: 365)
//
// Success Response: 200 OK
//   - message, customer_id, bills_created, payments_created, date_range
//
// Error Responses:
//   - 400: Invalid customer ID
//   - 401: Unauthorized
//   - 404: Customer not found
//   - 500: Internal server error
func (h *DevHandler) GenerateCustomerRecords(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CustomerInvalidID)
	}

	if _, err := h.customerRepo.GetByID(customerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return SendError(c, apierrors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	count := clampInt(getIntParam(c, "count", 100), 1, 1000)
	days := clampInt(getIntParam(c, "days", 30), 1, 365)

	to := time.Now().In(h.location)
	from := to.AddDate(0, 0, -(days - 1))

	history := h.generator.GenerateCustomerHistory(customerID, from, to, count)

	billsCreated, paymentsCreated := 0, 0
	for _, generated := range history {
		if err := h.billRepo.Create(generated.Bill); err != nil {
			slog.Warn("failed to create generated bill", "customer_id", customerID, "invoice", generated.Bill.InvoiceNumber, "error", err)
			continue
		}
		billsCreated++

		// a payment is only stored once the bill it settles exists
		if generated.Payment == nil {
			continue
		}
		if err := h.paymentRepo.Create(generated.Payment); err != nil {
			slog.Warn("failed to create generated payment", "customer_id", customerID, "error", err)
			continue
		}
		paymentsCreated++
	}

	staffID, _ := getStaffIDFromContext(c)
	slog.Info("generated customer records",
		"customer_id", customerID,
		"staff_id", staffID,
		"client_ip", ClientIP(c),
		"bills", billsCreated,
		"payments", paymentsCreated)

	return c.JSON(http.StatusOK, dto.GenerateRecordsResponse{
		Message:         "test data generated successfully",
		CustomerID:      customerID.String(),
		BillsCreated:    billsCreated,
		PaymentsCreated: paymentsCreated,
		DateRange: dto.DateRange{
			From: from.Format(validation.DateLayout),
			To:   to.Format(validation.DateLayout),
		},
	})
}
