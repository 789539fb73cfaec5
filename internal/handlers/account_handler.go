package handlers

import (
	"net/http"

	"fuel-ledger/internal/dto"
	"fuel-ledger/internal/errors"
	"fuel-ledger/internal/repositories"
	"fuel-ledger/internal/validation"

	"github.com/labstack/echo/v4"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// AccountHandler lists the accounts a ledger can be computed for
type AccountHandler struct {
	customerRepo    repositories.CustomerRepositoryInterface
	supplierRepo    repositories.SupplierRepositoryInterface
	bankAccountRepo repositories.BankAccountRepositoryInterface
	tankRepo        repositories.TankRepositoryInterface
}

func NewAccountHandler(
	customerRepo repositories.CustomerRepositoryInterface,
	supplierRepo repositories.SupplierRepositoryInterface,
	bankAccountRepo repositories.BankAccountRepositoryInterface,
	tankRepo repositories.TankRepositoryInterface,
) *AccountHandler {
	return &AccountHandler{
		customerRepo:    customerRepo,
		supplierRepo:    supplierRepo,
		bankAccountRepo: bankAccountRepo,
		tankRepo:        tankRepo,
	}
}

// ListAccounts retrieves one page of accounts of a kind
//
// Method: GET /api/v1/:kind
// Authentication: Required (JWT)
//
// Path parameters:
//   - kind: customers, suppliers, bank-accounts or tanks
//
// Query parameters:
//   - offset: Integer offset (default 0)
//   - limit: Integer page size (default 20, max 100)
//
// Success Response: 200 OK
//   - kind, accounts, total, offset, limit
//
// Error Responses:
//   - 400: Invalid pagination parameters
//   - 401: Unauthorized (missing JWT)
//   - 404: Unknown account kind
//   - 500: Internal server error
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	var req dto.AccountListQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}

	if err := c.Validate(req); err != nil {
		if !isKnownKind(req.Kind) {
			return SendError(c, errors.LedgerUnknownAccount)
		}
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("offset must be >= 0 and limit between 1 and 100"))
	}

	if req.Limit == 0 {
		req.Limit = defaultListLimit
	}
	req.Limit = clampInt(req.Limit, 1, maxListLimit)

	var (
		accounts interface{}
		total    int64
		err      error
	)
	switch req.Kind {
	case validation.KindCustomers:
		accounts, total, err = h.customerRepo.List(req.Offset, req.Limit)
	case validation.KindSuppliers:
		accounts, total, err = h.supplierRepo.List(req.Offset, req.Limit)
	case validation.KindBankAccounts:
		accounts, total, err = h.bankAccountRepo.List(req.Offset, req.Limit)
	case validation.KindTanks:
		accounts, total, err = h.tankRepo.List(req.Offset, req.Limit)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Kind:     req.Kind,
		Accounts: accounts,
		Total:    total,
		Offset:   req.Offset,
		Limit:    req.Limit,
	})
}

func isKnownKind(kind string) bool {
	_, ok := accountRoutes[kind]
	return ok
}
