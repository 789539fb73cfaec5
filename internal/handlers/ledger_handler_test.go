package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fuel-ledger/internal/config"
	apierrors "fuel-ledger/internal/errors"
	"fuel-ledger/internal/ledger"
	"fuel-ledger/internal/models"
	"fuel-ledger/internal/services"
	"fuel-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	echo              *echo.Echo
	mockLedgerService *service_mocks.MockLedgerServiceInterface
	mockExportService *service_mocks.MockExportServiceInterface
	handler           *LedgerHandler
	location          *time.Location
	accountID         uuid.UUID
	window            ledger.Window
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockLedgerService = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.mockExportService = service_mocks.NewMockExportServiceInterface(s.ctrl)
	s.location = time.FixedZone("PKT", 5*60*60)
	s.handler = NewLedgerHandler(s.mockLedgerService, s.mockExportService, &config.LedgerConfig{Location: s.location})
	s.accountID = uuid.New()
	s.window = ledger.Window{
		From: time.Date(2025, time.March, 1, 0, 0, 0, 0, s.location),
		To:   time.Date(2025, time.March, 31, 0, 0, 0, 0, s.location),
	}
}

func (s *LedgerHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LedgerHandlerTestSuite) newContext(kind, id, query string) (echo.Context, *httptest.ResponseRecorder) {
	target := fmt.Sprintf("/api/v1/%s/%s/ledger", kind, id)
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("kind", "id")
	c.SetParamValues(kind, id)
	c.Set(StaffIDContextKey, uuid.New())
	c.Set(RoleContextKey, models.RoleAccountant)
	return c, rec
}

func (s *LedgerHandlerTestSuite) statement(accountType ledger.AccountType) *models.LedgerStatement {
	return &models.LedgerStatement{
		AccountType:    accountType,
		AccountID:      s.accountID,
		AccountName:    "Al-Madina Goods",
		Unit:           "PKR",
		From:           s.window.From,
		To:             s.window.To,
		OpeningBalance: decimal.NewFromInt(1000),
		ClosingBalance: decimal.NewFromInt(3300),
		Rows: []models.StatementRow{
			{Date: s.window.From, Badge: "Bill+Payment", RunningBalance: decimal.NewFromInt(2000)},
		},
		Warnings: []ledger.Warning{{Reference: "INV-9"}},
	}
}

func (s *LedgerHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

// ========================================
// GET /api/v1/:kind/:id/ledger Tests
// ========================================

func (s *LedgerHandlerTestSuite) TestGetLedger_Customer_Success() {
	c, rec := s.newContext("customers", s.accountID.String(), "")

	s.mockLedgerService.EXPECT().ResolveWindow((*time.Time)(nil), (*time.Time)(nil)).Return(s.window, nil)
	s.mockLedgerService.EXPECT().CustomerLedger(s.accountID, s.window).Return(s.statement(ledger.AccountCustomer), nil)

	err := s.handler.GetLedger(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data struct {
			AccountType    string `json:"account_type"`
			ClosingBalance string `json:"closing_balance"`
		} `json:"data"`
		Meta struct {
			Timezone     string `json:"timezone"`
			WarningCount int    `json:"warning_count"`
			RowCount     int    `json:"row_count"`
		} `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("customer", response.Data.AccountType)
	s.Equal("3300", response.Data.ClosingBalance)
	s.Equal("PKT", response.Meta.Timezone)
	s.Equal(1, response.Meta.WarningCount)
	s.Equal(1, response.Meta.RowCount)
}

func (s *LedgerHandlerTestSuite) TestGetLedger_ParsesDatesInStationTimezone() {
	c, rec := s.newContext("suppliers", s.accountID.String(), "from=2025-03-01&to=2025-03-31")

	s.mockLedgerService.EXPECT().
		ResolveWindow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(from, to *time.Time) (ledger.Window, error) {
			s.Require().NotNil(from)
			s.Require().NotNil(to)
			s.True(from.Equal(s.window.From), "from = %s", from)
			s.True(to.Equal(s.window.To), "to = %s", to)
			return ledger.Window{From: *from, To: *to}, nil
		})
	s.mockLedgerService.EXPECT().SupplierLedger(s.accountID, gomock.Any()).Return(s.statement(ledger.AccountSupplier), nil)

	err := s.handler.GetLedger(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *LedgerHandlerTestSuite) TestGetLedger_RoutesEachKind() {
	tests := []struct {
		kind   string
		expect func()
	}{
		{"customers", func() {
			s.mockLedgerService.EXPECT().CustomerLedger(s.accountID, s.window).Return(s.statement(ledger.AccountCustomer), nil)
		}},
		{"suppliers", func() {
			s.mockLedgerService.EXPECT().SupplierLedger(s.accountID, s.window).Return(s.statement(ledger.AccountSupplier), nil)
		}},
		{"bank-accounts", func() {
			s.mockLedgerService.EXPECT().BankAccountLedger(s.accountID, s.window).Return(s.statement(ledger.AccountBankAccount), nil)
		}},
		{"tanks", func() {
			s.mockLedgerService.EXPECT().TankLedger(s.accountID, s.window).Return(s.statement(ledger.AccountTank), nil)
		}},
	}

	for _, tt := range tests {
		s.Run(tt.kind, func() {
			c, rec := s.newContext(tt.kind, s.accountID.String(), "")
			s.mockLedgerService.EXPECT().ResolveWindow(gomock.Any(), gomock.Any()).Return(s.window, nil)
			tt.expect()

			s.NoError(s.handler.GetLedger(c))
			s.Equal(http.StatusOK, rec.Code)
		})
	}
}

func (s *LedgerHandlerTestSuite) TestGetLedger_ValidationErrors() {
	tests := []struct {
		name   string
		kind   string
		id     string
		query  string
		status int
		code   apierrors.ErrorCode
	}{
		{"unknown kind", "drivers", s.accountID.String(), "", http.StatusNotFound, apierrors.LedgerUnknownAccount},
		{"invalid customer id", "customers", "not-a-uuid", "", http.StatusBadRequest, apierrors.CustomerInvalidID},
		{"invalid supplier id", "suppliers", "42", "", http.StatusBadRequest, apierrors.SupplierInvalidID},
		{"invalid tank id", "tanks", "tank-1", "", http.StatusBadRequest, apierrors.TankInvalidID},
		{"invalid from date", "customers", s.accountID.String(), "from=01-03-2025", http.StatusBadRequest, apierrors.ValidationInvalidDate},
		{"invalid to date", "customers", s.accountID.String(), "to=2025-02-30", http.StatusBadRequest, apierrors.ValidationInvalidDate},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := s.newContext(tt.kind, tt.id, tt.query)

			err := s.handler.GetLedger(c)

			s.NoError(err)
			s.Equal(tt.status, rec.Code)
			s.Equal(string(tt.code), s.errorCode(rec))
		})
	}
}

func (s *LedgerHandlerTestSuite) TestGetLedger_WindowErrors() {
	tests := []struct {
		name   string
		err    error
		status int
		code   apierrors.ErrorCode
	}{
		{"inverted", fmt.Errorf("%w: from date is after to date", services.ErrInvalidWindow), http.StatusBadRequest, apierrors.LedgerInvalidWindow},
		{"too large", fmt.Errorf("%w: 400 days exceeds 366", services.ErrWindowTooLarge), http.StatusBadRequest, apierrors.LedgerWindowTooLarge},
		{"future", services.ErrFutureWindow, http.StatusBadRequest, apierrors.LedgerFutureWindow},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := s.newContext("customers", s.accountID.String(), "from=2025-03-31&to=2025-03-01")
			s.mockLedgerService.EXPECT().ResolveWindow(gomock.Any(), gomock.Any()).Return(ledger.Window{}, tt.err)

			err := s.handler.GetLedger(c)

			s.NoError(err)
			s.Equal(tt.status, rec.Code)
			s.Equal(string(tt.code), s.errorCode(rec))
		})
	}
}

func (s *LedgerHandlerTestSuite) TestGetLedger_NotFound() {
	c, rec := s.newContext("tanks", s.accountID.String(), "")

	s.mockLedgerService.EXPECT().ResolveWindow(gomock.Any(), gomock.Any()).Return(s.window, nil)
	s.mockLedgerService.EXPECT().TankLedger(s.accountID, s.window).Return(nil, fmt.Errorf("tank %s: %w", s.accountID, services.ErrNotFound))

	err := s.handler.GetLedger(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.TankNotFound), s.errorCode(rec))
}

func (s *LedgerHandlerTestSuite) TestGetLedger_UnsupportedKind() {
	c, rec := s.newContext("bank-accounts", s.accountID.String(), "")

	s.mockLedgerService.EXPECT().ResolveWindow(gomock.Any(), gomock.Any()).Return(s.window, nil)
	s.mockLedgerService.EXPECT().BankAccountLedger(s.accountID, s.window).Return(nil, fmt.Errorf("%w: withdrawal on tank ledger", services.ErrUnsupportedKind))

	err := s.handler.GetLedger(c)

	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal(string(apierrors.LedgerUnsupportedKind), s.errorCode(rec))
}

func (s *LedgerHandlerTestSuite) TestGetLedger_SystemError() {
	c, rec := s.newContext("customers", s.accountID.String(), "")

	s.mockLedgerService.EXPECT().ResolveWindow(gomock.Any(), gomock.Any()).Return(s.window, nil)
	s.mockLedgerService.EXPECT().CustomerLedger(s.accountID, s.window).Return(nil, errors.New("connection refused"))

	err := s.handler.GetLedger(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apierrors.SystemInternalError), s.errorCode(rec))
	s.NotContains(rec.Body.String(), "connection refused")
}

// ========================================
// GET /api/v1/:kind/:id/ledger/export Tests
// ========================================

func (s *LedgerHandlerTestSuite) TestExportLedger_XLSX_Success() {
	c, rec := s.newContext("customers", s.accountID.String(), "format=xlsx")
	statement := s.statement(ledger.AccountCustomer)

	s.mockLedgerService.EXPECT().ResolveWindow(gomock.Any(), gomock.Any()).Return(s.window, nil)
	s.mockLedgerService.EXPECT().CustomerLedger(s.accountID, s.window).Return(statement, nil)
	s.mockExportService.EXPECT().Export(statement, "xlsx").Return(&services.ExportFile{
		Filename:    "customer-ledger-12345678-2025-03-01-to-2025-03-31.xlsx",
		ContentType: services.ContentTypeXLSX,
		Content:     []byte("PK"),
	}, nil)

	err := s.handler.ExportLedger(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(services.ContentTypeXLSX, rec.Header().Get(echo.HeaderContentType))
	s.Equal(`attachment; filename="customer-ledger-12345678-2025-03-01-to-2025-03-31.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	s.Equal("PK", rec.Body.String())
}

func (s *LedgerHandlerTestSuite) TestExportLedger_DefaultsToCSV() {
	c, rec := s.newContext("tanks", s.accountID.String(), "")
	statement := s.statement(ledger.AccountTank)

	s.mockLedgerService.EXPECT().ResolveWindow(gomock.Any(), gomock.Any()).Return(s.window, nil)
	s.mockLedgerService.EXPECT().TankLedger(s.accountID, s.window).Return(statement, nil)
	s.mockExportService.EXPECT().Export(statement, services.ExportFormatCSV).Return(&services.ExportFile{
		Filename:    "tank-ledger.csv",
		ContentType: services.ContentTypeCSV,
		Content:     []byte("Date,Type\n"),
	}, nil)

	err := s.handler.ExportLedger(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "tank-ledger.csv")
}

func (s *LedgerHandlerTestSuite) TestExportLedger_UnsupportedFormat() {
	c, rec := s.newContext("customers", s.accountID.String(), "format=docx")

	err := s.handler.ExportLedger(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ExportUnsupportedFormat), s.errorCode(rec))
}

func (s *LedgerHandlerTestSuite) TestExportLedger_RenderFailure() {
	c, rec := s.newContext("suppliers", s.accountID.String(), "format=pdf")
	statement := s.statement(ledger.AccountSupplier)

	s.mockLedgerService.EXPECT().ResolveWindow(gomock.Any(), gomock.Any()).Return(s.window, nil)
	s.mockLedgerService.EXPECT().SupplierLedger(s.accountID, s.window).Return(statement, nil)
	s.mockExportService.EXPECT().Export(statement, "pdf").Return(nil, errors.New("font missing"))

	err := s.handler.ExportLedger(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apierrors.ExportFailed), s.errorCode(rec))
}

func (s *LedgerHandlerTestSuite) TestExportLedger_NotFound() {
	c, rec := s.newContext("bank-accounts", s.accountID.String(), "format=csv")

	s.mockLedgerService.EXPECT().ResolveWindow(gomock.Any(), gomock.Any()).Return(s.window, nil)
	s.mockLedgerService.EXPECT().BankAccountLedger(s.accountID, s.window).Return(nil, services.ErrNotFound)

	err := s.handler.ExportLedger(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.BankAccountNotFound), s.errorCode(rec))
}
