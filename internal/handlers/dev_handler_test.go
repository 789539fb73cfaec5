package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fuel-ledger/internal/dto"
	apierrors "fuel-ledger/internal/errors"
	"fuel-ledger/internal/models"
	"fuel-ledger/internal/repositories"
	"fuel-ledger/internal/repositories/repository_mocks"
	"fuel-ledger/internal/services"
	"fuel-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DevHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	echo         *echo.Echo
	customerRepo *repository_mocks.MockCustomerRepositoryInterface
	billRepo     *repository_mocks.MockBillRepositoryInterface
	paymentRepo  *repository_mocks.MockPaymentRepositoryInterface
	generator    *service_mocks.MockRecordGeneratorInterface
	handler      *DevHandler
	customerID   uuid.UUID
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerSuite))
}

func (s *DevHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.billRepo = repository_mocks.NewMockBillRepositoryInterface(s.ctrl)
	s.paymentRepo = repository_mocks.NewMockPaymentRepositoryInterface(s.ctrl)
	s.generator = service_mocks.NewMockRecordGeneratorInterface(s.ctrl)
	s.handler = NewDevHandler(s.customerRepo, s.billRepo, s.paymentRepo, s.generator, time.UTC)
	s.customerID = uuid.New()
}

func (s *DevHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerSuite) newContext(id, query string) (echo.Context, *httptest.ResponseRecorder) {
	target := "/api/v1/dev/customers/" + id + "/generate-test-data"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodPost, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	c.Set(StaffIDContextKey, uuid.New())
	return c, rec
}

func (s *DevHandlerSuite) generatedBill(invoice string, amount int64, paid bool) services.GeneratedBill {
	generated := services.GeneratedBill{
		Bill: &models.Bill{ID: uuid.New(), CustomerID: s.customerID, BillDate: time.Now(), InvoiceNumber: invoice},
	}
	if amount > 0 {
		generated.Bill.Amount = decimal.NewNullDecimal(decimal.NewFromInt(amount))
	}
	if paid {
		generated.Payment = &models.Payment{
			ID: uuid.New(), PartyType: models.PartyTypeCustomer, PartyID: s.customerID,
			PaymentDate: time.Now(), Reference: "RCPT-" + invoice, Amount: generated.Bill.Amount,
		}
	}
	return generated
}

func (s *DevHandlerSuite) TestGenerateCustomerRecords_Success() {
	c, rec := s.newContext(s.customerID.String(), "count=3&days=7")

	history := []services.GeneratedBill{
		s.generatedBill("INV-1", 500, true),
		s.generatedBill("INV-2", 0, false),
		s.generatedBill("INV-3", 750, false),
	}

	s.customerRepo.EXPECT().GetByID(s.customerID).Return(&models.Customer{ID: s.customerID, Name: "Al-Madina Goods"}, nil)
	s.generator.EXPECT().
		GenerateCustomerHistory(s.customerID, gomock.Any(), gomock.Any(), 3).
		DoAndReturn(func(_ uuid.UUID, from, to time.Time, _ int) []services.GeneratedBill {
			s.Equal(6, int(to.Sub(from).Hours()/24))
			return history
		})
	s.billRepo.EXPECT().Create(history[0].Bill).Return(nil)
	s.billRepo.EXPECT().Create(history[1].Bill).Return(nil)
	s.billRepo.EXPECT().Create(history[2].Bill).Return(errors.New("duplicate invoice"))
	s.paymentRepo.EXPECT().Create(history[0].Payment).Return(nil)

	err := s.handler.GenerateCustomerRecords(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.GenerateRecordsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.BillsCreated)
	s.Equal(1, response.PaymentsCreated)
	s.Equal(s.customerID.String(), response.CustomerID)
}

// Test a payment is not stored when the bill it settles failed to insert
func (s *DevHandlerSuite) TestGenerateCustomerRecords_SkipsPaymentOfFailedBill() {
	c, rec := s.newContext(s.customerID.String(), "count=2")

	history := []services.GeneratedBill{
		s.generatedBill("INV-1", 500, true),
		s.generatedBill("INV-2", 900, true),
	}

	s.customerRepo.EXPECT().GetByID(s.customerID).Return(&models.Customer{ID: s.customerID}, nil)
	s.generator.EXPECT().GenerateCustomerHistory(s.customerID, gomock.Any(), gomock.Any(), 2).Return(history)
	s.billRepo.EXPECT().Create(history[0].Bill).Return(errors.New("duplicate invoice"))
	s.billRepo.EXPECT().Create(history[1].Bill).Return(nil)
	s.paymentRepo.EXPECT().Create(history[1].Payment).Return(nil)

	err := s.handler.GenerateCustomerRecords(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.GenerateRecordsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(1, response.BillsCreated)
	s.Equal(1, response.PaymentsCreated)
}

func (s *DevHandlerSuite) TestGenerateCustomerRecords_ClampsCount() {
	c, rec := s.newContext(s.customerID.String(), "count=50000&days=0")

	s.customerRepo.EXPECT().GetByID(s.customerID).Return(&models.Customer{ID: s.customerID}, nil)
	s.generator.EXPECT().
		GenerateCustomerHistory(s.customerID, gomock.Any(), gomock.Any(), 1000).
		Return([]services.GeneratedBill{})

	err := s.handler.GenerateCustomerRecords(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DevHandlerSuite) TestGenerateCustomerRecords_InvalidID() {
	c, rec := s.newContext("abc", "")

	err := s.handler.GenerateCustomerRecords(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), string(apierrors.CustomerInvalidID))
}

func (s *DevHandlerSuite) TestGenerateCustomerRecords_CustomerNotFound() {
	c, rec := s.newContext(s.customerID.String(), "")

	s.customerRepo.EXPECT().GetByID(s.customerID).Return(nil, repositories.ErrCustomerNotFound)

	err := s.handler.GenerateCustomerRecords(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), string(apierrors.CustomerNotFound))
}
