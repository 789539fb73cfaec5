package services

import (
	"sort"
	"time"

	"fuel-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	forecourtOpenHour  = 6
	forecourtCloseHour = 23
	sameDayPaymentRate = 0.6
	missingAmountRate  = 0.02
	minBillLitres      = 10.0
	maxBillLitres      = 250.0
)

// fuelRates are per-litre pump prices used for generated bills
var fuelRates = map[string]decimal.Decimal{
	models.FuelTypePetrol:   decimal.RequireFromString("272.89"),
	models.FuelTypeDiesel:   decimal.RequireFromString("283.63"),
	models.FuelTypeHiOctane: decimal.RequireFromString("301.50"),
}

type recordGenerator struct {
	faker *gofakeit.Faker
	loc   *time.Location
}

// NewRecordGenerator creates a generator seeded from the clock. Timestamps
// fall inside forecourt hours in loc.
func NewRecordGenerator(loc *time.Location) RecordGeneratorInterface {
	return NewRecordGeneratorWithSeed(time.Now().UnixNano(), loc)
}

// NewRecordGeneratorWithSeed creates a deterministic generator
func NewRecordGeneratorWithSeed(seed int64, loc *time.Location) RecordGeneratorInterface {
	if loc == nil {
		loc = time.UTC
	}
	return &recordGenerator{
		faker: gofakeit.New(seed),
		loc:   loc,
	}
}

// GeneratedBill is a generated bill and the payment that settled it, if any
type GeneratedBill struct {
	Bill    *models.Bill
	Payment *models.Payment
}

// GenerateCustomerHistory generates count credit bills between from and to,
// each settled on the same day with some probability. A small share of bills
// carry no amount, as happens with forecourt imports. Bills are ordered by
// date.
func (g *recordGenerator) GenerateCustomerHistory(customerID uuid.UUID, from, to time.Time, count int) []GeneratedBill {
	history := make([]GeneratedBill, 0, count)

	for i := 0; i < count; i++ {
		generated := GeneratedBill{Bill: g.generateBill(customerID, from, to)}
		if generated.Bill.Amount.Valid && g.faker.Float64Range(0, 1) < sameDayPaymentRate {
			generated.Payment = g.generatePayment(customerID, generated.Bill)
		}
		history = append(history, generated)
	}

	sort.SliceStable(history, func(i, j int) bool { return history[i].Bill.BillDate.Before(history[j].Bill.BillDate) })

	return history
}

func (g *recordGenerator) generateBill(customerID uuid.UUID, from, to time.Time) *models.Bill {
	fuelType := g.faker.RandomString([]string{models.FuelTypePetrol, models.FuelTypeDiesel, models.FuelTypeHiOctane})
	litres := decimal.NewFromFloat(g.faker.Float64Range(minBillLitres, maxBillLitres)).Round(2)

	bill := &models.Bill{
		ID:            uuid.New(),
		CustomerID:    customerID,
		BillDate:      g.generateTimestamp(from, to),
		InvoiceNumber: g.faker.Numerify("INV-######"),
		Litres:        decimal.NewNullDecimal(litres),
		Notes:         fuelType,
	}

	if g.faker.Float64Range(0, 1) >= missingAmountRate {
		bill.Amount = decimal.NewNullDecimal(litres.Mul(fuelRates[fuelType]).Round(2))
	}

	return bill
}

func (g *recordGenerator) generatePayment(customerID uuid.UUID, bill *models.Bill) *models.Payment {
	amount := bill.Amount.Decimal
	if g.faker.Bool() {
		// partial settlement, rounded down to whole currency units
		amount = amount.Mul(decimal.NewFromFloat(g.faker.Float64Range(0.3, 0.9))).Floor()
	}

	minutes := g.faker.Number(5, 120)
	paidAt := bill.BillDate.Add(time.Duration(minutes) * time.Minute)
	billDay := bill.BillDate.In(g.loc)
	if endOfDay := time.Date(billDay.Year(), billDay.Month(), billDay.Day(), 23, 59, 59, 0, g.loc); paidAt.After(endOfDay) {
		paidAt = endOfDay
	}

	return &models.Payment{
		ID:          uuid.New(),
		PartyType:   models.PartyTypeCustomer,
		PartyID:     customerID,
		PaymentDate: paidAt,
		Method:      g.faker.RandomString([]string{models.PaymentMethodCash, models.PaymentMethodBank, models.PaymentMethodCheque}),
		Reference:   g.faker.Numerify("RCPT-######"),
		Amount:      decimal.NewNullDecimal(amount),
	}
}

// generateTimestamp picks a day in [from, to] and a time inside forecourt hours
func (g *recordGenerator) generateTimestamp(from, to time.Time) time.Time {
	first := startOfDay(from, g.loc)
	day := first.AddDate(0, 0, g.faker.Number(0, daysBetween(first, startOfDay(to, g.loc))))

	return time.Date(
		day.Year(),
		day.Month(),
		day.Day(),
		g.faker.Number(forecourtOpenHour, forecourtCloseHour-1),
		g.faker.Number(0, 59),
		g.faker.Number(0, 59),
		0,
		g.loc,
	)
}
