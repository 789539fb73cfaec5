package models

import (
	"testing"
	"time"

	"fuel-ledger/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment_Validate(t *testing.T) {
	partyID := uuid.New()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		payment Payment
		wantErr error
	}{
		{
			name:    "valid customer payment",
			payment: Payment{PartyType: PartyTypeCustomer, PartyID: partyID, PaymentDate: date, Method: PaymentMethodCash},
		},
		{
			name:    "valid supplier payment by cheque",
			payment: Payment{PartyType: PartyTypeSupplier, PartyID: partyID, PaymentDate: date, Method: PaymentMethodCheque},
		},
		{
			name:    "unknown party type",
			payment: Payment{PartyType: "employee", PartyID: partyID, PaymentDate: date, Method: PaymentMethodCash},
			wantErr: ErrInvalidPartyType,
		},
		{
			name:    "missing party",
			payment: Payment{PartyType: PartyTypeCustomer, PaymentDate: date, Method: PaymentMethodCash},
			wantErr: ErrPartyRequired,
		},
		{
			name:    "missing date",
			payment: Payment{PartyType: PartyTypeCustomer, PartyID: partyID, Method: PaymentMethodCash},
			wantErr: ErrDateRequired,
		},
		{
			name:    "unknown method",
			payment: Payment{PartyType: PartyTypeCustomer, PartyID: partyID, PaymentDate: date, Method: "barter"},
			wantErr: ErrInvalidPaymentMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTank_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tank    Tank
		wantErr error
	}{
		{
			name: "valid diesel tank",
			tank: Tank{Name: "T1", FuelType: FuelTypeDiesel, Capacity: decimal.NewFromInt(25000)},
		},
		{
			name:    "missing name",
			tank:    Tank{FuelType: FuelTypeDiesel, Capacity: decimal.NewFromInt(25000)},
			wantErr: ErrNameRequired,
		},
		{
			name:    "unknown fuel",
			tank:    Tank{Name: "T1", FuelType: "kerosene", Capacity: decimal.NewFromInt(25000)},
			wantErr: ErrInvalidFuelType,
		},
		{
			name:    "zero capacity",
			tank:    Tank{Name: "T1", FuelType: FuelTypePetrol},
			wantErr: ErrInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tank.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBill_LedgerRecord(t *testing.T) {
	date := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)
	bill := Bill{
		CustomerID:    uuid.New(),
		BillDate:      date,
		InvoiceNumber: "INV-1001",
		Amount:        decimal.NewNullDecimal(decimal.RequireFromString("4500.50")),
	}

	var record ledger.Record = bill
	assert.Equal(t, date, record.LedgerTimestamp())
	assert.Equal(t, "INV-1001", record.LedgerReference())

	value, ok := record.LedgerAmount().Value()
	require.True(t, ok)
	assert.True(t, value.Equal(decimal.RequireFromString("4500.50")))

	bill.Amount = decimal.NullDecimal{}
	_, ok = bill.LedgerAmount().Value()
	assert.False(t, ok)
}

func TestFuelPurchase_Total(t *testing.T) {
	tests := []struct {
		name     string
		purchase FuelPurchase
		want     string
		valid    bool
	}{
		{
			name: "recorded amount wins",
			purchase: FuelPurchase{
				Litres: decimal.NewFromInt(10000),
				Rate:   decimal.RequireFromString("255.10"),
				Amount: decimal.NewNullDecimal(decimal.NewFromInt(2550000)),
			},
			want:  "2550000",
			valid: true,
		},
		{
			name: "derived from litres and rate",
			purchase: FuelPurchase{
				Litres: decimal.NewFromInt(10000),
				Rate:   decimal.RequireFromString("255.1234"),
			},
			want:  "2551234",
			valid: true,
		},
		{
			name:     "no amount and no rate",
			purchase: FuelPurchase{Litres: decimal.NewFromInt(10000)},
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := tt.purchase.Total()
			assert.Equal(t, tt.valid, total.Valid)
			if tt.valid {
				assert.True(t, decimal.RequireFromString(tt.want).Equal(total.Decimal), "got %s", total.Decimal)
			}
		})
	}
}

func TestFuelPurchase_StockRecord(t *testing.T) {
	purchase := FuelPurchase{
		PurchaseDate: time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
		Reference:    "DN-77",
		Litres:       decimal.NewFromInt(12000),
		Amount:       decimal.NewNullDecimal(decimal.NewFromInt(3000000)),
	}

	stock := purchase.StockRecord()

	value, ok := stock.LedgerAmount().Value()
	require.True(t, ok)
	assert.True(t, value.Equal(decimal.NewFromInt(12000)))
	assert.Equal(t, "DN-77", stock.LedgerReference())
	assert.Equal(t, purchase.PurchaseDate, stock.LedgerTimestamp())

	money, ok := purchase.LedgerAmount().Value()
	require.True(t, ok)
	assert.True(t, money.Equal(decimal.NewFromInt(3000000)))
}

func TestLedgerKinds(t *testing.T) {
	assert.Equal(t, ledger.KindDeposit, BankTransaction{TransactionType: BankTransactionDeposit}.LedgerKind())
	assert.Equal(t, ledger.KindWithdrawal, BankTransaction{TransactionType: BankTransactionWithdrawal}.LedgerKind())
	assert.Equal(t, ledger.KindAdjustment, BankTransaction{TransactionType: BankTransactionAdjustment}.LedgerKind())
	assert.Equal(t, ledger.KindStockAddition, StockMovement{MovementType: StockMovementAddition}.LedgerKind())
	assert.Equal(t, ledger.KindStockRemoval, StockMovement{MovementType: StockMovementRemoval}.LedgerKind())
	assert.Equal(t, ledger.KindAdjustment, StockMovement{MovementType: StockMovementAdjustment}.LedgerKind())
	assert.Equal(t, ledger.KindUnknown, BankTransaction{TransactionType: "transfer"}.LedgerKind())
	assert.Equal(t, ledger.KindUnknown, StockMovement{MovementType: "spill"}.LedgerKind())

	err := (&StockMovement{TankID: uuid.New(), MovementDate: time.Now(), MovementType: "spill"}).Validate()
	assert.ErrorIs(t, err, ErrInvalidStockMovementType)
}

func TestBankAccount_DisplayName(t *testing.T) {
	account := BankAccount{BankName: "Meezan Bank", AccountNumber: "0101234567890"}
	assert.Equal(t, "Meezan Bank ****7890", account.DisplayName())
}
