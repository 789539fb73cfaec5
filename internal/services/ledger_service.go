package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fuel-ledger/internal/config"
	"fuel-ledger/internal/ledger"
	"fuel-ledger/internal/models"
	"fuel-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidWindow   = errors.New("invalid statement window")
	ErrWindowTooLarge  = errors.New("statement window is too large")
	ErrFutureWindow    = errors.New("statement window starts in the future")
	ErrUnsupportedKind = errors.New("record type not supported by account")
)

// LedgerRepositories groups the record sources the ledger service reads from
type LedgerRepositories struct {
	Customers        repositories.CustomerRepositoryInterface
	Suppliers        repositories.SupplierRepositoryInterface
	BankAccounts     repositories.BankAccountRepositoryInterface
	Tanks            repositories.TankRepositoryInterface
	Bills            repositories.BillRepositoryInterface
	Payments         repositories.PaymentRepositoryInterface
	Purchases        repositories.PurchaseRepositoryInterface
	FuelPurchases    repositories.FuelPurchaseRepositoryInterface
	BankTransactions repositories.BankTransactionRepositoryInterface
	StockMovements   repositories.StockMovementRepositoryInterface
}

type ledgerService struct {
	repos   LedgerRepositories
	config  config.LedgerConfig
	metrics MetricsRecorderInterface
	now     func() time.Time
}

func NewLedgerService(repos LedgerRepositories, cfg *config.LedgerConfig, metrics MetricsRecorderInterface) LedgerServiceInterface {
	return &ledgerService{
		repos:   repos,
		config:  *cfg,
		metrics: metrics,
		now:     time.Now,
	}
}

// ledgerAccount is what every account type contributes to a computation
type ledgerAccount struct {
	accountType ledger.AccountType
	id          uuid.UUID
	name        string
	unit        string
	opening     decimal.Decimal
	sources     []ledger.Source
}

func (s *ledgerService) ResolveWindow(from, to *time.Time) (ledger.Window, error) {
	loc := s.location()
	today := startOfDay(s.now(), loc)

	span := s.config.DefaultWindowDays
	if span < 1 {
		span = 1
	}

	var window ledger.Window
	switch {
	case from == nil && to == nil:
		window.To = today
		window.From = today.AddDate(0, 0, -(span - 1))
	case from == nil:
		window.To = startOfDay(*to, loc)
		window.From = window.To.AddDate(0, 0, -(span - 1))
	case to == nil:
		window.From = startOfDay(*from, loc)
		window.To = today
	default:
		window.From = startOfDay(*from, loc)
		window.To = startOfDay(*to, loc)
	}

	if window.From.After(today) {
		return ledger.Window{}, fmt.Errorf("%w: %s", ErrFutureWindow, window.From.Format("2006-01-02"))
	}
	if window.From.After(window.To) {
		return ledger.Window{}, fmt.Errorf("%w: from %s is after to %s", ErrInvalidWindow,
			window.From.Format("2006-01-02"), window.To.Format("2006-01-02"))
	}
	if days := daysBetween(window.From, window.To) + 1; s.config.MaxWindowDays > 0 && days > s.config.MaxWindowDays {
		return ledger.Window{}, fmt.Errorf("%w: %d days, maximum is %d", ErrWindowTooLarge, days, s.config.MaxWindowDays)
	}

	return window, nil
}

func (s *ledgerService) CustomerLedger(customerID uuid.UUID, window ledger.Window) (*models.LedgerStatement, error) {
	customer, err := s.repos.Customers.GetByID(customerID)
	if err != nil {
		return nil, s.accountLookupError(ledger.AccountCustomer, customerID, err, repositories.ErrCustomerNotFound)
	}

	bills, err := s.repos.Bills.GetByCustomerID(customerID)
	if err != nil {
		return nil, s.recordFetchError(ledger.AccountCustomer, customerID, "bills", err)
	}

	payments, err := s.repos.Payments.GetByParty(models.PartyTypeCustomer, customerID)
	if err != nil {
		return nil, s.recordFetchError(ledger.AccountCustomer, customerID, "payments", err)
	}

	return s.compute(ledgerAccount{
		accountType: ledger.AccountCustomer,
		id:          customer.ID,
		name:        customer.Name,
		unit:        s.config.Currency,
		opening:     customer.OpeningBalance,
		sources: []ledger.Source{
			{Kind: ledger.KindBill, Records: asRecords(bills)},
			{Kind: ledger.KindPayment, Records: asRecords(payments)},
		},
	}, window)
}

func (s *ledgerService) SupplierLedger(supplierID uuid.UUID, window ledger.Window) (*models.LedgerStatement, error) {
	supplier, err := s.repos.Suppliers.GetByID(supplierID)
	if err != nil {
		return nil, s.accountLookupError(ledger.AccountSupplier, supplierID, err, repositories.ErrSupplierNotFound)
	}

	purchases, err := s.repos.Purchases.GetBySupplierID(supplierID)
	if err != nil {
		return nil, s.recordFetchError(ledger.AccountSupplier, supplierID, "purchases", err)
	}

	fuelPurchases, err := s.repos.FuelPurchases.GetBySupplierID(supplierID)
	if err != nil {
		return nil, s.recordFetchError(ledger.AccountSupplier, supplierID, "fuel purchases", err)
	}

	payments, err := s.repos.Payments.GetByParty(models.PartyTypeSupplier, supplierID)
	if err != nil {
		return nil, s.recordFetchError(ledger.AccountSupplier, supplierID, "payments", err)
	}

	return s.compute(ledgerAccount{
		accountType: ledger.AccountSupplier,
		id:          supplier.ID,
		name:        supplier.Name,
		unit:        s.config.Currency,
		opening:     supplier.OpeningBalance,
		sources: []ledger.Source{
			{Kind: ledger.KindPurchase, Records: asRecords(purchases)},
			{Kind: ledger.KindFuelPurchase, Records: asRecords(fuelPurchases)},
			{Kind: ledger.KindPayment, Records: asRecords(payments)},
		},
	}, window)
}

func (s *ledgerService) BankAccountLedger(bankAccountID uuid.UUID, window ledger.Window) (*models.LedgerStatement, error) {
	account, err := s.repos.BankAccounts.GetByID(bankAccountID)
	if err != nil {
		return nil, s.accountLookupError(ledger.AccountBankAccount, bankAccountID, err, repositories.ErrBankAccountNotFound)
	}

	transactions, err := s.repos.BankTransactions.GetByBankAccountID(bankAccountID)
	if err != nil {
		return nil, s.recordFetchError(ledger.AccountBankAccount, bankAccountID, "bank transactions", err)
	}

	return s.compute(ledgerAccount{
		accountType: ledger.AccountBankAccount,
		id:          account.ID,
		name:        account.DisplayName(),
		unit:        s.config.Currency,
		opening:     account.OpeningBalance,
		sources:     groupByKind(transactions),
	}, window)
}

func (s *ledgerService) TankLedger(tankID uuid.UUID, window ledger.Window) (*models.LedgerStatement, error) {
	tank, err := s.repos.Tanks.GetByID(tankID)
	if err != nil {
		return nil, s.accountLookupError(ledger.AccountTank, tankID, err, repositories.ErrTankNotFound)
	}

	deliveries, err := s.repos.FuelPurchases.GetByTankID(tankID)
	if err != nil {
		return nil, s.recordFetchError(ledger.AccountTank, tankID, "fuel deliveries", err)
	}

	movements, err := s.repos.StockMovements.GetByTankID(tankID)
	if err != nil {
		return nil, s.recordFetchError(ledger.AccountTank, tankID, "stock movements", err)
	}

	// Deliveries enter the tank ledger in litres, not rupees.
	stock := make([]ledger.Record, 0, len(deliveries))
	for i := range deliveries {
		stock = append(stock, deliveries[i].StockRecord())
	}

	sources := append([]ledger.Source{{Kind: ledger.KindStockAddition, Records: stock}}, groupByKind(movements)...)

	return s.compute(ledgerAccount{
		accountType: ledger.AccountTank,
		id:          tank.ID,
		name:        tank.Name,
		unit:        models.UnitLitres,
		opening:     tank.OpeningStock,
		sources:     sources,
	}, window)
}

func (s *ledgerService) compute(account ledgerAccount, window ledger.Window) (*models.LedgerStatement, error) {
	start := time.Now()

	rules, err := ledger.RulesFor(account.accountType)
	if err != nil {
		s.recordComputation(account.accountType, "failed", start)
		return nil, fmt.Errorf("failed to load ledger rules: %w", err)
	}

	result, err := ledger.Compute(ledger.Input{
		OpeningBalance: account.opening,
		Window:         window,
		Location:       s.config.Location,
		Sources:        account.sources,
		Rules:          rules,
	})
	if err != nil {
		s.recordComputation(account.accountType, "failed", start)
		slog.Warn("ledger computation rejected",
			"account_type", account.accountType,
			"account_id", account.id,
			"error", err)
		return nil, mapLedgerError(err)
	}

	for _, warning := range result.Warnings {
		slog.Warn("ledger record has unusable amount",
			"account_type", account.accountType,
			"account_id", account.id,
			"kind", warning.Kind,
			"reference", warning.Reference,
			"timestamp", warning.Timestamp,
			"anomaly", warning.Anomaly)
		s.incrementCounter("ledger_record_warning", map[string]string{"anomaly": string(warning.Anomaly)})
	}

	statement := &models.LedgerStatement{
		AccountType:    account.accountType,
		AccountID:      account.id,
		AccountName:    account.name,
		Unit:           account.unit,
		From:           window.From,
		To:             window.To,
		OpeningBalance: result.Within.OpeningBalance,
		ClosingBalance: result.Within.Balance,
		Entries:        result.Entries,
		Rows:           BuildStatementRows(result.Entries, s.config.Location),
		Before:         result.Before,
		Within:         result.Within,
		ToDate:         result.ToDate,
		Counts:         result.Counts,
		Warnings:       result.Warnings,
		GeneratedAt:    s.now(),
	}

	s.recordComputation(account.accountType, "success", start)
	if s.metrics != nil {
		s.metrics.RecordGauge("ledger_events", float64(result.Counts.Total), map[string]string{
			"account_type": string(account.accountType),
		})
	}

	slog.Info("ledger computed",
		"account_type", account.accountType,
		"account_id", account.id,
		"from", window.From.Format("2006-01-02"),
		"to", window.To.Format("2006-01-02"),
		"events_total", result.Counts.Total,
		"events_within", result.Counts.Within,
		"warnings", len(result.Warnings))

	return statement, nil
}

func (s *ledgerService) accountLookupError(accountType ledger.AccountType, id uuid.UUID, err, notFound error) error {
	if errors.Is(err, notFound) {
		slog.Warn("ledger requested for unknown account",
			"account_type", accountType,
			"account_id", id)
		return fmt.Errorf("%w: %s %s", ErrNotFound, accountType, id)
	}
	slog.Error("failed to load ledger account",
		"account_type", accountType,
		"account_id", id,
		"error", err)
	return fmt.Errorf("failed to get %s: %w", accountType, err)
}

func (s *ledgerService) recordFetchError(accountType ledger.AccountType, id uuid.UUID, what string, err error) error {
	slog.Error("failed to fetch ledger records",
		"account_type", accountType,
		"account_id", id,
		"records", what,
		"error", err)
	return fmt.Errorf("failed to fetch %s: %w", what, err)
}

func (s *ledgerService) recordComputation(accountType ledger.AccountType, status string, start time.Time) {
	s.incrementCounter("ledger_computed", map[string]string{
		"account_type": string(accountType),
		"status":       status,
	})
	if s.metrics != nil {
		s.metrics.RecordProcessingTime("ledger_computation", time.Since(start))
	}
}

func (s *ledgerService) incrementCounter(name string, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, tags)
	}
}

func (s *ledgerService) location() *time.Location {
	if s.config.Location == nil {
		return time.UTC
	}
	return s.config.Location
}

func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidWindow):
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	case errors.Is(err, ledger.ErrUnsupportedKind):
		return fmt.Errorf("%w: %v", ErrUnsupportedKind, err)
	default:
		return fmt.Errorf("failed to compute ledger: %w", err)
	}
}

// asRecords widens a slice of models to the ledger's record interface
func asRecords[T ledger.Record](items []T) []ledger.Record {
	records := make([]ledger.Record, 0, len(items))
	for i := range items {
		records = append(records, items[i])
	}
	return records
}

type kindedRecord interface {
	ledger.Record
	LedgerKind() ledger.EventKind
}

// groupByKind splits records whose type column selects the ledger kind into
// one source per kind, in order of first appearance.
func groupByKind[T kindedRecord](items []T) []ledger.Source {
	sources := make([]ledger.Source, 0)
	index := make(map[ledger.EventKind]int)

	for i := range items {
		kind := items[i].LedgerKind()
		pos, ok := index[kind]
		if !ok {
			pos = len(sources)
			index[kind] = pos
			sources = append(sources, ledger.Source{Kind: kind})
		}
		sources[pos].Records = append(sources[pos].Records, items[i])
	}

	return sources
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// daysBetween counts calendar days, immune to DST-length days
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
