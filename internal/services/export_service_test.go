package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"fuel-ledger/internal/ledger"
	"fuel-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

// ExportServiceTestSuite defines the test suite for ExportServiceInterface
type ExportServiceTestSuite struct {
	suite.Suite
	metrics   *recordingMetrics
	service   ExportServiceInterface
	statement *models.LedgerStatement
}

// SetupTest runs before each test
func (s *ExportServiceTestSuite) SetupTest() {
	s.metrics = newRecordingMetrics()
	s.service = NewExportService(s.metrics)

	entries := []ledger.Entry{
		entry(ledger.KindBill, at(time.March, 4, 9), "INV-4", 2500, 3500),
		entry(ledger.KindPayment, at(time.March, 4, 15), "R-4", -1000, 2500),
		entry(ledger.KindBill, at(time.March, 9, 9), "INV-9", 400, 2900),
	}
	entries[2].Anomaly = ledger.AnomalyMissingAmount

	s.statement = &models.LedgerStatement{
		AccountType:    ledger.AccountCustomer,
		AccountID:      uuid.MustParse("6f1c2a4e-0000-4000-8000-000000000001"),
		AccountName:    "Gulberg Transport",
		Unit:           "PKR",
		From:           at(time.March, 1, 0),
		To:             at(time.March, 31, 0),
		OpeningBalance: decimal.NewFromInt(1000),
		ClosingBalance: decimal.NewFromInt(2900),
		Entries:        entries,
		Rows:           BuildStatementRows(entries, time.UTC),
		Within: ledger.Summary{
			Totals: map[string]decimal.Decimal{
				ledger.CategoryBilled: decimal.NewFromInt(2900),
				ledger.CategoryPaid:   decimal.NewFromInt(1000),
			},
		},
		ToDate: ledger.Summary{Balance: decimal.NewFromInt(2900)},
		Warnings: []ledger.Warning{
			{Kind: ledger.KindBill, Reference: "INV-9", Anomaly: ledger.AnomalyMissingAmount},
		},
	}
}

// TestExportServiceSuite runs the test suite
func TestExportServiceSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (s *ExportServiceTestSuite) TestExport_CSV() {
	file, err := s.service.Export(s.statement, "CSV")
	s.Require().NoError(err)

	s.Equal(ContentTypeCSV, file.ContentType)
	s.Equal("customer-ledger-6f1c2a4e-2025-03-01-to-2025-03-31.csv", file.Filename)

	records, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(records, 5)
	s.Equal(exportHeader, records[0])
	s.Equal("1000.00", records[1][6])
	s.Equal([]string{"2025-03-04", "Bill+Payment", "INV-4, R-4", "2500.00", "1000.00", "1500.00", "2500.00", ""}, records[2])
	s.Equal("check amount", records[3][7])
	s.Equal("Closing Balance", records[4][1])
	s.Equal("2900.00", records[4][6])

	s.Require().Len(s.metrics.counters["ledger_export"], 1)
	s.Equal(map[string]string{"format": "csv", "status": "success"}, s.metrics.counters["ledger_export"][0])
}

func (s *ExportServiceTestSuite) TestExport_XLSX() {
	file, err := s.service.Export(s.statement, ExportFormatXLSX)
	s.Require().NoError(err)
	s.Equal(ContentTypeXLSX, file.ContentType)

	book, err := excelize.OpenReader(bytes.NewReader(file.Content))
	s.Require().NoError(err)
	defer book.Close()

	rows, err := book.GetRows(ledgerSheet)
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal("Bill+Payment", rows[1][1])
	s.Equal("2500", rows[1][6])

	summary, err := book.GetRows(summarySheet)
	s.Require().NoError(err)
	s.Equal([]string{"Account", "Gulberg Transport"}, summary[0])
	s.Equal("2900", summary[4][1])
}

func (s *ExportServiceTestSuite) TestExport_PDF() {
	file, err := s.service.Export(s.statement, ExportFormatPDF)
	s.Require().NoError(err)
	s.Equal(ContentTypePDF, file.ContentType)
	s.True(bytes.HasPrefix(file.Content, []byte("%PDF-")))
}

func (s *ExportServiceTestSuite) TestExport_EmptyStatement() {
	s.statement.Entries = nil
	s.statement.Rows = nil
	s.statement.Warnings = nil

	for _, format := range []string{ExportFormatCSV, ExportFormatXLSX, ExportFormatPDF} {
		s.Run(format, func() {
			file, err := s.service.Export(s.statement, format)
			s.NoError(err)
			s.NotEmpty(file.Content)
		})
	}
}

func (s *ExportServiceTestSuite) TestExport_UnsupportedFormat() {
	file, err := s.service.Export(s.statement, "docx")
	s.Nil(file)
	s.ErrorIs(err, ErrUnsupportedFormat)
	s.Empty(s.metrics.counters["ledger_export"])
}

func (s *ExportServiceTestSuite) TestExport_NilStatement() {
	_, err := s.service.Export(nil, ExportFormatCSV)
	s.ErrorIs(err, ErrNilStatement)
}

func (s *ExportServiceTestSuite) TestExport_CSVQuotesFormulaReferences() {
	s.statement.Entries[2].Reference = "=HYPERLINK(\"http://x\",\"pay\")"
	s.statement.Rows = BuildStatementRows(s.statement.Entries, time.UTC)

	file, err := s.service.Export(s.statement, ExportFormatCSV)
	s.Require().NoError(err)

	records, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(records, 5)
	s.Equal("'=HYPERLINK(\"http://x\",\"pay\")", records[3][2])
	s.Equal("INV-4, R-4", records[2][2])
	for _, cell := range records[3][3:7] {
		s.False(strings.HasPrefix(cell, "'"))
	}
}

func (s *ExportServiceTestSuite) TestExport_PDFWithNonLatinText() {
	s.statement.AccountName = "Café Ürdü Transport"
	s.statement.Entries[0].Reference = "فاتورة-٤٥٦٧٨٩٠١٢٣٤٥٦٧٨٩٠١٢٣"
	s.statement.Rows = BuildStatementRows(s.statement.Entries, time.UTC)

	file, err := s.service.Export(s.statement, ExportFormatPDF)
	s.Require().NoError(err)
	s.True(bytes.HasPrefix(file.Content, []byte("%PDF-")))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"INV-4", "INV-4"},
		{"ABCDEFGHIJ", "ABCDEFGHIJ"},
		{"ABCDEFGHIJK", "ABCDEFG..."},
		{"ÜÜÜÜÜÜÜÜÜÜÜÜ", "ÜÜÜÜÜÜÜ..."},
	}
	for _, tt := range tests {
		got := truncate(tt.in, 10)
		if got != tt.want {
			t.Errorf("truncate(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if !utf8.ValidString(got) || utf8.RuneCountInString(got) > 10 {
			t.Errorf("truncate(%q) = %q is not a valid 10-rune prefix", tt.in, got)
		}
	}
}

func TestNeutralizeFormula(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"INV-4":      "INV-4",
		"=1+1":       "'=1+1",
		"+92300":     "'+92300",
		"-2+3":       "'-2+3",
		"@SUM(A1)":   "'@SUM(A1)",
		"\tcmd":      "'\tcmd",
		"R-4, INV-9": "R-4, INV-9",
	}
	for in, want := range tests {
		if got := neutralizeFormula(in); got != want {
			t.Errorf("neutralizeFormula(%q) = %q, want %q", in, got, want)
		}
	}
}
