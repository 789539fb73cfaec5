package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"fuel-ledger/internal/ledger"
	"fuel-ledger/internal/models"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
	ExportFormatPDF  = "pdf"

	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrNilStatement      = errors.New("statement cannot be nil")
)

const (
	exportDateLayout = "2006-01-02"
	ledgerSheet      = "Ledger"
	summarySheet     = "Summary"
)

// referenceColumn holds upstream free text; every other column is generated
const referenceColumn = 2

var exportHeader = []string{"Date", "Type", "Reference", "Charge", "Settlement", "Net", "Balance", "Flag"}

// ExportFile is a rendered statement ready to be sent as an attachment
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

type exportService struct {
	metrics MetricsRecorderInterface
}

func NewExportService(metrics MetricsRecorderInterface) ExportServiceInterface {
	return &exportService{metrics: metrics}
}

// Export renders the statement rows in the requested format. Format names
// are case-insensitive.
func (s *exportService) Export(statement *models.LedgerStatement, format string) (*ExportFile, error) {
	if statement == nil {
		return nil, ErrNilStatement
	}

	format = strings.ToLower(strings.TrimSpace(format))
	start := time.Now()

	var (
		content     []byte
		contentType string
		err         error
	)
	switch format {
	case ExportFormatCSV:
		content, err = s.renderCSV(statement)
		contentType = ContentTypeCSV
	case ExportFormatXLSX:
		content, err = s.renderXLSX(statement)
		contentType = ContentTypeXLSX
	case ExportFormatPDF:
		content, err = s.renderPDF(statement)
		contentType = ContentTypePDF
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		s.record(format, "failed", start)
		slog.Error("failed to export ledger",
			"account_type", statement.AccountType,
			"account_id", statement.AccountID,
			"format", format,
			"error", err)
		return nil, fmt.Errorf("failed to render %s: %w", format, err)
	}

	s.record(format, "success", start)
	slog.Info("ledger exported",
		"account_type", statement.AccountType,
		"account_id", statement.AccountID,
		"format", format,
		"bytes", len(content))

	return &ExportFile{
		Filename:    exportFilename(statement, format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

func (s *exportService) renderCSV(statement *models.LedgerStatement) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	opening := []string{statement.From.Format(exportDateLayout), "Opening Balance", "", "", "", "", statement.OpeningBalance.StringFixed(2), ""}
	if err := w.Write(opening); err != nil {
		return nil, err
	}

	for _, row := range statement.Rows {
		cells := rowCells(row)
		cells[referenceColumn] = neutralizeFormula(cells[referenceColumn])
		if err := w.Write(cells); err != nil {
			return nil, err
		}
	}

	closing := []string{statement.To.Format(exportDateLayout), "Closing Balance", "", "", "", "", statement.ClosingBalance.StringFixed(2), ""}
	if err := w.Write(closing); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) renderXLSX(statement *models.LedgerStatement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ledgerSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range statement.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			row.Date.Format(exportDateLayout),
			row.Badge,
			strings.Join(row.References, ", "),
			row.BillAmount.InexactFloat64(),
			row.AmountPaid.InexactFloat64(),
			row.Net.InexactFloat64(),
			row.RunningBalance.InexactFloat64(),
			flagText(row.Flagged),
		}
		if err := f.SetSheetRow(ledgerSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	summaryRows := [][]interface{}{
		{"Account", statement.AccountName},
		{"Period", statement.From.Format(exportDateLayout) + " to " + statement.To.Format(exportDateLayout)},
		{"Unit", statement.Unit},
		{"Opening Balance", statement.OpeningBalance.InexactFloat64()},
		{"Closing Balance", statement.ClosingBalance.InexactFloat64()},
		{"Balance To Date", statement.ToDate.Balance.InexactFloat64()},
	}
	for _, name := range sortedCategories(statement.Within) {
		summaryRows = append(summaryRows, []interface{}{name, statement.Within.Total(name).InexactFloat64()})
	}
	for i := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, cell, &summaryRows[i]); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) renderPDF(statement *models.LedgerStatement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252; names and references arrive as UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s Ledger", accountTitle(statement.AccountType)), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, tr(statement.AccountName), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("%s to %s (%s)",
		statement.From.Format("02-Jan-2006"), statement.To.Format("02-Jan-2006"), statement.Unit), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(63, 8, "Opening: "+statement.OpeningBalance.StringFixed(2), "1", 0, "C", true, 0, "")
	pdf.CellFormat(63, 8, "Closing: "+statement.ClosingBalance.StringFixed(2), "1", 0, "C", true, 0, "")
	pdf.CellFormat(64, 8, "To date: "+statement.ToDate.Balance.StringFixed(2), "1", 1, "C", true, 0, "")
	pdf.Ln(4)

	widths := []float64{22, 32, 36, 24, 24, 24, 28}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range exportHeader[:len(widths)] {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range statement.Rows {
		if row.Flagged {
			pdf.SetFillColor(255, 220, 200)
		}
		cells := rowCells(row)
		for i := range widths {
			align := "R"
			if i < 3 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, tr(truncate(cells[i], 20)), "1", 0, align, row.Flagged, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(statement.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(190, 6, fmt.Sprintf("%d record(s) had no usable amount and were counted as zero.", len(statement.Warnings)), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) record(format, status string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("ledger_export", map[string]string{"format": format, "status": status})
	s.metrics.RecordProcessingTime("ledger_export", time.Since(start))
}

func rowCells(row models.StatementRow) []string {
	return []string{
		row.Date.Format(exportDateLayout),
		row.Badge,
		strings.Join(row.References, ", "),
		row.BillAmount.StringFixed(2),
		row.AmountPaid.StringFixed(2),
		row.Net.StringFixed(2),
		row.RunningBalance.StringFixed(2),
		flagText(row.Flagged),
	}
}

func flagText(flagged bool) string {
	if flagged {
		return "check amount"
	}
	return ""
}

// truncate shortens s to at most n characters, never splitting a rune
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// neutralizeFormula prefixes a quote to text that spreadsheet applications
// would otherwise evaluate as a formula
func neutralizeFormula(cell string) string {
	if cell != "" && strings.ContainsRune("=+-@\t\r", rune(cell[0])) {
		return "'" + cell
	}
	return cell
}

func accountTitle(accountType ledger.AccountType) string {
	switch accountType {
	case ledger.AccountCustomer:
		return "Customer"
	case ledger.AccountSupplier:
		return "Supplier"
	case ledger.AccountBankAccount:
		return "Bank Account"
	case ledger.AccountTank:
		return "Tank Stock"
	default:
		return "Account"
	}
}

// sortedCategories lists summary totals by name so exports are stable
func sortedCategories(summary ledger.Summary) []string {
	names := make([]string, 0, len(summary.Totals))
	for name := range summary.Totals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func exportFilename(statement *models.LedgerStatement, format string) string {
	return fmt.Sprintf("%s-ledger-%s-%s-to-%s.%s",
		strings.ReplaceAll(string(statement.AccountType), "_", "-"),
		statement.AccountID.String()[:8],
		statement.From.Format(exportDateLayout),
		statement.To.Format(exportDateLayout),
		format)
}
