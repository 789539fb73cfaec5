package dto

// Ledger Request DTOs

// LedgerQuery binds the path and query parameters of a statement request.
// Dates are calendar days in the station timezone.
type LedgerQuery struct {
	Kind string `param:"kind" json:"kind" validate:"required,account_kind"`
	ID   string `param:"id" json:"id" validate:"required,entity_id"`
	From string `query:"from" json:"from" validate:"omitempty,ledger_date"`
	To   string `query:"to" json:"to" validate:"omitempty,ledger_date"`
}

// ExportQuery binds the parameters of a statement export. Format defaults to csv.
type ExportQuery struct {
	LedgerQuery
	Format string `query:"format" json:"format" validate:"omitempty,export_format"`
}

// Ledger Response DTOs

// LedgerMeta describes how a statement was computed
type LedgerMeta struct {
	Timezone     string `json:"timezone"`
	WarningCount int    `json:"warning_count"`
	RowCount     int    `json:"row_count"`
}

// Dev Response DTOs

// GenerateRecordsResponse reports what a development seed run created
type GenerateRecordsResponse struct {
	Message         string    `json:"message"`
	CustomerID      string    `json:"customer_id"`
	BillsCreated    int       `json:"bills_created"`
	PaymentsCreated int       `json:"payments_created"`
	DateRange       DateRange `json:"date_range"`
}

// DateRange is an inclusive pair of calendar days
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}
