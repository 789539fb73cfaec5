package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Source is one collection of raw records of a single kind.
type Source struct {
	Kind    EventKind
	Records []Record
}

// Input is everything a ledger computation depends on. Location sets the
// calendar used for day comparisons; nil means UTC.
type Input struct {
	OpeningBalance decimal.Decimal
	Window         Window
	Location       *time.Location
	Sources        []Source
	Rules          Rules
}

// Counts reports how the full history was split by the window.
type Counts struct {
	Before int `json:"before"`
	Within int `json:"within"`
	After  int `json:"after"`
	Total  int `json:"total"`
}

// Result is a computed statement. Entries holds only in-window rows.
type Result struct {
	Entries  []Entry   `json:"entries"`
	Before   Summary   `json:"before"`
	Within   Summary   `json:"within"`
	ToDate   Summary   `json:"to_date"`
	Counts   Counts    `json:"counts"`
	Warnings []Warning `json:"warnings"`
}

// Compute normalizes, merges, balances, partitions and summarizes. It is a
// pure function of its input: calling it twice with the same input yields the
// same result. Precondition failures (missing rules, an invalid window, a
// kind the account type does not accept) are returned before any work is
// done; per-record problems are reported in Result.Warnings.
func Compute(in Input) (*Result, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	lists := make([][]Event, 0, len(in.Sources))
	for _, source := range in.Sources {
		lists = append(lists, Normalize(source.Kind, in.Rules.Sign(source.Kind), source.Records))
	}

	ordered := Merge(in.Location, lists...)
	entries := ApplyBalances(in.OpeningBalance, ordered)
	parts := Partition(ordered, in.Window, in.Location)
	summaries := Summarize(in.OpeningBalance, entries, parts, in.Rules.Category, in.Rules.Categories)

	start := len(parts.Before)
	within := make([]Entry, 0, len(parts.Within))
	within = append(within, entries[start:start+len(parts.Within)]...)

	return &Result{
		Entries: within,
		Before:  summaries.Before,
		Within:  summaries.Within,
		ToDate:  summaries.ToDate,
		Counts: Counts{
			Before: len(parts.Before),
			Within: len(parts.Within),
			After:  len(parts.After),
			Total:  len(ordered),
		},
		Warnings: collectWarnings(ordered),
	}, nil
}

func validate(in Input) error {
	if in.Rules.Sign == nil || in.Rules.Category == nil {
		return fmt.Errorf("%w: sign and category rules are required", ErrMissingRule)
	}
	if err := in.Window.Validate(in.Location); err != nil {
		return err
	}
	for _, source := range in.Sources {
		if source.Kind == KindUnknown {
			continue
		}
		if in.Rules.Sign(source.Kind) == SignNone {
			return fmt.Errorf("%w: %s on %s ledger", ErrUnsupportedKind, source.Kind, in.Rules.Account)
		}
	}
	return nil
}

func collectWarnings(ordered []Event) []Warning {
	warnings := make([]Warning, 0)
	for i := range ordered {
		if ordered[i].Anomaly == AnomalyNone {
			continue
		}
		warnings = append(warnings, Warning{
			Kind:      ordered[i].Kind,
			Reference: ordered[i].Reference,
			Timestamp: ordered[i].Timestamp,
			Anomaly:   ordered[i].Anomaly,
		})
	}
	return warnings
}
