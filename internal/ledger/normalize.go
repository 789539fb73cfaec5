package ledger

// Normalize converts raw records of one kind into ledger events. Every record
// yields exactly one event in input order. A record without a usable amount
// becomes a zero-amount event flagged with its anomaly, as does every record
// of KindUnknown.
//
// The signed amount is sign * value, so an upstream negative (a credit note
// recorded as a negative bill) moves the balance the other way. The gross
// amount is always the magnitude.
func Normalize(kind EventKind, sign Sign, records []Record) []Event {
	events := make([]Event, 0, len(records))

	for i, record := range records {
		event := Event{
			Timestamp:    record.LedgerTimestamp(),
			Kind:         kind,
			SignedAmount: zero,
			GrossAmount:  zero,
			Reference:    record.LedgerReference(),
			Detail:       record,
			seq:          i,
		}

		if kind == KindUnknown {
			event.Anomaly = AnomalyUnknownType
			events = append(events, event)
			continue
		}

		amount := record.LedgerAmount()
		if value, ok := amount.Value(); ok {
			event.SignedAmount = value.Mul(sign.decimal())
			event.GrossAmount = value.Abs()
		} else {
			event.Anomaly = amount.anomaly()
		}

		events = append(events, event)
	}

	return events
}
