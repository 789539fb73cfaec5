package ledger

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWindow   = errors.New("invalid ledger window")
	ErrUnsupportedKind = errors.New("event kind not supported by account type")
	ErrMissingRule     = errors.New("ledger rule missing")
)

// Window is the inclusive [From, To] statement range. Both bounds are
// compared at day granularity; the time of day is ignored.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Validate rejects unset and inverted windows.
func (w Window) Validate(loc *time.Location) error {
	if w.From.IsZero() || w.To.IsZero() {
		return fmt.Errorf("%w: from and to dates are required", ErrInvalidWindow)
	}
	loc = locationOrUTC(loc)
	if dayOf(w.From, loc).After(dayOf(w.To, loc)) {
		return fmt.Errorf("%w: from date is after to date", ErrInvalidWindow)
	}
	return nil
}

// Partitions splits an event history around a window. After holds events
// later than the window; they are not listed but still count toward to-date
// totals.
type Partitions struct {
	Before []Event
	Within []Event
	After  []Event
}

// Partition splits ordered events into before (day < From), within
// (From <= day <= To) and after (day > To). Input order is preserved in each
// partition.
func Partition(ordered []Event, window Window, loc *time.Location) Partitions {
	loc = locationOrUTC(loc)
	from := dayOf(window.From, loc)
	to := dayOf(window.To, loc)

	parts := Partitions{
		Before: make([]Event, 0),
		Within: make([]Event, 0),
		After:  make([]Event, 0),
	}

	for i := range ordered {
		day := dayOf(ordered[i].Timestamp, loc)
		switch {
		case day.Before(from):
			parts.Before = append(parts.Before, ordered[i])
		case day.After(to):
			parts.After = append(parts.After, ordered[i])
		default:
			parts.Within = append(parts.Within, ordered[i])
		}
	}

	return parts
}
