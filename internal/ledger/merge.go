package ledger

import (
	"sort"
	"time"
)

// Merge concatenates the event lists and orders them chronologically.
//
// Events are compared by calendar day in loc first, so that everything
// recorded on one day stays together, then by kind (charges before
// settlements before everything else), then by timestamp, and finally by
// position in the concatenated input. A bill and its same-day payment
// therefore always come out bill first, whatever their time of day or the
// order they were supplied in. A nil loc means UTC.
func Merge(loc *time.Location, lists ...[]Event) []Event {
	total := 0
	for _, list := range lists {
		total += len(list)
	}

	merged := make([]Event, 0, total)
	for _, list := range lists {
		merged = append(merged, list...)
	}
	for i := range merged {
		merged[i].seq = i
	}

	loc = locationOrUTC(loc)
	days := make([]time.Time, len(merged))
	for i := range merged {
		days[i] = dayOf(merged[i].Timestamp, loc)
	}

	order := make([]int, len(merged))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		x, y := order[a], order[b]
		if !days[x].Equal(days[y]) {
			return days[x].Before(days[y])
		}
		if rx, ry := merged[x].Kind.rank(), merged[y].Kind.rank(); rx != ry {
			return rx < ry
		}
		if !merged[x].Timestamp.Equal(merged[y].Timestamp) {
			return merged[x].Timestamp.Before(merged[y].Timestamp)
		}
		return merged[x].seq < merged[y].seq
	})

	ordered := make([]Event, len(merged))
	for i, idx := range order {
		ordered[i] = merged[idx]
	}

	return ordered
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// dayOf truncates t to midnight of its calendar day in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
