package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Holding returns the range covered by a holding period of n days starting on 'from'.
func Holding(from Date, n int) Range {
	return NewRange(from, from.Add(n))
}

// Len returns the number of days elapsed between From and To.
func (r Range) Len() int { return r.To.Sub(r.From) }

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }
