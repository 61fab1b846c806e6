// Package selection holds the start/end state of a date-range picker and
// decides how each grid cell is highlighted.
package selection

import (
	"fmt"

	"github.com/lululau/rangecal/internal/calendar"
)

// Phase is how much of a range has been chosen.
type Phase int

const (
	Empty Phase = iota
	Open        // start chosen, end pending
	Closed      // start and end chosen
)

func (p Phase) String() string {
	switch p {
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return "empty"
}

// Range is a possibly partial selection. Start <= End whenever Closed.
type Range struct {
	phase Phase
	start calendar.Date
	end   calendar.Date
}

// OpenRange returns a range with only a start.
func OpenRange(start calendar.Date) Range {
	return Range{phase: Open, start: start}
}

// ClosedRange returns a complete range, swapping the bounds if needed.
func ClosedRange(start, end calendar.Date) Range {
	if end.Before(start) {
		start, end = end, start
	}
	return Range{phase: Closed, start: start, end: end}
}

// Phase reports how much of the range is set.
func (r Range) Phase() Phase { return r.phase }

// Start returns the start date if set.
func (r Range) Start() (calendar.Date, bool) {
	return r.start, r.phase != Empty
}

// End returns the end date if set.
func (r Range) End() (calendar.Date, bool) {
	return r.end, r.phase == Closed
}

// IsEndpoint reports whether d is the start or the end.
func (r Range) IsEndpoint(d calendar.Date) bool {
	switch r.phase {
	case Open:
		return d == r.start
	case Closed:
		return d == r.start || d == r.end
	}
	return false
}

// Contains reports whether d lies within a closed range, bounds included.
// An open range contains only its start.
func (r Range) Contains(d calendar.Date) bool {
	switch r.phase {
	case Open:
		return d == r.start
	case Closed:
		return !d.Before(r.start) && !d.After(r.end)
	}
	return false
}

// Days returns the number of days covered, inclusive.
func (r Range) Days() int {
	switch r.phase {
	case Open:
		return 1
	case Closed:
		n := 1
		for d := r.start; d.Before(r.end); d = d.AddDays(1) {
			n++
		}
		return n
	}
	return 0
}

func (r Range) String() string {
	switch r.phase {
	case Open:
		return fmt.Sprintf("%s → ?", r.start)
	case Closed:
		return fmt.Sprintf("%s → %s", r.start, r.end)
	}
	return "(none)"
}
