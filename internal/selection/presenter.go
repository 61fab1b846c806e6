package selection

import (
	"github.com/lululau/rangecal/internal/calendar"
)

// Band is the part of a range highlight drawn behind a cell.
type Band int

const (
	BandNone   Band = iota
	BandStart       // right half: the range continues after this cell
	BandMiddle      // full width
	BandEnd         // left half: the range continues before this cell
)

// CellState is everything a renderer needs to style one cell.
type CellState struct {
	Disabled bool // outside the reference month or after the max date
	Today    bool
	Marked   bool // a range endpoint
	Band     Band
}

// Presenter owns the selected range and applies the picker's rules.
// Not safe for concurrent use.
type Presenter struct {
	rng      Range
	maxDate  calendar.Date
	today    calendar.Date
	onChange func(Range)
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithMaxDate rejects selections after d.
func WithMaxDate(d calendar.Date) Option {
	return func(p *Presenter) {
		p.maxDate = d
	}
}

// WithToday sets the day flagged as today.
func WithToday(d calendar.Date) Option {
	return func(p *Presenter) {
		p.today = d
	}
}

// WithRange preselects a range.
func WithRange(r Range) Option {
	return func(p *Presenter) {
		p.rng = r
	}
}

// WithOnChange registers a callback run synchronously after every change.
func WithOnChange(fn func(Range)) Option {
	return func(p *Presenter) {
		p.onChange = fn
	}
}

// NewPresenter returns a Presenter with an empty range unless WithRange is
// given.
func NewPresenter(opts ...Option) *Presenter {
	p := &Presenter{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Range returns the current selection.
func (p *Presenter) Range() Range {
	return p.rng
}

// MaxDate returns the latest selectable date, if any.
func (p *Presenter) MaxDate() (calendar.Date, bool) {
	return p.maxDate, !p.maxDate.IsZero()
}

func (p *Presenter) afterMax(d calendar.Date) bool {
	return !p.maxDate.IsZero() && d.After(p.maxDate)
}

// Select applies a tap on d within grid. Only days of the reference month
// up to the max date are selectable. With an open range, a day on or after
// the start closes it; any other selectable day starts a new range.
// It reports whether the range changed.
func (p *Presenter) Select(grid calendar.MonthGrid, d calendar.Date) bool {
	if !grid.Contains(d) || p.afterMax(d) {
		return false
	}
	next := OpenRange(d)
	if p.rng.phase == Open && !d.Before(p.rng.start) {
		next = ClosedRange(p.rng.start, d)
	}
	if next == p.rng {
		return false
	}
	p.set(next)
	return true
}

// Clear empties the selection.
func (p *Presenter) Clear() {
	if p.rng.phase == Empty {
		return
	}
	p.set(Range{})
}

func (p *Presenter) set(r Range) {
	p.rng = r
	if p.onChange != nil {
		p.onChange(r)
	}
}

// CellState decides how a cell is highlighted.
func (p *Presenter) CellState(cell calendar.Cell) CellState {
	st := CellState{Disabled: !cell.InMonth || p.afterMax(cell.Date)}
	if st.Disabled {
		return st
	}
	st.Today = !p.today.IsZero() && cell.Date == p.today
	st.Marked = p.rng.IsEndpoint(cell.Date)
	if p.rng.phase != Closed || p.rng.start == p.rng.end || !p.rng.Contains(cell.Date) {
		return st
	}
	switch cell.Date {
	case p.rng.start:
		st.Band = BandStart
	case p.rng.end:
		st.Band = BandEnd
	default:
		st.Band = BandMiddle
	}
	return st
}
