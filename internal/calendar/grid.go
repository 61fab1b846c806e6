package calendar

// Grid dimensions: every month is laid out in six weeks of seven days.
const (
	GridColumns = 7
	GridRows    = 6
	GridCells   = GridColumns * GridRows
)

// Cell is one position of a MonthGrid.
type Cell struct {
	Index   int
	Date    Date
	InMonth bool
}

// MonthGrid is the 42-day window shown for one month: the tail of the
// previous month, the month itself and the head of the next month.
type MonthGrid struct {
	Reference Date
	Leading   []Date
	Current   []Date
	Trailing  []Date
}

// ComputeGrid lays out the month containing ref under conv.
func ComputeGrid(conv Convention, ref Date) MonthGrid {
	first := ref.FirstOfMonth()
	leadingCount := conv.WeekdayIndex(first) - 1
	currentCount := first.DaysInMonth()
	trailingCount := GridCells - leadingCount - currentCount

	prev := first.FirstOfPreviousMonth()
	prevLen := prev.DaysInMonth()
	leading := make([]Date, 0, leadingCount)
	for day := prevLen - leadingCount + 1; day <= prevLen; day++ {
		leading = append(leading, Date{Year: prev.Year, Month: prev.Month, Day: day})
	}

	current := make([]Date, 0, currentCount)
	for day := 1; day <= currentCount; day++ {
		current = append(current, Date{Year: first.Year, Month: first.Month, Day: day})
	}

	next := first.FirstOfNextMonth()
	trailing := make([]Date, 0, trailingCount)
	for day := 1; day <= trailingCount; day++ {
		trailing = append(trailing, Date{Year: next.Year, Month: next.Month, Day: day})
	}

	return MonthGrid{
		Reference: first,
		Leading:   leading,
		Current:   current,
		Trailing:  trailing,
	}
}

// Len is the number of cells, always GridCells for a computed grid.
func (g MonthGrid) Len() int {
	return len(g.Leading) + len(g.Current) + len(g.Trailing)
}

// First returns the top-left date.
func (g MonthGrid) First() Date {
	if len(g.Leading) > 0 {
		return g.Leading[0]
	}
	return g.Current[0]
}

// Last returns the bottom-right date.
func (g MonthGrid) Last() Date {
	if len(g.Trailing) > 0 {
		return g.Trailing[len(g.Trailing)-1]
	}
	return g.Current[len(g.Current)-1]
}

// Dates returns all cell dates in order.
func (g MonthGrid) Dates() []Date {
	out := make([]Date, 0, g.Len())
	out = append(out, g.Leading...)
	out = append(out, g.Current...)
	return append(out, g.Trailing...)
}

// Cells returns every cell in row-major order.
func (g MonthGrid) Cells() []Cell {
	dates := g.Dates()
	lo, hi := len(g.Leading), len(g.Leading)+len(g.Current)
	cells := make([]Cell, len(dates))
	for i, d := range dates {
		cells[i] = Cell{Index: i, Date: d, InMonth: i >= lo && i < hi}
	}
	return cells
}

// Weeks splits the cells into rows of GridColumns.
func (g MonthGrid) Weeks() [][]Cell {
	cells := g.Cells()
	weeks := make([][]Cell, 0, GridRows)
	for i := 0; i+GridColumns <= len(cells); i += GridColumns {
		weeks = append(weeks, cells[i:i+GridColumns])
	}
	return weeks
}

// IsVisible reports whether d occupies one of the grid's cells.
// The cells are consecutive days, so a bounds check suffices.
func (g MonthGrid) IsVisible(d Date) bool {
	if g.Len() == 0 {
		return false
	}
	return !d.Before(g.First()) && !d.After(g.Last())
}

// Contains reports whether d falls in the reference month, ignoring the
// padding days.
func (g MonthGrid) Contains(d Date) bool {
	return g.Len() > 0 && d.SameMonth(g.Reference)
}

// IndexOf returns the cell index of d.
func (g MonthGrid) IndexOf(d Date) (int, bool) {
	if !g.IsVisible(d) {
		return 0, false
	}
	return int(d.noon().Sub(g.First().noon()).Hours() / 24), true
}

// CellAt returns the cell at index i.
func (g MonthGrid) CellAt(i int) (Cell, bool) {
	if i < 0 || i >= g.Len() {
		return Cell{}, false
	}
	lo, hi := len(g.Leading), len(g.Leading)+len(g.Current)
	return Cell{Index: i, Date: g.First().AddDays(i), InMonth: i >= lo && i < hi}, true
}
