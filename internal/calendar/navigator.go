package calendar

// DefaultTitleLayout renders titles such as "Feb 2024".
const DefaultTitleLayout = "Jan 2006"

// State tells whether a Navigator has a grid yet.
type State int

const (
	Uninitialized State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "uninitialized"
}

// Navigator holds the reference month and its grid, and moves between
// months. The zero value is Uninitialized: it answers false to every query
// and ignores navigation until Init is called. Not safe for concurrent use.
type Navigator struct {
	conv        Convention
	titleLayout string
	state       State
	grid        MonthGrid
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithTitleLayout sets the Go time layout used by Title.
func WithTitleLayout(layout string) NavigatorOption {
	return func(n *Navigator) {
		n.titleLayout = layout
	}
}

// NewNavigator returns a Navigator anchored on anchor's month.
func NewNavigator(conv Convention, anchor Date, opts ...NavigatorOption) *Navigator {
	n := &Navigator{conv: conv}
	for _, opt := range opts {
		opt(n)
	}
	n.Init(anchor)
	return n
}

// Init anchors the navigator on the first day of anchor's month.
func (n *Navigator) Init(anchor Date) {
	n.state = Ready
	n.setReference(anchor)
}

func (n *Navigator) setReference(d Date) {
	n.grid = ComputeGrid(n.conv, d.FirstOfMonth())
}

// State reports whether a grid has been computed.
func (n *Navigator) State() State {
	return n.state
}

// Convention returns the week layout in use.
func (n *Navigator) Convention() Convention {
	return n.conv
}

// Reference returns the first day of the current month.
func (n *Navigator) Reference() (Date, bool) {
	if n.state != Ready {
		return Date{}, false
	}
	return n.grid.Reference, true
}

// Grid returns the current grid.
func (n *Navigator) Grid() (MonthGrid, bool) {
	if n.state != Ready {
		return MonthGrid{}, false
	}
	return n.grid, true
}

// AdvanceMonth moves to the next month.
func (n *Navigator) AdvanceMonth() {
	if n.state != Ready {
		return
	}
	n.setReference(n.grid.Reference.FirstOfNextMonth())
}

// RetreatMonth moves to the previous month.
func (n *Navigator) RetreatMonth() {
	if n.state != Ready {
		return
	}
	n.setReference(n.grid.Reference.FirstOfPreviousMonth())
}

// JumpTo moves to the month containing d. The reference is always the first
// of the month, the same as Init.
func (n *Navigator) JumpTo(d Date) {
	if n.state != Ready {
		return
	}
	n.setReference(d)
}

// IsVisible reports whether d is shown anywhere in the current grid.
func (n *Navigator) IsVisible(d Date) bool {
	return n.state == Ready && n.grid.IsVisible(d)
}

// Contains reports whether d is in the reference month.
func (n *Navigator) Contains(d Date) bool {
	return n.state == Ready && n.grid.Contains(d)
}

// Title formats the reference month, "" when uninitialized.
func (n *Navigator) Title() string {
	if n.state != Ready {
		return ""
	}
	layout := n.titleLayout
	if layout == "" {
		layout = DefaultTitleLayout
	}
	return n.grid.Reference.Format(layout)
}

// Compare orders navigators by reference month. Uninitialized navigators
// sort first.
func (n *Navigator) Compare(o *Navigator) int {
	switch {
	case n.state != Ready && o.state != Ready:
		return 0
	case n.state != Ready:
		return -1
	case o.state != Ready:
		return 1
	}
	return n.grid.Reference.Compare(o.grid.Reference)
}
