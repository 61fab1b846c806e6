// Package tui is the interactive date-range picker.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/render"
	"github.com/lululau/rangecal/internal/selection"
)

// ErrAborted is returned by Run when the user quits with ctrl+c.
var ErrAborted = errors.New("selection aborted")

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	rangeStyle  = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Options carries the optional parts of a session.
type Options struct {
	// Notice is shown under the help line, e.g. a stale holiday file warning.
	Notice string
	Logger zerolog.Logger
}

// Run starts the picker on nav's month and returns the chosen range.
func Run(svc *calendar.Service, nav *calendar.Navigator, sel *selection.Presenter, opts Options) (selection.Range, error) {
	if svc == nil {
		svc = calendar.NewService()
	}
	if nav == nil || nav.State() != calendar.Ready {
		nav = svc.Navigator(svc.Today())
	}
	if sel == nil {
		sel = selection.NewPresenter(selection.WithToday(svc.Today()))
	}
	m := newModel(svc, nav, sel, opts)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return selection.Range{}, errors.Wrap(err, "run picker")
	}
	if fm, ok := final.(model); ok && fm.aborted {
		return selection.Range{}, ErrAborted
	}
	return sel.Range(), nil
}

type model struct {
	svc       *calendar.Service
	nav       *calendar.Navigator
	sel       *selection.Presenter
	log       zerolog.Logger
	notice    string
	cursor    int
	width     int
	inputting bool
	input     textinput.Model
	statusMsg string
	aborted   bool
}

func newModel(svc *calendar.Service, nav *calendar.Navigator, sel *selection.Presenter, opts Options) model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Prompt = "> "
	m := model{
		svc:    svc,
		nav:    nav,
		sel:    sel,
		log:    opts.Logger,
		notice: opts.Notice,
		input:  ti,
	}
	m.focusInitial()
	return m
}

// focusInitial puts the cursor on the selection start, today, or the 1st,
// whichever is in the current month first.
func (m *model) focusInitial() {
	grid, _ := m.nav.Grid()
	if start, ok := m.sel.Range().Start(); ok && grid.Contains(start) {
		m.cursor, _ = grid.IndexOf(start)
		return
	}
	if today := m.svc.Today(); grid.Contains(today) {
		m.cursor, _ = grid.IndexOf(today)
		return
	}
	m.cursor = len(grid.Leading)
}

func (m model) cursorDate() calendar.Date {
	grid, _ := m.nav.Grid()
	cell, _ := grid.CellAt(m.cursor)
	return cell.Date
}

// focus shows d's month and moves the cursor onto d.
func (m *model) focus(d calendar.Date) {
	if !m.nav.Contains(d) {
		m.nav.JumpTo(d)
		m.log.Debug().Str("month", m.nav.Title()).Msg("navigated")
	}
	grid, _ := m.nav.Grid()
	m.cursor, _ = grid.IndexOf(d)
}

// sameDayIn returns the day-of-month of d in the month starting at first,
// clamped to that month's length.
func sameDayIn(first, d calendar.Date) calendar.Date {
	return calendar.Date{Year: first.Year, Month: first.Month, Day: min(d.Day, first.DaysInMonth())}
}

func (m *model) shiftMonth(forward bool) {
	d := m.cursorDate()
	ref, _ := m.nav.Reference()
	if forward {
		m.focus(sameDayIn(ref.FirstOfNextMonth(), d))
	} else {
		m.focus(sameDayIn(ref.FirstOfPreviousMonth(), d))
	}
}

func (m *model) shiftYear(delta int) {
	d := m.cursorDate()
	first := calendar.Date{Year: d.Year + delta, Month: d.Month, Day: 1}
	m.focus(sameDayIn(first, d))
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if m.inputting {
			return m.handleInputKey(msg)
		}
		m.statusMsg = ""
		switch msg.String() {
		case "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "q", "esc":
			return m, tea.Quit
		case "left", "h":
			m.focus(m.cursorDate().AddDays(-1))
		case "right", "l":
			m.focus(m.cursorDate().AddDays(1))
		case "up", "k":
			m.focus(m.cursorDate().AddDays(-calendar.GridColumns))
		case "down", "j":
			m.focus(m.cursorDate().AddDays(calendar.GridColumns))
		case "[":
			m.shiftMonth(false)
		case "]":
			m.shiftMonth(true)
		case "{":
			m.shiftYear(-1)
		case "}":
			m.shiftYear(1)
		case ".":
			m.focus(m.svc.Today())
		case "enter", " ":
			m.selectCursor()
		case "c":
			m.sel.Clear()
		case "g":
			m.activateInput()
		}
	}
	return m, nil
}

func (m *model) selectCursor() {
	grid, _ := m.nav.Grid()
	d := m.cursorDate()
	if !m.sel.Select(grid, d) {
		if limit, ok := m.sel.MaxDate(); ok && d.After(limit) {
			m.statusMsg = "dates after " + limit.String() + " cannot be selected"
		}
		return
	}
	m.log.Debug().Stringer("range", m.sel.Range()).Msg("selection changed")
}

func (m *model) activateInput() {
	m.inputting = true
	m.input.SetValue("")
	m.input.CursorEnd()
	m.input.Focus()
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputting = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.applyInput()
		return m, nil
	case tea.KeyCtrlC:
		m.aborted = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) applyInput() {
	d, err := calendar.ParseDate(strings.TrimSpace(m.input.Value()))
	if err != nil {
		m.statusMsg = "expected a date like 2024-02-29"
		return
	}
	m.focus(d)
	m.inputting = false
	m.input.Blur()
}

func (m model) View() string {
	if m.inputting {
		label := "Go to date (enter to confirm / esc to cancel)"
		if !render.NoColor() {
			label = lipgloss.NewStyle().Bold(true).Render(label)
		}
		return label + "\n\n" + m.input.View() + m.statusLine()
	}

	grid, _ := m.nav.Grid()
	block := render.BuildBlock(m.svc.MonthOf(grid), m.svc.WeekdayLabels(), render.Options{
		Highlighter: m.sel,
		Cursor:      m.cursor,
	})

	var sb strings.Builder
	sb.WriteString(render.Layout([]render.MonthBlock{block}, m.width))
	sb.WriteString("\n\n")
	sb.WriteString(m.rangeLine())
	sb.WriteString("\n")
	sb.WriteString(render.HelpLine())
	sb.WriteString(m.statusLine())
	if m.notice != "" {
		sb.WriteString("\n\n")
		sb.WriteString(m.styled(noticeStyle, m.notice))
	}
	return sb.String()
}

func (m model) rangeLine() string {
	r := m.sel.Range()
	text := "Selected: " + r.String()
	if r.Phase() == selection.Closed {
		text += " (" + pluralDays(r.Days()) + ")"
	}
	return m.styled(rangeStyle, text)
}

func (m model) statusLine() string {
	if m.statusMsg == "" {
		return ""
	}
	return "\n" + m.styled(statusStyle, m.statusMsg)
}

func (m model) styled(s lipgloss.Style, text string) string {
	if render.NoColor() {
		return text
	}
	return s.Render(text)
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return strconv.Itoa(n) + " days"
}
