package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/selection"
	"github.com/lululau/rangecal/internal/textwidth"
)

const (
	cellPadding = 1
	minDayWidth = 2
	blockGap    = 3
)

var noColorMode bool

// SetNoColor disables all styling; selection is then drawn with brackets.
func SetNoColor(disable bool) {
	noColorMode = disable
}

// NoColor reports whether styling is disabled.
func NoColor() bool {
	return noColorMode
}

var (
	highlightColor = lipgloss.Color("#0B4B69")
	bandColor      = lipgloss.Color("#9DB7C3")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	todayStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#DC2626")).Foreground(lipgloss.Color("#FFFFFF"))
	markStyle    = lipgloss.NewStyle().Bold(true).Background(highlightColor).Foreground(lipgloss.Color("#FFFFFF"))
	bandStyle    = lipgloss.NewStyle().Background(bandColor).Foreground(lipgloss.Color("#0F172A"))
	holidayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	workdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	cursorStyle  = lipgloss.NewStyle().Underline(true).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	wrapperStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#475569")).
			Padding(0, 1)
)

// Highlighter decides selection styling per cell; *selection.Presenter
// implements it.
type Highlighter interface {
	CellState(calendar.Cell) selection.CellState
}

// Options tune a single block.
type Options struct {
	Highlighter Highlighter
	// Cursor is the focused cell index, or -1 for none.
	Cursor int
}

// MonthBlock packages rendered lines with their visual width/height.
type MonthBlock struct {
	Lines  []string
	Width  int
	Height int
}

// BuildBlocks renders each view without a cursor.
func BuildBlocks(views []calendar.MonthView, labels [7]string, h Highlighter) []MonthBlock {
	blocks := make([]MonthBlock, len(views))
	for i, view := range views {
		blocks[i] = BuildBlock(view, labels, Options{Highlighter: h, Cursor: -1})
	}
	return blocks
}

// BuildBlock renders one month: title, week header and six weeks, with a
// lunar line under each week when the view carries lunar data.
func BuildBlock(view calendar.MonthView, labels [7]string, opts Options) MonthBlock {
	inner := dayWidth(view)
	lunar := hasLunar(view)

	header := make([]string, len(labels))
	for i, label := range labels {
		header[i] = pad(textwidth.Center(label, inner))
	}
	rows := []string{style(headerStyle, strings.Join(header, ""))}

	for _, week := range view.Weeks {
		dayCells := make([]string, len(week))
		lunarCells := make([]string, len(week))
		for i, day := range week {
			st := cellState(day, opts.Highlighter)
			dayCells[i] = renderCell(fmt.Sprintf("%2d", day.Date.Day), inner, st, day, day.Index == opts.Cursor)
			if lunar {
				lunarCells[i] = renderLabel(day, inner, st)
			}
		}
		rows = append(rows, strings.Join(dayCells, ""))
		if lunar {
			rows = append(rows, strings.Join(lunarCells, ""))
		}
	}

	body := strings.Join(rows, "\n")
	if !noColorMode {
		body = wrapperStyle.Render(body)
	}
	bodyLines := strings.Split(body, "\n")
	width := textwidth.Width(body)

	title := textwidth.Center(view.Title, width)
	lines := append([]string{style(titleStyle, title)}, bodyLines...)
	return MonthBlock{Lines: lines, Width: width, Height: len(lines)}
}

func dayWidth(view calendar.MonthView) int {
	width := minDayWidth
	for _, week := range view.Weeks {
		for _, day := range week {
			width = max(width, textwidth.Width(day.SecondaryLabel()))
		}
	}
	return width
}

func hasLunar(view calendar.MonthView) bool {
	for _, week := range view.Weeks {
		for _, day := range week {
			if day.HasLunarData() {
				return true
			}
		}
	}
	return false
}

func cellState(day calendar.Day, h Highlighter) selection.CellState {
	if h == nil {
		return selection.CellState{Disabled: !day.InMonth, Today: day.InMonth && day.IsToday}
	}
	st := h.CellState(day.Cell)
	if !st.Disabled && day.IsToday {
		st.Today = true
	}
	return st
}

func pad(s string) string {
	p := strings.Repeat(" ", cellPadding)
	return p + s + p
}

// renderCell draws padding and content separately so a half band can cover
// only the side facing the rest of the range.
func renderCell(text string, inner int, st selection.CellState, day calendar.Day, cursor bool) string {
	content := textwidth.Center(text, inner)
	left, right := strings.Repeat(" ", cellPadding), strings.Repeat(" ", cellPadding)

	if noColorMode {
		switch {
		case st.Marked:
			left, right = "[", "]"
		case st.Band == selection.BandMiddle:
			left, right = "-", "-"
		case st.Today:
			right = "*"
		}
		if cursor {
			left, right = ">", "<"
		}
		return left + content + right
	}

	contentStyle := lipgloss.NewStyle()
	switch {
	case st.Disabled:
		contentStyle = dimStyle
	case st.Marked:
		contentStyle = markStyle
	case st.Today:
		contentStyle = todayStyle
	case st.Band == selection.BandMiddle:
		contentStyle = bandStyle
	case day.Holiday != nil && day.Holiday.IsHoliday:
		contentStyle = holidayStyle
	case day.Holiday != nil:
		contentStyle = workdayStyle
	}
	if cursor {
		contentStyle = contentStyle.Inherit(cursorStyle)
	}

	switch st.Band {
	case selection.BandStart:
		right = bandStyle.Render(right)
	case selection.BandEnd:
		left = bandStyle.Render(left)
	case selection.BandMiddle:
		left, right = bandStyle.Render(left), bandStyle.Render(right)
	}
	return left + contentStyle.Render(content) + right
}

func renderLabel(day calendar.Day, inner int, st selection.CellState) string {
	label := day.SecondaryLabel()
	if label == "" {
		label = "  "
	}
	cell := pad(textwidth.Center(label, inner))
	if st.Disabled {
		return style(dimStyle, cell)
	}
	return cell
}

func style(s lipgloss.Style, text string) string {
	if noColorMode {
		return text
	}
	return s.Render(text)
}

// Layout places blocks left to right, wrapping when the next block would
// exceed width. A width <= 0 stacks every block vertically.
func Layout(blocks []MonthBlock, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	perRow := 1
	if width > 0 {
		perRow = max(1, (width+blockGap)/(blocks[0].Width+blockGap))
	}

	var rows []string
	for start := 0; start < len(blocks); start += perRow {
		end := min(start+perRow, len(blocks))
		rows = append(rows, joinRow(blocks[start:end]))
	}
	return strings.Join(rows, "\n\n")
}

func joinRow(blocks []MonthBlock) string {
	height := 0
	for _, b := range blocks {
		height = max(height, b.Height)
	}
	gap := strings.Repeat(" ", blockGap)
	lines := make([]string, height)
	for i := range lines {
		parts := make([]string, len(blocks))
		for j, b := range blocks {
			line := ""
			if i < len(b.Lines) {
				line = b.Lines[i]
			}
			if j == len(blocks)-1 {
				parts[j] = line
			} else {
				parts[j] = textwidth.PadRight(line, b.Width)
			}
		}
		lines[i] = strings.TrimRight(strings.Join(parts, gap), " ")
	}
	return strings.Join(lines, "\n")
}

// HelpLine describes the interactive key bindings.
func HelpLine() string {
	text := "←↓↑→/hjkl move  enter select  [ ] month  { } year  . today  g go to date  c clear  q done"
	return style(helpStyle, text)
}

// Legend explains the colours, or the markers in no-color mode.
func Legend(withHolidays bool) string {
	var text string
	if noColorMode {
		text = "[d] range end  -d- in range  d* today"
	} else {
		text = "dark=range end  light=in range  red=today"
		if withHolidays {
			text += "  blue=holiday  orange=make-up workday"
		}
	}
	return style(helpStyle, text)
}
