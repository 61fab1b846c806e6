// Package render draws month grids for the terminal.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lululau/rangecal/internal/calendar"
)

// ViewMode indicates whether we display a single month or an entire year.
type ViewMode int

const (
	ModeMonth ViewMode = iota
	ModeYear
)

const defaultWidth = 100

// PlainOptions controls how the non-interactive renderer behaves.
type PlainOptions struct {
	Writer      io.Writer
	Service     *calendar.Service
	Anchor      calendar.Date
	Mode        ViewMode
	Width       int
	Highlighter Highlighter
	// HolidayNotice is printed under the calendar when non-empty.
	HolidayNotice string
}

// RunPlain renders the requested view exactly once.
func RunPlain(opts PlainOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Service == nil {
		opts.Service = calendar.NewService()
	}
	if opts.Anchor.IsZero() {
		opts.Anchor = opts.Service.Today()
	}

	views, err := fetchViews(opts.Service, opts.Anchor, opts.Mode)
	if err != nil {
		return err
	}
	width := opts.Width
	if width == 0 {
		width = DetectWidth()
	}
	blocks := BuildBlocks(views, opts.Service.WeekdayLabels(), opts.Highlighter)
	if _, err := fmt.Fprintln(opts.Writer, Layout(blocks, width)); err != nil {
		return errors.Wrap(err, "write calendar")
	}
	if _, err := fmt.Fprintln(opts.Writer, "\n"+Legend(opts.Service.HasHolidayData())); err != nil {
		return errors.Wrap(err, "write legend")
	}
	if opts.HolidayNotice != "" {
		if _, err := fmt.Fprintln(opts.Writer, "\n"+opts.HolidayNotice); err != nil {
			return errors.Wrap(err, "write notice")
		}
	}
	return nil
}

// DetectWidth tries to determine the terminal width, falling back to 100 cols.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil {
			return w
		}
	}
	return defaultWidth
}

func fetchViews(svc *calendar.Service, anchor calendar.Date, mode ViewMode) ([]calendar.MonthView, error) {
	if mode == ModeYear {
		return svc.Year(anchor.Year)
	}
	view, err := svc.Month(anchor.Year, int(anchor.Month))
	if err != nil {
		return nil, err
	}
	return []calendar.MonthView{view}, nil
}
