package calendar

import (
	"time"

	calendarlib "github.com/Lofanmi/chinese-calendar-golang/calendar"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lululau/rangecal/internal/holidays"
)

// Lunar data is only available for this Gregorian year range.
const (
	MinLunarYear = 1900
	MaxLunarYear = 3000
)

// ErrInvalidMonth indicates the month is not in the 1..12 range.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// Day is a grid cell annotated for display.
type Day struct {
	Cell
	IsToday         bool
	LunarDayAlias   string
	LunarMonthAlias string
	SolarTerm       string
	Holiday         *holidays.Info
	hasLunarData    bool
}

// SecondaryLabel is the text shown under the day number: a solar term if
// one starts that day, the lunar month name on the first of a lunar month,
// otherwise the lunar day.
func (d Day) SecondaryLabel() string {
	if d.SolarTerm != "" {
		return d.SolarTerm
	}
	if d.LunarDayAlias == "初一" && d.LunarMonthAlias != "" {
		return d.LunarMonthAlias
	}
	return d.LunarDayAlias
}

// HasLunarData reports whether lunar metadata was calculated.
func (d Day) HasLunarData() bool {
	return d.hasLunarData
}

// MonthView is one month's grid ready to render.
type MonthView struct {
	Grid  MonthGrid
	Title string
	Weeks [][]Day
}

// Year of the reference month.
func (v MonthView) Year() int { return v.Grid.Reference.Year }

// Month of the reference month.
func (v MonthView) Month() time.Month { return v.Grid.Reference.Month }

// Service builds MonthViews under a fixed convention.
type Service struct {
	now         func() time.Time
	conv        Convention
	titleLayout string
	lunar       bool
	holidays    holidays.Table
	log         zerolog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithConvention sets the week layout.
func WithConvention(conv Convention) Option {
	return func(s *Service) {
		s.conv = conv
	}
}

// WithHolidays attaches holiday annotations.
func WithHolidays(table holidays.Table) Option {
	return func(s *Service) {
		s.holidays = table
	}
}

// WithLunar turns lunar labels on or off.
func WithLunar(enabled bool) Option {
	return func(s *Service) {
		s.lunar = enabled
	}
}

// WithServiceTitleLayout sets the Go layout used for month titles.
func WithServiceTitleLayout(layout string) Option {
	return func(s *Service) {
		s.titleLayout = layout
	}
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// NewService constructs a Service. Without options it lays out
// Sunday-first Gregorian weeks with no annotations beyond today.
func NewService(opts ...Option) *Service {
	s := &Service{
		now:         time.Now,
		conv:        Gregorian(time.Sunday),
		titleLayout: DefaultTitleLayout,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.titleLayout == "" {
		s.titleLayout = DefaultTitleLayout
	}
	return s
}

// Convention returns the week layout in use.
func (s *Service) Convention() Convention {
	return s.conv
}

// HasHolidayData reports whether holiday annotations are attached.
func (s *Service) HasHolidayData() bool {
	return len(s.holidays) > 0
}

// WeekdayLabels returns the week header.
func (s *Service) WeekdayLabels() [7]string {
	return s.conv.WeekdayLabels()
}

// Navigator returns a navigator sharing the service's convention and title
// layout.
func (s *Service) Navigator(anchor Date) *Navigator {
	return NewNavigator(s.conv, anchor, WithTitleLayout(s.titleLayout))
}

// Today returns the current calendar day per the service clock.
func (s *Service) Today() Date {
	return FromTime(s.now())
}

// Month builds the view for a year and month.
func (s *Service) Month(year, month int) (MonthView, error) {
	if month < 1 || month > 12 {
		return MonthView{}, ErrInvalidMonth
	}
	ref := Date{Year: year, Month: time.Month(month), Day: 1}
	return s.MonthOf(ComputeGrid(s.conv, ref)), nil
}

// Year returns the views for every month of year.
func (s *Service) Year(year int) ([]MonthView, error) {
	months := make([]MonthView, 0, 12)
	for m := 1; m <= 12; m++ {
		view, err := s.Month(year, m)
		if err != nil {
			return nil, err
		}
		months = append(months, view)
	}
	return months, nil
}

// MonthOf annotates an existing grid.
func (s *Service) MonthOf(grid MonthGrid) MonthView {
	today := s.Today()
	weeks := make([][]Day, 0, GridRows)
	for _, week := range grid.Weeks() {
		days := make([]Day, len(week))
		for i, cell := range week {
			days[i] = s.buildDay(cell, today)
		}
		weeks = append(weeks, days)
	}
	s.log.Debug().
		Stringer("reference", grid.Reference).
		Int("leading", len(grid.Leading)).
		Int("current", len(grid.Current)).
		Int("trailing", len(grid.Trailing)).
		Msg("built month view")
	return MonthView{
		Grid:  grid,
		Title: grid.Reference.Format(s.titleLayout),
		Weeks: weeks,
	}
}

func (s *Service) buildDay(cell Cell, today Date) Day {
	day := Day{
		Cell:    cell,
		IsToday: cell.Date == today,
	}
	if s.holidays != nil {
		day.Holiday = s.holidays.Lookup(cell.Date.Year, int(cell.Date.Month), cell.Date.Day)
	}
	if !s.lunar || cell.Date.Year < MinLunarYear || cell.Date.Year > MaxLunarYear {
		return day
	}
	noon := cell.Date.noon()
	cal := calendarlib.BySolar(
		int64(cell.Date.Year),
		int64(cell.Date.Month),
		int64(cell.Date.Day),
		12, 0, 0,
	)
	day.LunarDayAlias = cal.Lunar.DayAlias()
	day.LunarMonthAlias = cal.Lunar.MonthAlias()
	day.hasLunarData = true
	if term := cal.Solar.CurrentSolarterm; term != nil && term.IsInDay(&noon) {
		day.SolarTerm = term.Alias()
	}
	return day
}
