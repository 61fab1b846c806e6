package calendar

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"github.com/pkg/errors"
)

// ErrInvalidDate indicates a (year, month, day) triple that does not name a
// day in the proleptic Gregorian calendar.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar day. Ordering and equality are at day granularity; the
// zero value is not a valid date and is only used as "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates and constructs a Date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, errors.Wrapf(ErrInvalidDate, "month %d out of range", month)
	}
	if n := daysIn(year, month); day < 1 || day > n {
		return Date{}, errors.Wrapf(ErrInvalidDate, "day %d out of range for %04d-%02d (1-%d)", day, year, month, n)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is NewDate for values known to be valid; it panics otherwise.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar day of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "%q is not YYYY-MM-DD", s)
	}
	return FromTime(t), nil
}

func daysIn(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// noon avoids any DST edge when doing day arithmetic through time.Time.
func (d Date) noon() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the length of d's month.
func (d Date) DaysInMonth() int {
	return daysIn(d.Year, d.Month)
}

// IsLeapYear reports whether d falls in a leap year.
func (d Date) IsLeapYear() bool {
	return datetime.IsLeap(d.Year)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.noon().Weekday()
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: d.DaysInMonth()}
}

// FirstOfPreviousMonth returns the first day of the month before d's.
func (d Date) FirstOfPreviousMonth() Date {
	if d.Month == time.January {
		return Date{Year: d.Year - 1, Month: time.December, Day: 1}
	}
	return Date{Year: d.Year, Month: d.Month - 1, Day: 1}
}

// FirstOfNextMonth returns the first day of the month after d's.
func (d Date) FirstOfNextMonth() Date {
	if d.Month == time.December {
		return Date{Year: d.Year + 1, Month: time.January, Day: 1}
	}
	return Date{Year: d.Year, Month: d.Month + 1, Day: 1}
}

// SameMonth reports whether d and o share year and month.
func (d Date) SameMonth(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Format renders d with a Go time layout.
func (d Date) Format(layout string) string {
	return d.noon().Format(layout)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
