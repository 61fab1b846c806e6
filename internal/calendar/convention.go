package calendar

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// System identifies the calendar system used to lay out a grid.
type System int

const (
	// SystemGregorian is the proleptic Gregorian calendar.
	SystemGregorian System = iota
)

func (s System) String() string {
	if s == SystemGregorian {
		return "gregorian"
	}
	return "unknown"
}

// ErrUnsupportedSystem is returned for calendar systems other than Gregorian.
var ErrUnsupportedSystem = errors.New("unsupported calendar system")

// Convention fixes the week layout of a grid. It is passed explicitly to
// everything that lays out weeks; there is no package-level default.
type Convention struct {
	FirstWeekday time.Weekday
	System       System
}

// Gregorian returns a Gregorian convention whose weeks start on first.
func Gregorian(first time.Weekday) Convention {
	return Convention{FirstWeekday: first, System: SystemGregorian}
}

// Validate checks the convention is usable.
func (c Convention) Validate() error {
	if c.System != SystemGregorian {
		return errors.Wrapf(ErrUnsupportedSystem, "system %d", c.System)
	}
	if c.FirstWeekday < time.Sunday || c.FirstWeekday > time.Saturday {
		return errors.Errorf("first weekday %d out of range", c.FirstWeekday)
	}
	return nil
}

// WeekdayIndex returns the column of d's weekday, 1 for FirstWeekday up to 7.
func (c Convention) WeekdayIndex(d Date) int {
	return int((d.Weekday()-c.FirstWeekday+7)%7) + 1
}

// WeekdayLabels returns the week header, starting at FirstWeekday.
func (c Convention) WeekdayLabels() [7]string {
	var labels [7]string
	for i := range labels {
		wd := (c.FirstWeekday + time.Weekday(i)) % 7
		labels[i] = wd.String()[:2]
	}
	return labels
}

// ParseWeekday accepts English weekday names or unambiguous prefixes of at
// least two letters, case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 2 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if strings.HasPrefix(strings.ToLower(wd.String()), s) {
				return wd, nil
			}
		}
	}
	return time.Sunday, errors.Errorf("unknown weekday %q", s)
}
