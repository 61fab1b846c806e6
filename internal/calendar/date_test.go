package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateValidates(t *testing.T) {
	for _, tc := range []struct {
		y     int
		m     time.Month
		d     int
		valid bool
	}{
		{2024, time.February, 29, true},
		{2023, time.February, 29, false},
		{1900, time.February, 29, false},
		{2000, time.February, 29, true},
		{2024, time.April, 31, false},
		{2024, time.December, 31, true},
		{2024, 13, 1, false},
		{2024, 0, 1, false},
		{2024, time.January, 0, false},
	} {
		_, err := NewDate(tc.y, tc.m, tc.d)
		if tc.valid {
			assert.NoError(t, err, "%d-%d-%d", tc.y, tc.m, tc.d)
		} else {
			assert.ErrorIs(t, err, ErrInvalidDate, "%d-%d-%d", tc.y, tc.m, tc.d)
		}
	}
}

func TestMustDatePanics(t *testing.T) {
	assert.Panics(t, func() { MustDate(2023, time.February, 29) })
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, MustDate(2024, 2, 29), d)
	assert.Equal(t, "2024-02-29", d.String())

	for _, bad := range []string{"", "2023-02-29", "2024-2-1", "yesterday", "2024-13-01"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestLeapYearsAndMonthLengths(t *testing.T) {
	assert.True(t, MustDate(2024, 1, 1).IsLeapYear())
	assert.False(t, MustDate(2023, 1, 1).IsLeapYear())
	assert.False(t, MustDate(2100, 1, 1).IsLeapYear())
	assert.True(t, MustDate(2000, 1, 1).IsLeapYear())

	assert.Equal(t, 29, MustDate(2024, 2, 10).DaysInMonth())
	assert.Equal(t, 28, MustDate(2023, 2, 10).DaysInMonth())
	assert.Equal(t, 30, MustDate(2023, 9, 10).DaysInMonth())
	assert.Equal(t, 31, MustDate(2023, 12, 10).DaysInMonth())
}

func TestAddDays(t *testing.T) {
	d := MustDate(2024, 2, 28)
	assert.Equal(t, MustDate(2024, 2, 29), d.AddDays(1))
	assert.Equal(t, MustDate(2024, 3, 1), d.AddDays(2))
	assert.Equal(t, MustDate(2023, 12, 31), MustDate(2024, 1, 1).AddDays(-1))
	assert.Equal(t, MustDate(2025, 2, 28), d.AddDays(366))
	assert.Equal(t, d, d.AddDays(0))
}

func TestMonthBoundaries(t *testing.T) {
	d := MustDate(2024, 1, 15)
	assert.Equal(t, MustDate(2024, 1, 1), d.FirstOfMonth())
	assert.Equal(t, MustDate(2024, 1, 31), d.LastOfMonth())
	assert.Equal(t, MustDate(2023, 12, 1), d.FirstOfPreviousMonth())
	assert.Equal(t, MustDate(2024, 2, 1), d.FirstOfNextMonth())
	assert.Equal(t, MustDate(2025, 1, 1), MustDate(2024, 12, 31).FirstOfNextMonth())
	assert.True(t, d.SameMonth(MustDate(2024, 1, 31)))
	assert.False(t, d.SameMonth(MustDate(2023, 1, 15)))
}

func TestCompare(t *testing.T) {
	a := MustDate(2024, 2, 29)
	b := MustDate(2024, 3, 1)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, MustDate(2025, 1, 1).Compare(MustDate(2024, 12, 31)))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
}

func TestWeekdayAndFormat(t *testing.T) {
	d := MustDate(2024, 2, 1)
	assert.Equal(t, time.Thursday, d.Weekday())
	assert.Equal(t, "Feb 2024", d.Format(DefaultTitleLayout))
	assert.Equal(t, d, FromTime(d.Time(time.UTC)))
	assert.True(t, Date{}.IsZero())
	assert.False(t, d.IsZero())
}

func TestConvention(t *testing.T) {
	sun := Gregorian(time.Sunday)
	mon := Gregorian(time.Monday)
	thu := MustDate(2024, 2, 1)
	assert.Equal(t, 5, sun.WeekdayIndex(thu))
	assert.Equal(t, 4, mon.WeekdayIndex(thu))
	assert.Equal(t, 7, mon.WeekdayIndex(MustDate(2024, 2, 4)))
	assert.Equal(t, 1, sun.WeekdayIndex(MustDate(2024, 2, 4)))

	assert.Equal(t, [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}, sun.WeekdayLabels())
	assert.Equal(t, [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, mon.WeekdayLabels())

	require.NoError(t, sun.Validate())
	assert.ErrorIs(t, Convention{System: 7}.Validate(), ErrUnsupportedSystem)
	assert.Error(t, Convention{FirstWeekday: 9}.Validate())
}

func TestParseWeekday(t *testing.T) {
	for in, want := range map[string]time.Weekday{
		"monday": time.Monday,
		"Mo":     time.Monday,
		" SAT ":  time.Saturday,
		"su":     time.Sunday,
		"th":     time.Thursday,
	} {
		got, err := ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "m", "funday"} {
		_, err := ParseWeekday(bad)
		assert.Error(t, err, bad)
	}
}
