package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/render"
	"github.com/lululau/rangecal/internal/selection"
)

func TestParseRequest(t *testing.T) {
	today := calendar.MustDate(2024, 2, 14)
	for _, tc := range []struct {
		name     string
		year     bool
		args     []string
		anchor   calendar.Date
		mode     render.ViewMode
		explicit bool
	}{
		{"no args", false, nil, calendar.MustDate(2024, 2, 1), render.ModeMonth, false},
		{"year flag", true, nil, calendar.MustDate(2024, 2, 1), render.ModeYear, false},
		{"month", false, []string{"9"}, calendar.MustDate(2024, 9, 1), render.ModeMonth, true},
		{"year", false, []string{"1983"}, calendar.MustDate(1983, 2, 1), render.ModeYear, true},
		{"year and month", false, []string{"2012", "12"}, calendar.MustDate(2012, 12, 1), render.ModeMonth, true},
		{"small year", true, []string{"9"}, calendar.Date{Year: 9, Month: time.February, Day: 1}, render.ModeYear, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req, err := parseRequest(tc.year, tc.args, today)
			require.NoError(t, err)
			assert.Equal(t, tc.anchor, req.anchor)
			assert.Equal(t, tc.mode, req.mode)
			assert.Equal(t, tc.explicit, req.explicit)
		})
	}
}

func TestParseRequestErrors(t *testing.T) {
	today := calendar.MustDate(2024, 2, 14)
	for _, args := range [][]string{
		{"x"},
		{"2024", "13"},
		{"2024", "feb"},
		{"1", "2", "3"},
	} {
		_, err := parseRequest(false, args, today)
		assert.Error(t, err, "%v", args)
	}
	_, err := parseRequest(true, []string{"2024", "2"}, today)
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	r, err := parseRange("", "")
	require.NoError(t, err)
	assert.Equal(t, selection.Empty, r.Phase())

	r, err = parseRange("2024-02-10", "")
	require.NoError(t, err)
	assert.Equal(t, selection.OpenRange(calendar.MustDate(2024, 2, 10)), r)

	r, err = parseRange("2024-02-10", "2024-02-12")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Days())

	_, err = parseRange("", "2024-02-12")
	assert.Error(t, err)
	_, err = parseRange("2024-02-12", "2024-02-10")
	assert.Error(t, err)
	_, err = parseRange("2024-02-30", "")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}
