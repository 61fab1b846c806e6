package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGridLayoutHoldsForEveryMonth(t *testing.T) {
	for first := time.Sunday; first <= time.Saturday; first++ {
		conv := Gregorian(first)
		for year := 1900; year <= 2100; year++ {
			for month := time.January; month <= time.December; month++ {
				ref := MustDate(year, month, 1)
				g := ComputeGrid(conv, ref)
				if g.Len() != GridCells {
					t.Fatalf("%s/%v: %d cells", ref, first, g.Len())
				}
				if len(g.Current) != ref.DaysInMonth() {
					t.Fatalf("%s/%v: %d current days", ref, first, len(g.Current))
				}
				if len(g.Leading) != conv.WeekdayIndex(ref)-1 {
					t.Fatalf("%s/%v: %d leading days", ref, first, len(g.Leading))
				}
				if g.First().Weekday() != first {
					t.Fatalf("%s/%v: grid starts on %v", ref, first, g.First().Weekday())
				}
				dates := g.Dates()
				for i := 1; i < len(dates); i++ {
					if dates[i] != dates[i-1].AddDays(1) {
						t.Fatalf("%s/%v: gap between %s and %s", ref, first, dates[i-1], dates[i])
					}
				}
			}
		}
	}
}

func TestComputeGridScenarios(t *testing.T) {
	for _, tc := range []struct {
		name                         string
		ref                          Date
		leading, current, trailing   int
		first, last                  Date
	}{
		{"leap February", MustDate(2024, 2, 1), 4, 29, 9, MustDate(2024, 1, 28), MustDate(2024, 3, 9)},
		{"common February", MustDate(2023, 2, 1), 3, 28, 11, MustDate(2023, 1, 29), MustDate(2023, 3, 11)},
		{"month starting Sunday", MustDate(2021, 8, 1), 0, 31, 11, MustDate(2021, 8, 1), MustDate(2021, 9, 11)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := ComputeGrid(Gregorian(time.Sunday), tc.ref)
			assert.Len(t, g.Leading, tc.leading)
			assert.Len(t, g.Current, tc.current)
			assert.Len(t, g.Trailing, tc.trailing)
			assert.Equal(t, tc.first, g.First())
			assert.Equal(t, tc.last, g.Last())
			assert.Equal(t, tc.ref, g.Reference)
		})
	}
}

func TestComputeGridNormalizesReference(t *testing.T) {
	conv := Gregorian(time.Sunday)
	assert.Equal(t, ComputeGrid(conv, MustDate(2024, 2, 1)), ComputeGrid(conv, MustDate(2024, 2, 17)))
}

func TestComputeGridAcrossYearBoundary(t *testing.T) {
	g := ComputeGrid(Gregorian(time.Sunday), MustDate(2024, 12, 1))
	assert.Equal(t, MustDate(2024, 12, 1), g.First())
	assert.Equal(t, MustDate(2025, 1, 11), g.Last())

	g = ComputeGrid(Gregorian(time.Sunday), MustDate(2025, 1, 1))
	assert.Equal(t, MustDate(2024, 12, 29), g.First())
}

func TestGridVisibilityAndContainment(t *testing.T) {
	g := ComputeGrid(Gregorian(time.Sunday), MustDate(2024, 2, 1))

	assert.False(t, g.IsVisible(MustDate(2024, 1, 27)))
	assert.True(t, g.IsVisible(MustDate(2024, 1, 28)))
	assert.True(t, g.IsVisible(MustDate(2024, 3, 9)))
	assert.False(t, g.IsVisible(MustDate(2024, 3, 10)))

	assert.False(t, g.Contains(MustDate(2024, 1, 31)))
	assert.True(t, g.Contains(MustDate(2024, 2, 1)))
	assert.True(t, g.Contains(MustDate(2024, 2, 29)))
	assert.False(t, g.Contains(MustDate(2024, 3, 1)))

	assert.False(t, MonthGrid{}.IsVisible(MustDate(2024, 2, 1)))
	assert.False(t, MonthGrid{}.Contains(MustDate(2024, 2, 1)))
}

func TestGridCells(t *testing.T) {
	g := ComputeGrid(Gregorian(time.Sunday), MustDate(2024, 2, 1))
	cells := g.Cells()
	require.Len(t, cells, GridCells)
	assert.False(t, cells[3].InMonth)
	assert.True(t, cells[4].InMonth)
	assert.Equal(t, MustDate(2024, 2, 1), cells[4].Date)
	assert.True(t, cells[32].InMonth)
	assert.False(t, cells[33].InMonth)

	weeks := g.Weeks()
	require.Len(t, weeks, GridRows)
	for _, w := range weeks {
		assert.Len(t, w, GridColumns)
	}

	i, ok := g.IndexOf(MustDate(2024, 2, 14))
	require.True(t, ok)
	assert.Equal(t, 17, i)
	cell, ok := g.CellAt(i)
	require.True(t, ok)
	assert.Equal(t, cells[i], cell)

	_, ok = g.IndexOf(MustDate(2024, 3, 10))
	assert.False(t, ok)
	_, ok = g.CellAt(GridCells)
	assert.False(t, ok)
	_, ok = g.CellAt(-1)
	assert.False(t, ok)
}
