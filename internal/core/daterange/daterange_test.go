package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPick(t *testing.T) {
	var r Range
	assert.Equal(t, "", r.String())

	r = r.Pick(date(2025, 10, 22).Add(15 * time.Hour))
	require.NotNil(t, r.Start)
	assert.Nil(t, r.End)
	assert.Equal(t, date(2025, 10, 22), *r.Start, "time of day is dropped")
	assert.Equal(t, "22/10/2025 → ", r.String())

	r = r.Pick(date(2025, 11, 3))
	require.True(t, r.Complete())
	assert.Equal(t, "22/10/2025 → 03/11/2025", r.String())
	assert.Equal(t, 13, r.Days())

	assert.True(t, r.Contains(date(2025, 10, 31)))
	assert.True(t, r.Contains(date(2025, 11, 3)))
	assert.False(t, r.Contains(date(2025, 11, 4)))

	// a third click starts over
	r = r.Pick(date(2025, 12, 1))
	assert.False(t, r.Complete())
	assert.Equal(t, date(2025, 12, 1), *r.Start)
}

func TestPickBeforeStartRestarts(t *testing.T) {
	r := Range{}.Pick(date(2025, 5, 10)).Pick(date(2025, 5, 1))
	assert.Nil(t, r.End)
	assert.Equal(t, date(2025, 5, 1), *r.Start)
}

func TestPickSameDay(t *testing.T) {
	r := Range{}.Pick(date(2025, 5, 10)).Pick(date(2025, 5, 10))
	assert.True(t, r.Complete())
	assert.Equal(t, 1, r.Days())
}

func TestMonthGrid(t *testing.T) {
	// October 2025 starts on a Wednesday and ends on a Friday.
	weeks := MonthGrid(date(2025, 10, 17))
	require.Len(t, weeks, 5)

	first := weeks[0]
	assert.Equal(t, date(2025, 9, 29), first[0].Date, "weeks start on Monday")
	assert.True(t, first[0].Outside)
	assert.Equal(t, date(2025, 10, 1), first[2].Date)
	assert.False(t, first[2].Outside)

	last := weeks[len(weeks)-1]
	assert.Equal(t, date(2025, 11, 2), last[6].Date)
	assert.True(t, last[6].Outside)

	for _, w := range weeks {
		assert.Len(t, w, 7)
		assert.Equal(t, time.Monday, w[0].Date.Weekday())
	}
}

func TestMonthGridEndingOnSunday(t *testing.T) {
	// August 2025 ends on a Sunday: no trailing week of September days.
	weeks := MonthGrid(date(2025, 8, 1))
	last := weeks[len(weeks)-1]
	assert.Equal(t, date(2025, 8, 31), last[6].Date)
	assert.False(t, last[6].Outside)
}

func TestAddMonths(t *testing.T) {
	assert.Equal(t, date(2025, 2, 1), AddMonths(date(2025, 1, 31), 1))
	assert.Equal(t, date(2024, 12, 1), AddMonths(date(2025, 1, 15), -1))
}
