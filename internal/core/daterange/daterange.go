package daterange

import (
	"math"
	"time"
)

// Layout is the display format for picked days.
const Layout = "02/01/2006"

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Range is a start/end pair; either side may be unset.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// Pick applies one calendar click. Without a start, or once both ends are
// set, the day starts a new range. A day before the start also restarts.
// Otherwise it closes the range.
func (r Range) Pick(t time.Time) Range {
	d := Day(t)
	if r.Start == nil || r.End != nil || d.Before(*r.Start) {
		return Range{Start: &d}
	}
	return Range{Start: r.Start, End: &d}
}

func (r Range) Complete() bool { return r.Start != nil && r.End != nil }

// Contains reports whether t falls inside a complete range, ends included.
func (r Range) Contains(t time.Time) bool {
	if !r.Complete() {
		return false
	}
	d := Day(t)
	return !d.Before(*r.Start) && !d.After(*r.End)
}

// Days returns the inclusive length of a complete range.
func (r Range) Days() int {
	if !r.Complete() {
		return 0
	}
	return int(math.Round(r.End.Sub(*r.Start).Hours()/24)) + 1
}

func (r Range) String() string {
	start, end := "", ""
	if r.Start != nil {
		start = r.Start.Format(Layout)
	}
	if r.End != nil {
		end = r.End.Format(Layout)
	}
	if start == "" && end == "" {
		return ""
	}
	return start + " → " + end
}

// Cell is one slot of a month grid.
type Cell struct {
	Date    time.Time
	Outside bool // belongs to the previous or next month
}

// MonthGrid returns the weeks covering month, Monday first. Leading and
// trailing cells from adjacent months are flagged Outside.
func MonthGrid(month time.Time) [][]Cell {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	offset := (int(first.Weekday()) + 6) % 7
	cur := first.AddDate(0, 0, -offset)

	var weeks [][]Cell
	for {
		week := make([]Cell, 7)
		for i := range week {
			week[i] = Cell{Date: cur, Outside: cur.Month() != first.Month()}
			cur = cur.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
		if cur.Month() != first.Month() {
			break
		}
	}
	return weeks
}

// AddMonths moves a month anchor, always landing on the first of the month.
func AddMonths(month time.Time, n int) time.Time {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, n, 0)
}
