package ui

import (
	"fmt"
	"strings"
	"time"

	"treepick/internal/core/daterange"
)

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

func (m Model) renderRangeWidget(focused bool) string {
	var b strings.Builder
	if s := m.dates.value.String(); s != "" {
		b.WriteString(s)
		if d := m.dates.value.Days(); d > 0 {
			b.WriteString(subtleStyle.Render(fmt.Sprintf("  (%d days)", d)))
		}
	} else {
		b.WriteString(subtleStyle.Render("dd/mm/yyyy → dd/mm/yyyy"))
	}
	if !focused {
		return b.String()
	}

	b.WriteString("\n\n" + labelStyle.Render(m.dates.month.Format("January 2006")) + "\n")
	for _, d := range weekdayHeader {
		b.WriteString(dayStyle.Render(d))
	}
	today := daterange.Day(m.now())
	for _, week := range daterange.MonthGrid(m.dates.month) {
		b.WriteString("\n")
		for _, c := range week {
			b.WriteString(m.dayCell(c, today))
		}
	}
	return b.String()
}

func (m Model) dayCell(c daterange.Cell, today time.Time) string {
	text := fmt.Sprintf("%d", c.Date.Day())
	r := m.dates.value
	switch {
	case c.Date.Equal(m.dates.cursor):
		return dayCursorStyle.Render(text)
	case c.Outside:
		return dayOutsideStyle.Render(text)
	case r.Start != nil && c.Date.Equal(*r.Start), r.End != nil && c.Date.Equal(*r.End):
		return dayEdgeStyle.Render(text)
	case r.Contains(c.Date):
		return dayInRangeStyle.Render(text)
	case c.Date.Equal(today):
		return dayTodayStyle.Render(text)
	}
	return dayStyle.Render(text)
}

func (m Model) rangeHelp() string {
	return "h/j/k/l move  |  [ ] month  |  t today  |  space pick  |  c clear  |  q quit"
}
