package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"treepick/internal/core/daterange"
	"treepick/internal/infra/logx"
)

func (m Model) handleRangeKey(key string) (Model, tea.Cmd) {
	switch key {
	case "h", "left":
		m.moveDay(-1)
	case "l", "right":
		m.moveDay(1)
	case "k", "up":
		m.moveDay(-7)
	case "j", "down":
		m.moveDay(7)
	case "[", "pgup":
		m.dates.month = daterange.AddMonths(m.dates.month, -1)
		m.dates.cursor = m.dates.month
	case "]", "pgdown":
		m.dates.month = daterange.AddMonths(m.dates.month, 1)
		m.dates.cursor = m.dates.month
	case "t":
		m.dates.cursor = daterange.Day(m.now())
		m.dates.month = daterange.AddMonths(m.dates.cursor, 0)
	case " ", "enter":
		m.dates.value = m.dates.value.Pick(m.dates.cursor)
		if m.dates.value.Complete() {
			m.statusMsg = "Range " + m.dates.value.String()
			logx.Debugw("range picked", logx.Fields{"range": m.dates.value.String(), "days": m.dates.value.Days()})
		}
	case "esc", "c":
		m.dates.value = daterange.Range{}
	}
	return m, nil
}

// moveDay moves the calendar cursor; the visible month follows it.
func (m *Model) moveDay(n int) {
	m.dates.cursor = m.dates.cursor.AddDate(0, 0, n)
	m.dates.month = daterange.AddMonths(m.dates.cursor, 0)
}
