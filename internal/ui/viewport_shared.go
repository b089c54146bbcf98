package ui

// rowMargin is how many rows stay visible above and below the cursor.
func (m Model) rowMargin() int {
	if m.viewport.Height < 8 {
		return 1
	}
	return 3
}

// keepRowVisible scrolls the dropdown viewport so that line, the cursor's
// line in the rendered rows, sits inside the window with rowMargin rows of
// context.
func (m *Model) keepRowVisible(line int) {
	margin := m.rowMargin()
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1

	switch {
	case line < top+margin:
		m.viewport.SetYOffset(max(0, line-margin))
	case line > bottom-margin:
		m.viewport.SetYOffset(max(0, line-m.viewport.Height+margin+1))
	}
}
