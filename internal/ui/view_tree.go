package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"treepick/internal/core/pick"
	"treepick/internal/core/selection"
	"treepick/internal/core/tree"
)

func checkbox(st selection.NodeStatus) string {
	switch {
	case st.Checked:
		return boxChecked
	case st.Indeterminate:
		return boxIndeterminate
	default:
		return boxUnchecked
	}
}

// contentWidth is the room inside a section border.
func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 76
	}
	return max(20, m.width-4)
}

// chipLayout fits the summary chips into the trigger line. Only the first
// len(layout.Labels) chips are drawn and can take the chip cursor.
func (m Model) chipLayout() ([]selection.TagEntry, pick.ChipLayout) {
	chips := m.chips()
	if len(chips) == 0 {
		return chips, pick.ChipLayout{}
	}
	labels := make([]string, len(chips))
	for i, c := range chips {
		labels[i] = c.Label
	}
	more := chipMoreStyle.Render(fmt.Sprintf("+%d", len(chips)))
	return chips, pick.FitChips(labels, m.contentWidth(), 2, 1, lipgloss.Width(more)+2, m.cfg.MaxChipWidth)
}

// renderTrigger draws the closed dropdown: chips that fit, a "+N" chip for
// the rest and the open/closed arrow.
func (m Model) renderTrigger() string {
	chips, layout := m.chipLayout()
	arrow := "▾"
	if m.tree.open {
		arrow = "▴"
	}
	if len(chips) == 0 {
		return subtleStyle.Render("Nothing selected") + " " + arrow
	}

	parts := make([]string, 0, len(layout.Labels)+2)
	for i, l := range layout.Labels {
		style := chipStyle
		if i == m.tree.chipCursor {
			style = chipSelectedStyle
		}
		parts = append(parts, style.Render(l))
	}
	if layout.Hidden > 0 {
		parts = append(parts, chipMoreStyle.Render(fmt.Sprintf("+%d", layout.Hidden)))
	}
	parts = append(parts, arrow)
	return strings.Join(parts, " ")
}

func (m *Model) updateTreeViewport() {
	if !m.tree.open {
		return
	}
	m.viewport.SetContent(m.renderTreeRows())
	m.keepRowVisible(m.tree.cursor)
}

// renderTreeRows draws the "select all" row followed by the visible rows.
// Each row occupies exactly one line so the cursor index is its line.
func (m Model) renderTreeRows() string {
	rows := m.rows()
	width := m.contentWidth() - 2

	lines := make([]string, 0, len(rows)+1)
	all := checkbox(m.snap.State.SelectAllStatus(m.snap.Forest)) + " Select all"
	lines = append(lines, m.rowLine(0, focusStyle.Render(all), width))

	if len(rows) == 0 {
		msg := "No options."
		if strings.TrimSpace(m.tree.query) != "" {
			msg = "No matches for \"" + m.tree.query + "\"."
		}
		lines = append(lines, "  "+warnStyle.Render(msg))
		return strings.Join(lines, "\n")
	}

	treeLines := generateTreeLines(rows, func(_ int, fn tree.FlatNode) string {
		label := checkbox(m.snap.State.Status(m.snap.Forest, fn.ID)) + " " + fn.Label
		if fn.IsParent() {
			if c, ok := m.snap.State.Counters[fn.ID]; ok {
				label += markBarStyle.Render(fmt.Sprintf(" (%d/%d)", c.Selected, c.Total))
			}
		}
		return label
	})
	for i := range rows {
		if i >= len(treeLines) {
			break
		}
		lines = append(lines, m.rowLine(i+1, treeLines[i], width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) rowLine(idx int, content string, width int) string {
	content = lipgloss.NewStyle().MaxWidth(width).Render(content)
	if idx == m.tree.cursor {
		return cursorBarStyle.Render(" ") + " " + cursorLineStyle.Width(width).Render(content)
	}
	return "  " + content
}

func (m Model) renderTreeWidget() string {
	var b strings.Builder
	b.WriteString(m.renderTrigger())
	if !m.tree.open {
		return b.String()
	}
	b.WriteString("\n")
	if m.tree.searching {
		b.WriteString(m.tree.searchInput.View())
	} else if m.tree.query != "" {
		b.WriteString(subtleStyle.Render("/ " + m.tree.query))
	} else {
		b.WriteString(subtleStyle.Render("/ to search"))
	}
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", m.contentWidth()-2)))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	return b.String()
}

func (m Model) treeHelp() string {
	switch {
	case m.tree.searching:
		return "type to filter  |  ↑/↓ move  |  enter keep filter  |  esc clear/close search"
	case m.tree.open:
		return "j/k move  |  space toggle  |  a select all  |  / search  |  F clear search  |  esc close"
	default:
		return "enter open  |  h/l pick chip  |  x remove chip  |  r reload  |  tab next widget  |  q quit"
	}
}
