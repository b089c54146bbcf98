package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"treepick/internal/core/pick"
)

// maxSuggestions caps the suggestion list under an input.
const maxSuggestions = 6

func (m Model) renderTagsWidget(focused bool) string {
	var b strings.Builder
	vals := m.tags.set.Values()
	if len(vals) == 0 {
		b.WriteString(subtleStyle.Render("No tags"))
	} else {
		more := chipMoreStyle.Render(fmt.Sprintf("+%d", len(vals)))
		layout := pick.FitChips(vals, m.contentWidth(), 2, 1, lipgloss.Width(more), m.cfg.MaxChipWidth)
		parts := make([]string, 0, len(layout.Labels)+1)
		for _, l := range layout.Labels {
			parts = append(parts, chipStyle.Render(l))
		}
		if layout.Hidden > 0 {
			parts = append(parts, chipMoreStyle.Render(fmt.Sprintf("+%d", layout.Hidden)))
		}
		b.WriteString(strings.Join(parts, " "))
	}
	if !focused {
		return b.String()
	}
	b.WriteString("\n" + m.tags.input.View())
	start := windowStart(m.tags.matches, m.tags.cursor)
	for i, idx := range window(m.tags.matches, m.tags.cursor) {
		opt := m.tags.options[idx]
		box := boxUnchecked
		if m.tags.set.Has(opt) {
			box = boxChecked
		}
		b.WriteString("\n" + suggestionLine(start+i == m.tags.cursor, box+" "+opt))
	}
	return b.String()
}

func (m Model) renderAutocompleteWidget(focused bool) string {
	var b strings.Builder
	if m.ac.selected != nil {
		b.WriteString(okStyle.Render("✓ ") + m.ac.selected.Label)
		if m.ac.selected.Secondary != "" {
			b.WriteString(" " + subtleStyle.Render(m.ac.selected.Secondary))
		}
	} else {
		b.WriteString(subtleStyle.Render("Nothing picked"))
	}
	if !focused {
		return b.String()
	}
	b.WriteString("\n" + m.ac.input.View())
	if len(m.ac.matches) == 0 {
		b.WriteString("\n" + warnStyle.Render("No options"))
		return b.String()
	}
	start := windowStart(m.ac.matches, m.ac.cursor)
	for i, idx := range window(m.ac.matches, m.ac.cursor) {
		opt := m.ac.options[idx]
		text := opt.Label
		if opt.Secondary != "" {
			text += "  " + subtleStyle.Render(opt.Secondary)
		}
		if opt.Disabled {
			text = disabledStyle.Render(opt.Label)
		}
		b.WriteString("\n" + suggestionLine(start+i == m.ac.cursor, text))
	}
	return b.String()
}

func suggestionLine(active bool, text string) string {
	if active {
		return cursorBarStyle.Render(" ") + " " + focusStyle.Render(text)
	}
	return "  " + text
}

// windowStart keeps cursor inside a maxSuggestions wide window.
func windowStart(items []int, cursor int) int {
	if len(items) <= maxSuggestions || cursor < maxSuggestions {
		return 0
	}
	return min(cursor-maxSuggestions+1, len(items)-maxSuggestions)
}

func window(items []int, cursor int) []int {
	start := windowStart(items, cursor)
	return items[start:min(len(items), start+maxSuggestions)]
}
