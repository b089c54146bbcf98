package ui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("treepick"))
	if m.path != "" {
		b.WriteString("  " + subtleStyle.Render(m.path))
	}
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(10, m.width-2))))
	b.WriteString("\n")

	for w := widget(0); w < widgetCount; w++ {
		focused := w == m.focus
		var body string
		switch w {
		case widgetTree:
			body = m.renderTreeWidget()
			if !focused {
				body = m.renderTrigger()
			}
		case widgetTags:
			body = m.renderTagsWidget(focused)
		case widgetAutocomplete:
			body = m.renderAutocompleteWidget(focused)
		case widgetRange:
			body = m.renderRangeWidget(focused)
		}
		b.WriteString(m.renderSection(widgetTitles[w], body, focused))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooterFor())
	return b.String()
}

func (m Model) renderSection(title, body string, focused bool) string {
	style := sectionStyle
	head := subtleStyle.Render(title)
	if focused {
		style = sectionFocused
		head = labelStyle.Render(title)
	}
	return head + "\n" + style.Width(m.contentWidth()).Render(body)
}

func (m Model) renderFooterFor() string {
	status := m.statusMsg
	if m.loading {
		status = m.spinner.View() + " " + status
	}
	if m.loadErr != nil {
		status = errorStyle.Render("! ") + status
	}
	status += fmt.Sprintf("  |  selected: %d  |  tags: %d", len(m.snap.State.Checked), m.tags.set.Len())

	var help string
	switch m.focus {
	case widgetTree:
		help = m.treeHelp()
	case widgetTags:
		help = "type to filter  |  ↑/↓ move  |  enter toggle tag  |  backspace remove last  |  tab next"
	case widgetAutocomplete:
		help = "type to search  |  ↑/↓ move  |  enter pick  |  esc clear  |  tab next"
	case widgetRange:
		help = m.rangeHelp()
	}
	return renderFooter(status, help)
}
