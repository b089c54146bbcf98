package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"treepick/internal/core/pick"
	"treepick/internal/infra/logx"
)

func (m Model) handleTagsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "down":
		if m.tags.cursor < len(m.tags.matches)-1 {
			m.tags.cursor++
		}
		return m, nil
	case "up":
		if m.tags.cursor > 0 {
			m.tags.cursor--
		}
		return m, nil
	case "enter":
		if v, ok := m.tagAtCursor(); ok {
			m.tags.set = m.tags.set.Toggle(v)
			logx.Debugw("tag toggled", logx.Fields{"tag": v, "on": m.tags.set.Has(v)})
			m.tags.input.SetValue("")
			m.refreshTagMatches()
		}
		return m, nil
	case "backspace":
		// empty input removes the last chip
		if m.tags.input.Value() == "" {
			if vals := m.tags.set.Values(); len(vals) > 0 {
				m.tags.set = m.tags.set.Remove(vals[len(vals)-1])
			}
			return m, nil
		}
	case "esc":
		m.tags.input.SetValue("")
		m.refreshTagMatches()
		return m, nil
	}

	var cmd tea.Cmd
	m.tags.input, cmd = m.tags.input.Update(msg)
	m.refreshTagMatches()
	return m, cmd
}

func (m Model) tagAtCursor() (string, bool) {
	if m.tags.cursor < 0 || m.tags.cursor >= len(m.tags.matches) {
		return "", false
	}
	return m.tags.options[m.tags.matches[m.tags.cursor]], true
}

func (m *Model) refreshTagMatches() {
	m.tags.matches = pick.FilterStrings(m.tags.options, m.tags.input.Value(), m.filterCfg)
	m.tags.cursor = max(0, min(m.tags.cursor, len(m.tags.matches)-1))
}

func (m Model) handleAutocompleteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "down":
		m.moveAutocompleteCursor(1)
		return m, nil
	case "up":
		m.moveAutocompleteCursor(-1)
		return m, nil
	case "enter":
		if m.ac.cursor >= 0 && m.ac.cursor < len(m.ac.matches) {
			opt := m.ac.options[m.ac.matches[m.ac.cursor]]
			if opt.Disabled {
				return m, nil
			}
			m.ac.selected = &opt
			m.ac.input.SetValue(opt.Label)
			m.ac.input.CursorEnd()
			m.statusMsg = "Picked " + opt.Label
			logx.Debugw("option picked", logx.Fields{"value": opt.Value})
			m.refreshAutocompleteMatches()
		}
		return m, nil
	case "esc":
		m.ac.selected = nil
		m.ac.input.SetValue("")
		m.refreshAutocompleteMatches()
		return m, nil
	}

	var cmd tea.Cmd
	m.ac.input, cmd = m.ac.input.Update(msg)
	m.refreshAutocompleteMatches()
	return m, cmd
}

// moveAutocompleteCursor skips disabled options.
func (m *Model) moveAutocompleteCursor(delta int) {
	for i := m.ac.cursor + delta; i >= 0 && i < len(m.ac.matches); i += delta {
		if !m.ac.options[m.ac.matches[i]].Disabled {
			m.ac.cursor = i
			return
		}
	}
}

func (m *Model) refreshAutocompleteMatches() {
	q := m.ac.input.Value()
	if m.ac.selected != nil && q == m.ac.selected.Label {
		q = ""
	}
	m.ac.matches = pick.FilterOptions(m.ac.options, q, m.filterCfg)
	m.ac.cursor = max(0, min(m.ac.cursor, len(m.ac.matches)-1))
}
