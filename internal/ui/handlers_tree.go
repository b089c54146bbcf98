package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"treepick/internal/core/selection"
	"treepick/internal/core/tree"
)

// rows are the dropdown entries below the "select all" row. A key that
// appears twice in the document is shown once; the later occurrence is
// dropped together with its subtree.
func (m Model) rows() []tree.FlatNode {
	all := tree.FilterVisible(m.snap.Forest, m.tree.query)
	seen := make(map[tree.Key]bool, len(all))
	out := all[:0:0]
	skip := -1 // depth of the dropped row whose subtree is being skipped
	for _, fn := range all {
		if skip >= 0 {
			if fn.Depth > skip {
				continue
			}
			skip = -1
		}
		if seen[fn.ID] {
			skip = fn.Depth
			continue
		}
		seen[fn.ID] = true
		out = append(out, fn)
	}
	return out
}

func (m Model) chips() []selection.TagEntry {
	return selection.Summarize(m.snap.State, m.snap.Forest)
}

func (m Model) handleTreeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.tree.open {
		return m.handleTreeTriggerKey(msg.String())
	}
	if m.tree.searching {
		return m.handleTreeSearchKey(msg)
	}

	key := msg.String()
	switch key {
	case "esc":
		cmd := m.closeTree()
		return m, cmd
	case "j", "down":
		m.moveTreeCursor(1)
	case "k", "up":
		m.moveTreeCursor(-1)
	case "pgdown":
		m.moveTreeCursor(max(1, m.viewport.Height-1))
	case "pgup":
		m.moveTreeCursor(-max(1, m.viewport.Height-1))
	case "g", "home":
		m.tree.cursor = 0
	case "G", "end":
		m.tree.cursor = len(m.rows())
	case " ", "enter":
		m.toggleAtCursor()
	case "a":
		m.toggleAll()
	case "/", "f":
		cmd := m.startTreeSearch()
		return m, cmd
	case "F":
		m.setTreeQuery("")
	case "r":
		return m.reload()
	}
	m.updateTreeViewport()
	return m, nil
}

func (m Model) handleTreeTriggerKey(key string) (Model, tea.Cmd) {
	// chips folded into "+N" are not reachable
	n := m.visibleChips()
	if m.tree.chipCursor >= n {
		m.tree.chipCursor = n - 1
	}
	switch key {
	case "enter", " ", "j", "down":
		m.openTree()
	case "/", "f":
		m.openTree()
		cmd := m.startTreeSearch()
		return m, cmd
	case "h", "left":
		if n == 0 {
			return m, nil
		}
		if m.tree.chipCursor < 0 {
			m.tree.chipCursor = n - 1
		} else if m.tree.chipCursor > 0 {
			m.tree.chipCursor--
		}
	case "l", "right":
		if m.tree.chipCursor >= 0 && m.tree.chipCursor < n-1 {
			m.tree.chipCursor++
		} else {
			m.tree.chipCursor = -1
		}
	case "backspace", "delete", "x":
		idx := m.tree.chipCursor
		if idx < 0 {
			idx = n - 1
		}
		if idx < 0 {
			return m, nil
		}
		m.removeChip(idx)
		cmd := m.emitSelectionChange()
		return m, cmd
	case "esc":
		m.tree.chipCursor = -1
	case "r":
		return m.reload()
	}
	return m, nil
}

func (m Model) handleTreeSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// empty query closes the search box, otherwise it only clears
		if m.tree.query == "" {
			m.stopTreeSearch()
		} else {
			m.setTreeQuery("")
		}
	case "enter":
		m.stopTreeSearch()
	case "down":
		m.moveTreeCursor(1)
	case "up":
		m.moveTreeCursor(-1)
	default:
		var cmd tea.Cmd
		m.tree.searchInput, cmd = m.tree.searchInput.Update(msg)
		if q := m.tree.searchInput.Value(); q != m.tree.query {
			m.tree.query = q
			m.tree.cursor = min(m.tree.cursor, len(m.rows()))
		}
		m.updateTreeViewport()
		return m, cmd
	}
	m.updateTreeViewport()
	return m, nil
}

func (m *Model) openTree() {
	m.tree.open = true
	m.tree.cursor = 0
	m.tree.chipCursor = -1
	m.viewport.GotoTop()
	m.updateTreeViewport()
}

// closeTree hides the dropdown and reports the selection.
func (m *Model) closeTree() tea.Cmd {
	m.tree.open = false
	m.stopTreeSearch()
	m.tree.query = ""
	m.tree.searchInput.SetValue("")
	return m.emitSelectionChange()
}

func (m *Model) startTreeSearch() tea.Cmd {
	m.tree.searching = true
	m.tree.searchInput.SetValue(m.tree.query)
	m.tree.searchInput.CursorEnd()
	return m.tree.searchInput.Focus()
}

func (m *Model) stopTreeSearch() {
	m.tree.searching = false
	m.tree.searchInput.Blur()
}

func (m *Model) setTreeQuery(q string) {
	m.tree.query = q
	m.tree.searchInput.SetValue(q)
	m.tree.cursor = min(m.tree.cursor, len(m.rows()))
}

func (m *Model) moveTreeCursor(delta int) {
	m.tree.cursor = max(0, min(m.tree.cursor+delta, len(m.rows())))
}

// toggleAtCursor flips the row under the cursor. Toggles always apply to the
// full forest, a search only narrows what is shown.
func (m *Model) toggleAtCursor() {
	if m.tree.cursor == 0 {
		m.toggleAll()
		return
	}
	rows := m.rows()
	if m.tree.cursor > len(rows) {
		return
	}
	fn := rows[m.tree.cursor-1]
	checked := !m.snap.State.IsChecked(fn.ID)
	m.apply(func(s selection.State, f *tree.Forest) selection.State {
		return selection.Toggle(s, f, fn.ID, checked)
	})
}

func (m *Model) toggleAll() {
	m.apply(selection.ToggleAll)
}

func (m Model) visibleChips() int {
	_, layout := m.chipLayout()
	return len(layout.Labels)
}

// removeChip drops the subtree behind visible chip idx.
func (m *Model) removeChip(idx int) {
	chips, layout := m.chipLayout()
	if idx < 0 || idx >= len(layout.Labels) {
		return
	}
	key := chips[idx].ID
	m.apply(func(s selection.State, f *tree.Forest) selection.State {
		return selection.Remove(s, f, key)
	})
	if n := m.visibleChips(); m.tree.chipCursor >= n {
		m.tree.chipCursor = n - 1
	}
}

// apply runs op through the store and feeds the resulting leaf changes.
func (m *Model) apply(op func(selection.State, *tree.Forest) selection.State) {
	prev := m.snap
	m.snap = m.store.Apply(op)
	m.recordChanges(prev.State, m.snap.State, m.snap.Forest)
}

func (m Model) reload() (Model, tea.Cmd) {
	if m.path == "" || m.loading {
		return m, nil
	}
	m.loading = true
	m.statusMsg = "Reloading…"
	return m, tea.Batch(m.spinner.Tick, loadDocCmd(m.path, false))
}
