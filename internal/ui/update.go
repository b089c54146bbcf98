package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"treepick/internal/infra/logx"
	"treepick/internal/infra/watch"
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		key := msg.String()

		// global shortcuts
		switch key {
		case "ctrl+c":
			return m.quit()
		case "tab", "shift+tab":
			step := 1
			if key == "shift+tab" {
				step = int(widgetCount) - 1
			}
			cmd := m.setFocus(widget((int(m.focus) + step) % int(widgetCount)))
			return m, cmd
		}
		if key == "q" && !m.typing() {
			return m.quit()
		}

		switch m.focus {
		case widgetTree:
			return m.handleTreeKey(msg)
		case widgetTags:
			return m.handleTagsKey(msg)
		case widgetAutocomplete:
			return m.handleAutocompleteKey(msg)
		case widgetRange:
			return m.handleRangeKey(key)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// header, trigger, search, select-all row and footer
		const chrome = 16
		m.viewport.Width = max(20, m.width-4)
		m.viewport.Height = max(3, m.height-chrome)
		m.tree.searchInput.Width = max(10, m.width-12)
		m.tags.input.Width = max(10, m.width-12)
		m.ac.input.Width = max(10, m.width-12)
		m.updateTreeViewport()

	case watch.ChangedMsg:
		m.loading = true
		m.statusMsg = "Reloading " + msg.Path + "…"
		return m, tea.Batch(m.spinner.Tick, loadDocCmd(m.path, true))

	case docLoadedMsg:
		m.loading = false
		// the wait issued by Init or the previous change is still pending
		// for manual reloads
		var next tea.Cmd
		if msg.fromWatch {
			next = watch.WaitCmd(m.watcher)
		}
		if msg.err != nil {
			m.loadErr = msg.err
			m.statusMsg = "Reload failed: " + msg.err.Error()
			logx.Warnf("reload %s: %v", m.path, msg.err)
			return m, next
		}
		m.loadErr = nil
		m.applyDocument(msg.doc)
		m.statusMsg = fmt.Sprintf("Reloaded. %s", loadedStatus(m.snap.Forest, len(m.snap.State.Checked)))
		m.updateTreeViewport()
		emit := m.emitSelectionChange()
		return m, tea.Batch(next, emit)

	case SelectionChangedMsg:
		// reported through the log and the final result
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

// typing reports whether plain runes belong to a text input.
func (m Model) typing() bool {
	switch m.focus {
	case widgetTree:
		return m.tree.searching
	case widgetTags, widgetAutocomplete:
		return true
	}
	return false
}

// setFocus moves keyboard focus and closes the tree dropdown when leaving it.
func (m *Model) setFocus(w widget) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == widgetTree && w != widgetTree && m.tree.open {
		cmd = m.closeTree()
	}
	m.tags.input.Blur()
	m.ac.input.Blur()
	m.focus = w
	switch w {
	case widgetTags:
		return tea.Batch(cmd, m.tags.input.Focus())
	case widgetAutocomplete:
		return tea.Batch(cmd, m.ac.input.Focus())
	}
	return cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.tree.open {
		cmd = m.closeTree()
	}
	m.quitting = true
	if m.watcher != nil {
		m.watcher.Stop()
	}
	if cmd == nil {
		return m, tea.Quit
	}
	return m, tea.Sequence(cmd, tea.Quit)
}
