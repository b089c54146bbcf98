package ui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"treepick/internal/core/selection"
	"treepick/internal/core/tree"
	"treepick/internal/infra/logx"
	"treepick/internal/source"
)

// ---------- Messages / Cmds ----------
type docLoadedMsg struct {
	doc source.Document
	err error
	// set when a watcher change started the load
	fromWatch bool
}

// SelectionChangedMsg is emitted when the tree dropdown closes with a
// selection different from the last one reported.
type SelectionChangedMsg struct {
	Keys []tree.Key
}

func loadDocCmd(path string, fromWatch bool) tea.Cmd {
	return func() tea.Msg {
		doc, err := source.Load(path)
		return docLoadedMsg{doc: doc, err: err, fromWatch: fromWatch}
	}
}

func loadedStatus(f *tree.Forest, selected int) string {
	return fmt.Sprintf("%d nodes loaded, %d keys preselected.", f.Len(), selected)
}

// recordChanges logs one ADD/DELETE entry per changed leaf and keeps the
// tail of the feed for the status line.
func (m *Model) recordChanges(prev, next selection.State, f *tree.Forest) {
	changes := selection.Diff(prev, next, f)
	if len(changes) == 0 {
		return
	}
	for _, c := range changes {
		logx.Debugw("selection change", logx.Fields{
			"status": string(c.Status),
			"key":    string(c.Node.ID),
			"label":  c.Node.Label,
		})
	}
	m.feed = append(m.feed, changes...)
	if over := len(m.feed) - maxFeed; over > 0 {
		m.feed = append([]selection.Change(nil), m.feed[over:]...)
	}
	m.statusMsg = describeChanges(changes)
}

func describeChanges(changes []selection.Change) string {
	if len(changes) == 1 {
		c := changes[0]
		return fmt.Sprintf("%s %s", c.Status, c.Node.Label)
	}
	var add, del int
	for _, c := range changes {
		if c.Status == selection.ChangeAdd {
			add++
		} else {
			del++
		}
	}
	var parts []string
	if add > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", selection.ChangeAdd, add))
	}
	if del > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", selection.ChangeDelete, del))
	}
	return strings.Join(parts, ", ")
}

// emitSelectionChange reports the selected keys when they differ from the
// last report.
func (m *Model) emitSelectionChange() tea.Cmd {
	keys := m.snap.State.SelectedKeys(m.snap.Forest)
	if slices.Equal(keys, m.tree.emitted) {
		return nil
	}
	m.tree.emitted = keys
	logx.Infow("selection changed", logx.Fields{"keys": keysString(keys)})
	return func() tea.Msg { return SelectionChangedMsg{Keys: keys} }
}

func keysString(keys []tree.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ",")
}
