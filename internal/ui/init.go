package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"treepick/internal/config"
	"treepick/internal/core/daterange"
	"treepick/internal/core/pick"
	"treepick/internal/core/selection"
	"treepick/internal/core/tree"
	"treepick/internal/infra/logx"
	"treepick/internal/infra/watch"
	"treepick/internal/source"
)

// New builds the model for a loaded document.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg.MaxChipWidth <= 0 {
		cfg.MaxChipWidth = config.Default().MaxChipWidth
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		focus:     widgetTree,
		cfg:       cfg,
		path:      opts.Path,
		filterCfg: pick.DefaultFilterConfig(),
		watcher:   opts.Watcher,
		now:       now,
	}

	forest := tree.NewForest(opts.Document.Tree)
	m.store = selection.NewStore(forest)
	value := opts.Document.Value
	if opts.Value != nil {
		value = opts.Value
	}
	m.snap = m.store.Sync(value)
	m.tree.emitted = m.snap.State.SelectedKeys(forest)
	m.tree.chipCursor = -1

	// search
	si := textinput.New()
	si.Placeholder = "Search…"
	si.Prompt = "/ "
	si.CharLimit = 200
	si.Width = 40
	m.tree.searchInput = si

	ti := textinput.New()
	ti.Placeholder = "Add tag…"
	ti.CharLimit = 200
	ti.Width = 40
	m.tags.input = ti
	m.tags.set = pick.NewTagSet()
	m.tags.options = opts.Document.Tags

	ai := textinput.New()
	ai.Placeholder = "Type to search…"
	ai.CharLimit = 200
	ai.Width = 40
	m.ac.input = ai
	m.ac.options = opts.Document.Options

	today := daterange.Day(now())
	m.dates.cursor = today
	m.dates.month = daterange.AddMonths(today, 0)

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = subtleStyle
	m.spinner = sp

	// initial dimensions, updated on WindowSize
	m.viewport = viewport.New(80, 10)

	m.refreshTagMatches()
	m.refreshAutocompleteMatches()
	m.statusMsg = loadedStatus(forest, len(value))
	logx.Infow("document loaded", logx.Fields{"path": opts.Path, "nodes": forest.Len(), "value": len(value)})
	return m
}

func (m Model) Init() tea.Cmd {
	return watch.WaitCmd(m.watcher)
}

// applyDocument swaps in a reloaded document, keeping every selection
// that still refers to existing entries.
func (m *Model) applyDocument(doc source.Document) {
	prev := m.snap
	m.snap = m.store.SetForest(tree.NewForest(doc.Tree))
	m.recordChanges(prev.State, m.snap.State, prev.Forest)
	m.tree.cursor = min(m.tree.cursor, len(m.rows()))

	m.tags.options = doc.Tags
	m.ac.options = doc.Options
	if m.ac.selected != nil && !hasOption(doc.Options, m.ac.selected.Value) {
		m.ac.selected = nil
	}
	m.refreshTagMatches()
	m.refreshAutocompleteMatches()
}

func hasOption(opts []pick.Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
