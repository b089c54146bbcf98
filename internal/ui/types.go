package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"treepick/internal/config"
	"treepick/internal/core/daterange"
	"treepick/internal/core/pick"
	"treepick/internal/core/selection"
	"treepick/internal/core/tree"
	"treepick/internal/infra/watch"
	"treepick/internal/source"
)

// --- Model / State ---
type widget int

const (
	widgetTree widget = iota
	widgetTags
	widgetAutocomplete
	widgetRange
	widgetCount
)

var widgetTitles = [widgetCount]string{
	widgetTree:         "Tree",
	widgetTags:         "Tags",
	widgetAutocomplete: "Autocomplete",
	widgetRange:        "Date range",
}

// maxFeed bounds the remembered change feed.
const maxFeed = 50

type TreeState struct {
	open bool
	// cursor 0 is the "select all" row, cursor i>0 is rows()[i-1]
	cursor int
	// chip focus on the closed trigger, -1 when none
	chipCursor int

	searching   bool
	searchInput textinput.Model
	query       string

	// keys reported by the last onSelectionChange
	emitted []tree.Key
}

type TagsState struct {
	set     pick.TagSet
	options []string
	input   textinput.Model
	matches []int
	cursor  int
}

type AutocompleteState struct {
	options  []pick.Option
	input    textinput.Model
	matches  []int
	cursor   int
	selected *pick.Option
}

type RangeState struct {
	month  time.Time
	cursor time.Time
	value  daterange.Range
}

type Model struct {
	focus     widget
	cfg       config.Config
	path      string
	statusMsg string
	loadErr   error
	width     int
	height    int
	quitting  bool

	store *selection.Store
	snap  selection.Snapshot

	tree  TreeState
	tags  TagsState
	ac    AutocompleteState
	dates RangeState

	filterCfg pick.FilterConfig
	feed      []selection.Change

	// viewport for the open dropdown rows
	viewport viewport.Model

	// spinner while the document reloads
	spinner spinner.Model
	loading bool

	watcher *watch.Watcher
	now     func() time.Time
}

// Options seeds a Model.
type Options struct {
	Config   config.Config
	Path     string
	Document source.Document
	// Value overrides the document's initial tree selection when non-nil.
	Value   []tree.Key
	Watcher *watch.Watcher
	Now     func() time.Time
}

// Result is what the program reports on exit.
type Result struct {
	Tree         []tree.Key           `json:"tree"`
	Chips        []selection.TagEntry `json:"chips"`
	Tags         []string             `json:"tags"`
	Autocomplete string               `json:"autocomplete"`
	Range        RangeResult          `json:"range"`
}

type RangeResult struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	Days  int    `json:"days,omitempty"`
}
