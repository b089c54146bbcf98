package ui

import (
	"treepick/internal/core/selection"
)

// Result collects the final value of every widget.
func (m Model) Result() Result {
	r := Result{
		Tree:  m.snap.State.SelectedKeys(m.snap.Forest),
		Chips: m.chips(),
		Tags:  m.tags.set.Values(),
	}
	if r.Chips == nil {
		r.Chips = []selection.TagEntry{}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if m.ac.selected != nil {
		r.Autocomplete = m.ac.selected.Value
	}
	if v := m.dates.value; v.Start != nil {
		r.Range.Start = v.Start.Format(isoDay)
		if v.End != nil {
			r.Range.End = v.End.Format(isoDay)
			r.Range.Days = v.Days()
		}
	}
	return r
}

const isoDay = "2006-01-02"

// Feed returns the recorded leaf changes, oldest first.
func (m Model) Feed() []selection.Change {
	return append([]selection.Change(nil), m.feed...)
}
