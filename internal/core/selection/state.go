package selection

import (
	"slices"

	"treepick/internal/core/tree"
)

// Counter tallies the direct children of a parent.
type Counter struct {
	Total    int
	Selected int
}

// Full reports whether every direct child is selected.
func (c Counter) Full() bool { return c.Total > 0 && c.Selected == c.Total }

// State is the pair every engine operation consumes and produces. Checked
// only holds true entries; Counters only holds parents with Selected > 0.
// Engine operations never modify the State they are given.
type State struct {
	Checked  map[tree.Key]bool
	Counters map[tree.Key]Counter
}

// NodeStatus is what a renderer needs to draw a tri-state checkbox.
type NodeStatus struct {
	Checked       bool
	Indeterminate bool
}

func NewState() State {
	return State{
		Checked:  make(map[tree.Key]bool),
		Counters: make(map[tree.Key]Counter),
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	out := State{
		Checked:  make(map[tree.Key]bool, len(s.Checked)),
		Counters: make(map[tree.Key]Counter, len(s.Counters)),
	}
	for k, v := range s.Checked {
		if v {
			out.Checked[k] = true
		}
	}
	for k, v := range s.Counters {
		out.Counters[k] = v
	}
	return out
}

func (s State) IsChecked(key tree.Key) bool { return s.Checked[key] }

func (s State) Empty() bool { return len(s.Checked) == 0 }

// AnyChecked reports whether at least one node of f is checked.
func (s State) AnyChecked(f *tree.Forest) bool {
	for k := range s.Checked {
		if f.Has(k) {
			return true
		}
	}
	return false
}

// Status derives the checkbox state for key.
func (s State) Status(f *tree.Forest, key tree.Key) NodeStatus {
	st := NodeStatus{Checked: s.Checked[key]}
	if c, ok := s.Counters[key]; ok && f.IsParent(key) {
		st.Indeterminate = c.Selected > 0 && c.Selected != c.Total
	}
	return st
}

// AllChecked reports whether every node of a non-empty forest is checked.
func (s State) AllChecked(f *tree.Forest) bool {
	if f.Len() == 0 {
		return false
	}
	for _, k := range f.Keys() {
		if !s.Checked[k] {
			return false
		}
	}
	return true
}

// SelectAllStatus is the checkbox state of the "select all" row.
func (s State) SelectAllStatus(f *tree.Forest) NodeStatus {
	all := s.AllChecked(f)
	return NodeStatus{Checked: all, Indeterminate: !all && s.AnyChecked(f)}
}

// SelectedKeys returns the checked keys in document order followed by any
// checked keys the forest does not know, sorted for stability.
func (s State) SelectedKeys(f *tree.Forest) []tree.Key {
	out := make([]tree.Key, 0, len(s.Checked))
	for _, k := range f.Keys() {
		if s.Checked[k] {
			out = append(out, k)
		}
	}
	if len(out) == len(s.Checked) {
		return out
	}
	var stray []tree.Key
	for k, v := range s.Checked {
		if v && !f.Has(k) {
			stray = append(stray, k)
		}
	}
	slices.Sort(stray)
	return append(out, stray...)
}

// CheckedLeaves returns the checked keys without children, document order.
func (s State) CheckedLeaves(f *tree.Forest) []tree.FlatNode {
	var out []tree.FlatNode
	for _, k := range f.Keys() {
		if s.Checked[k] && !f.IsParent(k) {
			n, _ := f.Node(k)
			out = append(out, n)
		}
	}
	return out
}
