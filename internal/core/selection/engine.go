package selection

import "treepick/internal/core/tree"

// Toggle sets key to checked. A parent passes the value down to every
// descendant. Ancestors are then re-derived nearest first: an ancestor is
// checked iff all of its direct children are. The climb stops at the first
// ancestor whose value does not change. Unknown keys are stored as-is with
// no propagation.
func Toggle(s State, f *tree.Forest, key tree.Key, checked bool) State {
	next := s.Clone()
	if !f.Has(key) {
		setChecked(next.Checked, key, checked)
		return next
	}

	setChecked(next.Checked, key, checked)
	desc := f.Descendants(key)
	for _, d := range desc {
		setChecked(next.Checked, d, checked)
	}
	propagateUp(next.Checked, f, key)

	affected := make([]tree.Key, 0, len(desc)+1)
	affected = append(affected, key)
	affected = append(affected, desc...)
	recompute(next, f, affected)
	return next
}

// SelectAll checks every node when checked is true and clears the whole
// selection otherwise.
func SelectAll(s State, f *tree.Forest, checked bool) State {
	if !checked {
		return NewState()
	}
	next := NewState()
	for _, k := range f.Keys() {
		next.Checked[k] = true
	}
	recompute(next, f, f.Keys())
	return next
}

// ToggleAll is the "select all" row: a fully selected forest is cleared,
// anything else (including a partial selection) becomes fully selected.
func ToggleAll(s State, f *tree.Forest) State {
	return SelectAll(s, f, !s.AllChecked(f))
}

// Remove drops key and everything below it from the selection.
func Remove(s State, f *tree.Forest, key tree.Key) State {
	next := Toggle(s, f, key, false)
	delete(next.Checked, key)
	return next
}

// SyncFromExternalValue rebuilds the selection from a caller supplied key
// list. Each key is checked together with its descendants, ancestors are
// re-derived with the AND rule and counters recomputed for everything that
// was touched.
func SyncFromExternalValue(f *tree.Forest, keys []tree.Key) State {
	next := NewState()
	var affected []tree.Key
	for _, k := range keys {
		next.Checked[k] = true
		if !f.Has(k) {
			continue
		}
		desc := f.Descendants(k)
		for _, d := range desc {
			next.Checked[d] = true
		}
		affected = append(affected, k)
		affected = append(affected, desc...)
	}
	for _, k := range keys {
		if f.Has(k) {
			propagateUp(next.Checked, f, k)
		}
	}
	recompute(next, f, affected)
	return next
}

// RecomputeCounters refreshes the counters of every key in affected and of
// all their ancestors.
func RecomputeCounters(s State, f *tree.Forest, affected []tree.Key) State {
	next := s.Clone()
	recompute(next, f, affected)
	return next
}

// Normalize re-derives a selection against a (possibly new) forest. Only
// checked leaves that still exist survive; every parent is derived again
// from them.
func Normalize(s State, f *tree.Forest) State {
	var keep []tree.Key
	for _, k := range f.Keys() {
		if s.Checked[k] && !f.IsParent(k) {
			keep = append(keep, k)
		}
	}
	return SyncFromExternalValue(f, keep)
}

func setChecked(m map[tree.Key]bool, key tree.Key, checked bool) {
	if checked {
		m[key] = true
		return
	}
	delete(m, key)
}

func propagateUp(checked map[tree.Key]bool, f *tree.Forest, key tree.Key) {
	for _, a := range f.Ancestors(key) {
		want := allChildrenChecked(checked, f, a)
		if checked[a] == want {
			return
		}
		setChecked(checked, a, want)
	}
}

func allChildrenChecked(checked map[tree.Key]bool, f *tree.Forest, key tree.Key) bool {
	children := f.Children(key)
	if len(children) == 0 {
		return checked[key]
	}
	for _, c := range children {
		if !checked[c] {
			return false
		}
	}
	return true
}

// recompute updates counters in place for affected keys and their
// ancestors. Only used on states the caller already owns.
func recompute(s State, f *tree.Forest, affected []tree.Key) {
	done := make(map[tree.Key]bool, len(affected))
	update := func(k tree.Key) {
		if done[k] {
			return
		}
		done[k] = true
		children := f.Children(k)
		if len(children) == 0 {
			delete(s.Counters, k)
			return
		}
		sel := 0
		for _, c := range children {
			if s.Checked[c] {
				sel++
			}
		}
		if sel == 0 {
			delete(s.Counters, k)
			return
		}
		s.Counters[k] = Counter{Total: len(children), Selected: sel}
	}
	for _, k := range affected {
		update(k)
		for _, a := range f.Ancestors(k) {
			update(a)
		}
	}
}
