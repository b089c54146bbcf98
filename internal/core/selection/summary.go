package selection

import (
	"fmt"

	"treepick/internal/core/tree"
)

// TagEntry is one removable chip.
type TagEntry struct {
	ID    tree.Key `json:"id"`
	Label string   `json:"label"`
}

// Summarize derives the chips for a selection. Every parent with a counter
// is represented by its highest ancestor such that the whole chain up to it
// is fully selected, so a fully selected subtree collapses into one chip.
// Checked top-level leaves get a chip with their bare label. Output follows
// document order.
func Summarize(s State, f *tree.Forest) []TagEntry {
	var out []TagEntry
	seen := make(map[tree.Key]bool)
	for _, fn := range f.Flat() {
		if seen[fn.ID] {
			continue
		}
		c, ok := s.Counters[fn.ID]
		if !ok {
			if !fn.HasParent && !fn.IsParent() && s.Checked[fn.ID] {
				seen[fn.ID] = true
				out = append(out, TagEntry{ID: fn.ID, Label: fn.Label})
			}
			continue
		}
		if c.Selected == 0 {
			continue
		}
		rep, rc := collapse(s, f, fn.ID, c)
		if seen[rep] {
			continue
		}
		seen[rep] = true
		n, _ := f.Node(rep)
		out = append(out, TagEntry{
			ID:    rep,
			Label: fmt.Sprintf("%s (%d/%d)", n.Label, rc.Selected, rc.Total),
		})
	}
	return out
}

// collapse climbs from key while both the current node and its parent are
// fully selected.
func collapse(s State, f *tree.Forest, key tree.Key, c Counter) (tree.Key, Counter) {
	for i := 0; i <= f.Len(); i++ {
		if !c.Full() {
			break
		}
		p, ok := f.Parent(key)
		if !ok {
			break
		}
		pc, ok := s.Counters[p]
		if !ok || !pc.Full() {
			break
		}
		key, c = p, pc
	}
	return key, c
}

// Keys returns the ids of a chip list.
func Keys(tags []TagEntry) []tree.Key {
	out := make([]tree.Key, len(tags))
	for i, t := range tags {
		out[i] = t.ID
	}
	return out
}
