package selection

import "treepick/internal/core/tree"

// ChangeStatus mirrors the ADD/DELETE notifications a host form receives.
type ChangeStatus string

const (
	ChangeAdd    ChangeStatus = "ADD"
	ChangeDelete ChangeStatus = "DELETE"
)

// Change is one leaf entering or leaving the selection.
type Change struct {
	Status ChangeStatus
	Node   tree.FlatNode
}

// Diff lists the leaf changes between prev and next in document order.
// Parents are omitted; their state is always derived from the leaves.
func Diff(prev, next State, f *tree.Forest) []Change {
	var out []Change
	for i, fn := range f.Flat() {
		if fn.IsParent() || f.Position(fn.ID) != i {
			continue
		}
		was, is := prev.Checked[fn.ID], next.Checked[fn.ID]
		switch {
		case is && !was:
			out = append(out, Change{Status: ChangeAdd, Node: fn})
		case was && !is:
			out = append(out, Change{Status: ChangeDelete, Node: fn})
		}
	}
	return out
}
