package tree

import "strings"

// Matches reports whether label contains query after trimming the query and
// lowercasing both sides. An empty query matches everything.
func Matches(label, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(label), q)
}

// FilterNodes narrows the forest for a query. A top-level node whose label
// matches is kept with its whole subtree; otherwise a copy is kept that only
// retains the matching direct children. Nothing below depth 1 is searched.
func FilterNodes(forest []Node, query string) []Node {
	if strings.TrimSpace(query) == "" {
		return forest
	}
	out := make([]Node, 0, len(forest))
	for _, n := range forest {
		if Matches(n.Label, query) {
			out = append(out, n)
			continue
		}
		var kept []Node
		for _, c := range n.Children {
			if Matches(c.Label, query) {
				kept = append(kept, c)
			}
		}
		if len(kept) > 0 {
			cp := n
			cp.Children = kept
			out = append(out, cp)
		}
	}
	return out
}

// FilterVisible returns the flattened rows that remain visible for query.
// ChildCount keeps describing the unfiltered forest so checkbox state stays
// tied to the real hierarchy.
func FilterVisible(f *Forest, query string) []FlatNode {
	if f == nil {
		return nil
	}
	if strings.TrimSpace(query) == "" {
		return f.Flat()
	}
	rows := Flatten(FilterNodes(f.Roots(), query))
	for i := range rows {
		if full, ok := f.Node(rows[i].ID); ok {
			rows[i].ChildCount = full.ChildCount
		}
	}
	return rows
}
