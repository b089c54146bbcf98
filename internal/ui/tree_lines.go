package ui

import (
	"strings"

	lgtree "github.com/charmbracelet/lipgloss/tree"

	"treepick/internal/core/tree"
)

// generateTreeLines renders flat rows as a branch diagram, one line per
// row in input order. Keys must be unique. labelFn supplies the text of row i.
func generateTreeLines(rows []tree.FlatNode, labelFn func(i int, fn tree.FlatNode) string) []string {
	if len(rows) == 0 {
		return []string{}
	}

	tr := lgtree.New()
	nodes := make(map[tree.Key]*lgtree.Tree, len(rows))

	// First pass: create all nodes
	for i, fn := range rows {
		nodes[fn.ID] = lgtree.Root(labelFn(i, fn))
	}

	// Second pass: attach to the parent when it is shown, otherwise to the root
	for _, fn := range rows {
		node := nodes[fn.ID]
		if fn.HasParent {
			if parent, ok := nodes[fn.ParentID]; ok {
				parent.Child(node)
				continue
			}
		}
		tr.Child(node)
	}

	lines := strings.Split(tr.String(), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
