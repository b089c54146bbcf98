package tree

// Key identifies a node. Documents may spell keys as strings or integers;
// both end up here in their string form.
type Key string

// MaxDepth bounds flattening so malformed input can never recurse forever.
const MaxDepth = 64

// Node is one element of the caller's hierarchy.
type Node struct {
	ID       Key
	Label    string
	Children []Node
}

// FlatNode is the depth-first, linearized view of a Node.
type FlatNode struct {
	ID             Key
	Label          string
	Depth          int
	ParentID       Key
	HasParent      bool
	IsFirstInGroup bool // first row of each top-level root, separator only
	ChildCount     int
}

// IsParent reports whether the node had children in the source forest.
func (f FlatNode) IsParent() bool { return f.ChildCount > 0 }

// ParentIndex maps every non-root key to its parent key.
type ParentIndex map[Key]Key

// Flatten returns every node of the forest depth-first in input order.
func Flatten(forest []Node) []FlatNode {
	out := make([]FlatNode, 0, countNodes(forest, 0))
	for _, root := range forest {
		out = appendFlat(out, root, 0, "", false, true)
	}
	return out
}

func appendFlat(out []FlatNode, n Node, depth int, parent Key, hasParent, first bool) []FlatNode {
	out = append(out, FlatNode{
		ID:             n.ID,
		Label:          n.Label,
		Depth:          depth,
		ParentID:       parent,
		HasParent:      hasParent,
		IsFirstInGroup: first,
		ChildCount:     len(n.Children),
	})
	if depth >= MaxDepth {
		return out
	}
	for _, c := range n.Children {
		out = appendFlat(out, c, depth+1, n.ID, true, false)
	}
	return out
}

func countNodes(nodes []Node, depth int) int {
	if depth > MaxDepth {
		return 0
	}
	n := len(nodes)
	for _, c := range nodes {
		n += countNodes(c.Children, depth+1)
	}
	return n
}

// BuildParentIndex maps children to parents in a single pass.
func BuildParentIndex(forest []Node) ParentIndex {
	idx := make(ParentIndex)
	var walk func(nodes []Node, parent Key, depth int)
	walk = func(nodes []Node, parent Key, depth int) {
		if depth > MaxDepth {
			return
		}
		for _, n := range nodes {
			if depth > 0 {
				idx[n.ID] = parent
			}
			walk(n.Children, n.ID, depth+1)
		}
	}
	walk(forest, "", 0)
	return idx
}

// AncestorChain walks parent links from key up to its root, nearest first.
// The key itself is excluded; roots and unknown keys yield an empty chain.
// The walk is bounded by the index size so a cyclic index terminates.
func AncestorChain(key Key, idx ParentIndex) []Key {
	var chain []Key
	seen := map[Key]bool{key: true}
	cur := key
	for i := 0; i <= len(idx); i++ {
		p, ok := idx[cur]
		if !ok || seen[p] {
			break
		}
		seen[p] = true
		chain = append(chain, p)
		cur = p
	}
	return chain
}
