package tree

// Forest is an immutable snapshot of a node hierarchy together with every
// index derived from it. A new Forest is built whenever the input changes;
// existing snapshots are never updated in place.
type Forest struct {
	roots    []Node
	flat     []FlatNode
	parents  ParentIndex
	pos      map[Key]int
	children map[Key][]Key
}

// NewForest flattens nodes and builds the lookup indexes. With duplicate
// keys the first occurrence in document order owns the key.
func NewForest(nodes []Node) *Forest {
	f := &Forest{
		roots:    nodes,
		flat:     Flatten(nodes),
		parents:  BuildParentIndex(nodes),
		children: make(map[Key][]Key),
	}
	f.pos = make(map[Key]int, len(f.flat))
	for i, fn := range f.flat {
		if _, dup := f.pos[fn.ID]; dup {
			continue
		}
		f.pos[fn.ID] = i
	}
	for _, fn := range f.flat {
		if !fn.HasParent {
			continue
		}
		if i, ok := f.pos[fn.ParentID]; ok && f.flat[i].Depth == fn.Depth-1 {
			f.children[fn.ParentID] = append(f.children[fn.ParentID], fn.ID)
		}
	}
	return f
}

// Roots returns the nodes the forest was built from.
func (f *Forest) Roots() []Node {
	if f == nil {
		return nil
	}
	return f.roots
}

// Flat returns the full flattened list. Callers must not modify it.
func (f *Forest) Flat() []FlatNode {
	if f == nil {
		return nil
	}
	return f.flat
}

// Parents returns the child to parent index. Callers must not modify it.
func (f *Forest) Parents() ParentIndex {
	if f == nil {
		return nil
	}
	return f.parents
}

func (f *Forest) Len() int {
	if f == nil {
		return 0
	}
	return len(f.flat)
}

// Node looks up the flattened entry for key.
func (f *Forest) Node(key Key) (FlatNode, bool) {
	if f == nil {
		return FlatNode{}, false
	}
	i, ok := f.pos[key]
	if !ok {
		return FlatNode{}, false
	}
	return f.flat[i], true
}

func (f *Forest) Has(key Key) bool {
	_, ok := f.Node(key)
	return ok
}

// Position returns the document-order index of key, or -1.
func (f *Forest) Position(key Key) int {
	if f == nil {
		return -1
	}
	if i, ok := f.pos[key]; ok {
		return i
	}
	return -1
}

// Children returns the direct children of key in document order.
func (f *Forest) Children(key Key) []Key {
	if f == nil {
		return nil
	}
	return f.children[key]
}

func (f *Forest) IsParent(key Key) bool {
	return len(f.Children(key)) > 0
}

// Parent returns the parent of key, if any.
func (f *Forest) Parent(key Key) (Key, bool) {
	if f == nil {
		return "", false
	}
	p, ok := f.parents[key]
	return p, ok
}

// Ancestors returns the ancestor chain of key, nearest first.
func (f *Forest) Ancestors(key Key) []Key {
	if f == nil {
		return nil
	}
	return AncestorChain(key, f.parents)
}

// Descendants returns every key below key, depth-first. The walk is bounded
// by the forest size.
func (f *Forest) Descendants(key Key) []Key {
	if f == nil {
		return nil
	}
	var out []Key
	seen := map[Key]bool{key: true}
	stack := append([]Key(nil), reverse(f.children[key])...)
	for len(stack) > 0 && len(out) < len(f.flat) {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
		stack = append(stack, reverse(f.children[k])...)
	}
	return out
}

// Keys returns every key in document order, duplicates removed.
func (f *Forest) Keys() []Key {
	if f == nil {
		return nil
	}
	out := make([]Key, 0, len(f.pos))
	for i, fn := range f.flat {
		if f.pos[fn.ID] == i {
			out = append(out, fn.ID)
		}
	}
	return out
}

func reverse(keys []Key) []Key {
	out := make([]Key, len(keys))
	for i, k := range keys {
		out[len(keys)-1-i] = k
	}
	return out
}
