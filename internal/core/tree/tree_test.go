package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sampleForest() []Node {
	return []Node{
		{ID: "1", Label: "Direct sales", Children: []Node{
			{ID: "2", Label: "Staff channel"},
			{ID: "3", Label: "Household business"},
		}},
		{ID: "4", Label: "Other", Children: []Node{
			{ID: "5", Label: "Authorized agent", Children: []Node{
				{ID: "51", Label: "North"},
				{ID: "52", Label: "South"},
			}},
			{ID: "6", Label: "Import agent"},
		}},
		{ID: "7", Label: "Loose leaf"},
	}
}

func TestFlattenOrderAndDepth(t *testing.T) {
	flat := Flatten(sampleForest())

	ids := make([]Key, len(flat))
	for i, f := range flat {
		ids[i] = f.ID
	}
	assert.Equal(t, []Key{"1", "2", "3", "4", "5", "51", "52", "6", "7"}, ids)

	byID := map[Key]FlatNode{}
	for _, f := range flat {
		byID[f.ID] = f
	}
	assert.Equal(t, 0, byID["1"].Depth)
	assert.True(t, byID["1"].IsFirstInGroup)
	assert.False(t, byID["1"].HasParent)
	assert.Equal(t, 2, byID["1"].ChildCount)

	assert.Equal(t, 2, byID["51"].Depth)
	assert.Equal(t, Key("5"), byID["51"].ParentID)
	assert.False(t, byID["51"].IsFirstInGroup)
	assert.True(t, byID["7"].IsFirstInGroup)
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, BuildParentIndex(nil))
}

func TestBuildParentIndex(t *testing.T) {
	idx := BuildParentIndex(sampleForest())
	assert.Equal(t, ParentIndex{
		"2": "1", "3": "1",
		"5": "4", "6": "4",
		"51": "5", "52": "5",
	}, idx)
}

func TestAncestorChain(t *testing.T) {
	idx := BuildParentIndex(sampleForest())

	assert.Equal(t, []Key{"5", "4"}, AncestorChain("51", idx))
	assert.Empty(t, AncestorChain("4", idx), "root has no ancestors")
	assert.Empty(t, AncestorChain("missing", idx), "unknown key is tolerated")
}

func TestAncestorChainCycleTerminates(t *testing.T) {
	idx := ParentIndex{"a": "b", "b": "c", "c": "a"}
	chain := AncestorChain("a", idx)
	assert.Equal(t, []Key{"b", "c"}, chain)
}

func TestFlattenBoundedDepth(t *testing.T) {
	deep := Node{ID: "leaf"}
	for i := 0; i < MaxDepth+10; i++ {
		deep = Node{ID: Key(fmt.Sprintf("n%d", i)), Children: []Node{deep}}
	}
	flat := Flatten([]Node{deep})
	require.Len(t, flat, MaxDepth+1)
	assert.Equal(t, MaxDepth, flat[len(flat)-1].Depth)
}

func TestForestLookups(t *testing.T) {
	f := NewForest(sampleForest())

	assert.Equal(t, 9, f.Len())
	assert.Equal(t, []Key{"5", "6"}, f.Children("4"))
	assert.True(t, f.IsParent("5"))
	assert.False(t, f.IsParent("51"))
	assert.Equal(t, []Key{"5", "51", "52", "6"}, f.Descendants("4"))
	assert.Equal(t, []Key{"5", "4"}, f.Ancestors("52"))

	p, ok := f.Parent("6")
	assert.True(t, ok)
	assert.Equal(t, Key("4"), p)

	_, ok = f.Node("nope")
	assert.False(t, ok)
	assert.Equal(t, -1, f.Position("nope"))
	assert.Equal(t, 5, f.Position("51"))
}

func TestForestDuplicateKeysFirstWins(t *testing.T) {
	f := NewForest([]Node{
		{ID: "a", Label: "first"},
		{ID: "a", Label: "second"},
	})
	n, ok := f.Node("a")
	require.True(t, ok)
	assert.Equal(t, "first", n.Label)
	assert.Equal(t, []Key{"a"}, f.Keys())
}

func TestNilForestIsEmpty(t *testing.T) {
	var f *Forest
	assert.Zero(t, f.Len())
	assert.Nil(t, f.Flat())
	assert.Nil(t, f.Children("x"))
	assert.Nil(t, f.Ancestors("x"))
	assert.Nil(t, FilterVisible(f, "x"))
}

// genForest draws a small forest with unique keys, at most three levels deep.
func genForest(t *rapid.T) []Node {
	next := 0
	var gen func(depth int) []Node
	gen = func(depth int) []Node {
		n := rapid.IntRange(0, 3).Draw(t, fmt.Sprintf("width%d", depth))
		if depth == 0 && n == 0 {
			n = 1
		}
		out := make([]Node, n)
		for i := range out {
			next++
			out[i] = Node{
				ID:    Key(fmt.Sprintf("k%d", next)),
				Label: rapid.SampledFrom([]string{"alpha", "beta", "gamma", "Delta"}).Draw(t, "label"),
			}
			if depth < 2 {
				out[i].Children = gen(depth + 1)
			}
		}
		return out
	}
	return gen(0)
}

func TestFlattenCoversEveryNodeOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		forest := genForest(t)
		flat := Flatten(forest)
		idx := BuildParentIndex(forest)

		seen := map[Key]bool{}
		for _, fn := range flat {
			if seen[fn.ID] {
				t.Fatalf("key %s flattened twice", fn.ID)
			}
			seen[fn.ID] = true
			if fn.HasParent {
				if idx[fn.ID] != fn.ParentID {
					t.Fatalf("parent of %s: index %s, flat %s", fn.ID, idx[fn.ID], fn.ParentID)
				}
				if len(AncestorChain(fn.ID, idx)) != fn.Depth {
					t.Fatalf("ancestor chain of %s does not match depth %d", fn.ID, fn.Depth)
				}
			}
		}
		if len(idx) != len(flat)-len(forest) {
			t.Fatalf("index covers %d keys, want %d", len(idx), len(flat)-len(forest))
		}
	})
}
