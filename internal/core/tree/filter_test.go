package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func ids(rows []FlatNode) []Key {
	out := make([]Key, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestFilterVisible(t *testing.T) {
	f := NewForest(sampleForest())

	tests := []struct {
		name  string
		query string
		want  []Key
	}{
		{"empty query returns everything", "", []Key{"1", "2", "3", "4", "5", "51", "52", "6", "7"}},
		{"blank query returns everything", "   ", []Key{"1", "2", "3", "4", "5", "51", "52", "6", "7"}},
		{"root match keeps subtree", "direct", []Key{"1", "2", "3"}},
		{"child match keeps parent copy", "staff", []Key{"1", "2"}},
		{"child match keeps grandchildren", "authorized", []Key{"4", "5", "51", "52"}},
		{"case and whitespace folded", "  IMPORT ", []Key{"4", "6"}},
		{"depth two is not searched", "north", []Key{}},
		{"matches across groups", "agent", []Key{"4", "5", "51", "52", "6"}},
		{"no match", "zzz", []Key{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterVisible(f, tt.query))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterVisibleKeepsRealChildCount(t *testing.T) {
	f := NewForest(sampleForest())
	rows := FilterVisible(f, "staff")
	assert.Equal(t, 2, rows[0].ChildCount, "parent copy still reports both children")
	assert.True(t, rows[0].IsFirstInGroup)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	forest := sampleForest()
	_ = FilterNodes(forest, "staff")
	assert.Len(t, forest[0].Children, 2)
}

func TestEmptyQueryIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		forest := genForest(t)
		f := NewForest(forest)
		got := ids(FilterVisible(f, ""))
		want := ids(Flatten(forest))
		if len(got) != len(want) {
			t.Fatalf("len %d, want %d", len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("row %d: %s, want %s", i, got[i], want[i])
			}
		}
	})
}
