package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagSet(t *testing.T) {
	s := NewTagSet("apple", "banana", "apple")
	assert.Equal(t, []string{"apple", "banana"}, s.Values())

	s2 := s.Add("cherry")
	assert.Equal(t, 2, s.Len(), "Add returns a new set")
	assert.Equal(t, []string{"apple", "banana", "cherry"}, s2.Values())

	s2 = s2.Remove("banana")
	assert.Equal(t, []string{"apple", "cherry"}, s2.Values())

	s2 = s2.Toggle("apple").Toggle("dog")
	assert.Equal(t, []string{"cherry", "dog"}, s2.Values())
	assert.True(t, s2.Has("dog"))
	assert.False(t, s2.Has("apple"))
}

func TestTagSetValuesIsCopy(t *testing.T) {
	s := NewTagSet("a")
	v := s.Values()
	v[0] = "z"
	assert.Equal(t, []string{"a"}, s.Values())
}

func opts() []Option {
	return []Option{
		{Value: "1", Label: "Apple", Secondary: "fruit"},
		{Value: "2", Label: "Banana", Secondary: "fruit"},
		{Value: "3", Label: "Elephant", Secondary: "animal"},
		{Value: "4", Label: "Dog", Secondary: "animal"},
	}
}

func TestFilterOptions(t *testing.T) {
	cfg := DefaultFilterConfig()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty returns all", "", []int{0, 1, 2, 3}},
		{"label substring is case-insensitive", "  BAN ", []int{1}},
		{"secondary text matches", "animal", []int{2, 3}},
		{"fuzzy fallback", "aple", []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterOptions(opts(), tt.query, cfg))
		})
	}
}

func TestFilterOptionsNoMatch(t *testing.T) {
	assert.Empty(t, FilterOptions(opts(), "qqq", DefaultFilterConfig()))
}

func TestFilterOptionsMaxResults(t *testing.T) {
	cfg := DefaultFilterConfig()
	cfg.MaxResults = 1
	assert.Equal(t, []int{2}, FilterOptions(opts(), "animal", cfg))
	assert.Equal(t, []int{0}, FilterOptions(opts(), "", cfg))
}

func TestFilterStrings(t *testing.T) {
	got := FilterStrings([]string{"one", "two", "three"}, "t", DefaultFilterConfig())
	assert.Equal(t, []int{1, 2}, got)
}

func TestFitChips(t *testing.T) {
	labels := []string{"alpha", "beta", "gamma"}

	all := FitChips(labels, 100, 2, 1, 0, 0)
	assert.Equal(t, labels, all.Labels)
	assert.Zero(t, all.Hidden)

	// alpha costs 8, beta 7: 15 fits into 20, gamma (8) does not
	some := FitChips(labels, 20, 2, 1, 0, 0)
	assert.Equal(t, []string{"alpha", "beta"}, some.Labels)
	assert.Equal(t, 1, some.Hidden)

	none := FitChips(labels, 10, 2, 1, 5, 0)
	assert.Empty(t, none.Labels)
	assert.Equal(t, 3, none.Hidden)
}

func TestFitChipsTruncatesLongLabels(t *testing.T) {
	got := FitChips([]string{"Nhóm kênh bán hàng trực tiếp"}, 100, 0, 0, 0, 10)
	assert.Len(t, got.Labels, 1)
	assert.LessOrEqual(t, len([]rune(got.Labels[0])), 10)
	assert.Contains(t, got.Labels[0], "…")
}
