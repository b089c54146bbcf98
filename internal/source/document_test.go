package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treepick/internal/core/tree"
)

const jsonDoc = `{
  "tree": [
    {"value": 1, "label": "Direct", "children": [
      {"value": "2", "label": "Staff"},
      {"id": 3, "name": "Partner"}
    ]},
    {"value": "7", "label": "Indirect"}
  ],
  "value": [2, "3"],
  "tags": ["red"],
  "options": [{"value": "a", "label": "Apple", "secondary": "fruit"}]
}`

const yamlDoc = `
tree:
  - value: 1
    label: Direct
    children:
      - value: "2"
        label: Staff
      - id: 3
        name: Partner
  - value: "7"
    label: Indirect
value: [2, "3"]
tags: [red]
options:
  - value: a
    label: Apple
    secondary: fruit
`

func wantTree() []tree.Node {
	return []tree.Node{
		{ID: "1", Label: "Direct", Children: []tree.Node{
			{ID: "2", Label: "Staff"},
			{ID: "3", Label: "Partner"},
		}},
		{ID: "7", Label: "Indirect"},
	}
}

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		name   string
		data   string
		format Format
	}{
		{"json", jsonDoc, FormatJSON},
		{"yaml", yamlDoc, FormatYAML},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Decode([]byte(tc.data), tc.format)
			require.NoError(t, err)
			assert.Equal(t, wantTree(), doc.Tree)
			assert.Equal(t, []tree.Key{"2", "3"}, doc.Value)
			assert.Equal(t, []string{"red"}, doc.Tags)
			require.Len(t, doc.Options, 1)
			assert.Equal(t, "Apple", doc.Options[0].Label)
			assert.Equal(t, "fruit", doc.Options[0].Secondary)
		})
	}
}

func TestDecodeMissingValue(t *testing.T) {
	_, err := Decode([]byte(`{"tree":[{"label":"x","children":[{"label":"y"}]}]}`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tree[0]: missing value")
}

func TestDecodeBadKey(t *testing.T) {
	_, err := Decode([]byte(`{"tree":[{"value":1.5,"label":"x"}]}`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte("tree:\n  - value: [1]\n    label: x\n"), FormatYAML)
	assert.Error(t, err)
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "tree.yml")
	require.NoError(t, os.WriteFile(yml, []byte(yamlDoc), 0o644))
	doc, err := Load(yml)
	require.NoError(t, err)
	assert.Equal(t, wantTree(), doc.Tree)

	js := filepath.Join(dir, "tree.JSON")
	require.NoError(t, os.WriteFile(js, []byte(jsonDoc), 0o644))
	doc, err = Load(js)
	require.NoError(t, err)
	assert.Equal(t, wantTree(), doc.Tree)
}

func TestLoadUnsupported(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tree.toml")
	require.NoError(t, os.WriteFile(p, []byte("x = 1"), 0o644))
	_, err := Load(p)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMarshal(t *testing.T) {
	b, err := Marshal(map[string][]string{"tags": {"a"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":["a"]}`, string(b))
}
