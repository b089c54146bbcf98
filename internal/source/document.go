package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"treepick/internal/core/pick"
	"treepick/internal/core/tree"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .json, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Document is everything the widgets need from a file.
type Document struct {
	Tree    []tree.Node
	Value   []tree.Key
	Tags    []string
	Options []pick.Option
}

type rawDocument struct {
	Tree    []rawNode     `json:"tree" yaml:"tree"`
	Value   []key         `json:"value" yaml:"value"`
	Tags    []string      `json:"tags" yaml:"tags"`
	Options []pick.Option `json:"options" yaml:"options"`
}

// rawNode accepts both the value/label and the id/name spelling.
type rawNode struct {
	Value    *key      `json:"value" yaml:"value"`
	ID       *key      `json:"id" yaml:"id"`
	Label    string    `json:"label" yaml:"label"`
	Name     string    `json:"name" yaml:"name"`
	Children []rawNode `json:"children" yaml:"children"`
}

// key decodes from either a string or an integer.
type key string

func (k *key) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*k = key(s)
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("key must be a string or integer, got %s", b)
	}
	*k = key(strconv.FormatInt(n, 10))
	return nil
}

func (k *key) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: key must be a scalar", n.Line)
	}
	switch n.Tag {
	case "!!str":
		*k = key(n.Value)
	case "!!int":
		v, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*k = key(strconv.FormatInt(v, 10))
	default:
		return fmt.Errorf("line %d: key must be a string or integer, got %s", n.Line, n.Tag)
	}
	return nil
}

// Load reads a document; the extension picks the decoder.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	doc, err := Decode(data, formatOf(path))
	if err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json", "":
		return FormatJSON
	default:
		return Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	}
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (Document, error) {
	var raw rawDocument
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return Document{}, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Document{}, err
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return raw.document()
}

func (r rawDocument) document() (Document, error) {
	nodes, err := convertNodes(r.Tree, "tree")
	if err != nil {
		return Document{}, err
	}
	doc := Document{Tree: nodes, Tags: r.Tags, Options: r.Options}
	for _, v := range r.Value {
		doc.Value = append(doc.Value, tree.Key(v))
	}
	return doc, nil
}

func convertNodes(raw []rawNode, path string) ([]tree.Node, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]tree.Node, 0, len(raw))
	for i, rn := range raw {
		at := fmt.Sprintf("%s[%d]", path, i)
		k := rn.Value
		if k == nil {
			k = rn.ID
		}
		if k == nil {
			return nil, fmt.Errorf("%s: missing value", at)
		}
		label := rn.Label
		if label == "" {
			label = rn.Name
		}
		children, err := convertNodes(rn.Children, at+".children")
		if err != nil {
			return nil, err
		}
		out = append(out, tree.Node{ID: tree.Key(*k), Label: label, Children: children})
	}
	return out, nil
}

// Marshal encodes v as indented JSON.
func Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
