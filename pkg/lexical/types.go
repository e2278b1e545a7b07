package lexical

import (
	"encoding/json"
	"fmt"
	"math"
)

// Node discriminants emitted by the editor
const (
	TypeRoot           = "root"
	TypeText           = "text"
	TypeHeading        = "heading"
	TypeParagraph      = "paragraph"
	TypeLink           = "link"
	TypeAutoLink       = "autolink"
	TypeUpload         = "upload"
	TypeQuote          = "quote"
	TypeList           = "list"
	TypeListItem       = "listitem"
	TypeLineBreak      = "linebreak"
	TypeHorizontalRule = "horizontalrule"
	TypeCode           = "code"
)

// Constants for Text Format Bitmask
const (
	FormatBold          = 1
	FormatItalic        = 1 << 1
	FormatStrikethrough = 1 << 2
	FormatUnderline     = 1 << 3
	FormatCode          = 1 << 4
)

// MaxDepth bounds how deep the tree is classified. Nodes nested deeper
// are treated as childless unknown nodes and render nothing.
const MaxDepth = 128

// RawNode is a node exactly as decoded from JSON, before classification.
// Custom components receive it untouched.
type RawNode map[string]any

// Type returns the node discriminant, or "" when it is missing or not a string.
func (n RawNode) Type() string {
	s, _ := n.GetString("type")
	return s
}

// Has reports whether key is present, even if its value is null.
func (n RawNode) Has(key string) bool {
	_, ok := n[key]
	return ok
}

func (n RawNode) GetString(key string) (string, bool) {
	s, ok := n[key].(string)
	return s, ok
}

// GetInt reads an integral JSON number.
func (n RawNode) GetInt(key string) (int, bool) {
	switch v := n[key].(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case json.Number:
		i, err := v.Int64()
		return int(i), err == nil
	}
	return 0, false
}

func (n RawNode) GetBool(key string) (bool, bool) {
	b, ok := n[key].(bool)
	return b, ok
}

// Children returns the child sequence when it is present and is an array.
func (n RawNode) Children() ([]any, bool) {
	c, ok := n["children"].([]any)
	return c, ok
}

func (n RawNode) GetObject(key string) (map[string]any, bool) {
	o, ok := n[key].(map[string]any)
	return o, ok
}

func asRawNode(v any) (RawNode, bool) {
	switch n := v.(type) {
	case RawNode:
		return n, n != nil
	case map[string]any:
		return RawNode(n), n != nil
	}
	return nil, false
}

// Document is the serialized editor state: {"root": {...}}.
type Document struct {
	Root Root `json:"root"`
}

// Root holds the classified top-level nodes plus layout metadata.
type Root struct {
	Children  []Node `json:"-"`
	Direction string `json:"direction,omitempty"`
	Format    string `json:"format,omitempty"`
	Indent    int    `json:"indent,omitempty"`
	Type      string `json:"type,omitempty"`
	Version   int    `json:"version,omitempty"`
}

// UnmarshalJSON is lenient: a root that is not an object, or whose children
// are not an array, decodes to an empty root instead of failing.
func (r *Root) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		*r = Root{}
		return nil
	}
	*r = NewRoot(raw)
	return nil
}

// NewRoot classifies an already decoded root object.
func NewRoot(raw map[string]any) Root {
	n := RawNode(raw)
	root := Root{}
	root.Direction, _ = n.GetString("direction")
	root.Format, _ = n.GetString("format")
	root.Indent, _ = n.GetInt("indent")
	root.Type, _ = n.GetString("type")
	root.Version, _ = n.GetInt("version")
	if children, ok := n.Children(); ok {
		root.Children = classifyAll(children, 1)
	}
	return root
}

// ParseDocument decodes a serialized document. Only bytes that are not a JSON
// object are an error; every shape problem below that degrades at render time.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse lexical json: %w", err)
	}
	return &doc, nil
}

func ParseDocumentString(content string) (*Document, error) {
	return ParseDocument([]byte(content))
}
