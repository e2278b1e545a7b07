package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	children := []any{}

	tests := []struct {
		name string
		is   func(RawNode) bool
		node RawNode
		want bool
	}{
		{"text", IsTextNode, RawNode{"type": "text", "text": "hi"}, true},
		{"text without text", IsTextNode, RawNode{"type": "text"}, false},
		{"text with numeric text", IsTextNode, RawNode{"type": "text", "text": 1.0}, false},
		{"heading", IsHeadingNode, RawNode{"type": "heading", "tag": "h2", "children": children}, true},
		{"heading without children", IsHeadingNode, RawNode{"type": "heading", "tag": "h2"}, false},
		{"heading without tag", IsHeadingNode, RawNode{"type": "heading", "children": children}, false},
		{"paragraph", IsParagraphNode, RawNode{"type": "paragraph"}, true},
		{"quote", IsQuoteNode, RawNode{"type": "quote"}, true},
		{"link", IsLinkNode, RawNode{"type": "link", "children": children, "fields": map[string]any{}}, true},
		{"autolink", IsLinkNode, RawNode{"type": "autolink", "children": children, "fields": map[string]any{}}, true},
		{"link without fields", IsLinkNode, RawNode{"type": "link", "children": children}, false},
		{"link with string fields", IsLinkNode, RawNode{"type": "link", "children": children, "fields": "x"}, false},
		{"upload", IsUploadNode, RawNode{"type": "upload", "relationTo": "media", "value": nil}, true},
		{"upload without value", IsUploadNode, RawNode{"type": "upload", "relationTo": "media"}, false},
		{"list by tag", IsListNode, RawNode{"type": "list", "tag": "ul"}, true},
		{"list by listType", IsListNode, RawNode{"type": "list", "listType": "number"}, true},
		{"list without ordering", IsListNode, RawNode{"type": "list"}, false},
		{"listitem", IsListItemNode, RawNode{"type": "listitem"}, true},
		{"linebreak", IsLineBreakNode, RawNode{"type": "linebreak"}, true},
		{"horizontalrule", IsHorizontalRuleNode, RawNode{"type": "horizontalrule"}, true},
		{"code", IsCodeNode, RawNode{"type": "code", "children": children}, true},
		{"code without children", IsCodeNode, RawNode{"type": "code"}, false},
		{"wrong discriminant", IsParagraphNode, RawNode{"type": "quote"}, false},
		{"missing discriminant", IsParagraphNode, RawNode{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.is(tt.node))
		})
	}
}

func TestClassifyVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Node
	}{
		{"text", map[string]any{"type": "text", "text": "a"}, &TextNode{}},
		{"heading", map[string]any{"type": "heading", "tag": "h1", "children": []any{}}, &HeadingNode{}},
		{"malformed heading", map[string]any{"type": "heading", "tag": "h1"}, &UnknownNode{}},
		{"list", map[string]any{"type": "list", "tag": "ol", "children": []any{}}, &ListNode{}},
		{"code", map[string]any{"type": "code", "children": []any{}}, &CodeNode{}},
		{"custom block", map[string]any{"type": "callout", "children": []any{}}, &UnknownNode{}},
		{"not an object", "text", &UnknownNode{}},
		{"nil", nil, &UnknownNode{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, Classify(tt.raw))
		})
	}
}

func TestClassifyInlineRestrictsKinds(t *testing.T) {
	assert.IsType(t, &TextNode{}, ClassifyInline(map[string]any{"type": "text", "text": "a"}))
	assert.IsType(t, &LineBreakNode{}, ClassifyInline(map[string]any{"type": "linebreak"}))
	assert.IsType(t, &LinkNode{}, ClassifyInline(map[string]any{
		"type": "link", "children": []any{}, "fields": map[string]any{},
	}))

	heading := ClassifyInline(map[string]any{
		"type": "heading", "tag": "h1",
		"children": []any{map[string]any{"type": "text", "text": "nested"}},
	})
	unknown, ok := heading.(*UnknownNode)
	if assert.True(t, ok) {
		assert.Equal(t, "heading", unknown.NodeType())
		assert.True(t, unknown.HasChildren)
		assert.Len(t, unknown.Children, 1)
	}
}

func TestClassifyCodeDropsFormatting(t *testing.T) {
	node := Classify(map[string]any{
		"type":     "code",
		"language": "go",
		"children": []any{
			map[string]any{"type": "code-highlight", "text": "func "},
			map[string]any{"type": "text", "text": "main", "format": 1.0},
			map[string]any{"type": "unknown", "children": []any{
				map[string]any{"type": "text", "text": "()", "format": 2.0},
			}},
		},
	})
	code, ok := node.(*CodeNode)
	if assert.True(t, ok) {
		assert.Equal(t, "go", code.Language)
		assert.Equal(t, "func main()", code.Text)
	}
}

func TestRawNodeGetInt(t *testing.T) {
	n := RawNode{"a": 3.0, "b": 3.5, "c": "3"}
	v, ok := n.GetInt("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = n.GetInt("b")
	assert.False(t, ok)
	_, ok = n.GetInt("c")
	assert.False(t, ok)
	_, ok = n.GetInt("missing")
	assert.False(t, ok)
}
