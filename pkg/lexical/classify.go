package lexical

import "strings"

// The Is* predicates check the discriminant and every property the shape
// requires. A node that fails its predicate is handled as unknown.

func IsTextNode(n RawNode) bool {
	_, ok := n.GetString("text")
	return n.Type() == TypeText && ok
}

func IsHeadingNode(n RawNode) bool {
	_, hasTag := n.GetString("tag")
	_, hasChildren := n.Children()
	return n.Type() == TypeHeading && hasTag && hasChildren
}

func IsParagraphNode(n RawNode) bool {
	return n.Type() == TypeParagraph
}

func IsQuoteNode(n RawNode) bool {
	return n.Type() == TypeQuote
}

func IsLinkNode(n RawNode) bool {
	t := n.Type()
	_, hasChildren := n.Children()
	_, hasFields := n.GetObject("fields")
	return (t == TypeLink || t == TypeAutoLink) && hasChildren && hasFields
}

func IsUploadNode(n RawNode) bool {
	_, hasRelation := n.GetString("relationTo")
	return n.Type() == TypeUpload && hasRelation && n.Has("value")
}

func IsListNode(n RawNode) bool {
	_, hasTag := n.GetString("tag")
	_, hasListType := n.GetString("listType")
	return n.Type() == TypeList && (hasTag || hasListType)
}

func IsListItemNode(n RawNode) bool {
	return n.Type() == TypeListItem
}

func IsLineBreakNode(n RawNode) bool {
	return n.Type() == TypeLineBreak
}

func IsHorizontalRuleNode(n RawNode) bool {
	return n.Type() == TypeHorizontalRule
}

func IsCodeNode(n RawNode) bool {
	_, hasChildren := n.Children()
	return n.Type() == TypeCode && hasChildren
}

// Classify turns a decoded JSON value into a block-context node.
// It never fails: anything unrecognised becomes an *UnknownNode.
func Classify(v any) Node {
	return classify(v, 0)
}

// ClassifyInline turns a decoded JSON value into an inline-context node.
func ClassifyInline(v any) InlineNode {
	return classifyInline(v, 0)
}

func classifyAll(children []any, depth int) []Node {
	nodes := make([]Node, 0, len(children))
	for _, child := range children {
		nodes = append(nodes, classify(child, depth))
	}
	return nodes
}

func classifyInlineAll(children []any, depth int) []InlineNode {
	nodes := make([]InlineNode, 0, len(children))
	for _, child := range children {
		nodes = append(nodes, classifyInline(child, depth))
	}
	return nodes
}

func classify(v any, depth int) Node {
	n, ok := asRawNode(v)
	if !ok || depth > MaxDepth {
		return &UnknownNode{base: base{raw: n, depth: depth}}
	}
	b := base{raw: n, depth: depth}

	switch {
	case IsTextNode(n):
		return newTextNode(b)
	case IsHeadingNode(n):
		tag, _ := n.GetString("tag")
		align, _ := n.GetString("format")
		children, _ := n.Children()
		return &HeadingNode{
			base:     b,
			Tag:      strings.ToLower(tag),
			Align:    align,
			Children: classifyInlineAll(children, depth+1),
		}
	case IsParagraphNode(n):
		align, _ := n.GetString("format")
		return &ParagraphNode{base: b, Align: align, Children: inlineChildren(n, depth)}
	case IsLinkNode(n):
		return newLinkNode(b)
	case IsUploadNode(n):
		relation, _ := n.GetString("relationTo")
		return &UploadNode{base: b, RelationTo: relation, Value: n["value"]}
	case IsQuoteNode(n):
		align, _ := n.GetString("format")
		return &QuoteNode{base: b, Align: align, Children: inlineChildren(n, depth)}
	case IsListNode(n):
		tag, _ := n.GetString("tag")
		listType, _ := n.GetString("listType")
		start, _ := n.GetInt("start")
		list := &ListNode{
			base:      b,
			Ordered:   tag == "ol" || listType == "number",
			Checklist: listType == "check",
			Start:     start,
		}
		if children, ok := n.Children(); ok {
			list.Children = classifyAll(children, depth+1)
		}
		return list
	case IsListItemNode(n):
		item := &ListItemNode{base: b, Children: inlineChildren(n, depth)}
		if checked, ok := n.GetBool("checked"); ok {
			item.Checked = &checked
		}
		return item
	case IsLineBreakNode(n):
		return &LineBreakNode{base: b}
	case IsHorizontalRuleNode(n):
		return &HorizontalRuleNode{base: b}
	case IsCodeNode(n):
		language, _ := n.GetString("language")
		children, _ := n.Children()
		return &CodeNode{base: b, Language: language, Text: extractText(children, depth+1)}
	}
	return newUnknownNode(b)
}

// classifyInline admits only kinds legal in a text flow. Everything else,
// block kinds included, becomes a generic *UnknownNode.
func classifyInline(v any, depth int) InlineNode {
	n, ok := asRawNode(v)
	if !ok || depth > MaxDepth {
		return &UnknownNode{base: base{raw: n, depth: depth}}
	}
	b := base{raw: n, depth: depth}

	switch {
	case IsTextNode(n):
		return newTextNode(b)
	case IsLinkNode(n):
		return newLinkNode(b)
	case IsLineBreakNode(n):
		return &LineBreakNode{base: b}
	}
	return newUnknownNode(b)
}

func newTextNode(b base) *TextNode {
	text, _ := b.raw.GetString("text")
	format, _ := b.raw.GetInt("format")
	style, _ := b.raw.GetString("style")
	if format < 0 {
		format = 0
	}
	return &TextNode{base: b, Text: text, Format: format, Style: style}
}

func newLinkNode(b base) *LinkNode {
	fields, _ := b.raw.GetObject("fields")
	children, _ := b.raw.Children()
	return &LinkNode{base: b, Fields: fields, Children: classifyInlineAll(children, b.depth+1)}
}

func newUnknownNode(b base) *UnknownNode {
	u := &UnknownNode{base: b}
	if children, ok := b.raw.Children(); ok {
		u.HasChildren = true
		u.Children = classifyInlineAll(children, b.depth+1)
	}
	return u
}

func inlineChildren(n RawNode, depth int) []InlineNode {
	children, ok := n.Children()
	if !ok {
		return nil
	}
	return classifyInlineAll(children, depth+1)
}

// extractText concatenates the literal text of every descendant, ignoring
// whatever formatting the descendants carry.
func extractText(children []any, depth int) string {
	var sb strings.Builder
	writeText(&sb, children, depth)
	return sb.String()
}

func writeText(sb *strings.Builder, children []any, depth int) {
	if depth > MaxDepth {
		return
	}
	for _, child := range children {
		n, ok := asRawNode(child)
		if !ok {
			continue
		}
		if text, ok := n.GetString("text"); ok {
			sb.WriteString(text)
		}
		if grandChildren, ok := n.Children(); ok {
			writeText(sb, grandChildren, depth+1)
		}
	}
}
