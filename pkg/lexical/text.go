package lexical

import (
	"strconv"
	"strings"
)

// PlainText flattens a document into readable text: one line per block,
// list items marked, code kept verbatim, formatting dropped.
func PlainText(doc *Document) string {
	if doc == nil {
		return ""
	}
	var sb strings.Builder
	for _, node := range doc.Root.Children {
		writeBlock(&sb, node, 0)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ParseContent flattens content that may or may not be a serialized
// document. Anything that is not a Lexical document is returned as is.
func ParseContent(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") || !strings.Contains(trimmed, `"root"`) {
		return content
	}

	doc, err := ParseDocumentString(trimmed)
	if err != nil {
		return content
	}
	return PlainText(doc)
}

func writeBlock(sb *strings.Builder, node Node, depth int) {
	switch n := node.(type) {
	case *HeadingNode:
		writeInline(sb, n.Children)
		sb.WriteString("\n")
	case *ParagraphNode:
		writeInline(sb, n.Children)
		sb.WriteString("\n")
	case *QuoteNode:
		sb.WriteString("> ")
		writeInline(sb, n.Children)
		sb.WriteString("\n")
	case *ListNode:
		writeList(sb, n, depth)
	case *ListItemNode:
		writeInline(sb, n.Children)
		sb.WriteString("\n")
	case *CodeNode:
		sb.WriteString(n.Text)
		sb.WriteString("\n")
	case *HorizontalRuleNode:
		sb.WriteString("---\n")
	case *UploadNode:
		if asset, ok := ParseMediaAsset(n.Value); ok && asset.AltText() != "" {
			sb.WriteString(asset.AltText())
			sb.WriteString("\n")
		}
	case InlineNode:
		writeInline(sb, []InlineNode{n})
		sb.WriteString("\n")
	}
}

func writeList(sb *strings.Builder, list *ListNode, depth int) {
	index := 1
	if list.Start > 0 {
		index = list.Start
	}

	for _, child := range list.Children {
		item, ok := child.(*ListItemNode)
		if !ok {
			continue
		}

		content, nested := splitNestedLists(item.Children)
		// An item holding only a nested list carries no marker of its own
		if len(content) > 0 || len(nested) == 0 {
			// 2 spaces per nesting level
			sb.WriteString(strings.Repeat("  ", depth))
			switch {
			case list.Checklist && item.Checked != nil && *item.Checked:
				sb.WriteString("- [x] ")
			case list.Checklist:
				sb.WriteString("- [ ] ")
			case list.Ordered:
				sb.WriteString(strconv.Itoa(index) + ". ")
				index++
			default:
				sb.WriteString("- ")
			}
			writeInline(sb, content)
			sb.WriteString("\n")
		}

		for _, sub := range nested {
			writeList(sb, sub, depth+1)
		}
	}
}

// splitNestedLists separates list nodes nested in a list item from its
// inline content. Inline classification turns them into unknown nodes, so
// they are classified again as blocks here.
func splitNestedLists(children []InlineNode) ([]InlineNode, []*ListNode) {
	var content []InlineNode
	var nested []*ListNode
	for _, child := range children {
		if u, ok := child.(*UnknownNode); ok && u.raw != nil && IsListNode(u.raw) {
			if list, ok := classify(map[string]any(u.raw), u.depth).(*ListNode); ok {
				nested = append(nested, list)
				continue
			}
		}
		content = append(content, child)
	}
	return content, nested
}

func writeInline(sb *strings.Builder, nodes []InlineNode) {
	for _, node := range nodes {
		switch n := node.(type) {
		case *TextNode:
			sb.WriteString(n.Text)
		case *LinkNode:
			writeInline(sb, n.Children)
		case *LineBreakNode:
			sb.WriteString("\n")
		case *UnknownNode:
			writeInline(sb, n.Children)
		}
	}
}
