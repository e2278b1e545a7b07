package lexical

import "strings"

// Kind names the presentational primitive an Element maps to.
type Kind string

const (
	KindStack         Kind = "stack"
	KindText          Kind = "text"
	KindBold          Kind = "bold"
	KindItalic        Kind = "italic"
	KindStrikethrough Kind = "strikethrough"
	KindInlineCode    Kind = "inlineCode"
	KindHeading       Kind = "heading"
	KindParagraph     Kind = "paragraph"
	KindLink          Kind = "link"
	KindSpan          Kind = "span"
	KindImage         Kind = "image"
	KindQuote         Kind = "quote"
	KindOrderedList   Kind = "orderedList"
	KindUnorderedList Kind = "unorderedList"
	KindListItem      Kind = "listItem"
	KindLineBreak     Kind = "lineBreak"
	KindDivider       Kind = "divider"
	KindCodeBlock     Kind = "codeBlock"
	KindContainer     Kind = "container"
)

// Props is an attribute bag handed to a primitive.
type Props map[string]any

// Element is one node of the output tree. Key is unique within a tree.
type Element struct {
	Key      int        `json:"key"`
	Kind     Kind       `json:"kind"`
	Props    Props      `json:"props,omitempty"`
	Text     string     `json:"text,omitempty"`
	Children []*Element `json:"children,omitempty"`
}

func (e *Element) Prop(name string) any {
	if e == nil || e.Props == nil {
		return nil
	}
	return e.Props[name]
}

// Walk visits e and its descendants depth-first, pre-order. Returning false
// from fn skips the element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, child := range e.Children {
		child.Walk(fn)
	}
}

// TextContent concatenates the literal text of the element's subtree.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.Walk(func(el *Element) bool {
		sb.WriteString(el.Text)
		return true
	})
	return sb.String()
}

// Count returns the number of elements in the subtree.
func (e *Element) Count() int {
	count := 0
	e.Walk(func(*Element) bool {
		count++
		return true
	})
	return count
}

// mergeProps layers bags left to right; later keys win. Returns nil when
// every bag is empty.
func mergeProps(bags ...Props) Props {
	var out Props
	for _, bag := range bags {
		for k, v := range bag {
			if out == nil {
				out = make(Props)
			}
			out[k] = v
		}
	}
	return out
}
