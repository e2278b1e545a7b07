package lexical

// Node is one classified document node. Every variant keeps the raw node it
// was built from so custom components can inspect fields the core ignores.
type Node interface {
	NodeType() string
	Raw() RawNode
}

// InlineNode is a node that may appear inside a text flow. Block-only kinds
// met in an inline position are classified as *UnknownNode instead.
type InlineNode interface {
	Node
	inline()
}

type base struct {
	raw   RawNode
	depth int
}

func (b base) NodeType() string { return b.raw.Type() }
func (b base) Raw() RawNode      { return b.raw }

type TextNode struct {
	base
	Text   string
	Format int
	Style  string
}

type HeadingNode struct {
	base
	Tag      string
	Align    string
	Children []InlineNode
}

type ParagraphNode struct {
	base
	Align    string
	Children []InlineNode
}

type QuoteNode struct {
	base
	Align    string
	Children []InlineNode
}

// LinkNode covers both "link" and "autolink". Fields is left unvalidated
// until the link is resolved.
type LinkNode struct {
	base
	Fields   map[string]any
	Children []InlineNode
}

type UploadNode struct {
	base
	RelationTo string
	Value      any
}

type ListNode struct {
	base
	Ordered   bool
	Checklist bool
	Start     int
	Children  []Node
}

type ListItemNode struct {
	base
	Checked  *bool
	Children []InlineNode
}

type LineBreakNode struct{ base }

type HorizontalRuleNode struct{ base }

// CodeNode carries the literal text of its descendants, formatting dropped.
type CodeNode struct {
	base
	Language string
	Text     string
}

// UnknownNode is any node the core does not recognise, including malformed
// known kinds and block kinds met inside a text flow.
type UnknownNode struct {
	base
	HasChildren bool
	Children    []InlineNode
}

func (*TextNode) inline()      {}
func (*LinkNode) inline()      {}
func (*LineBreakNode) inline() {}
func (*UnknownNode) inline()   {}
