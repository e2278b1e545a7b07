package lexical

// Component replaces the default rendering of one node discriminant. children
// holds the node's children rendered inline, or nil when the node has none.
// Returning nil renders nothing.
type Component func(node RawNode, children []*Element) *Element

// Options tunes a render call. Every field is optional.
type Options struct {
	// Styling bags. Document-derived props win over bag entries.
	TextProps    Props
	HeadingProps Props
	LinkProps    Props
	ImageProps   Props
	CodeProps    Props

	MediaBaseURL string

	// CustomComponents is consulted before any built-in handling.
	CustomComponents map[string]Component
}

var headingFontSizes = map[string]int{
	"h1": 32,
	"h2": 28,
	"h3": 24,
	"h4": 20,
	"h5": 18,
	"h6": 16,
}

const defaultHeadingFontSize = 16

// Render walks the document and returns the output tree, or nil when the
// document has no top-level children.
func Render(doc *Document, opts Options) *Element {
	if doc == nil || len(doc.Root.Children) == 0 {
		return nil
	}
	r := &renderer{opts: opts}
	return r.renderBlock(doc.Root.Children)
}

// renderer owns the key counter for a single render call.
type renderer struct {
	opts    Options
	nextKey int
}

func (r *renderer) key() int {
	r.nextKey++
	return r.nextKey
}

func (r *renderer) element(kind Kind, props Props) *Element {
	return &Element{Key: r.key(), Kind: kind, Props: props}
}

// stamp assigns keys to every element of a tree built outside the renderer.
func (r *renderer) stamp(el *Element) *Element {
	el.Walk(func(e *Element) bool {
		if e.Key == 0 {
			e.Key = r.key()
		}
		return true
	})
	return el
}

// renderBlock wraps siblings in a vertical stack.
func (r *renderer) renderBlock(nodes []Node) *Element {
	stack := r.element(KindStack, nil)
	stack.Children = r.renderBlockChildren(nodes)
	return stack
}

func (r *renderer) renderBlockChildren(nodes []Node) []*Element {
	out := make([]*Element, 0, len(nodes))
	for _, node := range nodes {
		if el := r.renderNode(node); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// renderInline renders siblings inside a text flow; nothing is wrapped.
func (r *renderer) renderInline(nodes []InlineNode) []*Element {
	out := make([]*Element, 0, len(nodes))
	for _, node := range nodes {
		if el := r.renderInlineNode(node); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// renderNode dispatches a block-context node. The order of cases matters.
func (r *renderer) renderNode(node Node) *Element {
	if el, ok := r.renderCustom(node); ok {
		return el
	}

	switch n := node.(type) {
	case *TextNode:
		return r.renderText(n)
	case *HeadingNode:
		return r.renderHeading(n)
	case *ParagraphNode:
		return r.renderContainer(KindParagraph, n.Align, n.Children)
	case *LinkNode:
		return r.renderLink(n)
	case *UploadNode:
		return r.renderUpload(n)
	case *QuoteNode:
		return r.renderContainer(KindQuote, n.Align, n.Children)
	case *ListNode:
		return r.renderList(n)
	case *ListItemNode:
		return r.renderListItem(n)
	case *LineBreakNode:
		return r.element(KindLineBreak, nil)
	case *HorizontalRuleNode:
		return r.element(KindDivider, nil)
	case *CodeNode:
		return r.renderCode(n)
	case *UnknownNode:
		return r.renderUnknown(n)
	}
	return nil
}

// renderInlineNode dispatches an inline-context node.
func (r *renderer) renderInlineNode(node InlineNode) *Element {
	if el, ok := r.renderCustom(node); ok {
		return el
	}

	switch n := node.(type) {
	case *TextNode:
		return r.renderText(n)
	case *LinkNode:
		return r.renderLink(n)
	case *LineBreakNode:
		return r.element(KindLineBreak, nil)
	case *UnknownNode:
		return r.renderUnknown(n)
	}
	return nil
}

func (r *renderer) renderCustom(node Node) (*Element, bool) {
	component, ok := r.opts.CustomComponents[node.NodeType()]
	if !ok || component == nil {
		return nil, false
	}

	var children []*Element
	if raw, ok := node.Raw().Children(); ok {
		children = r.renderInline(classifyInlineAll(raw, depthOf(node)+1))
	}

	el := component(node.Raw(), children)
	if el == nil {
		return nil, true
	}
	return r.restamp(el, map[*Element]bool{}, map[*Element]bool{}), true
}

// restamp gives every element of a component's tree a fresh key. Elements
// that appear more than once are copied so each occurrence keeps its own key,
// and an element nested inside itself is dropped.
func (r *renderer) restamp(el *Element, seen, path map[*Element]bool) *Element {
	if seen[el] {
		clone := *el
		el = &clone
	}
	seen[el] = true
	path[el] = true
	defer delete(path, el)

	el.Key = r.key()
	if len(el.Children) == 0 {
		return el
	}
	kept := make([]*Element, 0, len(el.Children))
	for _, child := range el.Children {
		if child == nil || path[child] {
			continue
		}
		kept = append(kept, r.restamp(child, seen, path))
	}
	el.Children = kept
	return el
}

func (r *renderer) renderText(n *TextNode) *Element {
	el := DecodeFormat(n.Text, n.Format)
	var style Props
	if relevant := ParseStyle(n.Style).Relevant(); relevant != nil {
		style = Props{"style": relevant}
	}
	el.Props = mergeProps(r.opts.TextProps, style, el.Props)
	return r.stamp(el)
}

func (r *renderer) renderHeading(n *HeadingNode) *Element {
	size, ok := headingFontSizes[n.Tag]
	if !ok {
		size = defaultHeadingFontSize
	}
	el := r.element(KindHeading, mergeProps(
		r.opts.HeadingProps,
		alignProps(n.Align),
		Props{"tag": n.Tag, "fontSize": size},
	))
	el.Children = r.renderInline(n.Children)
	return el
}

// renderContainer serves paragraphs and quotes. Missing children still
// produce an empty container so spacing is kept.
func (r *renderer) renderContainer(kind Kind, align string, children []InlineNode) *Element {
	el := r.element(kind, alignProps(align))
	if len(children) > 0 {
		el.Children = r.renderInline(children)
	}
	return el
}

func (r *renderer) renderLink(n *LinkNode) *Element {
	target := ResolveLink(n.Fields)
	if !target.Interactive() {
		el := r.element(KindSpan, nil)
		el.Children = r.renderInline(n.Children)
		return el
	}

	props := Props{"href": target.Href}
	if target.NewTab {
		props["target"] = "_blank"
		props["rel"] = "noopener noreferrer"
	}
	el := r.element(KindLink, mergeProps(r.opts.LinkProps, props))
	el.Children = r.renderInline(n.Children)
	return el
}

func (r *renderer) renderUpload(n *UploadNode) *Element {
	if n.RelationTo != "media" {
		return nil
	}
	asset, ok := ParseMediaAsset(n.Value)
	if !ok || asset.Src() == "" {
		return nil
	}

	width, height := asset.Dimensions()
	return r.element(KindImage, mergeProps(r.opts.ImageProps, Props{
		"src":    ResolveMediaURL(asset.Src(), r.opts.MediaBaseURL),
		"alt":    asset.AltText(),
		"width":  width,
		"height": height,
	}))
}

func (r *renderer) renderList(n *ListNode) *Element {
	if len(n.Children) == 0 {
		return nil
	}

	kind := KindUnorderedList
	var props Props
	if n.Ordered {
		kind = KindOrderedList
		if n.Start > 0 {
			props = Props{"start": n.Start}
		}
	}
	if n.Checklist {
		props = mergeProps(props, Props{"checklist": true})
	}

	el := r.element(kind, props)
	el.Children = r.renderBlockChildren(n.Children)
	return el
}

func (r *renderer) renderListItem(n *ListItemNode) *Element {
	var props Props
	if n.Checked != nil {
		props = Props{"checked": *n.Checked}
	}
	el := r.element(KindListItem, props)
	if len(n.Children) > 0 {
		el.Children = r.renderInline(n.Children)
	}
	return el
}

func (r *renderer) renderCode(n *CodeNode) *Element {
	var props Props
	if n.Language != "" {
		props = Props{"language": n.Language}
	}
	el := r.element(KindCodeBlock, mergeProps(r.opts.CodeProps, props))
	el.Text = n.Text
	return el
}

func (r *renderer) renderUnknown(n *UnknownNode) *Element {
	if !n.HasChildren {
		return nil
	}
	var props Props
	if t := n.NodeType(); t != "" {
		props = Props{"nodeType": t}
	}
	el := r.element(KindContainer, props)
	el.Children = r.renderInline(n.Children)
	return el
}

func alignProps(align string) Props {
	if align == "" {
		return nil
	}
	return Props{"textAlign": align}
}

func depthOf(node Node) int {
	if d, ok := node.(interface{ nodeDepth() int }); ok {
		return d.nodeDepth()
	}
	return 0
}

func (b base) nodeDepth() int { return b.depth }
