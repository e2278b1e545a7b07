// Package htmlout serializes a rendered lexical tree to sanitized HTML.
// It is one possible set of presentational primitives; the tree itself
// stays framework agnostic.
package htmlout

import (
	"fmt"
	"regexp"
	"strings"

	"richtext-render-be/pkg/lexical"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var languageClass = regexp.MustCompile(`^language-[A-Za-z0-9_+#-]+$`)

// Policy is the sanitizer applied to every rendered fragment.
var Policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowStyles("color", "background-color", "text-transform", "text-align", "text-decoration-line").Globally()
	p.AllowAttrs("class").Matching(languageClass).OnElements("code")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("start").Matching(bluemonday.Integer).OnElements("ol")
	p.AllowAttrs("type", "checked", "disabled").OnElements("input")
	p.AllowElements("input")
	p.AddTargetBlankToFullyQualifiedLinks(false)
	return p
}

var tagByKind = map[lexical.Kind]atom.Atom{
	lexical.KindStack:         atom.Div,
	lexical.KindText:          atom.Span,
	lexical.KindBold:          atom.Strong,
	lexical.KindItalic:        atom.Em,
	lexical.KindStrikethrough: atom.S,
	lexical.KindInlineCode:    atom.Code,
	lexical.KindParagraph:     atom.P,
	lexical.KindLink:          atom.A,
	lexical.KindSpan:          atom.Span,
	lexical.KindImage:         atom.Img,
	lexical.KindQuote:         atom.Blockquote,
	lexical.KindOrderedList:   atom.Ol,
	lexical.KindUnorderedList: atom.Ul,
	lexical.KindListItem:      atom.Li,
	lexical.KindLineBreak:     atom.Br,
	lexical.KindDivider:       atom.Hr,
	lexical.KindCodeBlock:     atom.Pre,
	lexical.KindContainer:     atom.Span,
}

var headingTags = map[string]atom.Atom{
	"h1": atom.H1, "h2": atom.H2, "h3": atom.H3,
	"h4": atom.H4, "h5": atom.H5, "h6": atom.H6,
}

// Render returns sanitized HTML for the tree. A nil tree renders as "".
func Render(el *lexical.Element) (string, error) {
	if el == nil {
		return "", nil
	}
	var sb strings.Builder
	if err := html.Render(&sb, toNode(el)); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return Policy.Sanitize(sb.String()), nil
}

func toNode(el *lexical.Element) *html.Node {
	a := tagFor(el)
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrsFor(el)}

	switch el.Kind {
	case lexical.KindCodeBlock:
		code := &html.Node{Type: html.ElementNode, DataAtom: atom.Code, Data: "code"}
		if lang, ok := el.Prop("language").(string); ok && lang != "" {
			code.Attr = append(code.Attr, html.Attribute{Key: "class", Val: "language-" + lang})
		}
		code.AppendChild(&html.Node{Type: html.TextNode, Data: el.Text})
		n.AppendChild(code)
		return n
	case lexical.KindListItem:
		if checked, ok := el.Prop("checked").(bool); ok {
			box := &html.Node{Type: html.ElementNode, DataAtom: atom.Input, Data: "input", Attr: []html.Attribute{
				{Key: "type", Val: "checkbox"},
				{Key: "disabled", Val: ""},
			}}
			if checked {
				box.Attr = append(box.Attr, html.Attribute{Key: "checked", Val: ""})
			}
			n.AppendChild(box)
		}
	}

	if el.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: el.Text})
	}
	for _, child := range el.Children {
		n.AppendChild(toNode(child))
	}
	return n
}

func tagFor(el *lexical.Element) atom.Atom {
	if el.Kind == lexical.KindHeading {
		if tag, ok := el.Prop("tag").(string); ok {
			if a, ok := headingTags[tag]; ok {
				return a
			}
		}
		return atom.H6
	}
	if a, ok := tagByKind[el.Kind]; ok {
		return a
	}
	return atom.Div
}

func attrsFor(el *lexical.Element) []html.Attribute {
	var attrs []html.Attribute
	add := func(key string, val any) {
		if val == nil {
			return
		}
		attrs = append(attrs, html.Attribute{Key: key, Val: fmt.Sprint(val)})
	}

	switch el.Kind {
	case lexical.KindLink:
		add("href", el.Prop("href"))
		add("target", el.Prop("target"))
		add("rel", el.Prop("rel"))
	case lexical.KindImage:
		add("src", el.Prop("src"))
		add("alt", el.Prop("alt"))
		add("width", el.Prop("width"))
		add("height", el.Prop("height"))
	case lexical.KindOrderedList:
		add("start", el.Prop("start"))
	}

	if style := styleFor(el); style != "" {
		attrs = append(attrs, html.Attribute{Key: "style", Val: style})
	}
	return attrs
}

func styleFor(el *lexical.Element) string {
	styles := lexical.StyleMap{}
	// Trees decoded back from JSON carry a plain map instead of a StyleMap.
	switch s := el.Prop("style").(type) {
	case lexical.StyleMap:
		for k, v := range s {
			styles[k] = v
		}
	case map[string]any:
		for k, v := range s {
			if str, ok := v.(string); ok {
				styles[k] = str
			}
		}
	}
	if align, ok := el.Prop("textAlign").(string); ok && align != "" {
		styles["text-align"] = align
	}
	if deco, ok := el.Prop("textDecorationLine").(string); ok && deco != "" {
		styles["text-decoration-line"] = deco
	}
	return styles.String()
}
