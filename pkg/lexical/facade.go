package lexical

import "sync"

// RenderDocument renders doc, substituting fallback when the document has
// nothing to render. This is the only place a fallback is applied.
func RenderDocument(doc *Document, fallback *Element, opts Options) *Element {
	if el := Render(doc, opts); el != nil {
		return el
	}
	return fallback
}

// RenderContent parses and renders a serialized document in one step.
// Content that is not a JSON object yields the fallback.
func RenderContent(content []byte, fallback *Element, opts Options) *Element {
	doc, err := ParseDocument(content)
	if err != nil {
		return fallback
	}
	return RenderDocument(doc, fallback, opts)
}

// Memo caches the last rendered tree by document identity. Options are
// fixed per Memo; build a new one when they change.
type Memo struct {
	opts Options

	mu     sync.Mutex
	doc    *Document
	result *Element
}

func NewMemo(opts Options) *Memo {
	return &Memo{opts: opts}
}

// Render returns the cached tree when doc is the same pointer as last time.
// Callers must not mutate the returned tree.
func (m *Memo) Render(doc *Document, fallback *Element) *Element {
	m.mu.Lock()
	defer m.mu.Unlock()

	if doc == nil || doc != m.doc {
		m.doc = doc
		m.result = Render(doc, m.opts)
	}
	if m.result == nil {
		return fallback
	}
	return m.result
}
