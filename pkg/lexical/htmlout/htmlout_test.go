package htmlout

import (
	"testing"

	"richtext-render-be/pkg/lexical"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{"root":{"type":"root","children":[
	{"type":"heading","tag":"h2","children":[{"type":"text","text":"Release notes","format":0}]},
	{"type":"paragraph","children":[
		{"type":"text","text":"Bold","format":1},
		{"type":"text","text":" <script>alert(1)</script>","format":0},
		{"type":"link","fields":{"linkType":"internal","doc":{"slug":"about"}},"children":[{"type":"text","text":"about us","format":0}]},
		{"type":"link","fields":{"linkType":"custom","url":"javascript:alert(1)"},"children":[{"type":"text","text":"bad","format":0}]}
	]},
	{"type":"code","language":"go","children":[{"type":"text","text":"if a < b {}","format":0}]},
	{"type":"list","tag":"ol","start":2,"children":[{"type":"listitem","children":[{"type":"text","text":"item","format":0}]}]},
	{"type":"upload","relationTo":"media","value":{"url":"/media/a.png","alt":"An image"}},
	{"type":"horizontalrule"}
]}}`

func TestRender(t *testing.T) {
	doc, err := lexical.ParseDocumentString(sample)
	require.NoError(t, err)

	out, err := Render(lexical.Render(doc, lexical.Options{MediaBaseURL: "https://cdn.example.com"}))
	require.NoError(t, err)

	assert.Contains(t, out, "<h2>")
	assert.Contains(t, out, "Release notes")
	assert.Contains(t, out, "<strong>")
	assert.Contains(t, out, `href="/about"`)
	assert.Contains(t, out, "about us")
	assert.Contains(t, out, "bad")
	assert.Contains(t, out, `class="language-go"`)
	assert.Contains(t, out, "if a &lt; b {}")
	assert.Contains(t, out, "<li>")
	assert.Contains(t, out, `src="https://cdn.example.com/media/a.png"`)
	assert.Contains(t, out, "<hr")

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "javascript:")
}

func TestRenderNil(t *testing.T) {
	out, err := Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderCustomKindFallsBackToDiv(t *testing.T) {
	out, err := Render(&lexical.Element{Kind: "card", Children: []*lexical.Element{
		{Kind: lexical.KindText, Text: "inside"},
	}})
	require.NoError(t, err)
	assert.Contains(t, out, "inside")
}
