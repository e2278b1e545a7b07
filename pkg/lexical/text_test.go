package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	d := mustParse(t, doc(
		`{"type":"heading","tag":"h1","children":[`+text("Title", 1)+`]}`,
		`{"type":"paragraph","children":[`+text("See ", 0)+`,{"type":"link","fields":{"linkType":"custom","url":"/x"},"children":[`+text("docs", 2)+`]}]}`,
		`{"type":"list","tag":"ol","listType":"number","children":[
			{"type":"listitem","children":[`+text("one", 0)+`]},
			{"type":"listitem","children":[`+text("two", 0)+`]}
		]}`,
		`{"type":"list","tag":"ul","listType":"check","children":[
			{"type":"listitem","checked":true,"children":[`+text("done", 0)+`]},
			{"type":"listitem","checked":false,"children":[`+text("todo", 0)+`]}
		]}`,
		`{"type":"code","children":[`+text("x := 1", 0)+`]}`,
		`{"type":"horizontalrule"}`,
		`{"type":"upload","relationTo":"media","value":{"url":"a.png","alt":"A cat"}}`,
	))

	want := "Title\n" +
		"See docs\n" +
		"1. one\n" +
		"2. two\n" +
		"- [x] done\n" +
		"- [ ] todo\n" +
		"x := 1\n" +
		"---\n" +
		"A cat"
	assert.Equal(t, want, PlainText(d))
	assert.Equal(t, "", PlainText(nil))
}

func TestPlainTextNestedLists(t *testing.T) {
	d := mustParse(t, doc(
		`{"type":"list","tag":"ul","children":[
			{"type":"listitem","children":[`+text("outer", 0)+`]},
			{"type":"listitem","children":[
				{"type":"list","tag":"ol","listType":"number","children":[
					{"type":"listitem","children":[`+text("inner1", 0)+`]},
					{"type":"listitem","children":[`+text("inner2", 0)+`,
						{"type":"list","tag":"ul","children":[{"type":"listitem","children":[`+text("deep", 0)+`]}]}
					]}
				]}
			]},
			{"type":"listitem","children":[`+text("after", 0)+`]}
		]}`,
	))

	want := "- outer\n" +
		"  1. inner1\n" +
		"  2. inner2\n" +
		"    - deep\n" +
		"- after"
	assert.Equal(t, want, PlainText(d))
}

func TestParseContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain text passes through", "just a note", "just a note"},
		{"other json passes through", `{"title":"x"}`, `{"title":"x"}`},
		{"broken lexical passes through", `{"root": [`, `{"root": [`},
		{"lexical is flattened", doc(`{"type":"paragraph","children":[` + text("hello", 1) + `]}`), "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseContent(tt.content))
		})
	}
}

func TestParseStyle(t *testing.T) {
	styles := ParseStyle("color: #F97316; background-color: #BFDBFE; font-size: 12px;;bogus")
	assert.Equal(t, StyleMap{
		"color":            "#F97316",
		"background-color": "#BFDBFE",
		"font-size":        "12px",
	}, styles)

	relevant := styles.Relevant()
	assert.Equal(t, StyleMap{"color": "#F97316", "background-color": "#BFDBFE"}, relevant)
	assert.Equal(t, "color: #F97316; background-color: #BFDBFE", relevant.String())

	assert.Nil(t, ParseStyle("font-size: 1px").Relevant())
	assert.Empty(t, ParseStyle(""))
}
