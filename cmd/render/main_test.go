package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `{"root":{"type":"root","children":[
	{"type":"heading","tag":"h3","children":[{"type":"text","text":"Title","format":1}]},
	{"type":"upload","relationTo":"media","value":{"url":"cat.png","alt":"Cat"}}
]}}`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunTree(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	require.NoError(t, run(&out, writeDoc(t, doc), "https://cdn.example.com", "tree"))

	want := "stack#1\n" +
		"  heading#2 fontSize=24 tag=h3\n" +
		"    bold#3\n" +
		"      text#4 \"Title\"\n" +
		"  image#5 alt=Cat height=200 src=https://cdn.example.com/cat.png width=300\n"
	assert.Equal(t, want, out.String())
}

func TestRunModes(t *testing.T) {
	color.NoColor = true
	path := writeDoc(t, doc)

	var html bytes.Buffer
	require.NoError(t, run(&html, path, "", "html"))
	assert.Contains(t, html.String(), "<h3>")

	var text bytes.Buffer
	require.NoError(t, run(&text, path, "", "text"))
	assert.Equal(t, "Title\nCat\n", text.String())

	var js bytes.Buffer
	require.NoError(t, run(&js, path, "", "json"))
	assert.Contains(t, js.String(), `"kind": "stack"`)
}

func TestRunEmptyAndInvalid(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	require.NoError(t, run(&out, writeDoc(t, `{"root":{"children":[]}}`), "", "tree"))
	assert.Equal(t, "(empty document)\n", out.String())

	assert.Error(t, run(&out, writeDoc(t, `not json`), "", "tree"))
	assert.Error(t, run(&out, filepath.Join(t.TempDir(), "missing.json"), "", "tree"))
}

func TestRunTextPassesThroughPlainContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain note", "just a plain note", "just a plain note\n"},
		{"json without root", `{"title":"x"}`, "{\"title\":\"x\"}\n"},
		{"broken document", `{"root": [`, "{\"root\": [\n"},
		{"document", doc, "Title\nCat\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(&out, writeDoc(t, tt.content), "", "text"))
			assert.Equal(t, tt.want, out.String())
		})
	}
}
