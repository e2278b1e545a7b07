package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"richtext-render-be/pkg/lexical"
	"richtext-render-be/pkg/lexical/htmlout"

	"github.com/fatih/color"
)

var (
	kindColor = color.New(color.FgCyan, color.Bold)
	propColor = color.New(color.FgYellow)
	textColor = color.New(color.FgGreen)
)

func main() {
	file := flag.String("file", "-", "lexical JSON document to render (- for stdin)")
	asHTML := flag.Bool("html", false, "print sanitized HTML instead of the tree")
	asText := flag.Bool("text", false, "print plain text instead of the tree; non-document input is echoed")
	asJSON := flag.Bool("json", false, "print the tree as JSON")
	base := flag.String("base", "", "base URL for relative media URLs")
	flag.Parse()

	if err := run(os.Stdout, *file, *base, mode(*asHTML, *asText, *asJSON)); err != nil {
		color.Red("render failed: %v", err)
		os.Exit(1)
	}
}

func mode(asHTML, asText, asJSON bool) string {
	switch {
	case asHTML:
		return "html"
	case asText:
		return "text"
	case asJSON:
		return "json"
	}
	return "tree"
}

func run(w io.Writer, file, base, mode string) error {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if mode == "text" {
		fmt.Fprintln(w, lexical.ParseContent(string(data)))
		return nil
	}

	doc, err := lexical.ParseDocument(data)
	if err != nil {
		return err
	}
	tree := lexical.Render(doc, lexical.Options{MediaBaseURL: base})

	switch mode {
	case "html":
		out, err := htmlout.Render(tree)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	default:
		if tree == nil {
			color.New(color.Faint).Fprintln(w, "(empty document)")
			return nil
		}
		dumpTree(w, tree, 0)
	}
	return nil
}

// dumpTree prints one element per line, indented by depth.
func dumpTree(w io.Writer, el *lexical.Element, depth int) {
	fmt.Fprint(w, strings.Repeat("  ", depth))
	kindColor.Fprintf(w, "%s", el.Kind)
	fmt.Fprintf(w, "#%d", el.Key)

	keys := make([]string, 0, len(el.Props))
	for k := range el.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		propColor.Fprintf(w, " %s=%v", k, el.Props[k])
	}
	if el.Text != "" {
		textColor.Fprintf(w, " %q", el.Text)
	}
	fmt.Fprintln(w)

	for _, child := range el.Children {
		dumpTree(w, child, depth+1)
	}
}
