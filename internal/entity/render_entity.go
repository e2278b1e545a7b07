package entity

import (
	"time"

	"richtext-render-be/pkg/lexical"
)

type RenderMode string

const (
	RenderModeTree RenderMode = "tree"
	RenderModeHTML RenderMode = "html"
	RenderModeText RenderMode = "text"
)

// RenderResult is the cached output for one fingerprint. Only the field
// matching Mode is set. A nil Tree in tree mode means the document rendered
// to nothing.
type RenderResult struct {
	Fingerprint string           `json:"fingerprint"`
	Mode        RenderMode       `json:"mode"`
	Tree        *lexical.Element `json:"tree,omitempty"`
	HTML        string           `json:"html,omitempty"`
	Text        string           `json:"text,omitempty"`
	Elements    int              `json:"elements"`
	RenderedAt  time.Time        `json:"rendered_at"`
}

func (r *RenderResult) Empty() bool {
	return r.Elements == 0
}
