package dto

import (
	"encoding/json"

	"richtext-render-be/pkg/lexical"

	"github.com/google/uuid"
)

type RenderRequest struct {
	Document json.RawMessage      `json:"document" validate:"required"`
	Fallback *lexical.Element     `json:"fallback,omitempty"`
	Options  RenderOptionsRequest `json:"options"`
}

// RenderOptionsRequest is the serializable subset of lexical.Options.
// Custom components cannot cross the wire.
type RenderOptionsRequest struct {
	TextProps    lexical.Props `json:"text_props,omitempty"`
	HeadingProps lexical.Props `json:"heading_props,omitempty"`
	LinkProps    lexical.Props `json:"link_props,omitempty"`
	ImageProps   lexical.Props `json:"image_props,omitempty"`
	CodeProps    lexical.Props `json:"code_props,omitempty"`
	MediaBaseURL string        `json:"media_base_url,omitempty" validate:"omitempty,url"`
}

// ToOptions builds render options, using defaultMediaBaseURL when the
// request does not name one.
func (o RenderOptionsRequest) ToOptions(defaultMediaBaseURL string) lexical.Options {
	base := o.MediaBaseURL
	if base == "" {
		base = defaultMediaBaseURL
	}
	return lexical.Options{
		TextProps:    o.TextProps,
		HeadingProps: o.HeadingProps,
		LinkProps:    o.LinkProps,
		ImageProps:   o.ImageProps,
		CodeProps:    o.CodeProps,
		MediaBaseURL: base,
	}
}

type RenderTreeResponse struct {
	RenderId uuid.UUID        `json:"render_id"`
	Cached   bool             `json:"cached"`
	Empty    bool             `json:"empty"`
	Tree     *lexical.Element `json:"tree"`
}

type RenderHTMLResponse struct {
	RenderId uuid.UUID `json:"render_id"`
	Cached   bool      `json:"cached"`
	Empty    bool      `json:"empty"`
	HTML     string    `json:"html"`
}

type RenderTextResponse struct {
	RenderId uuid.UUID `json:"render_id"`
	Cached   bool      `json:"cached"`
	Empty    bool      `json:"empty"`
	Text     string    `json:"text"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
	Nats   string `json:"nats"`
}
