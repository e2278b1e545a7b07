package lexical

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Defaults substituted when a media asset omits them.
const (
	DefaultMediaAlt    = ""
	DefaultMediaWidth  = 300
	DefaultMediaHeight = 200
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// MediaAsset is the populated value of an upload node.
type MediaAsset struct {
	ID       any      `json:"id,omitempty"`
	URL      *string  `json:"url" validate:"required"`
	Alt      *string  `json:"alt,omitempty"`
	Width    *float64 `json:"width,omitempty" validate:"omitempty,gte=0"`
	Height   *float64 `json:"height,omitempty" validate:"omitempty,gte=0"`
	Filename any      `json:"filename,omitempty"`
	MimeType any      `json:"mimeType,omitempty"`
}

func (m *MediaAsset) Src() string {
	if m.URL == nil {
		return ""
	}
	return *m.URL
}

func (m *MediaAsset) AltText() string {
	if m.Alt == nil {
		return DefaultMediaAlt
	}
	return *m.Alt
}

func (m *MediaAsset) Dimensions() (width, height int) {
	width, height = DefaultMediaWidth, DefaultMediaHeight
	if m.Width != nil {
		width = int(*m.Width)
	}
	if m.Height != nil {
		height = int(*m.Height)
	}
	return width, height
}

// LinkableDocument is another document an internal link points to.
type LinkableDocument struct {
	ID   any    `json:"id,omitempty"`
	Slug string `json:"slug" validate:"required"`
}

// LinkFields is the "fields" bundle carried by link nodes.
type LinkFields struct {
	LinkType string          `json:"linkType" validate:"required,oneof=custom internal"`
	URL      string          `json:"url,omitempty"`
	NewTab   bool            `json:"newTab,omitempty"`
	Doc      json.RawMessage `json:"doc,omitempty"`
}

func ParseMediaAsset(v any) (*MediaAsset, bool) {
	var m MediaAsset
	if !decodeValid(v, &m) {
		return nil, false
	}
	return &m, true
}

func ParseLinkableDocument(v any) (*LinkableDocument, bool) {
	var d LinkableDocument
	if !decodeValid(v, &d) {
		return nil, false
	}
	return &d, true
}

func ParseLinkFields(v any) (*LinkFields, bool) {
	var f LinkFields
	if !decodeValid(v, &f) {
		return nil, false
	}
	return &f, true
}

// decodeValid re-decodes an untyped JSON value into out and validates it.
// Wrong-typed fields fail the decode; missing required ones fail validation.
func decodeValid(v any, out any) bool {
	var data []byte
	switch raw := v.(type) {
	case json.RawMessage:
		data = raw
	case []byte:
		data = raw
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return false
		}
		data = encoded
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return validate.Struct(out) == nil
}
