package lexical

import "encoding/json"

const (
	LinkTypeCustom   = "custom"
	LinkTypeInternal = "internal"
)

// LinkTarget is where a link node points. An empty Href means the link
// could not be resolved and must render as plain, non-interactive content.
type LinkTarget struct {
	Href   string
	NewTab bool
}

func (t LinkTarget) Interactive() bool {
	return t.Href != ""
}

// ResolveLink derives a target from a link node's fields bundle.
func ResolveLink(fields any) LinkTarget {
	f, ok := ParseLinkFields(fields)
	if !ok {
		return LinkTarget{}
	}

	target := LinkTarget{NewTab: f.NewTab}
	switch f.LinkType {
	case LinkTypeCustom:
		target.Href = f.URL
	case LinkTypeInternal:
		if slug := internalSlug(f.Doc); slug != "" {
			target.Href = "/" + slug
		}
	}
	return target
}

// internalSlug accepts either a document carrying a slug directly or a
// populated relationship whose value carries it. A bare id does not count.
func internalSlug(raw json.RawMessage) string {
	if doc, ok := ParseLinkableDocument(raw); ok {
		return doc.Slug
	}

	var rel struct {
		RelationTo string          `json:"relationTo"`
		Value      json.RawMessage `json:"value"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &rel) != nil {
		return ""
	}
	if doc, ok := ParseLinkableDocument(rel.Value); ok {
		return doc.Slug
	}
	return ""
}
