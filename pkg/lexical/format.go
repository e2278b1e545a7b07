package lexical

// DecodeFormat maps a text node's bitmask onto nested wrappers around a text
// leaf. Code wins over every other bit. Otherwise strikethrough is outermost,
// then bold, then italic. Underline never adds a wrapper; it is set as a
// style prop on the outermost element. The result carries no keys.
func DecodeFormat(text string, format int) *Element {
	if format&FormatCode != 0 {
		return &Element{Kind: KindInlineCode, Text: text}
	}

	el := &Element{Kind: KindText, Text: text}
	if format&FormatItalic != 0 {
		el = wrap(KindItalic, el)
	}
	if format&FormatBold != 0 {
		el = wrap(KindBold, el)
	}
	if format&FormatStrikethrough != 0 {
		el = wrap(KindStrikethrough, el)
	}
	if format&FormatUnderline != 0 {
		el.Props = mergeProps(el.Props, Props{"textDecorationLine": "underline"})
	}
	return el
}

func wrap(kind Kind, child *Element) *Element {
	return &Element{Kind: kind, Children: []*Element{child}}
}
