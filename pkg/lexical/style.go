package lexical

import (
	"cmp"
	"slices"
	"strings"
)

// StyleMap represents parsed CSS styles
type StyleMap map[string]string

// Inline CSS properties carried from text nodes into the output tree.
var textStyleWhitelist = []string{"color", "background-color", "text-transform"}

// ParseStyle parses a CSS style string into a map
// Example: "color: #F97316; background-color: #BFDBFE;"
func ParseStyle(styleStr string) StyleMap {
	styles := make(StyleMap)
	if styleStr == "" {
		return styles
	}

	for _, part := range strings.Split(styleStr, ";") {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) == 2 {
			k := strings.ToLower(strings.TrimSpace(kv[0]))
			v := strings.TrimSpace(kv[1])
			if k != "" && v != "" {
				styles[k] = v
			}
		}
	}
	return styles
}

// Relevant keeps only whitelisted properties. Returns nil if none remain.
func (s StyleMap) Relevant() StyleMap {
	var out StyleMap
	for _, k := range textStyleWhitelist {
		if v, ok := s[k]; ok {
			if out == nil {
				out = make(StyleMap)
			}
			out[k] = v
		}
	}
	return out
}

// String renders the map back to a declaration list in whitelist order,
// then any remaining keys sorted.
func (s StyleMap) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sortStyleKeys(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+s[k])
	}
	return strings.Join(parts, "; ")
}

func sortStyleKeys(keys []string) {
	rank := func(k string) int {
		if i := slices.Index(textStyleWhitelist, k); i >= 0 {
			return i
		}
		return len(textStyleWhitelist)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(rank(a), rank(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
