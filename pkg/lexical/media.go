package lexical

import (
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// ResolveMediaURL joins a possibly relative asset URL onto baseURL. Absolute
// and protocol-relative URLs, or an empty base, come back unchanged.
func ResolveMediaURL(rawURL, baseURL string) string {
	if baseURL == "" || strings.HasPrefix(rawURL, "//") || schemePattern.MatchString(rawURL) {
		return rawURL
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(rawURL, "/")
}
