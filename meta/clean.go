package meta

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlCommentRegex = regexp.MustCompile(`<!--[\s\S]*?-->`)
	blockEndRegex    = regexp.MustCompile(`</(?:p|div|li|h[1-6]|blockquote|tr)>|<br\s*/?>`)
	htmlTagRegex     = regexp.MustCompile(`<[^>]*>`)
	multiSpaceRegex  = regexp.MustCompile(`[ \t]+`)
	multiLineRegex   = regexp.MustCompile(`\n\s*\n+`)
)

// StripHTML removes markup from a description value exported out of a
// CMS: tags dropped, block boundaries kept as newlines, entities
// decoded, whitespace normalized.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	s = htmlCommentRegex.ReplaceAllString(s, "")
	s = blockEndRegex.ReplaceAllString(s, "\n")
	s = htmlTagRegex.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	s = multiLineRegex.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
