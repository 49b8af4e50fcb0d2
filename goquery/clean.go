// Package goquery implements the HTML-mining extractors over raw
// marketplace product pages. Structural scans use goquery selectors;
// patterns that are inherently textual (attribute families, class
// fragments followed by free text) use regular expressions over the raw
// HTML, matching how marketplace pages actually interleave markup and
// vendor conventions. Each scan is independent; candidates are merged
// through a shared accept/normalize/dedupe reducer so scan order alone
// determines output order.
package goquery

import (
	"regexp"
	"strings"
)

var (
	tagRE        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRE = regexp.MustCompile(`\s+`)

	// The five standard entities product pages use in visible text.
	entityReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&quot;", `"`,
		"&#39;", "'",
		"&lt;", "<",
		"&gt;", ">",
	)
)

// cleanText strips HTML tags, unescapes the standard entities, collapses
// whitespace and trims. Applied to every mined text fragment before any
// length check.
func cleanText(s string) string {
	s = tagRE.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
