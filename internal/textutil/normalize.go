// Package textutil cleans job description text before it is stored.
package textutil

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockElements = "br, p, div, li, ul, ol, tr, td, th, h1, h2, h3, h4, h5, h6, section, article, header, footer"

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// markup matches a closing tag or an opening tag of a common element.
// Angle-bracketed words such as "<Go>" or "List<Kotlin>" are not markup.
var markup = regexp.MustCompile(`(?i)</[a-z][a-z0-9]*\s*>|<(?:br|hr|p|div|span|ul|ol|li|b|i|u|em|strong|a|h[1-6]|table|tr|td|th|section|article|header|footer|script|style|noscript)(?:\s[^<>]*)?/?>`)

// LooksLikeHTML reports whether s contains real markup.
func LooksLikeHTML(s string) bool {
	return strings.IndexByte(s, '<') >= 0 && markup.MatchString(s)
}

// PlainText converts an HTML fragment to whitespace-normalized text. Block
// elements are separated so adjacent list items do not run together.
// Input without markup is only cleaned.
func PlainText(s string) string {
	if !LooksLikeHTML(s) {
		return CleanText(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return CleanText(s)
	}
	doc.Find("script, style, noscript").Remove()
	doc.Find(blockElements).Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml(" ")
	})
	return CleanText(doc.Text())
}

// Description normalizes a job description for storage, keeping paragraph
// structure for plain text input.
func Description(s string) string {
	if LooksLikeHTML(s) {
		return PlainText(s)
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, ln := range lines {
		ln = CleanText(ln)
		if ln == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, ln)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
