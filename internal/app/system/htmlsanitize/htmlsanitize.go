// Package htmlsanitize cleans operator-supplied HTML (such as the configured
// footer) before it is rendered unescaped in page templates.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy is built once; bluemonday policies are safe for concurrent use
// after construction.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Sanitize strips scripts, event handlers and other unsafe markup from s.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no markup.
func IsPlainText(s string) bool {
	return !strings.Contains(s, "<")
}

// PlainTextToHTML escapes s and turns newlines into <br>.
func PlainTextToHTML(s string) template.HTML {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// Footer renders configured footer content: plain text is escaped, markup
// is sanitized.
func Footer(s string) template.HTML {
	s = strings.TrimSpace(s)
	if IsPlainText(s) {
		return PlainTextToHTML(s)
	}
	return SanitizeToHTML(s)
}
