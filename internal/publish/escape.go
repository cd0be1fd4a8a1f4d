package publish

import (
	"net/url"
	"strings"
)

// inlineEscaper backslash-escapes the characters that can start markdown emphasis,
// links, code, raw HTML, tables, strikethrough or entity references.
var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
	`~`, `\~`,
	`&`, `\&`,
)

// escapeInline turns free text into markdown that renders as that text on one line.
func escapeInline(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = inlineEscaper.Replace(s)
	return escapeLineStart(s)
}

// escapeLineStart neutralizes list, heading and setext markers at the start of text.
func escapeLineStart(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '-', '+', '=':
		return `\` + s
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		return s[:i] + `\` + s[i:]
	}
	return s
}

// linkMarkdown renders a user-entered link. Only well-formed http, https and mailto
// URLs become autolinks; anything else is shown as escaped text.
func linkMarkdown(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	if safeAutolink(link) {
		return "<" + link + ">"
	}
	return escapeInline(link)
}

func safeAutolink(link string) bool {
	if strings.ContainsAny(link, " \t\r\n<>\"`") {
		return false
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	default:
		return false
	}
}
