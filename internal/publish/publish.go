package publish

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"resume-cli/internal/model"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		emoji.Emoji,
	),
	// Raw HTML is omitted by the renderer; entry text is escaped before it gets here.
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// HTML converts markdown to an HTML fragment.
func HTML(md string) (string, error) {
	md = strings.TrimSpace(md)
	if md == "" {
		return "", nil
	}
	var b bytes.Buffer
	if err := markdownRenderer.Convert([]byte(md), &b); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return b.String(), nil
}

// HTMLDocument renders a resume as a standalone HTML page.
func HTMLDocument(r model.Resume) (string, error) {
	body, err := HTML(ResumeMarkdown(r))
	if err != nil {
		return "", err
	}
	title := strings.TrimSpace(r.Name)
	if title == "" {
		title = "Resume"
	}
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// ResumeText renders a resume as plain text.
func ResumeText(r model.Resume) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}
	if name := strings.TrimSpace(r.Name); name != "" {
		writeLn(name)
	}
	if h := strings.TrimSpace(r.Headline); h != "" {
		writeLn(h)
	}
	if edu := r.PopulatedEducation(); len(edu) > 0 {
		writeLn("")
		writeLn("Education")
		for _, e := range edu {
			writeLn("  " + EducationText(e))
		}
	}
	for _, f := range model.FormTypes() {
		entries := r.Section(f)
		if len(entries) == 0 {
			continue
		}
		writeLn("")
		writeLn(f.Label())
		for _, e := range entries {
			writeLn("  " + strings.ReplaceAll(Text(e), "\n", "\n  "))
		}
	}
	return strings.TrimLeft(buf.String(), "\n")
}

// Write renders a resume in one of the document formats: md, html, text.
func Write(w io.Writer, r model.Resume, format string) error {
	var out string
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "md", "markdown":
		out = ResumeMarkdown(r)
	case "html":
		doc, err := HTMLDocument(r)
		if err != nil {
			return err
		}
		out = doc
	case "text", "txt":
		out = ResumeText(r)
	default:
		return fmt.Errorf("unknown document format: %s", format)
	}
	_, err := io.WriteString(w, out)
	return err
}
