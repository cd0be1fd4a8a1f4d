package publish

import (
	"bytes"
	"strings"

	"resume-cli/internal/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var headingCaser = cases.Title(language.English)

// SectionHeading is the markdown heading text for a skills/projects section.
func SectionHeading(f model.FormType) string {
	return headingCaser.String(string(f))
}

// EntryMarkdown renders one entry. Skills render as a single labelled line; every
// other form type renders a heading, the link, and an achievement list.
func EntryMarkdown(e model.Entry) string {
	var buf bytes.Buffer
	writeEntry(&buf, e)
	return strings.TrimRight(buf.String(), "\n")
}

func writeEntry(buf *bytes.Buffer, e model.Entry) {
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	v := ViewEntry(e)
	if v.FormType == model.FormTypeSkills {
		texts := detailTexts(e)
		for i, t := range texts {
			texts[i] = escapeInline(t)
		}
		writeLn("**" + escapeInline(v.Title) + ":** " + strings.Join(texts, ", "))
		return
	}

	writeLn("### " + escapeInline(v.Title))
	if link := linkMarkdown(v.Link); link != "" {
		writeLn("")
		writeLn(link)
	}
	if len(v.Achievements) > 0 {
		writeLn("")
		for _, a := range v.Achievements {
			writeLn("- " + escapeInline(a))
		}
	}
}

// SectionMarkdown renders a section heading followed by its entries in the given order.
// An empty section renders as an empty string.
func SectionMarkdown(f model.FormType, entries []model.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var buf bytes.Buffer
	buf.WriteString("## " + SectionHeading(f) + "\n\n")
	for i, e := range entries {
		if i > 0 {
			buf.WriteString("\n")
		}
		writeEntry(&buf, e)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// EducationMarkdown renders the populated education slots; placeholders are skipped.
func EducationMarkdown(slots []model.EducationSlot) string {
	var rows []string
	for _, s := range slots {
		if s.Empty() {
			continue
		}
		rows = append(rows, "- "+escapeInline(EducationText(*s.Entry)))
	}
	if len(rows) == 0 {
		return ""
	}
	return "## Education\n\n" + strings.Join(rows, "\n")
}

// ResumeMarkdown renders a whole resume: header, education, projects, then skills.
func ResumeMarkdown(r model.Resume) string {
	var parts []string
	if name := escapeInline(r.Name); name != "" {
		parts = append(parts, "# "+name)
	}
	if h := escapeInline(r.Headline); h != "" {
		parts = append(parts, h)
	}
	if s := EducationMarkdown(r.Education); s != "" {
		parts = append(parts, s)
	}
	for _, f := range model.FormTypes() {
		if s := SectionMarkdown(f, r.Section(f)); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}
