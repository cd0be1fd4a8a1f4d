// Package publish renders resume entries and documents for reading: plain text,
// markdown and HTML.
package publish

import (
	"strings"

	"resume-cli/internal/model"
)

// EntryView is the read-only projection of one entry, shaped by its form type.
type EntryView struct {
	FormType model.FormType
	Title    string

	// Skills shape.
	Summary string

	// Projects shape.
	Link         string
	Achievements []string
}

// ViewEntry projects an entry for display.
func ViewEntry(e model.Entry) EntryView {
	if e.FormType == model.FormTypeSkills {
		return EntryView{
			FormType: e.FormType,
			Title:    e.Title,
			Summary:  SkillsLine(e),
		}
	}
	return EntryView{
		FormType:     e.FormType,
		Title:        e.Title,
		Link:         e.Link,
		Achievements: detailTexts(e),
	}
}

// SkillsLine joins the entry's detail texts with ", ", keeping order and duplicates.
func SkillsLine(e model.Entry) string {
	return strings.Join(detailTexts(e), ", ")
}

func detailTexts(e model.Entry) []string {
	out := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		out = append(out, d.Text)
	}
	return out
}

// Text renders an entry as a short plain-text block.
func Text(e model.Entry) string {
	v := ViewEntry(e)
	if v.FormType == model.FormTypeSkills {
		return v.Title + ": " + v.Summary
	}
	var b strings.Builder
	b.WriteString(v.Title)
	if strings.TrimSpace(v.Link) != "" {
		b.WriteString("  ")
		b.WriteString(v.Link)
	}
	for _, a := range v.Achievements {
		b.WriteString("\n  - ")
		b.WriteString(a)
	}
	return b.String()
}

// EducationText renders one education entry on a single line.
func EducationText(e model.Education) string {
	var b strings.Builder
	b.WriteString(e.SchoolName)
	if s := strings.TrimSpace(e.TitleOfStudy); s != "" {
		b.WriteString(", ")
		b.WriteString(s)
	}
	if yrs := yearRange(e); yrs != "" {
		b.WriteString(" (")
		b.WriteString(yrs)
		b.WriteString(")")
	}
	return b.String()
}

func yearRange(e model.Education) string {
	from := strings.TrimSpace(e.YearFrom)
	to := strings.TrimSpace(e.YearTo)
	switch {
	case from != "" && to != "":
		return from + " - " + to
	case from != "":
		return from + " - present"
	default:
		return to
	}
}
