package tui

import (
	"fmt"
	"strings"

	"resume-cli/internal/editor"
	"resume-cli/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
)

type formField int

const (
	fieldTitle formField = iota
	fieldLink
	fieldDetail
)

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	in.Width = 40
	return in
}

// entryForm edits the draft of one Editor. Title and link live in the inputs until
// submit; details go straight to the draft via AddDetail.
type entryForm struct {
	ed     *editor.Editor
	keys   keyMap
	title  textinput.Model
	link   textinput.Model
	detail textinput.Model
	focus  formField
}

func newEntryForm(ed *editor.Editor, keys keyMap) entryForm {
	d := ed.Draft()
	f := entryForm{
		ed:     ed,
		keys:   keys,
		title:  newInput(ed.FormType().TitleLabel(), 200),
		link:   newInput("https://", 500),
		detail: newInput("Add a detail and press enter", 500),
	}
	f.title.SetValue(d.Title)
	f.link.SetValue(d.Link)
	f.setFocus(fieldTitle)
	return f
}

func (f entryForm) fields() []formField {
	if f.ed.FormType().HasLink() {
		return []formField{fieldTitle, fieldLink, fieldDetail}
	}
	return []formField{fieldTitle, fieldDetail}
}

func (f *entryForm) input(ff formField) *textinput.Model {
	switch ff {
	case fieldLink:
		return &f.link
	case fieldDetail:
		return &f.detail
	}
	return &f.title
}

func (f *entryForm) setFocus(ff formField) {
	f.title.Blur()
	f.link.Blur()
	f.detail.Blur()
	f.focus = ff
	f.input(ff).Focus()
}

func (f *entryForm) cycle(delta int) {
	fields := f.fields()
	pos := 0
	for i, ff := range fields {
		if ff == f.focus {
			pos = i
		}
	}
	pos = (pos + delta + len(fields)) % len(fields)
	f.setFocus(fields[pos])
}

func (f entryForm) submission() editor.Submission {
	return editor.Submission{Title: f.title.Value(), Link: f.link.Value()}
}

func (f entryForm) update(msg tea.Msg) (entryForm, tea.Cmd, formAction) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.keys.Submit):
			return f, nil, formSubmit
		case key.Matches(km, f.keys.Cancel):
			return f, nil, formCancel
		case key.Matches(km, f.keys.Next):
			f.cycle(1)
			return f, nil, formNone
		case key.Matches(km, f.keys.Prev):
			f.cycle(-1)
			return f, nil, formNone
		case km.Type == tea.KeyEnter:
			if f.focus == fieldDetail {
				if text := strings.TrimSpace(f.detail.Value()); text != "" {
					f.ed.AddDetail(text)
					f.detail.Reset()
				}
				return f, nil, formNone
			}
			f.cycle(1)
			return f, nil, formNone
		}
	}

	var cmd tea.Cmd
	in := f.input(f.focus)
	*in, cmd = in.Update(msg)
	f.ed.SetTitle(f.title.Value())
	f.ed.SetLink(f.link.Value())
	return f, cmd, formNone
}

const skillsCategoryHint = "Suggested: Languages, Tools, Non-Technical Skills. Keep to 3 categories at most."

func (f entryForm) heading() string {
	noun := strings.TrimSuffix(strings.ToLower(f.ed.FormType().Label()), "s")
	if id, ok := f.ed.Editing(); ok {
		return fmt.Sprintf("Edit %s #%d", noun, id)
	}
	return "New " + noun
}

func (f entryForm) view(width int) string {
	var b strings.Builder
	b.WriteString(styleHeader().Render(f.heading()))
	b.WriteString("\n\n")

	label := func(ff formField, s string) string {
		if f.focus == ff {
			return styleFocusedLabel().Render(s)
		}
		return styleLabel().Render(s)
	}

	b.WriteString(label(fieldTitle, f.ed.FormType().TitleLabel()) + "\n")
	b.WriteString(renderInputLine(width, f.title.View()) + "\n")
	if f.ed.FormType() == model.FormTypeSkills {
		b.WriteString(styleMuted().Render(fitLine(skillsCategoryHint, width)) + "\n")
	}
	b.WriteString("\n")
	if f.ed.FormType().HasLink() {
		b.WriteString(label(fieldLink, "Link") + "\n")
		b.WriteString(renderInputLine(width, f.link.View()) + "\n\n")
	}

	b.WriteString(label(fieldDetail, "Details") + "\n")
	details := f.ed.Draft().Details
	if len(details) == 0 {
		b.WriteString(styleMuted().Render("  (none)") + "\n")
	}
	for _, d := range details {
		b.WriteString(fitLine("  - "+d.Text, width) + "\n")
	}
	b.WriteString(renderInputLine(width, f.detail.View()))
	return b.String()
}

// educationForm collects one education entry. Dates are typed as YYYY-MM.
type educationForm struct {
	keys   keyMap
	inputs []textinput.Model
	focus  int
}

const (
	eduSchool = iota
	eduStudy
	eduStart
	eduEnd
)

var educationLabels = []string{"School", "Title of study", "Start (YYYY-MM)", "End (YYYY-MM, blank if ongoing)"}

func newEducationForm(keys keyMap) educationForm {
	f := educationForm{
		keys: keys,
		inputs: []textinput.Model{
			newInput("School name", 200),
			newInput("Degree or course", 200),
			newInput("2019-09", 7),
			newInput("2023-06", 7),
		},
	}
	f.setFocus(eduSchool)
	return f
}

func (f *educationForm) setFocus(i int) {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// values parses the form. Date errors name the offending field.
func (f educationForm) values() (editor.EducationInput, error) {
	start, err := editor.ParseMonth(f.inputs[eduStart].Value())
	if err != nil {
		return editor.EducationInput{}, fmt.Errorf("start: %w", err)
	}
	end, err := editor.ParseMonth(f.inputs[eduEnd].Value())
	if err != nil {
		return editor.EducationInput{}, fmt.Errorf("end: %w", err)
	}
	return editor.EducationInput{
		SchoolName:   f.inputs[eduSchool].Value(),
		TitleOfStudy: f.inputs[eduStudy].Value(),
		Start:        start,
		End:          end,
	}, nil
}

func (f educationForm) update(msg tea.Msg) (educationForm, tea.Cmd, formAction) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.keys.Submit):
			return f, nil, formSubmit
		case key.Matches(km, f.keys.Cancel):
			return f, nil, formCancel
		case key.Matches(km, f.keys.Next):
			f.setFocus(f.focus + 1)
			return f, nil, formNone
		case key.Matches(km, f.keys.Prev):
			f.setFocus(f.focus - 1)
			return f, nil, formNone
		case km.Type == tea.KeyEnter:
			if f.focus == len(f.inputs)-1 {
				return f, nil, formSubmit
			}
			f.setFocus(f.focus + 1)
			return f, nil, formNone
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, formNone
}

func (f educationForm) view(width int) string {
	var b strings.Builder
	b.WriteString(styleHeader().Render("New education entry"))
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		lbl := styleLabel().Render(educationLabels[i])
		if i == f.focus {
			lbl = styleFocusedLabel().Render(educationLabels[i])
		}
		b.WriteString(lbl + "\n")
		b.WriteString(renderInputLine(width, in.View()))
		if i < len(f.inputs)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
