package tui

import (
	"fmt"
	"io"
	"strings"

	"resume-cli/internal/model"
	"resume-cli/internal/publish"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// section identifies one row of the top-level list.
type section string

const (
	sectionEducation section = "education"
	sectionProjects  section = "projects"
	sectionSkills    section = "skills"
)

func sections() []section {
	return []section{sectionEducation, sectionProjects, sectionSkills}
}

func (s section) formType() (model.FormType, bool) {
	switch s {
	case sectionProjects:
		return model.FormTypeProjects, true
	case sectionSkills:
		return model.FormTypeSkills, true
	}
	return "", false
}

func (s section) label() string {
	if ft, ok := s.formType(); ok {
		return ft.Label()
	}
	return "Education"
}

type sectionItem struct {
	section section
	count   int
}

func (i sectionItem) FilterValue() string { return i.section.label() }
func (i sectionItem) Title() string       { return i.section.label() }
func (i sectionItem) Description() string {
	if i.count == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", i.count)
}

type entryItem struct {
	entry model.Entry
}

func (i entryItem) FilterValue() string { return i.entry.Title }
func (i entryItem) Title() string {
	if strings.TrimSpace(i.entry.Title) == "" {
		return "(untitled)"
	}
	return i.entry.Title
}

// Description is the plain rendering without the title, folded onto one line.
func (i entryItem) Description() string {
	rest := strings.TrimPrefix(publish.Text(i.entry), i.entry.Title)
	rest = strings.ReplaceAll(rest, "\n  - ", " · ")
	return strings.TrimLeft(rest, " :·")
}

type educationItem struct {
	edu model.Education
}

func (i educationItem) FilterValue() string { return i.edu.SchoolName }
func (i educationItem) Title() string {
	if strings.TrimSpace(i.edu.SchoolName) == "" {
		return "(unnamed school)"
	}
	return i.edu.SchoolName
}
func (i educationItem) Description() string { return publish.EducationText(i.edu) }

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, newRowDelegate(), 0, 0)
	l.Title = title
	// The app renders its own header and help footer.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// Filtering would remap indices under the move keys.
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	l.KeyMap.CursorUp.SetKeys(append(cursorUpKeys, "ctrl+p")...)
	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	l.KeyMap.CursorDown.SetKeys(append(cursorDownKeys, "ctrl+n")...)
	return l
}

// rowDelegate renders title and description on two lines, cut to the list width.
type rowDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	desc     lipgloss.Style
}

func newRowDelegate() rowDelegate {
	return rowDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSurfaceFg).
			Background(colorSelectedBg).
			Bold(true),
		desc: styleMuted(),
	}
}

func (d rowDelegate) Height() int                             { return 2 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	width := m.Width()
	if width < 4 {
		return
	}
	var title, desc string
	if it, ok := item.(list.DefaultItem); ok {
		title, desc = it.Title(), it.Description()
	} else {
		title = fmt.Sprint(item)
	}

	style := d.normal
	marker := "  "
	if index == m.Index() {
		style = d.selected
		marker = "> "
	}
	fmt.Fprint(w, style.Render(fitLine(marker+title, width)))
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, d.desc.Render(fitLine("  "+desc, width)))
}

// fitLine pads or cuts s to exactly width cells.
func fitLine(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	w := xansi.StringWidth(s)
	switch {
	case w > width && width > 1:
		return xansi.Truncate(s, width, "…")
	case w > width:
		return xansi.Cut(s, 0, width)
	case w < width:
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func entryItems(entries []model.Entry) []list.Item {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{entry: e})
	}
	return items
}

func educationItems(slots []model.EducationSlot) []list.Item {
	items := make([]list.Item, 0, len(slots))
	for _, s := range slots {
		if s.Empty() {
			continue
		}
		items = append(items, educationItem{edu: *s.Entry})
	}
	return items
}
