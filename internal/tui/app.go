package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"resume-cli/internal/editor"
	"resume-cli/internal/model"
	"resume-cli/internal/publish"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type view int

const (
	viewSections view = iota
	viewEntries
	viewEntryForm
	viewEducationForm
)

type appModel struct {
	resume  *model.Resume
	editors map[model.FormType]*editor.Editor
	edu     *editor.EducationEditor
	log     *slog.Logger

	mdStyle string
	keys    keyMap
	help    help.Model

	width  int
	height int

	view    view
	section section

	sectionsList list.Model
	entriesList  list.Model

	form    entryForm
	eduForm educationForm

	status    string
	statusErr bool
}

func newAppModel(r *model.Resume, opts Options) appModel {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := appModel{
		resume:  r,
		editors: map[model.FormType]*editor.Editor{},
		edu:     editor.NewEducationEditor(editor.ResumeEducation{Resume: r}, log),
		log:     log,
		mdStyle: opts.MarkdownStyle,
		keys:    defaultKeyMap(),
		help:    help.New(),
		view:    viewSections,
		section: sectionEducation,
	}
	for _, ft := range model.FormTypes() {
		m.editors[ft] = editor.New(
			editor.ResumeSection{Resume: r, FormType: ft},
			ft,
			editor.WithLogger(log),
			editor.AdoptExisting(),
		)
	}
	m.sectionsList = newList("Sections", nil)
	m.entriesList = newList("Entries", nil)
	m.refreshSections()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

// activeEditor returns the editor of the open section; nil for education.
func (m appModel) activeEditor() *editor.Editor {
	ft, ok := m.section.formType()
	if !ok {
		return nil
	}
	return m.editors[ft]
}

func (m *appModel) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *appModel) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *appModel) refreshSections() {
	items := make([]list.Item, 0, 3)
	for _, s := range sections() {
		n := len(m.resume.PopulatedEducation())
		if ft, ok := s.formType(); ok {
			n = len(m.resume.Section(ft))
		}
		items = append(items, sectionItem{section: s, count: n})
	}
	idx := m.sectionsList.Index()
	m.sectionsList.SetItems(items)
	m.sectionsList.Select(idx)
}

// refreshEntries reloads the entries list from the store and selects selectID when it
// is present; otherwise the cursor is clamped.
func (m *appModel) refreshEntries(selectID int, byID bool) {
	var items []list.Item
	if ed := m.activeEditor(); ed != nil {
		items = entryItems(ed.Entries())
	} else {
		items = educationItems(m.resume.Education)
	}
	idx := m.entriesList.Index()
	m.entriesList.SetItems(items)
	if byID {
		for i, it := range items {
			if ei, ok := it.(entryItem); ok && ei.entry.ID == selectID {
				idx = i
				break
			}
		}
	}
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.entriesList.Select(idx)
}

func (m *appModel) resizeLists() {
	left, _ := splitWidths(m.width)
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	m.sectionsList.SetSize(left, h)
	m.entriesList.SetSize(left, h)
	m.help.Width = m.width
}

func (m appModel) selectedEntry() (model.Entry, bool) {
	it, ok := m.entriesList.SelectedItem().(entryItem)
	if !ok {
		return model.Entry{}, false
	}
	return it.entry, true
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.view {
	case viewEntryForm:
		return m.updateEntryForm(msg)
	case viewEducationForm:
		return m.updateEducationForm(msg)
	case viewEntries:
		return m.updateEntries(msg)
	}
	return m.updateSections(msg)
}

func (m appModel) updateSections(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(km, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(km, m.keys.Open):
			if it, ok := m.sectionsList.SelectedItem().(sectionItem); ok {
				m.section = it.section
				m.view = viewEntries
				m.status = ""
				m.entriesList.Select(0)
				m.refreshEntries(0, false)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.sectionsList, cmd = m.sectionsList.Update(msg)
	return m, cmd
}

func (m appModel) updateEntries(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.entriesList, cmd = m.entriesList.Update(msg)
		return m, cmd
	}

	ed := m.activeEditor()
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(km, m.keys.New):
		m.status = ""
		if ed == nil {
			m.eduForm = newEducationForm(m.keys)
			m.view = viewEducationForm
			return m, textinput.Blink
		}
		ed.ResetDraft()
		m.form = newEntryForm(ed, m.keys)
		m.view = viewEntryForm
		return m, textinput.Blink
	case ed != nil && isMoveUp(km):
		if e, ok := m.selectedEntry(); ok && ed.MoveUp(e) {
			m.refreshEntries(e.ID, true)
		}
		return m, nil
	case ed != nil && isMoveDown(km):
		if e, ok := m.selectedEntry(); ok && ed.MoveDown(e) {
			m.refreshEntries(e.ID, true)
		}
		return m, nil
	case ed != nil && key.Matches(km, m.keys.Delete):
		if e, ok := m.selectedEntry(); ok {
			m.deleteEntry(ed, e)
			m.refreshEntries(0, false)
			m.refreshSections()
			m.setStatus("Deleted %q", e.Title)
		}
		return m, nil
	case ed != nil && key.Matches(km, m.keys.Edit):
		if e, ok := m.selectedEntry(); ok {
			m.status = ""
			ed.BeginEdit(e)
			m.form = newEntryForm(ed, m.keys)
			m.view = viewEntryForm
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(km, m.keys.Back):
		m.view = viewSections
		m.status = ""
		m.refreshSections()
		return m, nil
	}

	var cmd tea.Cmd
	m.entriesList, cmd = m.entriesList.Update(msg)
	return m, cmd
}

// deleteEntry removes an entry from the store and the order index together.
func (m *appModel) deleteEntry(ed *editor.Editor, e model.Entry) {
	cur := ed.Entries()
	next := make([]model.Entry, 0, len(cur))
	for _, it := range cur {
		if it.ID != e.ID {
			next = append(next, it)
		}
	}
	order := make([]int, 0, len(next))
	for _, id := range ed.Order() {
		if id != e.ID {
			order = append(order, id)
		}
	}
	m.resume.SetSection(ed.FormType(), next)
	ed.SetOrder(order)
	m.log.Debug("delete", "section", string(ed.FormType()), "id", e.ID)
}

func (m appModel) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		action formAction
	)
	m.form, cmd, action = m.form.update(msg)
	switch action {
	case formCancel:
		m.form.ed.ResetDraft()
		m.view = viewEntries
		return m, nil
	case formSubmit:
		entry, changed := m.form.ed.Commit(m.form.submission())
		if changed {
			m.setStatus("Saved %q", entry.Title)
		} else {
			m.status = ""
		}
		m.view = viewEntries
		m.refreshEntries(entry.ID, true)
		m.refreshSections()
		return m, nil
	}
	return m, cmd
}

func (m appModel) updateEducationForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		action formAction
	)
	m.eduForm, cmd, action = m.eduForm.update(msg)
	switch action {
	case formCancel:
		m.status = ""
		m.view = viewEntries
		return m, nil
	case formSubmit:
		in, err := m.eduForm.values()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		item := m.edu.Add(in)
		m.setStatus("Added %q", item.SchoolName)
		m.view = viewEntries
		m.refreshEntries(0, false)
		m.entriesList.Select(len(m.entriesList.Items()) - 1)
		m.refreshSections()
		return m, nil
	}
	return m, cmd
}

func (m appModel) breadcrumb() string {
	parts := []string{"Resume"}
	if strings.TrimSpace(m.resume.Name) != "" {
		parts[0] = m.resume.Name
	}
	if m.view != viewSections {
		parts = append(parts, m.section.label())
	}
	switch m.view {
	case viewEntryForm:
		parts = append(parts, m.form.heading())
	case viewEducationForm:
		parts = append(parts, "New")
	}
	return strings.Join(parts, " › ")
}

// preview renders the open section (or the whole resume on the sections view) as
// terminal markdown.
func (m appModel) preview(width int) string {
	var md string
	switch {
	case m.view == viewSections:
		md = publish.ResumeMarkdown(*m.resume)
	case m.activeEditor() != nil:
		md = publish.SectionMarkdown(m.activeEditor().FormType(), m.activeEditor().Entries())
	default:
		md = publish.EducationMarkdown(m.resume.Education)
	}
	if strings.TrimSpace(md) == "" {
		return styleMuted().Render("Nothing here yet. Press n to add an entry.")
	}
	return RenderMarkdown(md, width, m.mdStyle)
}

func (m appModel) footer() string {
	var km help.KeyMap
	switch m.view {
	case viewEntryForm, viewEducationForm:
		km = formHelp{k: m.keys}
	case viewEntries:
		km = listHelp{k: m.keys, entries: true, ordered: m.activeEditor() != nil}
	default:
		km = listHelp{k: m.keys}
	}
	return m.help.View(km)
}

func (m appModel) View() string {
	width := m.width
	if width <= 0 {
		width = minSplitWidth
	}
	height := m.height
	if height <= 0 {
		height = 24
	}
	bodyH := height - 4
	if bodyH < 3 {
		bodyH = 3
	}
	left, right := splitWidths(width)

	var body string
	switch m.view {
	case viewEntryForm:
		body = m.form.view(left - 2)
	case viewEducationForm:
		body = m.eduForm.view(left - 2)
	case viewEntries:
		if len(m.entriesList.Items()) == 0 {
			body = styleMuted().Render("No entries. Press n to add one.")
		} else {
			body = m.entriesList.View()
		}
	default:
		body = m.sectionsList.View()
	}
	body = normalizePane(body, left, bodyH)
	if right > 0 {
		pane := stylePane(right - 1).Render(m.preview(right - 4))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, normalizePane(pane, right, bodyH))
	}

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = styleError().Render(m.status)
		} else {
			status = styleMuted().Render(m.status)
		}
	}
	return strings.Join([]string{
		styleHeader().Render(fitLine(m.breadcrumb(), width)),
		body,
		fitLine(status, width),
		m.footer(),
	}, "\n")
}
