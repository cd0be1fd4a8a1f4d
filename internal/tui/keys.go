package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Open     key.Binding
	Back     key.Binding
	New      key.Binding
	Edit     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Delete   key.Binding
	Help     key.Binding
	Quit     key.Binding

	// Form keys.
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open:     key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace", "left", "h"), key.WithHelp("esc", "back")),
		New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		MoveUp:   key.NewBinding(key.WithKeys("K", "alt+up", "shift+up", "ctrl+k"), key.WithHelp("K", "move up")),
		MoveDown: key.NewBinding(key.WithKeys("J", "alt+down", "shift+down", "ctrl+j"), key.WithHelp("J", "move down")),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// listHelp is the help.KeyMap for the list views.
type listHelp struct {
	k       keyMap
	entries bool
	ordered bool
}

func (h listHelp) ShortHelp() []key.Binding {
	if !h.entries {
		return []key.Binding{h.k.Open, h.k.Help, h.k.Quit}
	}
	if !h.ordered {
		return []key.Binding{h.k.New, h.k.Back, h.k.Help, h.k.Quit}
	}
	return []key.Binding{h.k.New, h.k.Edit, h.k.MoveUp, h.k.MoveDown, h.k.Back, h.k.Help}
}

func (h listHelp) FullHelp() [][]key.Binding {
	if !h.entries {
		return [][]key.Binding{{h.k.Open, h.k.Help, h.k.Quit}}
	}
	if !h.ordered {
		return [][]key.Binding{{h.k.New}, {h.k.Back, h.k.Help, h.k.Quit}}
	}
	return [][]key.Binding{
		{h.k.New, h.k.Edit, h.k.Delete},
		{h.k.MoveUp, h.k.MoveDown},
		{h.k.Back, h.k.Help, h.k.Quit},
	}
}

// formHelp is the help.KeyMap for the entry and education forms.
type formHelp struct{ k keyMap }

func (h formHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Next, h.k.Submit, h.k.Cancel}
}

func (h formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{h.k.Next, h.k.Prev}, {h.k.Submit, h.k.Cancel}}
}

func isMoveUp(msg tea.KeyMsg) bool {
	return key.Matches(msg, defaultKeyMap().MoveUp)
}

func isMoveDown(msg tea.KeyMsg) bool {
	return key.Matches(msg, defaultKeyMap().MoveDown)
}
