// Package tui is the interactive resume editor.
package tui

import (
	"log/slog"

	"resume-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Theme is auto|light|dark.
	Theme string
	// MarkdownStyle overrides the preview style (light|dark).
	MarkdownStyle string
	Logger        *slog.Logger
}

// NewResume returns an empty resume with the education section seeded by one empty slot.
func NewResume(name string) *model.Resume {
	return &model.Resume{
		Name:      name,
		Education: []model.EducationSlot{model.EmptyEducationSlot()},
		Projects:  []model.Entry{},
		Skills:    []model.Entry{},
	}
}

// Run edits r in place until the user quits.
func Run(r *model.Resume, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	if opts.MarkdownStyle == "" && opts.Theme != "auto" {
		opts.MarkdownStyle = opts.Theme
	}
	m := newAppModel(r, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
