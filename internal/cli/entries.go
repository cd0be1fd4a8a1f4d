package cli

import (
	"errors"
	"fmt"
	"strconv"

	"resume-cli/internal/document"
	"resume-cli/internal/editor"
	"resume-cli/internal/model"

	"github.com/spf13/cobra"
)

func newEntriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Add, edit and reorder skills/projects entries in a document",
	}
	cmd.AddCommand(newEntriesListCmd(app))
	cmd.AddCommand(newEntriesAddCmd(app))
	cmd.AddCommand(newEntriesEditCmd(app))
	cmd.AddCommand(newEntriesMoveCmd(app))
	return cmd
}

// sectionEditor loads path and opens an editor over one of its sections, adopting the
// entries already there.
func sectionEditor(cmd *cobra.Command, app *App, path, section string) (*model.Resume, *editor.Editor, error) {
	ft, err := model.ParseFormType(section)
	if err != nil {
		return nil, nil, err
	}
	doc, err := document.Load(path, cmd.InOrStdin())
	if err != nil {
		return nil, nil, err
	}
	r := &doc
	ed := editor.New(
		editor.ResumeSection{Resume: r, FormType: ft},
		ft,
		editor.WithLogger(app.Log),
		editor.AdoptExisting(),
	)
	return r, ed, nil
}

func findEntry(entries []model.Entry, id int) (model.Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.Entry{}, false
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid entry id: %q", s)
	}
	return id, nil
}

// emitUpdated prints the updated document, or with write saves it back to path and
// prints result instead.
func emitUpdated(cmd *cobra.Command, app *App, path string, r *model.Resume, write bool, result any) error {
	if !write {
		return writeOut(cmd, app, r)
	}
	if path == "-" {
		return errors.New("--write needs a file path, not stdin")
	}
	if err := saveDocument(path, *r, true); err != nil {
		return err
	}
	return writeOut(cmd, app, result)
}

func newEntriesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <file> <projects|skills>",
		Short: "List the entries of a section in store order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ed, err := sectionEditor(cmd, app, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, ed.Entries())
		},
	}
}

func newEntriesAddCmd(app *App) *cobra.Command {
	var title, link string
	var details []string
	var write bool

	cmd := &cobra.Command{
		Use:   "add <file> <projects|skills>",
		Short: "Append a new entry to a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ed, err := sectionEditor(cmd, app, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			for _, d := range details {
				ed.AddDetail(d)
			}
			entry, _ := ed.Commit(editor.Submission{Title: title, Link: link})
			if err := emitUpdated(cmd, app, args[0], r, write, entry); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Entry title (project title or skill category)")
	cmd.Flags().StringVar(&link, "link", "", "Project link (ignored for skills)")
	cmd.Flags().StringArrayVar(&details, "detail", nil, "Detail text (repeatable)")
	cmd.Flags().BoolVar(&write, "write", false, "Write the document back to <file> instead of printing it")
	return cmd
}

func newEntriesEditCmd(app *App) *cobra.Command {
	var title, link string
	var details []string
	var write bool

	cmd := &cobra.Command{
		Use:   "edit <file> <projects|skills> <id>",
		Short: "Replace an entry in place (unset flags keep the current value; --detail appends)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[2])
			if err != nil {
				return writeErr(cmd, err)
			}
			r, ed, err := sectionEditor(cmd, app, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			cur, ok := findEntry(ed.Entries(), id)
			if !ok {
				return writeErr(cmd, errNotFound("entry", id))
			}

			ed.BeginEdit(cur)
			sub := editor.Submission{Title: cur.Title, Link: cur.Link}
			if cmd.Flags().Changed("title") {
				sub.Title = title
			}
			if cmd.Flags().Changed("link") {
				sub.Link = link
			}
			for _, d := range details {
				ed.AddDetail(d)
			}
			entry, _ := ed.Commit(sub)
			if err := emitUpdated(cmd, app, args[0], r, write, entry); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&link, "link", "", "New link (ignored for skills)")
	cmd.Flags().StringArrayVar(&details, "detail", nil, "Append a detail (repeatable)")
	cmd.Flags().BoolVar(&write, "write", false, "Write the document back to <file> instead of printing it")
	return cmd
}

func newEntriesMoveCmd(app *App) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "move <file> <projects|skills> <id> <up|down>",
		Short: "Move an entry one position up or down",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[2])
			if err != nil {
				return writeErr(cmd, err)
			}
			dir := args[3]
			if dir != "up" && dir != "down" {
				return writeErr(cmd, fmt.Errorf("invalid direction: %q (expected up|down)", dir))
			}
			r, ed, err := sectionEditor(cmd, app, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			entry, ok := findEntry(ed.Entries(), id)
			if !ok {
				return writeErr(cmd, errNotFound("entry", id))
			}

			var moved bool
			if dir == "up" {
				moved = ed.MoveUp(entry)
			} else {
				moved = ed.MoveDown(entry)
			}
			result := map[string]any{"moved": moved, "order": ed.Order()}
			if err := emitUpdated(cmd, app, args[0], r, write, result); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Write the document back to <file> instead of printing it")
	return cmd
}
